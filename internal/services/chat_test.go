package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/localnerve/innohub/internal/chat"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	broker := chat.NewMemoryBroker()
	t.Cleanup(func() { _ = broker.Close() })

	alice := seedUser(t, s, "alice@example.com", models.RoleStartup)
	bob := seedUser(t, s, "bob@example.com", models.RoleFundingAgency)

	sub, err := broker.Subscribe(ctx, bob.UserID)
	require.NoError(t, err)
	defer sub.Close()

	_, err = SendMessage(ctx, s, broker, alice, MessageInput{RecipientID: alice.UserID, Body: "hi me"})
	assert.Contains(t, fieldErrors(t, err), "recipientId")

	_, err = SendMessage(ctx, s, broker, alice, MessageInput{RecipientID: models.NewID(), Body: "hello?"})
	assert.Equal(t, "does not exist", fieldErrors(t, err)["recipientId"])

	_, err = SendMessage(ctx, s, broker, alice, MessageInput{RecipientID: bob.UserID, Body: "   "})
	assert.Contains(t, fieldErrors(t, err), "body")

	_, err = SendMessage(ctx, s, broker, alice, MessageInput{RecipientID: bob.UserID, Body: strings.Repeat("x", 4001)})
	assert.Contains(t, fieldErrors(t, err), "body")

	msg, err := SendMessage(ctx, s, broker, alice, MessageInput{RecipientID: bob.UserID, Body: " pitch deck attached "})
	require.NoError(t, err)
	assert.Equal(t, "pitch deck attached", msg.Body)
	assert.Equal(t, models.ConversationKey(alice.UserID, bob.UserID), msg.ConversationID)

	select {
	case pushed := <-sub.C:
		assert.Equal(t, msg.ID, pushed.ID)
	case <-time.After(time.Second):
		t.Fatal("message was not pushed to the recipient")
	}
}

func TestConversationAndBacklog(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice@example.com", models.RoleStartup)
	bob := seedUser(t, s, "bob@example.com", models.RoleFundingAgency)
	carol := seedUser(t, s, "carol@example.com", models.RoleResearcher)

	send := func(from, to *Claims, body string) *models.Message {
		msg, err := SendMessage(ctx, s, nil, from, MessageInput{RecipientID: to.UserID, Body: body})
		require.NoError(t, err)
		return msg
	}

	m1 := send(alice, bob, "one")
	m2 := send(bob, alice, "two")
	send(carol, bob, "unrelated")
	m4 := send(alice, bob, "three")

	all, err := Conversation(ctx, s, bob, alice.UserID, Page{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{m1.ID, m2.ID, m4.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	newer, err := Conversation(ctx, s, alice, bob.UserID, Page{After: m2.ID})
	require.NoError(t, err)
	require.Len(t, newer, 1)
	assert.Equal(t, "three", newer[0].Body)

	_, err = Conversation(ctx, s, alice, "", Page{})
	assert.Contains(t, fieldErrors(t, err), "with")

	backlog, err := Backlog(ctx, s, alice, m1.ID)
	require.NoError(t, err)
	require.Len(t, backlog, 2)
	assert.Equal(t, m2.ID, backlog[0].ID)
	assert.Equal(t, m4.ID, backlog[1].ID)

	contacts, err := Contacts(ctx, s, bob)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, alice.UserID, contacts[0].UserID)
	assert.Equal(t, "three", contacts[0].Last.Body)
	assert.Equal(t, models.RoleStartup, contacts[0].Role)
	assert.Equal(t, carol.UserID, contacts[1].UserID)
}

func TestBacklogReadsPastOnePage(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice@example.com", models.RoleStartup)
	bob := seedUser(t, s, "bob@example.com", models.RoleFundingAgency)

	total := maxPageSize + 5
	ids := make([]string, 0, total)
	for i := 0; i < total; i++ {
		msg, err := SendMessage(ctx, s, nil, alice, MessageInput{RecipientID: bob.UserID, Body: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
		ids = append(ids, msg.ID)
	}

	backlog, err := Backlog(ctx, s, bob, "")
	require.NoError(t, err)
	require.Len(t, backlog, total)
	for i := range backlog {
		require.Equal(t, ids[i], backlog[i].ID)
	}

	tail, err := Backlog(ctx, s, bob, ids[maxPageSize])
	require.NoError(t, err)
	require.Len(t, tail, 4)
	assert.Equal(t, ids[total-1], tail[3].ID)

	page, err := Inbox(ctx, s, bob, Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, ids[9], page[9].ID)

	capped, err := Inbox(ctx, s, bob, Page{Limit: total})
	require.NoError(t, err)
	assert.Len(t, capped, maxPageSize)
}

func TestConcurrentSendsPublishInIDOrder(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	broker := chat.NewMemoryBroker()
	t.Cleanup(func() { _ = broker.Close() })

	bob := seedUser(t, s, "bob@example.com", models.RoleFundingAgency)
	senders := make([]*Claims, 4)
	for i := range senders {
		senders[i] = seedUser(t, s, fmt.Sprintf("sender%d@example.com", i), models.RoleStartup)
	}

	sub, err := broker.Subscribe(ctx, bob.UserID)
	require.NoError(t, err)
	defer sub.Close()

	const perSender = 8
	var wg sync.WaitGroup
	for _, from := range senders {
		wg.Add(1)
		go func(from *Claims) {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				_, err := SendMessage(ctx, s, broker, from, MessageInput{RecipientID: bob.UserID, Body: "hello"})
				assert.NoError(t, err)
			}
		}(from)
	}
	wg.Wait()

	var last string
	for i := 0; i < len(senders)*perSender; i++ {
		select {
		case msg := <-sub.C:
			assert.Greater(t, msg.ID, last)
			last = msg.ID
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d messages were pushed", i)
		}
	}
}
