package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGormCreateAndGet(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	startup := &models.Startup{
		OwnerID: "owner-1",
		Name:    "Acme Robotics",
		Tags:    models.StringList{"robotics", "ai"},
		Review:  models.Review{Status: models.StatusPending},
	}
	require.NoError(t, s.Startups.Create(ctx, startup))
	assert.NotEmpty(t, startup.ID)
	assert.False(t, startup.CreatedAt.IsZero())

	got, err := s.Startups.Get(ctx, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics", got.Name)
	assert.Equal(t, models.StringList{"robotics", "ai"}, got.Tags)
	assert.Equal(t, models.StatusPending, got.Status)

	_, err = s.Startups.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGormDuplicateEmail(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	require.NoError(t, s.Users.Create(ctx, &models.User{Email: "a@example.com", Name: "A", Role: models.RoleStartup, PasswordHash: "x"}))
	err := s.Users.Create(ctx, &models.User{Email: "a@example.com", Name: "B", Role: models.RoleResearcher, PasswordHash: "y"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestGormTransition(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	filing := &models.Filing{
		Kind:         models.KindPatent,
		OwnerID:      "owner-1",
		Title:        "Self-healing concrete",
		Attributes:   datatypes.JSONMap{"claims": "a concrete mix"},
		LedgerStatus: models.LedgerNone,
		Review:       models.Review{Status: models.StatusPending},
	}
	require.NoError(t, s.Filings.Create(ctx, filing))

	now := time.Now().UTC()
	err := s.Filings.Transition(ctx, filing.ID, models.StatusPending, models.StatusAccepted, store.Fields{
		"reviewer_id": "admin-1",
		"reviewed_at": now,
	})
	require.NoError(t, err)

	got, err := s.Filings.Get(ctx, filing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, got.Status)
	assert.Equal(t, "admin-1", got.ReviewerID)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, "a concrete mix", got.Attributes["claims"])

	// second decision loses
	err = s.Filings.Transition(ctx, filing.ID, models.StatusPending, models.StatusRejected, nil)
	assert.ErrorIs(t, err, store.ErrStatusConflict)

	err = s.Filings.Transition(ctx, "missing", models.StatusPending, models.StatusRejected, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGormFindCursorAndFilters(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	var ids []string
	for i, body := range []string{"one", "two", "three", "four"} {
		sender, recipient := "u1", "u2"
		if i%2 == 1 {
			sender, recipient = "u2", "u1"
		}
		msg := &models.Message{
			ConversationID: models.ConversationKey(sender, recipient),
			SenderID:       sender,
			RecipientID:    recipient,
			Body:           body,
		}
		require.NoError(t, s.Messages.Create(ctx, msg))
		ids = append(ids, msg.ID)
	}
	require.NoError(t, s.Messages.Create(ctx, &models.Message{
		ConversationID: models.ConversationKey("u3", "u4"),
		SenderID:       "u3",
		RecipientID:    "u4",
		Body:           "elsewhere",
	}))

	all, err := s.Messages.Find(ctx, store.Query{Where: store.Where{"conversation_id": "u1:u2"}})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "one", all[0].Body)
	assert.Equal(t, "four", all[3].Body)

	after, err := s.Messages.Find(ctx, store.Query{Where: store.Where{"conversation_id": "u1:u2"}, After: ids[1]})
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, ids[2], after[0].ID)

	latest, err := s.Messages.Find(ctx, store.Query{Any: []store.Where{{"sender_id": "u4"}, {"recipient_id": "u4"}}, Desc: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "elsewhere", latest[0].Body)

	n, err := s.Messages.Count(ctx, store.Where{"sender_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestGormUpdatePatchDelete(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	paper := &models.ResearchPaper{OwnerID: "r1", Title: "Draft", Review: models.Review{Status: models.StatusPending}}
	require.NoError(t, s.Papers.Create(ctx, paper))

	paper.Title = "Final"
	require.NoError(t, s.Papers.Update(ctx, paper))

	require.NoError(t, s.Papers.Patch(ctx, paper.ID, store.Fields{"doi": "10.1000/182"}))
	got, err := s.Papers.Get(ctx, paper.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "10.1000/182", got.DOI)

	require.NoError(t, s.Papers.Delete(ctx, paper.ID))
	assert.ErrorIs(t, s.Papers.Delete(ctx, paper.ID), store.ErrNotFound)
	assert.ErrorIs(t, s.Papers.Patch(ctx, paper.ID, store.Fields{"doi": ""}), store.ErrNotFound)

	missing := &models.ResearchPaper{Base: models.Base{ID: "nope"}, Title: "x"}
	assert.ErrorIs(t, s.Papers.Update(ctx, missing), store.ErrNotFound)
}

func TestGormStorePing(t *testing.T) {
	s := storetest.New(t)
	assert.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, "sqlite", s.Backend)
}
