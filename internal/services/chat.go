package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/localnerve/innohub/internal/chat"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"go.uber.org/zap"
)

// MessageInput is a direct message form
type MessageInput struct {
	RecipientID string `json:"recipientId" validate:"required,uuid"`
	Body        string `json:"body" validate:"required,max=4000"`
}

// sendMu keeps id assignment, commit and publish in one order within the process,
// so a poll after the newest id seen never skips a message committed later.
var sendMu sync.Mutex

// SendMessage stores a message and pushes it to both participants' streams.
// A failed push is logged only; pollers still receive the stored message.
func SendMessage(ctx context.Context, s *store.Store, broker chat.Broker, actor *Claims, in MessageInput) (*models.Message, error) {
	in.Body = strings.TrimSpace(in.Body)
	if err := Validate(in); err != nil {
		return nil, err
	}
	if in.RecipientID == actor.UserID {
		return nil, invalid("recipientId", "must be another user")
	}
	if _, err := s.Users.Get(ctx, in.RecipientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, invalid("recipientId", "does not exist")
		}
		return nil, err
	}

	msg := &models.Message{
		ConversationID: models.ConversationKey(actor.UserID, in.RecipientID),
		SenderID:       actor.UserID,
		RecipientID:    in.RecipientID,
		Body:           in.Body,
	}
	sendMu.Lock()
	defer sendMu.Unlock()
	if err := s.Messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	chatMessages.WithLabelValues("stored").Inc()

	if broker != nil {
		for _, userID := range []string{msg.RecipientID, msg.SenderID} {
			if err := broker.Publish(ctx, userID, *msg); err != nil {
				zap.L().Warn("chat publish failed", zap.String("user", userID), zap.Error(err))
			}
		}
	}
	return msg, nil
}

// Conversation returns the messages between the actor and another user after a cursor, oldest first
func Conversation(ctx context.Context, s *store.Store, actor *Claims, with string, page Page) ([]models.Message, error) {
	if with == "" {
		return nil, invalid("with", "is required")
	}
	return s.Messages.Find(ctx, store.Query{
		Where: store.Where{"conversation_id": models.ConversationKey(actor.UserID, with)},
		After: page.After,
		Limit: page.Size(),
	})
}

// Inbox returns one page of messages sent or received by the actor after a cursor, oldest first
func Inbox(ctx context.Context, s *store.Store, actor *Claims, page Page) ([]models.Message, error) {
	return s.Messages.Find(ctx, store.Query{
		Any:   participant(actor),
		After: page.After,
		Limit: page.Size(),
	})
}

// Backlog returns every message sent or received by the actor after a cursor, oldest first.
// It reads page by page until a short page, so a resumed stream misses nothing.
func Backlog(ctx context.Context, s *store.Store, actor *Claims, after string) ([]models.Message, error) {
	all := []models.Message{}
	for {
		page, err := s.Messages.Find(ctx, store.Query{
			Any:   participant(actor),
			After: after,
			Limit: maxPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < maxPageSize {
			return all, nil
		}
		after = page[len(page)-1].ID
	}
}

func participant(actor *Claims) []store.Where {
	return []store.Where{
		{"sender_id": actor.UserID},
		{"recipient_id": actor.UserID},
	}
}

// Contact is a conversation counterpart with the latest message exchanged
type Contact struct {
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Role   models.Role     `json:"role"`
	Last   *models.Message `json:"last"`
}

const contactScan = 500

// Contacts lists the actor's recent conversation counterparts, most recent first
func Contacts(ctx context.Context, s *store.Store, actor *Claims) ([]Contact, error) {
	recent, err := s.Messages.Find(ctx, store.Query{
		Any:   participant(actor),
		Desc:  true,
		Limit: contactScan,
	})
	if err != nil {
		return nil, err
	}

	contacts := []Contact{}
	seen := map[string]bool{}
	for i := range recent {
		other := recent[i].RecipientID
		if other == actor.UserID {
			other = recent[i].SenderID
		}
		if seen[other] {
			continue
		}
		seen[other] = true

		contact := Contact{UserID: other, Last: &recent[i]}
		user, err := s.Users.Get(ctx, other)
		switch {
		case err == nil:
			contact.Name = user.Name
			contact.Role = user.Role
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}
