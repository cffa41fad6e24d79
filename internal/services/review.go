package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"go.uber.org/zap"
)

// ReviewInput is a reviewer's decision on a pending submission
type ReviewInput struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=2000"`
}

// Page selects a window of records after a cursor
type Page struct {
	After string
	Limit int
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Size is the effective page size
func (p Page) Size() int {
	switch {
	case p.Limit <= 0:
		return defaultPageSize
	case p.Limit > maxPageSize:
		return maxPageSize
	}
	return p.Limit
}

// NextCursor returns the id to resume after when the page was full
func NextCursor[T any, P interface {
	*T
	models.Entity
}](items []T, limit int) string {
	if limit <= 0 || len(items) < limit {
		return ""
	}
	return P(&items[len(items)-1]).GetID()
}

// decide moves a pending record to the decided status and returns the stored result
func decide[T any](ctx context.Context, repo store.Repository[T], collection, id string, actor *Claims, in ReviewInput) (*T, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	decision, err := models.ParseDecision(in.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	now := time.Now().UTC()
	err = repo.Transition(ctx, id, models.StatusPending, decision, store.Fields{
		"reviewer_id": actor.UserID,
		"review_note": in.Note,
		"reviewed_at": now,
	})
	if err != nil {
		return nil, err
	}

	reviewDecisions.WithLabelValues(collection, string(decision)).Inc()
	zap.L().Info("review decision",
		zap.String("collection", collection),
		zap.String("id", id),
		zap.String("status", string(decision)),
		zap.String("reviewer", actor.UserID))

	return repo.Get(ctx, id)
}

// statusFilter validates an optional status query value
func statusFilter(where store.Where, status string) error {
	if status == "" {
		return nil
	}
	st := models.Status(status)
	if !st.Valid() {
		return invalid("status", "must be one of: pending accepted rejected")
	}
	where["status"] = st
	return nil
}
