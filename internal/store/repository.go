package store

import (
	"context"
	"errors"

	"github.com/localnerve/innohub/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the identifier
	ErrNotFound = errors.New("record not found")
	// ErrStatusConflict is returned when a transition finds the record in another status
	ErrStatusConflict = errors.New("record is not in the expected status")
	// ErrDuplicate is returned when a unique constraint rejects a write
	ErrDuplicate = errors.New("duplicate record")
)

// Where is a set of equality conditions keyed by column name
type Where map[string]interface{}

// Fields is a set of column assignments
type Fields map[string]interface{}

// Query selects records in identifier order.
// Identifiers are time ordered, so After works as a resume cursor.
type Query struct {
	Where Where
	Any   []Where
	After string
	Limit int
	Desc  bool
}

// Repository is the persistence contract shared by the relational and document backends
type Repository[T any] interface {
	Create(ctx context.Context, item *T) error
	Get(ctx context.Context, id string) (*T, error)
	First(ctx context.Context, where Where) (*T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, where Where) (int64, error)
	Update(ctx context.Context, item *T) error
	Patch(ctx context.Context, id string, fields Fields) error
	Transition(ctx context.Context, id string, from, to models.Status, fields Fields) error
	Delete(ctx context.Context, id string) error
}

// entity constrains a type parameter to pointers of persisted records
type entity[T any] interface {
	*T
	models.Entity
}

func transitionFields(to models.Status, fields Fields, now interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out["status"] = to
	out["updated_at"] = now
	return out
}

func patchFields(fields Fields, now interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updated_at"] = now
	return out
}
