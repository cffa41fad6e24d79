package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every persisted record
type Entity interface {
	GetID() string
	Prepare(now time.Time)
	TableName() string
}

// Base holds the identifier and timestamps shared by all records.
// IDs are UUIDv7 strings, so lexical order is creation order.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	CreatedAt time.Time `gorm:"not null" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" bson:"updated_at" json:"updatedAt"`
}

// GetID returns the record identifier
func (b *Base) GetID() string {
	return b.ID
}

// Prepare assigns an identifier and timestamps before the first write
func (b *Base) Prepare(now time.Time) {
	if b.ID == "" {
		b.ID = NewID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// NewID returns a time ordered identifier
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Review holds the outcome fields of a reviewable submission
type Review struct {
	Status     Status     `gorm:"size:16;index;not null;default:pending" bson:"status" json:"status"`
	ReviewerID string     `gorm:"size:36" bson:"reviewer_id,omitempty" json:"reviewerId,omitempty"`
	ReviewNote string     `gorm:"size:2000" bson:"review_note,omitempty" json:"reviewNote,omitempty"`
	ReviewedAt *time.Time `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
}
