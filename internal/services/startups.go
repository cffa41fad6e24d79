package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
)

// StartupInput is the startup profile form
type StartupInput struct {
	Name         string                 `json:"name" validate:"required,max=255"`
	Industry     string                 `json:"industry" validate:"max=128"`
	Stage        string                 `json:"stage" validate:"omitempty,oneof=idea mvp seed series_a growth"`
	Description  string                 `json:"description" validate:"max=10000"`
	Website      string                 `json:"website" validate:"omitempty,url,max=512"`
	Location     string                 `json:"location" validate:"max=255"`
	FoundedYear  int                    `json:"foundedYear" validate:"omitempty,min=1900,max=2100"`
	TeamSize     int                    `json:"teamSize" validate:"min=0,max=1000000"`
	Tags         types.FlexList[string] `json:"tags" validate:"max=20,dive,max=64"`
	LogoUploadID string                 `json:"logoUploadId" validate:"omitempty,uuid"`
}

func (in StartupInput) apply(st *models.Startup) {
	st.Name = strings.TrimSpace(in.Name)
	st.Industry = in.Industry
	st.Stage = in.Stage
	st.Description = in.Description
	st.Website = in.Website
	st.Location = in.Location
	st.FoundedYear = in.FoundedYear
	st.TeamSize = in.TeamSize
	st.Tags = models.StringList(in.Tags.Slice())
	st.LogoUploadID = in.LogoUploadID
}

// fields is the profile content as column assignments; it never names a review column
func (in StartupInput) fields() store.Fields {
	var st models.Startup
	in.apply(&st)
	return store.Fields{
		"name":           st.Name,
		"industry":       st.Industry,
		"stage":          st.Stage,
		"description":    st.Description,
		"website":        st.Website,
		"location":       st.Location,
		"founded_year":   st.FoundedYear,
		"team_size":      st.TeamSize,
		"tags":           st.Tags,
		"logo_upload_id": st.LogoUploadID,
	}
}

// ListFilter narrows a listing
type ListFilter struct {
	Status string
	Mine   bool
	Page
}

// CreateStartup submits a startup profile for review
func CreateStartup(ctx context.Context, s *store.Store, actor *Claims, in StartupInput) (*models.Startup, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	st := &models.Startup{OwnerID: actor.UserID, Review: models.Review{Status: models.StatusPending}}
	in.apply(st)
	if err := s.Startups.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// UpdateStartup replaces the owner's profile fields.
// The write is conditional on the status that was read, so a review landing in
// between fails the edit with ErrStatusConflict instead of being overwritten.
// Editing a decided startup sends it back to pending for a fresh review.
func UpdateStartup(ctx context.Context, s *store.Store, actor *Claims, id string, in StartupInput) (*models.Startup, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	st, err := s.Startups.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.OwnerID != actor.UserID {
		return nil, ErrForbidden
	}

	fields := in.fields()
	if st.Status != models.StatusPending {
		fields["reviewer_id"] = ""
		fields["review_note"] = ""
		fields["reviewed_at"] = nil
	}
	if err := s.Startups.Transition(ctx, id, st.Status, models.StatusPending, fields); err != nil {
		return nil, err
	}
	return s.Startups.Get(ctx, id)
}

// GetStartup returns an accepted startup to anyone, others only to the owner and reviewers
func GetStartup(ctx context.Context, s *store.Store, actor *Claims, id string) (*models.Startup, error) {
	st, err := s.Startups.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSee(actor, st.OwnerID, st.Status, models.RoleFundingAgency) {
		return nil, store.ErrNotFound
	}
	return st, nil
}

// ListStartups lists the public catalogue, the actor's own profiles or, for admins, everything
func ListStartups(ctx context.Context, s *store.Store, actor *Claims, f ListFilter) ([]models.Startup, error) {
	where, ok, err := visibility(actor, f, models.RoleFundingAgency)
	if err != nil || !ok {
		return []models.Startup{}, err
	}
	return s.Startups.Find(ctx, store.Query{Where: where, After: f.After, Limit: f.Size()})
}

// DeleteStartup removes a startup and its metrics
func DeleteStartup(ctx context.Context, s *store.Store, actor *Claims, id string) error {
	st, err := s.Startups.Get(ctx, id)
	if err != nil {
		return err
	}
	if st.OwnerID != actor.UserID && !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.Startups.Delete(ctx, id); err != nil {
		return err
	}

	metrics, err := s.Metrics.Find(ctx, store.Query{Where: store.Where{"startup_id": id}})
	if err != nil {
		return err
	}
	for _, m := range metrics {
		if err := s.Metrics.Delete(ctx, m.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}
	return nil
}

// ReviewStartup records an admin decision on a pending startup
func ReviewStartup(ctx context.Context, s *store.Store, actor *Claims, id string, in ReviewInput) (*models.Startup, error) {
	return decide(ctx, s.Startups, "startups", id, actor, in)
}

// canSee applies the catalogue rule: accepted records are public, the rest belong to owner and reviewers
func canSee(actor *Claims, ownerID string, status models.Status, readers ...models.Role) bool {
	if status == models.StatusAccepted {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.UserID == ownerID || actor.IsAdmin() || len(readers) > 0 && actor.HasRole(readers...)
}

// visibility builds the listing filter for the catalogue rule.
// ok is false when the filter can match nothing the actor may see.
func visibility(actor *Claims, f ListFilter, readers ...models.Role) (store.Where, bool, error) {
	where := store.Where{}
	reviewer := actor != nil && (actor.IsAdmin() || len(readers) > 0 && actor.HasRole(readers...))

	switch {
	case actor != nil && f.Mine:
		where["owner_id"] = actor.UserID
	case reviewer:
	default:
		if f.Status != "" && f.Status != string(models.StatusAccepted) {
			return nil, false, nil
		}
		where["status"] = models.StatusAccepted
		return where, true, nil
	}

	if err := statusFilter(where, f.Status); err != nil {
		return nil, false, err
	}
	return where, true, nil
}
