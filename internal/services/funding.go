package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
)

// FundingInput is a startup's funding request form
type FundingInput struct {
	StartupID  string                 `json:"startupId" validate:"required,uuid"`
	AgencyID   string                 `json:"agencyId" validate:"required,uuid"`
	Amount     types.FlexInt64        `json:"amount" validate:"gt=0"`
	Currency   string                 `json:"currency" validate:"required,len=3,uppercase"`
	Purpose    string                 `json:"purpose" validate:"required,max=10000"`
	Milestones types.FlexList[string] `json:"milestones" validate:"max=20,dive,max=512"`
}

// CreateFunding addresses a funding request for one of the actor's startups to an agency
func CreateFunding(ctx context.Context, s *store.Store, actor *Claims, in FundingInput) (*models.FundingRequest, error) {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := Validate(in); err != nil {
		return nil, err
	}

	st, err := s.Startups.Get(ctx, in.StartupID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, invalid("startupId", "does not exist")
	}
	if err != nil {
		return nil, err
	}
	if st.OwnerID != actor.UserID {
		return nil, fmt.Errorf("startup %s: %w", st.ID, ErrForbidden)
	}

	agency, err := s.Users.Get(ctx, in.AgencyID)
	if errors.Is(err, store.ErrNotFound) || err == nil && agency.Role != models.RoleFundingAgency {
		return nil, invalid("agencyId", "is not a funding agency")
	}
	if err != nil {
		return nil, err
	}

	req := &models.FundingRequest{
		StartupID:  st.ID,
		OwnerID:    actor.UserID,
		AgencyID:   agency.ID,
		Amount:     in.Amount.Int64(),
		Currency:   in.Currency,
		Purpose:    in.Purpose,
		Milestones: models.StringList(in.Milestones.Slice()),
		Review:     models.Review{Status: models.StatusPending},
	}
	if err := s.Funding.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func canSeeFunding(actor *Claims, req *models.FundingRequest) bool {
	return actor.IsAdmin() || req.OwnerID == actor.UserID || req.AgencyID == actor.UserID
}

// GetFunding returns a request to its owner, the addressed agency and admins
func GetFunding(ctx context.Context, s *store.Store, actor *Claims, id string) (*models.FundingRequest, error) {
	req, err := s.Funding.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSeeFunding(actor, req) {
		return nil, store.ErrNotFound
	}
	return req, nil
}

// ListFunding lists requests addressed to an agency, made by a startup owner, or all for admins
func ListFunding(ctx context.Context, s *store.Store, actor *Claims, status string, page Page) ([]models.FundingRequest, error) {
	where := store.Where{}
	switch {
	case actor.IsAdmin():
	case actor.Role == models.RoleFundingAgency:
		where["agency_id"] = actor.UserID
	default:
		where["owner_id"] = actor.UserID
	}
	if err := statusFilter(where, status); err != nil {
		return nil, err
	}
	return s.Funding.Find(ctx, store.Query{Where: where, After: page.After, Limit: page.Size()})
}

// ReviewFunding records the addressed agency's decision on a pending request
func ReviewFunding(ctx context.Context, s *store.Store, actor *Claims, id string, in ReviewInput) (*models.FundingRequest, error) {
	req, err := s.Funding.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && req.AgencyID != actor.UserID {
		return nil, ErrForbidden
	}
	return decide(ctx, s.Funding, "funding_requests", id, actor, in)
}
