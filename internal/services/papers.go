package services

import (
	"context"
	"strings"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
)

// PaperInput is the research paper submission form
type PaperInput struct {
	Title    string                 `json:"title" validate:"required,max=512"`
	Abstract string                 `json:"abstract" validate:"required,max=20000"`
	Authors  types.FlexList[string] `json:"authors" validate:"required,min=1,max=50,dive,required,max=255"`
	Keywords types.FlexList[string] `json:"keywords" validate:"max=20,dive,max=64"`
	Field    string                 `json:"field" validate:"max=128"`
	DOI      string                 `json:"doi" validate:"max=255"`
	UploadID string                 `json:"uploadId" validate:"omitempty,uuid"`
}

// CreatePaper submits a research paper for review
func CreatePaper(ctx context.Context, s *store.Store, actor *Claims, in PaperInput) (*models.ResearchPaper, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	paper := &models.ResearchPaper{
		OwnerID:  actor.UserID,
		Title:    strings.TrimSpace(in.Title),
		Abstract: in.Abstract,
		Authors:  models.StringList(in.Authors.Slice()),
		Keywords: models.StringList(in.Keywords.Slice()),
		Field:    in.Field,
		DOI:      in.DOI,
		UploadID: in.UploadID,
		Review:   models.Review{Status: models.StatusPending},
	}
	if err := s.Papers.Create(ctx, paper); err != nil {
		return nil, err
	}
	return paper, nil
}

// GetPaper returns an accepted paper to anyone, others only to the owner and admins
func GetPaper(ctx context.Context, s *store.Store, actor *Claims, id string) (*models.ResearchPaper, error) {
	paper, err := s.Papers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSee(actor, paper.OwnerID, paper.Status) {
		return nil, store.ErrNotFound
	}
	return paper, nil
}

// ListPapers lists papers under the catalogue rule
func ListPapers(ctx context.Context, s *store.Store, actor *Claims, f ListFilter) ([]models.ResearchPaper, error) {
	where, ok, err := visibility(actor, f)
	if err != nil || !ok {
		return []models.ResearchPaper{}, err
	}
	return s.Papers.Find(ctx, store.Query{Where: where, After: f.After, Limit: f.Size()})
}

// DeletePaper removes a paper
func DeletePaper(ctx context.Context, s *store.Store, actor *Claims, id string) error {
	paper, err := s.Papers.Get(ctx, id)
	if err != nil {
		return err
	}
	if paper.OwnerID != actor.UserID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.Papers.Delete(ctx, id)
}

// ReviewPaper records an admin decision on a pending paper
func ReviewPaper(ctx context.Context, s *store.Store, actor *Claims, id string, in ReviewInput) (*models.ResearchPaper, error) {
	return decide(ctx, s.Papers, "papers", id, actor, in)
}
