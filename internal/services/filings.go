// filings.go
//
// Multi-role innovation platform service: startups, research, IP filings and funding
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of innohub.
// innohub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// innohub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with innohub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/localnerve/innohub/internal/ledger"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/similarity"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// FilingInput is the common IP filing form; Attributes carries the kind specific fields
type FilingInput struct {
	Title       string                 `json:"title" validate:"required,max=512"`
	Description string                 `json:"description" validate:"required,max=20000"`
	Attributes  map[string]interface{} `json:"attributes" validate:"max=40"`
	UploadIDs   types.FlexList[string] `json:"uploadIds" validate:"max=10,dive,uuid"`
}

// requiredAttributes are the kind specific form fields that must be present
var requiredAttributes = map[models.FilingKind][]string{
	models.KindPatent:      {"claims", "inventors"},
	models.KindTrademark:   {"mark", "classes"},
	models.KindCopyright:   {"workType", "authors"},
	models.KindTradeSecret: {"category"},
}

func checkAttributes(kind models.FilingKind, attrs map[string]interface{}) error {
	fields := map[string]string{}
	for _, key := range requiredAttributes[kind] {
		v, ok := attrs[key]
		if !ok || v == nil {
			fields["attributes."+key] = "is required"
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			fields["attributes."+key] = "is required"
		}
		if l, isList := v.([]interface{}); isList && len(l) == 0 {
			fields["attributes."+key] = "is required"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateFiling submits an IP filing of the given kind for review
func CreateFiling(ctx context.Context, s *store.Store, actor *Claims, kind models.FilingKind, in FilingInput) (*models.Filing, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	if err := checkAttributes(kind, in.Attributes); err != nil {
		return nil, err
	}

	filing := &models.Filing{
		Kind:         kind,
		OwnerID:      actor.UserID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Attributes:   datatypes.JSONMap(in.Attributes),
		UploadIDs:    models.StringList(in.UploadIDs.Slice()),
		LedgerStatus: models.LedgerNone,
		Review:       models.Review{Status: models.StatusPending},
	}
	if filing.Attributes == nil {
		filing.Attributes = datatypes.JSONMap{}
	}
	if err := s.Filings.Create(ctx, filing); err != nil {
		return nil, err
	}
	return filing, nil
}

func isFilingReviewer(actor *Claims) bool {
	return actor.HasRole(models.RoleAdmin, models.RoleIPProfessional)
}

// GetFiling returns a filing to its owner and to reviewers
func GetFiling(ctx context.Context, s *store.Store, actor *Claims, id string) (*models.Filing, error) {
	filing, err := s.Filings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if filing.OwnerID != actor.UserID && !isFilingReviewer(actor) {
		return nil, store.ErrNotFound
	}
	return filing, nil
}

// FilingFilter narrows a filing listing
type FilingFilter struct {
	Kind   string
	Status string
	Page
}

// ListFilings lists every filing for reviewers and the actor's own filings for everyone else
func ListFilings(ctx context.Context, s *store.Store, actor *Claims, f FilingFilter) ([]models.Filing, error) {
	where := store.Where{}
	if !isFilingReviewer(actor) {
		where["owner_id"] = actor.UserID
	}
	if f.Kind != "" {
		kind, err := models.ParseFilingKind(f.Kind)
		if err != nil {
			return nil, invalid("kind", "must be one of: patent trademark copyright trade-secret")
		}
		where["kind"] = kind
	}
	if err := statusFilter(where, f.Status); err != nil {
		return nil, err
	}
	return s.Filings.Find(ctx, store.Query{Where: where, After: f.After, Limit: f.Size()})
}

// DeleteFiling withdraws a filing; only the owner may, and only while it is pending
func DeleteFiling(ctx context.Context, s *store.Store, actor *Claims, id string) error {
	filing, err := s.Filings.Get(ctx, id)
	if err != nil {
		return err
	}
	if filing.OwnerID != actor.UserID {
		return ErrForbidden
	}
	if filing.Status != models.StatusPending {
		return fmt.Errorf("filing is %s: %w", filing.Status, store.ErrStatusConflict)
	}
	return s.Filings.Delete(ctx, id)
}

// ReviewFiling records a decision on a pending filing and submits it to the ledger.
// The decision stands when the ledger fails; the outcome is kept on the filing.
func ReviewFiling(ctx context.Context, s *store.Store, rec ledger.Recorder, actor *Claims, id string, in ReviewInput) (*models.Filing, error) {
	filing, err := decide(ctx, s.Filings, "filings", id, actor, in)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return filing, nil
	}
	filing, _ = RecordFilingDecision(ctx, s, rec, filing)
	return filing, nil
}

// RecordFilingDecision submits a decided filing to the ledger and stores the outcome
func RecordFilingDecision(ctx context.Context, s *store.Store, rec ledger.Recorder, filing *models.Filing) (*models.Filing, error) {
	if rec == nil {
		return filing, ledger.ErrNotConfigured
	}
	if !filing.Status.IsTerminal() {
		return filing, fmt.Errorf("filing is %s: %w", filing.Status, store.ErrStatusConflict)
	}

	if err := s.Filings.Patch(ctx, filing.ID, store.Fields{"ledger_status": models.LedgerPending, "ledger_error": ""}); err != nil {
		return filing, err
	}

	receipt, recErr := rec.RecordDecision(ctx, ledger.Decision{
		FilingID: filing.ID,
		Kind:     filing.Kind,
		Status:   filing.Status,
		Digest:   ledger.Digest(filing),
	})

	fields := store.Fields{"ledger_status": models.LedgerConfirmed, "ledger_error": ""}
	outcome := models.LedgerConfirmed
	if receipt != nil {
		fields["tx_hash"] = receipt.TxHash
	}
	if recErr != nil {
		outcome = models.LedgerFailed
		if errors.Is(recErr, ledger.ErrRejected) {
			outcome = models.LedgerRejected
		}
		fields["ledger_status"] = outcome
		fields["ledger_error"] = truncate(recErr.Error(), 1000)
		zap.L().Warn("ledger submission failed",
			zap.String("filing", filing.ID),
			zap.String("outcome", outcome),
			zap.Error(recErr))
	}
	ledgerSubmissions.WithLabelValues(outcome).Inc()

	// the decision is already stored; write the outcome even if the request is gone
	if err := s.Filings.Patch(context.WithoutCancel(ctx), filing.ID, fields); err != nil {
		return filing, err
	}
	updated, err := s.Filings.Get(context.WithoutCancel(ctx), filing.ID)
	if err != nil {
		return filing, err
	}
	return updated, recErr
}

// RetryLedger resubmits a decided filing whose ledger record is missing or failed.
// A pending record untouched for longer than stale is taken as abandoned by a
// submission that never finished and may be retried too.
func RetryLedger(ctx context.Context, s *store.Store, rec ledger.Recorder, id string, stale time.Duration) (*models.Filing, error) {
	if rec == nil {
		return nil, ledger.ErrNotConfigured
	}
	filing, err := s.Filings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch filing.LedgerStatus {
	case models.LedgerNone, models.LedgerFailed, models.LedgerRejected, "":
	case models.LedgerPending:
		if stale <= 0 || time.Since(filing.UpdatedAt) < stale {
			return filing, fmt.Errorf("ledger record is %s: %w", filing.LedgerStatus, store.ErrStatusConflict)
		}
		zap.L().Info("retrying abandoned ledger submission",
			zap.String("filing", filing.ID),
			zap.Time("since", filing.UpdatedAt))
	default:
		return filing, fmt.Errorf("ledger record is %s: %w", filing.LedgerStatus, store.ErrStatusConflict)
	}
	return RecordFilingDecision(ctx, s, rec, filing)
}

// SimilarFiling is one ranked comparison result
type SimilarFiling struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Status models.Status     `json:"status"`
	Score  float64           `json:"score"`
	Method similarity.Method `json:"method"`
}

// CompareFiling scores a filing against every other filing of the same kind, best first
func CompareFiling(ctx context.Context, s *store.Store, scorer similarity.Scorer, id string, limit int) ([]SimilarFiling, error) {
	filing, err := s.Filings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	others, err := s.Filings.Find(ctx, store.Query{Where: store.Where{"kind": filing.Kind}})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Filing, len(others))
	candidates := make([]similarity.Candidate, 0, len(others))
	for i := range others {
		if others[i].ID == filing.ID {
			continue
		}
		byID[others[i].ID] = &others[i]
		candidates = append(candidates, similarity.Candidate{ID: others[i].ID, Text: others[i].Text()})
	}

	matches, err := similarity.Rank(ctx, scorer, filing.Text(), candidates, limit)
	if err != nil {
		return nil, err
	}

	results := make([]SimilarFiling, 0, len(matches))
	for _, m := range matches {
		similarityScores.WithLabelValues(string(m.Method)).Inc()
		other := byID[m.ID]
		results = append(results, SimilarFiling{
			ID:     m.ID,
			Title:  other.Title,
			Status: other.Status,
			Score:  m.Score,
			Method: m.Method,
		})
	}
	return results, nil
}

// truncate cuts s to at most n bytes without splitting a character
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
