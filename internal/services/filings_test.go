package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/localnerve/innohub/internal/ledger"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/similarity"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	receipt   *ledger.Receipt
	err       error
	decisions []ledger.Decision
}

func (f *fakeRecorder) RecordDecision(_ context.Context, d ledger.Decision) (*ledger.Receipt, error) {
	f.decisions = append(f.decisions, d)
	return f.receipt, f.err
}

func patentInput(title string) FilingInput {
	return FilingInput{
		Title:       title,
		Description: "A method for " + title,
		Attributes: map[string]interface{}{
			"claims":    "1. A method comprising " + title,
			"inventors": []interface{}{"Ada"},
		},
	}
}

func TestCreateFilingValidation(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)

	_, err := CreateFiling(ctx, s, owner, models.KindTrademark, FilingInput{
		Title:       "Acme",
		Description: "Word mark",
		Attributes:  map[string]interface{}{"mark": "  ", "classes": []interface{}{}},
	})
	fields := fieldErrors(t, err)
	assert.Equal(t, "is required", fields["attributes.mark"])
	assert.Equal(t, "is required", fields["attributes.classes"])

	_, err = CreateFiling(ctx, s, owner, models.KindPatent, FilingInput{Description: "no title"})
	assert.Contains(t, fieldErrors(t, err), "title")

	_, err = CreateFiling(ctx, s, owner, models.KindCopyright, FilingInput{
		Title:       "Novel",
		Description: "A book",
		Attributes:  map[string]interface{}{"workType": "literary", "authors": []interface{}{"Ada"}},
		UploadIDs:   []string{"not-a-uuid"},
	})
	assert.Contains(t, fieldErrors(t, err), "uploadIds[0]")

	filing, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("water purification"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, filing.Status)
	assert.Equal(t, models.LedgerNone, filing.LedgerStatus)
	assert.Equal(t, models.KindPatent, filing.Kind)
}

func TestFilingVisibility(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)
	other := seedUser(t, s, "other@example.com", models.RoleStartup)
	examiner := seedUser(t, s, "ip@example.com", models.RoleIPProfessional)

	patent, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("solar still"))
	require.NoError(t, err)
	_, err = CreateFiling(ctx, s, other, models.KindTradeSecret, FilingInput{
		Title:       "Blend",
		Description: "Tea blend",
		Attributes:  map[string]interface{}{"category": "recipe"},
	})
	require.NoError(t, err)

	own, err := ListFilings(ctx, s, owner, FilingFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, patent.ID, own[0].ID)

	all, err := ListFilings(ctx, s, examiner, FilingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	secrets, err := ListFilings(ctx, s, examiner, FilingFilter{Kind: "trade-secret"})
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	assert.Equal(t, models.KindTradeSecret, secrets[0].Kind)

	_, err = ListFilings(ctx, s, examiner, FilingFilter{Kind: "design"})
	assert.Contains(t, fieldErrors(t, err), "kind")

	_, err = GetFiling(ctx, s, other, patent.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = GetFiling(ctx, s, examiner, patent.ID)
	assert.NoError(t, err)
}

func TestReviewFilingLedgerOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		recorder   *fakeRecorder
		decision   string
		wantLedger string
		wantTx     string
		wantError  string
	}{
		{
			name:       "confirmed",
			recorder:   &fakeRecorder{receipt: &ledger.Receipt{TxHash: "0xfeed", VMState: "HALT"}},
			decision:   "accepted",
			wantLedger: models.LedgerConfirmed,
			wantTx:     "0xfeed",
		},
		{
			name:       "faulted after submission",
			recorder:   &fakeRecorder{receipt: &ledger.Receipt{TxHash: "0xdead"}, err: fmt.Errorf("acceptFiling %w: out of gas", ledger.ErrFaulted)},
			decision:   "accepted",
			wantLedger: models.LedgerFailed,
			wantTx:     "0xdead",
			wantError:  "out of gas",
		},
		{
			name:       "rejected by node",
			recorder:   &fakeRecorder{err: fmt.Errorf("invoke rejectFiling: %w", ledger.ErrRejected)},
			decision:   "rejected",
			wantLedger: models.LedgerRejected,
			wantError:  "rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storetest.New(t)
			ctx := context.Background()
			owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)
			examiner := seedUser(t, s, "ip@example.com", models.RoleIPProfessional)

			filing, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("heat pump"))
			require.NoError(t, err)

			got, err := ReviewFiling(ctx, s, tt.recorder, examiner, filing.ID, ReviewInput{Status: tt.decision})
			require.NoError(t, err)

			wantStatus, _ := models.ParseDecision(tt.decision)
			assert.Equal(t, wantStatus, got.Status)
			assert.Equal(t, tt.wantLedger, got.LedgerStatus)
			assert.Equal(t, tt.wantTx, got.TxHash)
			if tt.wantError == "" {
				assert.Empty(t, got.LedgerError)
			} else {
				assert.Contains(t, got.LedgerError, tt.wantError)
			}

			require.Len(t, tt.recorder.decisions, 1)
			d := tt.recorder.decisions[0]
			assert.Equal(t, filing.ID, d.FilingID)
			assert.Equal(t, wantStatus, d.Status)
			assert.Equal(t, ledger.Digest(filing), d.Digest)

			// the decision stands whatever the ledger said
			stored, err := s.Filings.Get(ctx, filing.ID)
			require.NoError(t, err)
			assert.Equal(t, wantStatus, stored.Status)
		})
	}
}

func TestReviewFilingWithoutLedger(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)

	filing, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("kite turbine"))
	require.NoError(t, err)

	got, err := ReviewFiling(ctx, s, nil, admin, filing.ID, ReviewInput{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, got.Status)
	assert.Equal(t, models.LedgerNone, got.LedgerStatus)

	_, err = ReviewFiling(ctx, s, nil, admin, filing.ID, ReviewInput{Status: "rejected"})
	assert.ErrorIs(t, err, store.ErrStatusConflict)

	_, err = RetryLedger(ctx, s, nil, filing.ID, time.Minute)
	assert.ErrorIs(t, err, ledger.ErrNotConfigured)
}

func TestRetryLedger(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)

	filing, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("tidal lens"))
	require.NoError(t, err)

	_, err = RetryLedger(ctx, s, &fakeRecorder{}, filing.ID, time.Minute)
	assert.ErrorIs(t, err, store.ErrStatusConflict, "pending filings have nothing to record")

	failing := &fakeRecorder{err: errors.New("connection refused")}
	got, err := ReviewFiling(ctx, s, failing, admin, filing.ID, ReviewInput{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.LedgerFailed, got.LedgerStatus)

	ok := &fakeRecorder{receipt: &ledger.Receipt{TxHash: "0xbeef", VMState: "HALT"}}
	got, err = RetryLedger(ctx, s, ok, filing.ID, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.LedgerConfirmed, got.LedgerStatus)
	assert.Equal(t, "0xbeef", got.TxHash)
	assert.Empty(t, got.LedgerError)

	_, err = RetryLedger(ctx, s, ok, filing.ID, time.Minute)
	assert.ErrorIs(t, err, store.ErrStatusConflict)
	assert.Len(t, ok.decisions, 1)

	_, err = RetryLedger(ctx, s, ok, models.NewID(), time.Minute)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRetryLedgerAbandonedPending(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)

	filing, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("tidal lens"))
	require.NoError(t, err)
	_, err = ReviewFiling(ctx, s, nil, admin, filing.ID, ReviewInput{Status: "accepted"})
	require.NoError(t, err)

	// a submission that died after marking the record pending
	require.NoError(t, s.Filings.Patch(ctx, filing.ID, store.Fields{"ledger_status": models.LedgerPending}))

	ok := &fakeRecorder{receipt: &ledger.Receipt{TxHash: "0xcafe", VMState: "HALT"}}
	_, err = RetryLedger(ctx, s, ok, filing.ID, time.Hour)
	assert.ErrorIs(t, err, store.ErrStatusConflict, "a recent pending record may still be in flight")
	_, err = RetryLedger(ctx, s, ok, filing.ID, 0)
	assert.ErrorIs(t, err, store.ErrStatusConflict)
	assert.Empty(t, ok.decisions)

	time.Sleep(20 * time.Millisecond)
	got, err := RetryLedger(ctx, s, ok, filing.ID, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, models.LedgerConfirmed, got.LedgerStatus)
	assert.Equal(t, "0xcafe", got.TxHash)
	assert.Len(t, ok.decisions, 1)
}

func TestTruncateKeepsCharacters(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))

	// "é" is two bytes; cutting at 2 would split it
	cut := truncate("aé", 2)
	assert.Equal(t, "a", cut)
	assert.True(t, utf8.ValidString(cut))

	long := truncate(strings.Repeat("日本", 400), 1000)
	assert.True(t, utf8.ValidString(long))
	assert.LessOrEqual(t, len(long), 1000)
	assert.Equal(t, 999, len(long))
}

func TestDeleteFiling(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)
	other := seedUser(t, s, "other@example.com", models.RoleResearcher)
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)

	withdrawn, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("pump"))
	require.NoError(t, err)
	decided, err := CreateFiling(ctx, s, owner, models.KindPatent, patentInput("valve"))
	require.NoError(t, err)
	_, err = ReviewFiling(ctx, s, nil, admin, decided.ID, ReviewInput{Status: "rejected"})
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteFiling(ctx, s, other, withdrawn.ID), ErrForbidden)
	assert.ErrorIs(t, DeleteFiling(ctx, s, owner, decided.ID), store.ErrStatusConflict)
	require.NoError(t, DeleteFiling(ctx, s, owner, withdrawn.ID))
	assert.ErrorIs(t, DeleteFiling(ctx, s, owner, withdrawn.ID), store.ErrNotFound)
}

func TestCompareFiling(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	owner := seedUser(t, s, "inventor@example.com", models.RoleResearcher)

	target, err := CreateFiling(ctx, s, owner, models.KindTrademark, FilingInput{
		Title:       "Blue Falcon",
		Description: "Sportswear brand",
		Attributes:  map[string]interface{}{"mark": "blue falcon", "classes": []interface{}{"25"}},
	})
	require.NoError(t, err)

	results, err := CompareFiling(ctx, s, similarity.OverlapScorer{}, target.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	near, err := CreateFiling(ctx, s, owner, models.KindTrademark, FilingInput{
		Title:       "Blue Falcon Sports",
		Description: "Sportswear brand",
		Attributes:  map[string]interface{}{"mark": "blue falcon", "classes": []interface{}{"25"}},
	})
	require.NoError(t, err)
	far, err := CreateFiling(ctx, s, owner, models.KindTrademark, FilingInput{
		Title:       "Quiet Owl",
		Description: "Coffee roastery",
		Attributes:  map[string]interface{}{"mark": "quiet owl", "classes": []interface{}{"30"}},
	})
	require.NoError(t, err)
	// other kinds are never compared
	_, err = CreateFiling(ctx, s, owner, models.KindPatent, patentInput("blue falcon sportswear brand"))
	require.NoError(t, err)

	results, err = CompareFiling(ctx, s, similarity.OverlapScorer{}, target.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, far.ID, results[1].ID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Equal(t, similarity.MethodOverlap, results[0].Method)
	assert.Equal(t, "Blue Falcon Sports", results[0].Title)

	limited, err := CompareFiling(ctx, s, similarity.OverlapScorer{}, target.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = CompareFiling(ctx, s, similarity.OverlapScorer{}, models.NewID(), 10)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
