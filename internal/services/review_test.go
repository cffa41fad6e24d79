package services

import (
	"context"
	"testing"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/store/storetest"
	"github.com/localnerve/innohub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupValidation(t *testing.T) {
	s := storetest.New(t)
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)

	_, err := CreateStartup(context.Background(), s, founder, StartupInput{
		Stage:       "unicorn",
		Website:     "not a url",
		FoundedYear: 1200,
	})
	fields := fieldErrors(t, err)
	assert.Equal(t, "is required", fields["name"])
	assert.Contains(t, fields["stage"], "must be one of")
	assert.Contains(t, fields, "website")
	assert.Contains(t, fields, "foundedYear")
}

func TestStartupReviewLifecycle(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)

	st, err := CreateStartup(ctx, s, founder, StartupInput{
		Name:  "Tidal Labs",
		Stage: "seed",
		Tags:  types.FlexList[string]{"energy", "ocean"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, st.Status)

	_, err = ReviewStartup(ctx, s, admin, st.ID, ReviewInput{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	reviewed, err := ReviewStartup(ctx, s, admin, st.ID, ReviewInput{Status: "approved", Note: "solid team"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, reviewed.Status)
	assert.Equal(t, admin.UserID, reviewed.ReviewerID)
	assert.Equal(t, "solid team", reviewed.ReviewNote)
	require.NotNil(t, reviewed.ReviewedAt)

	_, err = ReviewStartup(ctx, s, admin, st.ID, ReviewInput{Status: "rejected"})
	assert.ErrorIs(t, err, store.ErrStatusConflict)

	_, err = ReviewStartup(ctx, s, admin, models.NewID(), ReviewInput{Status: "rejected"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// editing a decided profile sends it back for review
	updated, err := UpdateStartup(ctx, s, founder, st.ID, StartupInput{Name: "Tidal Labs Ltd", Stage: "mvp"})
	require.NoError(t, err)
	assert.Equal(t, "Tidal Labs Ltd", updated.Name)
	assert.Equal(t, "mvp", updated.Stage)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Empty(t, updated.ReviewerID)
	assert.Empty(t, updated.ReviewNote)
	assert.Nil(t, updated.ReviewedAt)
	_, err = GetStartup(ctx, s, nil, st.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// a pending edit leaves the status alone
	again, err := UpdateStartup(ctx, s, founder, st.ID, StartupInput{Name: "Tidal Labs", Tags: types.FlexList[string]{"ocean"}})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, again.Status)
	assert.Equal(t, models.StringList{"ocean"}, again.Tags)
	assert.Empty(t, again.Stage)
}

// reviewOnRead decides the startup right after the owner's edit has read it
type reviewOnRead struct {
	store.Repository[models.Startup]
	review func()
}

func (r *reviewOnRead) Get(ctx context.Context, id string) (*models.Startup, error) {
	st, err := r.Repository.Get(ctx, id)
	if r.review != nil {
		review := r.review
		r.review = nil
		review()
	}
	return st, err
}

func TestUpdateStartupRacingReview(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)

	st, err := CreateStartup(ctx, s, founder, StartupInput{Name: "Tidal"})
	require.NoError(t, err)

	base := s.Startups
	s.Startups = &reviewOnRead{Repository: base, review: func() {
		_, err := decide(ctx, base, "startups", st.ID, admin, ReviewInput{Status: "rejected", Note: "no traction"})
		require.NoError(t, err)
	}}

	_, err = UpdateStartup(ctx, s, founder, st.ID, StartupInput{Name: "Tidal v2"})
	assert.ErrorIs(t, err, store.ErrStatusConflict)

	got, err := base.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Equal(t, admin.UserID, got.ReviewerID)
	assert.Equal(t, "no traction", got.ReviewNote)
	assert.Equal(t, "Tidal", got.Name)
}

func TestStartupVisibility(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)
	other := seedUser(t, s, "other@example.com", models.RoleStartup)
	agency := seedUser(t, s, "fund@example.com", models.RoleFundingAgency)

	accepted, err := CreateStartup(ctx, s, founder, StartupInput{Name: "Public"})
	require.NoError(t, err)
	pending, err := CreateStartup(ctx, s, founder, StartupInput{Name: "Hidden"})
	require.NoError(t, err)
	_, err = ReviewStartup(ctx, s, admin, accepted.ID, ReviewInput{Status: "accepted"})
	require.NoError(t, err)

	public, err := ListStartups(ctx, s, nil, ListFilter{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, accepted.ID, public[0].ID)

	none, err := ListStartups(ctx, s, other, ListFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, none)

	mine, err := ListStartups(ctx, s, founder, ListFilter{Mine: true})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	queue, err := ListStartups(ctx, s, admin, ListFilter{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, pending.ID, queue[0].ID)

	all, err := ListStartups(ctx, s, agency, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = ListStartups(ctx, s, admin, ListFilter{Status: "archived"})
	assert.Contains(t, fieldErrors(t, err), "status")

	_, err = GetStartup(ctx, s, other, pending.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = GetStartup(ctx, s, founder, pending.ID)
	assert.NoError(t, err)

	_, err = UpdateStartup(ctx, s, other, pending.ID, StartupInput{Name: "Mine now"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, DeleteStartup(ctx, s, other, pending.ID), ErrForbidden)
}

func TestStartupPaging(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)

	for _, name := range []string{"one", "two", "three"} {
		_, err := CreateStartup(ctx, s, founder, StartupInput{Name: name})
		require.NoError(t, err)
	}

	first, err := ListStartups(ctx, s, founder, ListFilter{Mine: true, Page: Page{Limit: 2}})
	require.NoError(t, err)
	require.Len(t, first, 2)
	cursor := NextCursor(first, 2)
	require.NotEmpty(t, cursor)

	rest, err := ListStartups(ctx, s, founder, ListFilter{Mine: true, Page: Page{After: cursor, Limit: 2}})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "three", rest[0].Name)
	assert.Empty(t, NextCursor(rest, 2))
}

func TestDeleteStartupRemovesMetrics(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)

	st, err := CreateStartup(ctx, s, founder, StartupInput{Name: "Short lived"})
	require.NoError(t, err)
	_, err = RecordMetric(ctx, s, founder, st.ID, MetricInput{Period: "2026-01", Revenue: 10})
	require.NoError(t, err)

	require.NoError(t, DeleteStartup(ctx, s, founder, st.ID))
	n, err := s.Metrics.Count(ctx, store.Where{"startup_id": st.ID})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMetrics(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)
	other := seedUser(t, s, "other@example.com", models.RoleStartup)

	st, err := CreateStartup(ctx, s, founder, StartupInput{Name: "Metered"})
	require.NoError(t, err)

	_, err = RecordMetric(ctx, s, founder, st.ID, MetricInput{Period: "2026-13"})
	assert.Contains(t, fieldErrors(t, err), "period")

	_, err = RecordMetric(ctx, s, founder, st.ID, MetricInput{Period: "2026-02", Revenue: -1})
	assert.Contains(t, fieldErrors(t, err), "revenue")

	_, err = RecordMetric(ctx, s, other, st.ID, MetricInput{Period: "2026-02"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = RecordMetric(ctx, s, founder, st.ID, MetricInput{Period: "2026-03", Revenue: 300})
	require.NoError(t, err)
	first, err := RecordMetric(ctx, s, founder, st.ID, MetricInput{Period: "2026-02", Revenue: 100})
	require.NoError(t, err)
	again, err := RecordMetric(ctx, s, founder, st.ID, MetricInput{Period: "2026-02", Revenue: 150, Headcount: 4})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	series, err := ListMetrics(ctx, s, founder, st.ID)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2026-02", series[0].Period)
	assert.Equal(t, int64(150), series[0].Revenue)
	assert.Equal(t, int64(4), series[0].Headcount)
	assert.Equal(t, "2026-03", series[1].Period)

	// pending startups are not public
	_, err = ListMetrics(ctx, s, other, st.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPapers(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)
	researcher := seedUser(t, s, "lab@example.com", models.RoleResearcher)

	_, err := CreatePaper(ctx, s, researcher, PaperInput{Title: "No authors", Abstract: "x"})
	assert.Contains(t, fieldErrors(t, err), "authors")

	paper, err := CreatePaper(ctx, s, researcher, PaperInput{
		Title:    "Graphene membranes",
		Abstract: "We study filtration.",
		Authors:  types.FlexList[string]{"A. Author", "B. Author"},
		UploadID: models.NewID(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"A. Author", "B. Author"}, paper.Authors)

	public, err := ListPapers(ctx, s, nil, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, public)

	rejected, err := ReviewPaper(ctx, s, admin, paper.ID, ReviewInput{Status: "reject", Note: "out of scope"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	_, err = GetPaper(ctx, s, nil, paper.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	got, err := GetPaper(ctx, s, researcher, paper.ID)
	require.NoError(t, err)
	assert.Equal(t, "out of scope", got.ReviewNote)

	require.NoError(t, DeletePaper(ctx, s, admin, paper.ID))
	_, err = s.Papers.Get(ctx, paper.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFunding(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)
	other := seedUser(t, s, "other@example.com", models.RoleStartup)
	agency := seedUser(t, s, "fund@example.com", models.RoleFundingAgency)
	rival := seedUser(t, s, "rival@example.com", models.RoleFundingAgency)

	st, err := CreateStartup(ctx, s, founder, StartupInput{Name: "Needs cash"})
	require.NoError(t, err)

	input := FundingInput{
		StartupID:  st.ID,
		AgencyID:   agency.UserID,
		Amount:     250000,
		Currency:   "eur",
		Purpose:    "Pilot plant",
		Milestones: types.FlexList[string]{"design", "build"},
	}

	bad := input
	bad.Amount = 0
	bad.Currency = "EURO"
	fields := fieldErrors(t, func() error { _, err := CreateFunding(ctx, s, founder, bad); return err }())
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "currency")

	notAgency := input
	notAgency.AgencyID = other.UserID
	_, err = CreateFunding(ctx, s, founder, notAgency)
	assert.Contains(t, fieldErrors(t, err), "agencyId")

	_, err = CreateFunding(ctx, s, other, input)
	assert.ErrorIs(t, err, ErrForbidden)

	req, err := CreateFunding(ctx, s, founder, input)
	require.NoError(t, err)
	assert.Equal(t, "EUR", req.Currency)
	assert.Equal(t, int64(250000), req.Amount)

	inbox, err := ListFunding(ctx, s, agency, "", Page{})
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
	empty, err := ListFunding(ctx, s, rival, "", Page{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = GetFunding(ctx, s, rival, req.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = ReviewFunding(ctx, s, rival, req.ID, ReviewInput{Status: "accepted"})
	assert.ErrorIs(t, err, ErrForbidden)

	decided, err := ReviewFunding(ctx, s, agency, req.ID, ReviewInput{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, decided.Status)

	accepted, err := ListFunding(ctx, s, founder, "accepted", Page{})
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
}
