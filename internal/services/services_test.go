package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/innohub/internal/config"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedUser stores a user directly and returns its session claims
func seedUser(t *testing.T, s *store.Store, email string, role models.Role) *Claims {
	t.Helper()
	u := &models.User{Email: email, Name: email, Role: role, PasswordHash: "-"}
	require.NoError(t, s.Users.Create(context.Background(), u))
	return &Claims{UserID: u.ID, Role: u.Role, Email: u.Email}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	return verr.Fields
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	user, err := Register(ctx, s, RegisterInput{
		Email:    " Founder@Example.com ",
		Password: "correct horse",
		Name:     "Founder",
		Role:     "startup",
	})
	require.NoError(t, err)
	assert.Equal(t, "founder@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	_, err = Register(ctx, s, RegisterInput{Email: "founder@example.com", Password: "another one", Name: "Dup", Role: "researcher"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	got, err := Authenticate(ctx, s, LoginInput{Email: "FOUNDER@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = Authenticate(ctx, s, LoginInput{Email: "founder@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(ctx, s, LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	s := storetest.New(t)

	_, err := Register(context.Background(), s, RegisterInput{
		Email:    "not-an-email",
		Password: "short",
		Name:     "X",
		Role:     "admin",
	})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
	assert.NotContains(t, fields, "name")
}

func TestSessions(t *testing.T) {
	sessions := NewSessions("0123456789abcdef", time.Hour)
	user := &models.User{Base: models.Base{ID: models.NewID()}, Email: "ip@example.com", Role: models.RoleIPProfessional}

	token, expires, err := sessions.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := sessions.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleIPProfessional, claims.Role)

	_, err = sessions.ValidateSession(token, models.RoleAdmin, models.RoleIPProfessional)
	assert.NoError(t, err)

	_, err = sessions.ValidateSession(token, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = sessions.ValidateSession("")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = NewSessions("another-secret-value", time.Hour).ValidateSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	expired := NewSessions("0123456789abcdef", time.Nanosecond)
	old, _, err := expired.Issue(user)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = sessions.ValidateSession(old)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestEnsureAdmin(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, s, "", ""))
	require.NoError(t, EnsureAdmin(ctx, s, "Root@Example.com", "supersecret"))
	require.NoError(t, EnsureAdmin(ctx, s, "root@example.com", "supersecret"))

	n, err := s.Users.Count(ctx, store.Where{"role": models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	admin, err := Authenticate(ctx, s, LoginInput{Email: "root@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestCurrentUserAndAgencies(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	agency := seedUser(t, s, "fund@example.com", models.RoleFundingAgency)
	seedUser(t, s, "founder@example.com", models.RoleStartup)

	user, err := CurrentUser(ctx, s, agency)
	require.NoError(t, err)
	assert.Equal(t, "fund@example.com", user.Email)

	_, err = CurrentUser(ctx, s, &Claims{UserID: "gone"})
	assert.ErrorIs(t, err, ErrInvalidSession)

	agencies, err := ListAgencies(ctx, s)
	require.NoError(t, err)
	require.Len(t, agencies, 1)
	assert.Equal(t, agency.UserID, agencies[0].ID)
}

func TestNextCursor(t *testing.T) {
	items := []models.Startup{{Base: models.Base{ID: "a"}}, {Base: models.Base{ID: "b"}}}
	assert.Equal(t, "b", NextCursor(items, 2))
	assert.Equal(t, "", NextCursor(items, 3))
	assert.Equal(t, "", NextCursor(items, 0))
}

func TestPageLimit(t *testing.T) {
	assert.Equal(t, defaultPageSize, Page{}.Size())
	assert.Equal(t, maxPageSize, Page{Limit: 10000}.Size())
	assert.Equal(t, 7, Page{Limit: 7}.Size())
}

func TestDashboard(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	admin := seedUser(t, s, "admin@example.com", models.RoleAdmin)
	founder := seedUser(t, s, "founder@example.com", models.RoleStartup)

	a, err := CreateStartup(ctx, s, founder, StartupInput{Name: "A"})
	require.NoError(t, err)
	_, err = CreateStartup(ctx, s, founder, StartupInput{Name: "B"})
	require.NoError(t, err)
	_, err = ReviewStartup(ctx, s, admin, a.ID, ReviewInput{Status: "accepted"})
	require.NoError(t, err)
	_, err = CreateFiling(ctx, s, founder, models.KindTradeSecret, FilingInput{
		Title:       "Recipe",
		Description: "Secret sauce",
		Attributes:  map[string]interface{}{"category": "formula"},
	})
	require.NoError(t, err)

	d, err := GetDashboard(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Pending: 1, Accepted: 1}, d.Startups)
	assert.Equal(t, StatusCounts{Pending: 1}, d.Filings["trade_secret"])
	assert.Equal(t, StatusCounts{}, d.Filings["patent"])
	assert.Equal(t, int64(1), d.Users["admin"])
	assert.Equal(t, int64(1), d.Users["startup"])
	assert.Equal(t, int64(0), d.Users["researcher"])
}

func TestHealthCheck(t *testing.T) {
	s := storetest.New(t)
	cfg := &config.Config{DBDatabase: "innohub_test"}

	result := HealthCheck(context.Background(), cfg, s)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "disabled", result.Redis)
	assert.Equal(t, "disabled", result.Ledger)
	assert.Equal(t, "sqlite", result.Details["database_type"])

	cfg.LedgerRPCURL = "http://127.0.0.1:1"
	result = HealthCheck(context.Background(), cfg, s)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Ledger)
	assert.Contains(t, result.ErrorMessage, "Ledger node ping failed")
}
