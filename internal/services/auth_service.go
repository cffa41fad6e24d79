package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionIssuer = "innohub"

// Claims is the content of a session token
type Claims struct {
	UserID string      `json:"user_id"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

// HasRole reports whether the session holds one of roles; no roles means any
func (c *Claims) HasRole(roles ...models.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session belongs to an admin
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == models.RoleAdmin
}

// Sessions issues and validates signed session tokens
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions creates a session signer
func NewSessions(secret string, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime of issued sessions
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session for the user
func (s *Sessions) Issue(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(s.ttl)
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, expires, nil
}

// ValidateSession validates a session token for the given roles
func (s *Sessions) ValidateSession(token string, roles ...models.Role) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(sessionIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidSession
	}
	if !claims.HasRole(roles...) {
		return nil, fmt.Errorf("%w: role %s", ErrForbidden, claims.Role)
	}
	return claims, nil
}

// RegisterInput is the self-service signup form
type RegisterInput struct {
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,min=8,max=72"`
	Name          string `json:"name" validate:"required,max=255"`
	Role          string `json:"role" validate:"required,oneof=startup researcher funding_agency ip_professional"`
	Organization  string `json:"organization" validate:"max=255"`
	WalletAddress string `json:"walletAddress" validate:"max=64"`
}

// LoginInput is the login form
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a user account
func Register(ctx context.Context, s *store.Store, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:         in.Email,
		Name:          in.Name,
		Role:          models.Role(in.Role),
		PasswordHash:  string(hash),
		Organization:  in.Organization,
		WalletAddress: in.WalletAddress,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("email %s: %w", in.Email, err)
		}
		return nil, err
	}

	zap.L().Info("user registered", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Authenticate checks credentials
func Authenticate(ctx context.Context, s *store.Store, in LoginInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := Validate(in); err != nil {
		return nil, err
	}

	user, err := s.Users.First(ctx, store.Where{"email": in.Email})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates the configured admin account when it does not exist yet
func EnsureAdmin(ctx context.Context, s *store.Store, email, password string) error {
	if email == "" {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.Users.First(ctx, store.Where{"email": email})
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := &models.User{
		Email:        email,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(ctx, admin); err != nil && !errors.Is(err, store.ErrDuplicate) {
		return err
	}

	zap.L().Info("admin account created", zap.String("email", email))
	return nil
}

// CurrentUser loads the account behind a session
func CurrentUser(ctx context.Context, s *store.Store, claims *Claims) (*models.User, error) {
	user, err := s.Users.Get(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	return user, err
}

// Agency is the public directory entry of a funding agency
type Agency struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
}

// ListAgencies returns every funding agency account
func ListAgencies(ctx context.Context, s *store.Store) ([]Agency, error) {
	users, err := s.Users.Find(ctx, store.Query{Where: store.Where{"role": models.RoleFundingAgency}})
	if err != nil {
		return nil, err
	}
	agencies := make([]Agency, 0, len(users))
	for _, u := range users {
		agencies = append(agencies, Agency{ID: u.ID, Name: u.Name, Organization: u.Organization})
	}
	return agencies, nil
}
