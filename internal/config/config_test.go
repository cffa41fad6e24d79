package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123")
	t.Setenv("DB_TYPE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongo", cfg.DBType)
	assert.True(t, cfg.IsMongo())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.SimilarityInterval)
	assert.Equal(t, 10<<20, cfg.UploadMaxBytes)
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DBType:        "sqlite",
			DBDatabase:    "file::memory:",
			SessionSecret: "0123456789abcdef",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid sqlite", mutate: func(*Config) {}},
		{name: "short secret", mutate: func(c *Config) { c.SessionSecret = "short" }, wantErr: "at least 16"},
		{name: "unknown db", mutate: func(c *Config) { c.DBType = "oracle" }, wantErr: "unsupported DB_TYPE"},
		{name: "mysql without user", mutate: func(c *Config) { c.DBType = "mysql" }, wantErr: "DB_USER"},
		{name: "admin half set", mutate: func(c *Config) { c.AdminEmail = "root@example.com" }, wantErr: "ADMIN_EMAIL"},
		{name: "ledger without contract", mutate: func(c *Config) { c.LedgerRPCURL = "http://localhost:10332" }, wantErr: "LEDGER_CONTRACT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_DURATION_GO", "250ms")
	t.Setenv("X_DURATION_SECS", "3")
	t.Setenv("X_DURATION_BAD", "soon")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_INT_BAD", "ten")

	assert.Equal(t, 250*time.Millisecond, getEnvAsDuration("X_DURATION_GO", time.Second))
	assert.Equal(t, 3*time.Second, getEnvAsDuration("X_DURATION_SECS", time.Second))
	assert.Equal(t, time.Second, getEnvAsDuration("X_DURATION_BAD", time.Second))
	assert.True(t, getEnvAsBool("X_BOOL", false))
	assert.Equal(t, 7, getEnvAsInt("X_INT_BAD", 7))
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, "https://a.example,https://b.example", cfg.AllowedOrigins())
}
