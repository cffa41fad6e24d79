package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/innohub/internal/config"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
	"go.uber.org/zap"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Redis        string            `json:"redis"`
	Ledger       string            `json:"ledger"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

const pingTimeout = 5 * time.Second

func (r *HealthCheckResult) fail(component, message string, err error) {
	r.Status = "unhealthy"
	r.Details[component+"_error"] = err.Error()
	if r.ErrorMessage != "" {
		r.ErrorMessage += "; "
	}
	r.ErrorMessage += fmt.Sprintf("%s: %v", message, err)
	zap.L().Warn("health check failed", zap.String("component", component), zap.Error(err))
}

// HealthCheck performs a comprehensive health check of the service.
// Redis and the ledger node are only checked when configured.
func HealthCheck(ctx context.Context, cfg *config.Config, s *store.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:   "healthy",
		Database: "ok",
		Redis:    "disabled",
		Ledger:   "disabled",
		Details:  make(map[string]string),
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.Ping(pctx); err != nil {
		result.Database = "unreachable"
		result.fail("database", "Database ping failed", err)
	} else {
		result.Details["database_type"] = s.Backend
		result.Details["database_name"] = cfg.DBDatabase
	}

	if cfg.RedisURL != "" {
		if err := utils.PingService(cfg.RedisURL, pingTimeout); err != nil {
			result.Redis = "unreachable"
			result.fail("redis", "Redis ping failed", err)
		} else {
			result.Redis = "ok"
		}
	}

	if cfg.LedgerRPCURL != "" {
		if err := utils.PingService(cfg.LedgerRPCURL, pingTimeout); err != nil {
			result.Ledger = "unreachable"
			result.fail("ledger", "Ledger node ping failed", err)
		} else {
			result.Ledger = "ok"
			result.Details["ledger_url"] = cfg.LedgerRPCURL
		}
	}

	if result.Status == "healthy" {
		zap.L().Debug("health check passed")
	}
	return result
}
