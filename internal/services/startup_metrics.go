package services

import (
	"context"
	"errors"
	"sort"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
)

// MetricInput is one reporting period of startup figures
type MetricInput struct {
	Period      string          `json:"period" validate:"required,period"`
	Revenue     types.FlexInt64 `json:"revenue" validate:"gte=0"`
	ActiveUsers types.FlexInt64 `json:"activeUsers" validate:"gte=0"`
	Burn        types.FlexInt64 `json:"burn" validate:"gte=0"`
	Headcount   types.FlexInt64 `json:"headcount" validate:"gte=0"`
}

// RecordMetric stores the figures for a period, replacing an earlier report for the same period
func RecordMetric(ctx context.Context, s *store.Store, actor *Claims, startupID string, in MetricInput) (*models.StartupMetric, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	st, err := s.Startups.Get(ctx, startupID)
	if err != nil {
		return nil, err
	}
	if st.OwnerID != actor.UserID {
		return nil, ErrForbidden
	}

	metric, err := s.Metrics.First(ctx, store.Where{"startup_id": startupID, "period": in.Period})
	switch {
	case errors.Is(err, store.ErrNotFound):
		metric = &models.StartupMetric{StartupID: startupID, Period: in.Period}
	case err != nil:
		return nil, err
	}

	metric.Revenue = in.Revenue.Int64()
	metric.ActiveUsers = in.ActiveUsers.Int64()
	metric.Burn = in.Burn.Int64()
	metric.Headcount = in.Headcount.Int64()

	if metric.ID == "" {
		err = s.Metrics.Create(ctx, metric)
	} else {
		err = s.Metrics.Update(ctx, metric)
	}
	if err != nil {
		return nil, err
	}
	return metric, nil
}

// ListMetrics returns a startup's series ordered by period; the startup must be visible to the actor
func ListMetrics(ctx context.Context, s *store.Store, actor *Claims, startupID string) ([]models.StartupMetric, error) {
	if _, err := GetStartup(ctx, s, actor, startupID); err != nil {
		return nil, err
	}
	metrics, err := s.Metrics.Find(ctx, store.Query{Where: store.Where{"startup_id": startupID}})
	if err != nil {
		return nil, err
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Period < metrics[j].Period })
	return metrics, nil
}
