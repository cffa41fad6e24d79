package services

import (
	"context"

	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/store"
)

// StatusCounts is the number of records in each review status
type StatusCounts struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

// Dashboard summarises the review queues
type Dashboard struct {
	Startups StatusCounts            `json:"startups"`
	Papers   StatusCounts            `json:"papers"`
	Filings  map[string]StatusCounts `json:"filings"`
	Funding  StatusCounts            `json:"funding"`
	Users    map[string]int64        `json:"users"`
}

var filingKinds = []models.FilingKind{models.KindPatent, models.KindTrademark, models.KindCopyright, models.KindTradeSecret}

func countStatuses[T any](ctx context.Context, repo store.Repository[T], where store.Where) (StatusCounts, error) {
	var counts StatusCounts
	for _, st := range []models.Status{models.StatusPending, models.StatusAccepted, models.StatusRejected} {
		w := store.Where{"status": st}
		for k, v := range where {
			w[k] = v
		}
		n, err := repo.Count(ctx, w)
		if err != nil {
			return counts, err
		}
		switch st {
		case models.StatusPending:
			counts.Pending = n
		case models.StatusAccepted:
			counts.Accepted = n
		case models.StatusRejected:
			counts.Rejected = n
		}
	}
	return counts, nil
}

// GetDashboard counts records per collection and status, and users per role
func GetDashboard(ctx context.Context, s *store.Store) (*Dashboard, error) {
	var (
		d   = &Dashboard{Filings: map[string]StatusCounts{}, Users: map[string]int64{}}
		err error
	)
	if d.Startups, err = countStatuses(ctx, s.Startups, nil); err != nil {
		return nil, err
	}
	if d.Papers, err = countStatuses(ctx, s.Papers, nil); err != nil {
		return nil, err
	}
	if d.Funding, err = countStatuses(ctx, s.Funding, nil); err != nil {
		return nil, err
	}
	for _, kind := range filingKinds {
		counts, err := countStatuses(ctx, s.Filings, store.Where{"kind": kind})
		if err != nil {
			return nil, err
		}
		d.Filings[string(kind)] = counts
	}
	for _, role := range []models.Role{models.RoleStartup, models.RoleResearcher, models.RoleFundingAgency, models.RoleIPProfessional, models.RoleAdmin} {
		n, err := s.Users.Count(ctx, store.Where{"role": role})
		if err != nil {
			return nil, err
		}
		d.Users[string(role)] = n
	}
	return d, nil
}
