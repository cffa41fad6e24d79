package similarity

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FallbackScorer paces calls to a primary scorer and falls back to word overlap when it fails
type FallbackScorer struct {
	Primary Scorer
	Limiter *rate.Limiter
}

// NewFallbackScorer paces the primary scorer to one call per interval.
// A nil primary always scores by overlap.
func NewFallbackScorer(primary Scorer, interval time.Duration) *FallbackScorer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &FallbackScorer{
		Primary: primary,
		Limiter: rate.NewLimiter(limit, 1),
	}
}

// Score implements Scorer. It only returns an error when ctx is done.
func (s *FallbackScorer) Score(ctx context.Context, a, b string) (Result, error) {
	if s.Primary == nil {
		return Result{Score: OverlapScore(a, b), Method: MethodOverlap}, nil
	}

	if err := s.Limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		// burst exceeded or deadline too near to wait; score locally
		return Result{Score: OverlapScore(a, b), Method: MethodOverlap}, nil
	}

	res, err := s.Primary.Score(ctx, a, b)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		zap.L().Warn("similarity primary failed, using overlap", zap.Error(err))
		return Result{Score: OverlapScore(a, b), Method: MethodOverlap}, nil
	}
	return res, nil
}
