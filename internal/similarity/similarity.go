// Package similarity scores how closely two filings resemble each other on a 0-100 scale.
package similarity

import (
	"context"
	"math"
	"sort"
)

// Method names the technique that produced a score
type Method string

const (
	MethodAI      Method = "ai"
	MethodOverlap Method = "overlap"
)

// Result is a single comparison outcome
type Result struct {
	Score  float64 `json:"score"`
	Method Method  `json:"method"`
}

// Scorer compares two texts
type Scorer interface {
	Score(ctx context.Context, a, b string) (Result, error)
}

// Candidate is one text to compare against the target
type Candidate struct {
	ID   string
	Text string
}

// Match is a scored candidate
type Match struct {
	ID     string  `json:"id"`
	Score  float64 `json:"score"`
	Method Method  `json:"method"`
}

// Rank scores candidates one at a time and returns the best matches first.
// A cancelled context stops the loop and returns what was scored so far.
func Rank(ctx context.Context, scorer Scorer, target string, candidates []Candidate, limit int) ([]Match, error) {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return sortMatches(matches, limit), err
		}
		res, err := scorer.Score(ctx, target, c.Text)
		if err != nil {
			return sortMatches(matches, limit), err
		}
		matches = append(matches, Match{ID: c.ID, Score: res.Score, Method: res.Method})
	}
	return sortMatches(matches, limit), nil
}

func sortMatches(matches []Match, limit int) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
