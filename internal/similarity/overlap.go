package similarity

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an and are as at be been but by can for from has have in into is it its
		of on or our shall so such than that the their them then there these this those to was were
		which will with within without`) {
		stopWords[w] = struct{}{}
	}
}

// Tokens returns the distinct lower-cased words of text.
// Words are runs of letters or digits; single characters and stop words are dropped.
func Tokens(text string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// OverlapScore is the Jaccard index of the two word sets scaled to 0-100
func OverlapScore(a, b string) float64 {
	ta, tb := Tokens(a), Tokens(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 0
	}

	shared := 0
	for w := range ta {
		if _, ok := tb[w]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return round2(100 * float64(shared) / float64(union))
}

// OverlapScorer scores with OverlapScore only
type OverlapScorer struct{}

// Score implements Scorer
func (OverlapScorer) Score(_ context.Context, a, b string) (Result, error) {
	return Result{Score: OverlapScore(a, b), Method: MethodOverlap}, nil
}
