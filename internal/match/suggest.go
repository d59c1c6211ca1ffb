package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// MinSimilarity is the lowest score Suggest will offer.
const MinSimilarity = 0.5

// Candidate is a known name with its similarity to the query.
type Candidate struct {
	Name  string
	Score float64
}

// Fold lower-cases s and drops everything that is not a letter or digit, so
// "ORDER_LINE_ID", "orderLineId" and "order-line-id" compare equal.
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// Rank scores every known name against name, best first. Ties keep the order
// of known.
func Rank(name string, known []string) []Candidate {
	out := make([]Candidate, 0, len(known))
	for _, k := range known {
		out = append(out, Candidate{Name: k, Score: Similarity(name, k)})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return out
}

// Suggest returns the known name closest to name, if any scores at least
// MinSimilarity. Empty names never match.
func Suggest(name string, known []string) (string, bool) {
	if Fold(name) == "" {
		return "", false
	}

	ranked := Rank(name, known)
	if len(ranked) == 0 || ranked[0].Score < MinSimilarity {
		return "", false
	}

	return ranked[0].Name, true
}

// Hint formats Suggest's result as a message suffix, or "" when nothing is close.
func Hint(name string, known []string) string {
	s, ok := Suggest(name, known)
	if !ok {
		return ""
	}

	return ", did you mean \"" + s + "\"?"
}
