// Package affiliation resolves free-text school answers against the
// controlled school vocabulary.
package affiliation

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Scorer picks the best vocabulary candidate for a query, or reports that no
// candidate clears its confidence threshold. Any edit-distance or
// token-similarity implementation is substitutable.
type Scorer interface {
	BestMatch(query string, candidates []string) (string, bool)
}

// FuzzyScorer scores with github.com/sahilm/fuzzy and rejects top matches
// below MinScore.
type FuzzyScorer struct {
	MinScore int
}

func (s FuzzyScorer) BestMatch(query string, candidates []string) (string, bool) {
	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 || matches[0].Score < s.MinScore {
		return "", false
	}
	return candidates[matches[0].Index], true
}

// Matcher maps free-text affiliation input to a canonical school name.
// Override rules are checked in order before any similarity scoring and win
// unconditionally; they resolve known abbreviations the scorer gets wrong.
type Matcher struct {
	vocabulary []string
	overrides  []Override
	scorer     Scorer
}

// New builds a Matcher over the given vocabulary with the default override
// rules and fuzzy scorer.
func New(vocabulary []string) *Matcher {
	return &Matcher{
		vocabulary: vocabulary,
		overrides:  defaultOverrides,
		scorer:     FuzzyScorer{},
	}
}

// WithScorer replaces the similarity engine. Overrides are unaffected.
func (m *Matcher) WithScorer(s Scorer) *Matcher {
	m.scorer = s
	return m
}

// Match returns the canonical school for the input, or "" when nothing
// matches confidently. It never fails; an unmatched affiliation is resolved
// later as a missing-data highlight.
func (m *Matcher) Match(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	for _, o := range m.overrides {
		if o.matches(q) {
			return o.Target
		}
	}
	if best, ok := m.scorer.BestMatch(query, m.vocabulary); ok {
		return best
	}
	return ""
}
