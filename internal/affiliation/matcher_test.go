package affiliation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rosterd/internal/domain"
)

func TestMatchOverridesWinUnconditionally(t *testing.T) {
	m := New(domain.Schools)

	// Any input containing "mitty" maps to the override target regardless of
	// how similarity scoring would rank it.
	assert.Equal(t, "Archbishop Mitty High School", m.Match("mitty"))
	assert.Equal(t, "Archbishop Mitty High School", m.Match("Archbishop MITTY hs"))
	assert.Equal(t, "Archbishop Mitty High School", m.Match("i go to mitty now"))
}

func TestMatchExactOverrides(t *testing.T) {
	m := New(domain.Schools)

	assert.Equal(t, "Mission San Jose High School", m.Match("MSJ"))
	assert.Equal(t, "Mission San Jose High School", m.Match("  msj "))
	// Exact rules do not fire on containment.
	assert.NotEqual(t, "Bellarmine College Preparatory", m.Match("bcp something else"))
}

func TestMatchFuzzy(t *testing.T) {
	m := New(domain.Schools)

	assert.Equal(t, "Lynbrook High School", m.Match("Lynbrook"))
	assert.Equal(t, "Monta Vista High School", m.Match("monta vista"))
}

func TestMatchNoConfidentCandidate(t *testing.T) {
	m := New(domain.Schools)

	assert.Equal(t, "", m.Match("qqq"))
	assert.Equal(t, "", m.Match(""))
	assert.Equal(t, "", m.Match("   "))
}

func TestFuzzyScorerThreshold(t *testing.T) {
	candidates := []string{"Lynbrook High School"}

	best, ok := FuzzyScorer{}.BestMatch("lhs", candidates)
	assert.True(t, ok, "zero threshold admits any scored match")
	assert.Equal(t, "Lynbrook High School", best)

	_, ok = FuzzyScorer{MinScore: 10000}.BestMatch("lhs", candidates)
	assert.False(t, ok, "a high threshold rejects the same match")
}

type stubScorer struct {
	result string
	ok     bool
}

func (s stubScorer) BestMatch(string, []string) (string, bool) { return s.result, s.ok }

func TestMatchPluggableScorer(t *testing.T) {
	m := New(domain.Schools).WithScorer(stubScorer{result: "Leland High School", ok: true})
	assert.Equal(t, "Leland High School", m.Match("anything"))

	// Overrides still take precedence over the scorer.
	assert.Equal(t, "Archbishop Mitty High School", m.Match("mitty"))

	m = New(domain.Schools).WithScorer(stubScorer{ok: false})
	assert.Equal(t, "", m.Match("anything"))
}
