package affiliation

import "strings"

// MatchKind selects how an override pattern is compared against the
// lowercased, trimmed query.
type MatchKind int

const (
	// MatchExact requires the whole query to equal the pattern.
	MatchExact MatchKind = iota
	// MatchContains requires the query to contain the pattern.
	MatchContains
)

// Override is a hard-coded mapping checked before similarity scoring.
type Override struct {
	Pattern string
	Kind    MatchKind
	Target  string
}

func (o Override) matches(q string) bool {
	switch o.Kind {
	case MatchExact:
		return q == o.Pattern
	case MatchContains:
		return strings.Contains(q, o.Pattern)
	default:
		return false
	}
}

// defaultOverrides resolves abbreviations and nicknames that similarity
// scoring ranks wrong. Each rule keeps its historical match kind: the
// stricter exact rules exist because their patterns are short enough to
// appear inside unrelated answers.
var defaultOverrides = []Override{
	{Pattern: "mitty", Kind: MatchContains, Target: "Archbishop Mitty High School"},
	{Pattern: "msj", Kind: MatchExact, Target: "Mission San Jose High School"},
	{Pattern: "harker", Kind: MatchContains, Target: "The Harker School"},
	{Pattern: "bcp", Kind: MatchExact, Target: "Bellarmine College Preparatory"},
	{Pattern: "st francis", Kind: MatchContains, Target: "Saint Francis High School"},
}
