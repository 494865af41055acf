// Package record assembles raw form answer tuples into canonical member
// records.
package record

import (
	"strings"

	"rosterd/internal/domain"
	"rosterd/pkg/email"
	"rosterd/pkg/text"
)

// Answer tuple positions. Submissions carry seven or eight answers; anything
// past the guardian emails is ignored.
const (
	ansName = iota
	ansEmail
	ansPhone
	ansSchool
	ansTeam
	ansGrade
	ansGuardians

	minAnswers = ansGuardians + 1
)

// SchoolMatcher resolves free-text school answers to the controlled
// vocabulary.
type SchoolMatcher interface {
	Match(query string) string
}

// Builder turns raw answer tuples into canonical records.
type Builder struct {
	schools SchoolMatcher
}

func NewBuilder(schools SchoolMatcher) *Builder {
	return &Builder{schools: schools}
}

// Build normalizes a raw answer tuple into a canonical record. Malformed
// individual fields resolve to empty values; they surface later as
// missing-data highlights, never as errors here.
func (b *Builder) Build(answers []string) domain.Record {
	rec := domain.Record{
		Name:           text.NormalizeName(answer(answers, ansName)),
		Email:          email.Normalize(answer(answers, ansEmail)),
		Phone:          text.NormalizePhone(answer(answers, ansPhone)),
		School:         b.schools.Match(answer(answers, ansSchool)),
		Team:           deriveTeam(answer(answers, ansTeam)),
		Grade:          deriveGrade(answer(answers, ansGrade)),
		GuardianEmails: email.SplitList(answer(answers, ansGuardians)),
	}
	rec.Title = deriveTitle(rec.Team)
	return rec
}

func answer(answers []string, i int) string {
	if i >= len(answers) {
		return ""
	}
	return answers[i]
}

// deriveTeam maps both a blank answer and the "Unsure" sentinel to an empty
// team. An empty team routes the record through the append path of the
// placement engine; contact labeling re-defaults it separately via
// Record.ContactTeam.
func deriveTeam(raw string) string {
	team := strings.TrimSpace(raw)
	if team == "" || team == domain.TeamUnsure {
		return ""
	}
	return team
}

// deriveTitle assigns a role label only for the two teams that double as
// titles.
func deriveTitle(team string) string {
	if team == domain.DefaultTeam || team == domain.TeamChapterHead {
		return team
	}
	return ""
}

func deriveGrade(raw string) string {
	grade := strings.TrimSpace(raw)
	if grade == "" {
		return domain.DefaultGrade
	}
	return grade
}
