// Package domain holds the canonical member record and the fixed shape of the
// directory table.
package domain

import "strings"

// Record is the canonical member record produced by the record builder.
// Invariants: Name is ASCII-only and title-cased; Email is lowercased and
// trimmed; Phone is empty or exactly ddd-ddd-dddd; School is empty or a member
// of the school vocabulary; Team never holds the raw "Unsure" sentinel (it is
// empty instead); Grade defaults to DefaultGrade.
type Record struct {
	Name           string
	Email          string
	Phone          string
	School         string
	Team           string
	Title          string
	Grade          string
	GuardianEmails []string
}

// ContactTeam returns the team used for contact-store labeling. A member who
// answered "Unsure" keeps an empty Team for directory placement but is labeled
// DefaultTeam in the contact store. These two derivations are intentionally
// separate; unifying them changes observable grouping behavior.
func (r Record) ContactTeam() string {
	if r.Team == "" {
		return DefaultTeam
	}
	return r.Team
}

// Values returns the record's fields aligned to the directory column order.
func (r Record) Values() []string {
	return []string{
		ColName:      r.Name,
		ColEmail:     r.Email,
		ColPhone:     r.Phone,
		ColSchool:    r.School,
		ColTeam:      r.Team,
		ColTitle:     r.Title,
		ColGrade:     r.Grade,
		ColGuardians: strings.Join(r.GuardianEmails, ", "),
	}
}

// Directory column indices. Rows are grouped primarily by team and secondarily
// by school.
const (
	ColName = iota
	ColEmail
	ColPhone
	ColSchool
	ColTeam
	ColTitle
	ColGrade
	ColGuardians

	NumColumns
)
