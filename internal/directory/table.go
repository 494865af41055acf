// Package directory decides where member records land in the roster table and
// merges them in without disturbing user-curated cells.
//
// The placement engine owns positional decisions and the writer owns
// cell-level mutation; neither owns the storage medium, which sits behind the
// Table interface.
package directory

import (
	"context"

	"rosterd/internal/domain"
)

// Validation is a controlled-vocabulary constraint attached verbatim to
// cells. The core never interprets it.
type Validation struct {
	Name    string
	Options []string
}

// Table is the storage surface the engine needs: column snapshots for
// placement, bulk row read/write, per-cell highlight and constraint state,
// and an insert-row-after primitive. Implementations must tolerate
// InsertRowAfter(-1), which inserts at the top of an empty table.
type Table interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	ReadRow(ctx context.Context, row int) ([]string, error)
	WriteRow(ctx context.Context, row int, values []string) error
	SetHighlights(ctx context.Context, row int, cols []int) error
	AttachValidations(ctx context.Context, row int, validations map[int]Validation) error
	InsertRowAfter(ctx context.Context, after int) error
}

// RowKeys are the placement-relevant columns of one existing row.
type RowKeys struct {
	Name   string
	Team   string
	School string
}

// Snapshot is a point-in-time view of the placement columns plus the identity
// index. It is taken once per submission and never refreshed mid-run;
// external callers serialize invocations.
type Snapshot struct {
	Rows  []RowKeys
	index map[string]int
}

// NewSnapshot builds a snapshot and its identity index. Later rows win when a
// display name appears twice, matching the insert-after-last clustering rule.
func NewSnapshot(rows []RowKeys) Snapshot {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		if row.Name != "" {
			index[row.Name] = i
		}
	}
	return Snapshot{Rows: rows, index: index}
}

// Lookup returns the row position of an existing member by display name.
func (s Snapshot) Lookup(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// DefaultValidations binds the team, school, and grade vocabularies to their
// columns.
func DefaultValidations() map[int]Validation {
	return map[int]Validation{
		domain.ColTeam:   {Name: "team", Options: domain.Teams},
		domain.ColSchool: {Name: "school", Options: domain.Schools},
		domain.ColGrade:  {Name: "grade", Options: domain.Grades},
	}
}
