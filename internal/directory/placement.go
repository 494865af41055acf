package directory

import "rosterd/internal/domain"

// Op distinguishes updating an existing row from inserting a new one.
type Op int

const (
	OpUpdate Op = iota
	OpInsert
)

// Placement is the engine's decision for one record. Row is the index the
// record will occupy: the existing row for updates, or the index the new row
// takes after insertion (so the insert happens after Row-1).
type Placement struct {
	Op  Op
	Row int
}

// Place decides where a record lands relative to the snapshot.
//
//  1. A record whose name already exists is an update of that row.
//  2. A record with no team appends past the last occupied row.
//  3. Otherwise one linear scan finds the last row sharing the team and,
//     among those, the last row also sharing the school. The record is
//     inserted immediately after the school match if any, else after the team
//     match, else at the end.
//
// This keeps rows clustered by team then school without a global sort,
// assuming prior insertions maintained the same order. Ties on both keys
// resolve to the last matching row so clusters stay contiguous.
func Place(rec domain.Record, snap Snapshot) Placement {
	if row, ok := snap.Lookup(rec.Name); ok {
		return Placement{Op: OpUpdate, Row: row}
	}

	end := len(snap.Rows)
	if rec.Team == "" {
		return Placement{Op: OpInsert, Row: end}
	}

	lastTeam, lastBoth := -1, -1
	for i, row := range snap.Rows {
		if row.Team != rec.Team {
			continue
		}
		lastTeam = i
		if row.School == rec.School {
			lastBoth = i
		}
	}

	switch {
	case lastBoth >= 0:
		return Placement{Op: OpInsert, Row: lastBoth + 1}
	case lastTeam >= 0:
		return Placement{Op: OpInsert, Row: lastTeam + 1}
	default:
		return Placement{Op: OpInsert, Row: end}
	}
}
