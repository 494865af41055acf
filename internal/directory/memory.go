package directory

import (
	"context"
	"sync"

	"rosterd/internal/domain"
	"rosterd/pkg/sentinel"
)

// MemoryTable is an in-memory Table. It backs unit tests and deployments that
// have no external storage attached, favoring clarity over performance.
type MemoryTable struct {
	mu          sync.RWMutex
	rows        [][]string
	highlights  []map[int]bool
	validations []map[int]Validation
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{}
}

func (t *MemoryTable) Snapshot(_ context.Context) (Snapshot, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]RowKeys, len(t.rows))
	for i, row := range t.rows {
		keys[i] = RowKeys{
			Name:   row[domain.ColName],
			Team:   row[domain.ColTeam],
			School: row[domain.ColSchool],
		}
	}
	return NewSnapshot(keys), nil
}

func (t *MemoryTable) ReadRow(_ context.Context, row int) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if row < 0 || row >= len(t.rows) {
		return nil, sentinel.ErrNotFound
	}
	out := make([]string, len(t.rows[row]))
	copy(out, t.rows[row])
	return out, nil
}

func (t *MemoryTable) WriteRow(_ context.Context, row int, values []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if row < 0 || row >= len(t.rows) {
		return sentinel.ErrNotFound
	}
	stored := make([]string, domain.NumColumns)
	copy(stored, values)
	t.rows[row] = stored
	return nil
}

func (t *MemoryTable) SetHighlights(_ context.Context, row int, cols []int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if row < 0 || row >= len(t.rows) {
		return sentinel.ErrNotFound
	}
	marks := make(map[int]bool, len(cols))
	for _, col := range cols {
		marks[col] = true
	}
	t.highlights[row] = marks
	return nil
}

func (t *MemoryTable) AttachValidations(_ context.Context, row int, validations map[int]Validation) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if row < 0 || row >= len(t.rows) {
		return sentinel.ErrNotFound
	}
	attached := make(map[int]Validation, len(validations))
	for col, v := range validations {
		attached[col] = v
	}
	t.validations[row] = attached
	return nil
}

func (t *MemoryTable) InsertRowAfter(_ context.Context, after int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if after < -1 || after >= len(t.rows) {
		return sentinel.ErrNotFound
	}
	at := after + 1
	t.rows = insertAt(t.rows, at, make([]string, domain.NumColumns))
	t.highlights = insertAt(t.highlights, at, nil)
	t.validations = insertAt(t.validations, at, nil)
	return nil
}

// Len reports the number of data rows.
func (t *MemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Highlighted reports whether a cell carries the missing-data marker.
func (t *MemoryTable) Highlighted(row, col int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if row < 0 || row >= len(t.highlights) {
		return false
	}
	return t.highlights[row][col]
}

// ValidationAt returns the constraint attached to a cell, if any.
func (t *MemoryTable) ValidationAt(row, col int) (Validation, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if row < 0 || row >= len(t.validations) {
		return Validation{}, false
	}
	v, ok := t.validations[row][col]
	return v, ok
}

func insertAt[T any](s []T, at int, v T) []T {
	s = append(s, v)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}
