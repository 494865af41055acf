package directory

import (
	"context"
	"fmt"

	"rosterd/internal/domain"
)

// Writer merges canonical records into destination rows. It never overwrites
// a populated cell, highlights cells that remain empty after the merge, and
// attaches the configured validations to their columns on every call.
type Writer struct {
	validations map[int]Validation
}

func NewWriter(validations map[int]Validation) *Writer {
	return &Writer{validations: validations}
}

// Merge performs one bulk read and one bulk write against the target row.
// The write is a single atomic range update, so no rollback is needed.
func (w *Writer) Merge(ctx context.Context, rec domain.Record, row int, tbl Table) error {
	existing, err := tbl.ReadRow(ctx, row)
	if err != nil {
		return fmt.Errorf("read row %d: %w", row, err)
	}

	incoming := rec.Values()
	merged := make([]string, domain.NumColumns)
	var missing []int
	for col := 0; col < domain.NumColumns; col++ {
		val := ""
		if col < len(existing) {
			val = existing[col]
		}
		if val == "" {
			val = incoming[col]
		}
		merged[col] = val
		if val == "" {
			missing = append(missing, col)
		}
	}

	if err := tbl.WriteRow(ctx, row, merged); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	if err := tbl.SetHighlights(ctx, row, missing); err != nil {
		return fmt.Errorf("highlight row %d: %w", row, err)
	}
	if err := tbl.AttachValidations(ctx, row, w.validations); err != nil {
		return fmt.Errorf("attach validations row %d: %w", row, err)
	}
	return nil
}

// Upsert runs the full placement cycle for one record: snapshot, place,
// insert if needed, merge. It returns the placement so callers can report
// whether the record updated an existing row.
func (w *Writer) Upsert(ctx context.Context, rec domain.Record, tbl Table) (Placement, error) {
	snap, err := tbl.Snapshot(ctx)
	if err != nil {
		return Placement{}, fmt.Errorf("snapshot: %w", err)
	}

	placement := Place(rec, snap)
	if placement.Op == OpInsert {
		if err := tbl.InsertRowAfter(ctx, placement.Row-1); err != nil {
			return placement, fmt.Errorf("insert after %d: %w", placement.Row-1, err)
		}
	}
	if err := w.Merge(ctx, rec, placement.Row, tbl); err != nil {
		return placement, err
	}
	return placement, nil
}
