package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rosterd/internal/domain"
	"rosterd/pkg/sentinel"
)

// PostgresTable persists the directory in PostgreSQL, keyed by a dense
// position column so insert-after shifts later rows instead of re-sorting.
type PostgresTable struct {
	pool *pgxpool.Pool
}

func NewPostgresTable(pool *pgxpool.Pool) *PostgresTable {
	return &PostgresTable{pool: pool}
}

// Migrate creates the directory table if it does not exist.
func (t *PostgresTable) Migrate(ctx context.Context) error {
	_, err := t.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS directory_rows (
			position    INTEGER NOT NULL,
			name        TEXT NOT NULL DEFAULT '',
			email       TEXT NOT NULL DEFAULT '',
			phone       TEXT NOT NULL DEFAULT '',
			school      TEXT NOT NULL DEFAULT '',
			team        TEXT NOT NULL DEFAULT '',
			title       TEXT NOT NULL DEFAULT '',
			grade       TEXT NOT NULL DEFAULT '',
			guardians   TEXT NOT NULL DEFAULT '',
			highlights  INTEGER[] NOT NULL DEFAULT '{}',
			validations JSONB NOT NULL DEFAULT '{}'
		)`)
	if err != nil {
		return fmt.Errorf("migrate directory_rows: %w", err)
	}
	return nil
}

func (t *PostgresTable) Snapshot(ctx context.Context) (Snapshot, error) {
	rows, err := t.pool.Query(ctx,
		`SELECT name, team, school FROM directory_rows ORDER BY position`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot directory_rows: %w", err)
	}
	defer rows.Close()

	var keys []RowKeys
	for rows.Next() {
		var k RowKeys
		if err := rows.Scan(&k.Name, &k.Team, &k.School); err != nil {
			return Snapshot{}, fmt.Errorf("scan snapshot row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return NewSnapshot(keys), nil
}

func (t *PostgresTable) ReadRow(ctx context.Context, row int) ([]string, error) {
	values := make([]string, domain.NumColumns)
	err := t.pool.QueryRow(ctx, `
		SELECT name, email, phone, school, team, title, grade, guardians
		FROM directory_rows WHERE position = $1`, row).Scan(
		&values[domain.ColName],
		&values[domain.ColEmail],
		&values[domain.ColPhone],
		&values[domain.ColSchool],
		&values[domain.ColTeam],
		&values[domain.ColTitle],
		&values[domain.ColGrade],
		&values[domain.ColGuardians],
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("read row %d: %w", row, err)
	}
	return values, nil
}

func (t *PostgresTable) WriteRow(ctx context.Context, row int, values []string) error {
	padded := make([]string, domain.NumColumns)
	copy(padded, values)
	tag, err := t.pool.Exec(ctx, `
		UPDATE directory_rows
		SET name = $2, email = $3, phone = $4, school = $5,
		    team = $6, title = $7, grade = $8, guardians = $9
		WHERE position = $1`,
		row,
		padded[domain.ColName],
		padded[domain.ColEmail],
		padded[domain.ColPhone],
		padded[domain.ColSchool],
		padded[domain.ColTeam],
		padded[domain.ColTitle],
		padded[domain.ColGrade],
		padded[domain.ColGuardians],
	)
	if err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (t *PostgresTable) SetHighlights(ctx context.Context, row int, cols []int) error {
	marks := make([]int32, len(cols))
	for i, col := range cols {
		marks[i] = int32(col)
	}
	tag, err := t.pool.Exec(ctx,
		`UPDATE directory_rows SET highlights = $2 WHERE position = $1`, row, marks)
	if err != nil {
		return fmt.Errorf("highlight row %d: %w", row, err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (t *PostgresTable) AttachValidations(ctx context.Context, row int, validations map[int]Validation) error {
	encoded, err := json.Marshal(validations)
	if err != nil {
		return fmt.Errorf("encode validations: %w", err)
	}
	tag, err := t.pool.Exec(ctx,
		`UPDATE directory_rows SET validations = $2 WHERE position = $1`, row, encoded)
	if err != nil {
		return fmt.Errorf("attach validations row %d: %w", row, err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// InsertRowAfter shifts every later row down one position and inserts an
// empty row, all inside one transaction.
func (t *PostgresTable) InsertRowAfter(ctx context.Context, after int) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE directory_rows SET position = position + 1 WHERE position > $1`, after); err != nil {
		return fmt.Errorf("shift rows after %d: %w", after, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO directory_rows (position) VALUES ($1)`, after+1); err != nil {
		return fmt.Errorf("insert row at %d: %w", after+1, err)
	}
	return tx.Commit(ctx)
}
