package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/adder/internal/ir"
)

// WriteCalculation appends a calculation to the ledger.
// Uses ON CONFLICT(id) DO NOTHING, so rewriting the same calculation is a
// no-op. Returns whether a new row was inserted.
func (s *Store) WriteCalculation(ctx context.Context, c ir.Calculation) (bool, error) {
	if c.ID == "" {
		return false, fmt.Errorf("write calculation: id is required")
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations
		(id, run_id, seq, a, b, output_case, sum, exact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		c.ID,
		c.RunID,
		c.Seq,
		nullInt32(c.A),
		nullInt32(c.B),
		string(c.OutputCase),
		nullInt32(c.Sum),
		nullInt64(c.Exact),
	)
	if err != nil {
		return false, fmt.Errorf("write calculation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write calculation: rows affected: %w", err)
	}
	return n > 0, nil
}

// WriteCalculations appends a batch atomically.
func (s *Store) WriteCalculations(ctx context.Context, cs []ir.Calculation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write calculations: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO calculations
		(id, run_id, seq, a, b, output_case, sum, exact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("write calculations: prepare: %w", err)
	}
	defer stmt.Close()

	for i, c := range cs {
		if c.ID == "" {
			return fmt.Errorf("write calculations: [%d]: id is required", i)
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.RunID, c.Seq,
			nullInt32(c.A), nullInt32(c.B),
			string(c.OutputCase),
			nullInt32(c.Sum), nullInt64(c.Exact),
		); err != nil {
			return fmt.Errorf("write calculations: [%d]: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write calculations: commit: %w", err)
	}
	return nil
}

func nullInt32(v *int32) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *v, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
