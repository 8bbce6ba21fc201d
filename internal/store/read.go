package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/adder/internal/ir"
)

// ErrNotFound is returned when a calculation ID is not in the ledger.
var ErrNotFound = errors.New("calculation not found")

// Filter narrows ReadCalculations. Zero values match everything.
type Filter struct {
	RunID      string
	OutputCase ir.OutputCase
	Limit      int
}

const selectCalculations = `
	SELECT id, run_id, seq, a, b, output_case, sum, exact
	FROM calculations`

// ReadCalculation returns the calculation with the given ID.
func (s *Store) ReadCalculation(ctx context.Context, id string) (ir.Calculation, error) {
	row := s.db.QueryRowContext(ctx, selectCalculations+` WHERE id = ?`, id)
	c, err := scanCalculation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Calculation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return ir.Calculation{}, fmt.Errorf("read calculation: %w", err)
	}
	return c, nil
}

// ReadRun returns every calculation of a run in seq order.
func (s *Store) ReadRun(ctx context.Context, runID string) ([]ir.Calculation, error) {
	return s.ReadCalculations(ctx, Filter{RunID: runID})
}

// ReadCalculations returns matching calculations ordered by
// seq ASC, id ASC COLLATE BINARY.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) ReadCalculations(ctx context.Context, f Filter) ([]ir.Calculation, error) {
	var (
		where []string
		args  []any
	)
	if f.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, f.RunID)
	}
	if f.OutputCase != "" {
		where = append(where, "output_case = ?")
		args = append(args, string(f.OutputCase))
	}

	query := selectCalculations
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq ASC, id COLLATE BINARY ASC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	calculations := []ir.Calculation{}
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calculations = append(calculations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}

	return calculations, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(sc scanner) (ir.Calculation, error) {
	var (
		c          ir.Calculation
		a, b, sum  sql.NullInt32
		exact      sql.NullInt64
		outputCase string
	)
	if err := sc.Scan(&c.ID, &c.RunID, &c.Seq, &a, &b, &outputCase, &sum, &exact); err != nil {
		return ir.Calculation{}, err
	}

	parsed, err := ir.ParseOutputCase(outputCase)
	if err != nil {
		return ir.Calculation{}, fmt.Errorf("scan calculation %s: %w", c.ID, err)
	}
	c.OutputCase = parsed

	if a.Valid {
		c.A = ir.Int32(a.Int32)
	}
	if b.Valid {
		c.B = ir.Int32(b.Int32)
	}
	if sum.Valid {
		c.Sum = ir.Int32(sum.Int32)
	}
	if exact.Valid {
		v := exact.Int64
		c.Exact = &v
	}
	return c, nil
}
