package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/adder/internal/adder"
	"github.com/roach88/adder/internal/ir"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// evaluate runs a nullable addition and wraps it as a calculation.
func evaluate(t *testing.T, runID string, seq int64, a, b *int32) ir.Calculation {
	t.Helper()
	sum, err := adder.AddNullable(a, b)
	c, cerr := ir.NewCalculation(runID, seq, a, b, sum, err)
	if cerr != nil {
		t.Fatalf("NewCalculation() failed: %v", cerr)
	}
	return c
}
