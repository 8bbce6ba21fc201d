package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adder/internal/ir"
)

func seedLedger(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	// Written out of seq order on purpose.
	calcs := []ir.Calculation{
		evaluate(t, "run-b", 2, ir.Int32(math.MaxInt32), ir.Int32(1)),
		evaluate(t, "run-a", 3, ir.Int32(5), ir.Int32(-7)),
		evaluate(t, "run-a", 1, ir.Int32(0), ir.Int32(1)),
		evaluate(t, "run-b", 1, nil, ir.Int32(1)),
		evaluate(t, "run-a", 2, ir.Int32(math.MinInt32), ir.Int32(-1)),
	}
	for _, c := range calcs {
		_, err := s.WriteCalculation(ctx, c)
		require.NoError(t, err)
	}
}

func TestReadRun_OrderedBySeq(t *testing.T) {
	s := createTestStore(t)
	seedLedger(t, s)

	got, err := s.ReadRun(context.Background(), "run-a")
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, c := range got {
		assert.Equal(t, "run-a", c.RunID)
		assert.Equal(t, int64(i+1), c.Seq)
	}
	assert.Equal(t, ir.CaseSum, got[0].OutputCase)
	assert.Equal(t, ir.CaseOverflow, got[1].OutputCase)
	assert.Equal(t, int32(-2), *got[2].Sum)
}

func TestReadRun_Unknown(t *testing.T) {
	s := createTestStore(t)

	got, err := s.ReadRun(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadCalculations_Filter(t *testing.T) {
	s := createTestStore(t)
	seedLedger(t, s)
	ctx := context.Background()

	all, err := s.ReadCalculations(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Seq, all[i].Seq)
	}

	overflows, err := s.ReadCalculations(ctx, Filter{OutputCase: ir.CaseOverflow})
	require.NoError(t, err)
	assert.Len(t, overflows, 2)

	invalid, err := s.ReadCalculations(ctx, Filter{RunID: "run-b", OutputCase: ir.CaseInvalidInput})
	require.NoError(t, err)
	require.Len(t, invalid, 1)
	assert.Nil(t, invalid[0].A)

	limited, err := s.ReadCalculations(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestReadCalculation_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadCalculation(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
