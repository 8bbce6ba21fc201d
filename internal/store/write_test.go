package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adder/internal/ir"
)

func TestWriteCalculation_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		a, b *int32
	}{
		{"sum", ir.Int32(49), ir.Int32(51)},
		{"overflow", ir.Int32(math.MaxInt32), ir.Int32(1)},
		{"first absent", nil, ir.Int32(1)},
		{"second absent", ir.Int32(1), nil},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := evaluate(t, "run-1", int64(i+1), tt.a, tt.b)

			inserted, err := s.WriteCalculation(ctx, want)
			require.NoError(t, err)
			assert.True(t, inserted)

			got, err := s.ReadCalculation(ctx, want.ID)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestWriteCalculation_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := evaluate(t, "run-1", 1, ir.Int32(1), ir.Int32(1))

	inserted, err := s.WriteCalculation(ctx, c)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.WriteCalculation(ctx, c)
	require.NoError(t, err)
	assert.False(t, inserted, "second write of the same ID is a no-op")

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWriteCalculation_RequiresID(t *testing.T) {
	s := createTestStore(t)

	_, err := s.WriteCalculation(context.Background(), ir.Calculation{RunID: "run-1", OutputCase: ir.CaseSum})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
}

func TestWriteCalculation_RejectsSumWithoutValue(t *testing.T) {
	s := createTestStore(t)

	bad := ir.Calculation{ID: "x", RunID: "run-1", Seq: 1, OutputCase: ir.CaseSum}
	_, err := s.WriteCalculation(context.Background(), bad)
	require.Error(t, err, "schema CHECK ties sum to the Sum case")
}

func TestWriteCalculations_Batch(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	batch := []ir.Calculation{
		evaluate(t, "run-1", 1, ir.Int32(0), ir.Int32(1)),
		evaluate(t, "run-1", 2, ir.Int32(-3), ir.Int32(5)),
		evaluate(t, "run-1", 3, ir.Int32(math.MinInt32), ir.Int32(-1)),
	}
	require.NoError(t, s.WriteCalculations(ctx, batch))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, batch, got)
}

func TestWriteCalculations_RollsBackOnError(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	batch := []ir.Calculation{
		evaluate(t, "run-1", 1, ir.Int32(0), ir.Int32(1)),
		{RunID: "run-1", Seq: 2, OutputCase: ir.CaseSum},
	}
	require.Error(t, s.WriteCalculations(ctx, batch))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "failed batch must not leave partial rows")
}
