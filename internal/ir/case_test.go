package ir

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adder/internal/adder"
)

func TestCaseOf(t *testing.T) {
	_, overflow := adder.Add(math.MaxInt32, 1)
	_, invalid := adder.AddNullable(nil, Int32(1))

	tests := []struct {
		name string
		err  error
		want OutputCase
	}{
		{"nil", nil, CaseSum},
		{"overflow", overflow, CaseOverflow},
		{"wrapped overflow", fmt.Errorf("case 1: %w", overflow), CaseOverflow},
		{"invalid input", invalid, CaseInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CaseOf(tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaseOfForeignError(t *testing.T) {
	foreign := errors.New("disk full")
	_, err := CaseOf(foreign)
	assert.Equal(t, foreign, err)
}

func TestParseOutputCase(t *testing.T) {
	for _, c := range OutputCases {
		got, err := ParseOutputCase(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseOutputCase("sum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output case")
}
