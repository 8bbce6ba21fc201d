package ir

import (
	"fmt"

	"github.com/roach88/adder/internal/adder"
)

// OutputCase names the outcome of one addition.
type OutputCase string

const (
	// CaseSum is a representable sum.
	CaseSum OutputCase = "Sum"

	// CaseOverflow is a sum outside the int32 range.
	CaseOverflow OutputCase = "Overflow"

	// CaseInvalidInput is an absent operand.
	CaseInvalidInput OutputCase = "InvalidInput"
)

// OutputCases lists every known case in display order.
var OutputCases = []OutputCase{CaseSum, CaseOverflow, CaseInvalidInput}

// ParseOutputCase converts a case name to an OutputCase.
func ParseOutputCase(s string) (OutputCase, error) {
	for _, c := range OutputCases {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown output case %q: must be one of %v", s, OutputCases)
}

// CaseOf classifies the error returned by adder.Add or adder.AddNullable.
// Errors from outside the adder package are returned unchanged.
func CaseOf(err error) (OutputCase, error) {
	switch {
	case err == nil:
		return CaseSum, nil
	case adder.IsOverflow(err):
		return CaseOverflow, nil
	case adder.IsInvalidInput(err):
		return CaseInvalidInput, nil
	default:
		return "", err
	}
}
