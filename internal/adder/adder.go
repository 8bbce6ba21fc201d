package adder

import "math"

// Add returns a + b.
//
// The sum is computed exactly in int64. If it does not fit in int32,
// Add returns 0 and an *OverflowError.
func Add(a, b int32) (int32, error) {
	exact := int64(a) + int64(b)
	if exact > math.MaxInt32 || exact < math.MinInt32 {
		return 0, &OverflowError{A: a, B: b, Exact: exact}
	}
	return int32(exact), nil
}

// AddNullable adds two optional operands.
// A nil operand yields an *InvalidInputError naming the first absent operand.
func AddNullable(a, b *int32) (int32, error) {
	if a == nil {
		return 0, &InvalidInputError{Operand: OperandFirst}
	}
	if b == nil {
		return 0, &InvalidInputError{Operand: OperandSecond}
	}
	return Add(*a, *b)
}
