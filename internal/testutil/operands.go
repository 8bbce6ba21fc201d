package testutil

import "math"

// BoundaryOperands covers zero, small magnitudes, the widths of the
// narrower integer types and both ends of the int32 range.
var BoundaryOperands = []int32{
	math.MinInt32,
	math.MinInt32 + 1,
	-2000000000,
	math.MinInt16 - 1,
	math.MinInt16,
	math.MinInt8,
	-1,
	0,
	1,
	math.MaxInt8,
	math.MaxInt16,
	math.MaxUint16,
	1 << 30,
	2000000000,
	math.MaxInt32 - 1,
	math.MaxInt32,
}

// OperandPairs returns every ordered pair drawn from ops.
func OperandPairs(ops []int32) [][2]int32 {
	pairs := make([][2]int32, 0, len(ops)*len(ops))
	for _, a := range ops {
		for _, b := range ops {
			pairs = append(pairs, [2]int32{a, b})
		}
	}
	return pairs
}

// FitsInt32 reports whether the exact sum of a and b is representable.
func FitsInt32(a, b int32) bool {
	exact := int64(a) + int64(b)
	return exact >= math.MinInt32 && exact <= math.MaxInt32
}
