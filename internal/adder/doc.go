// Package adder provides checked addition of signed 32-bit integers.
//
// Add computes the exact sum in 64 bits and rejects anything outside the
// int32 range with an *OverflowError. The result is never wrapped.
//
// Callers holding optional operands use AddNullable, which reports a nil
// operand as an *InvalidInputError instead of treating it as zero.
//
// Narrower integer types must be widened by the caller before calling Add:
//
//	var b int8 = -128
//	sum, err := adder.Add(int32(b), -2) // -130
//
// Everything in this package is pure and safe for concurrent use.
package adder
