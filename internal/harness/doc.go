// Package harness runs conformance scenarios against the checked adder.
//
// A scenario plays the caller of adder.Add: it declares operands in some
// source type, converts them to int32 the way a caller would, evaluates the
// addition and checks the outcome.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: widening_conversions
//	description: "narrow types are widened before addition"
//	run_id: test-run-001
//	cases:
//	  - a: 10
//	    b: 20
//	    kind: int8
//	    expect: { case: Sum, sum: 30 }
//	  - a: null
//	    b: 1
//	    expect: { case: InvalidInput }
//	properties: [commutative, identity]
//
// # Operand Kinds
//
//   - int8, int16, uint16: the literal must fit the declared type and is
//     widened to int32
//   - int32 (default): the literal must fit int32
//   - int64: the literal must fit int64 and is narrowed with a two's
//     complement cast
//   - float32, float64: the literal is truncated toward zero and must then
//     fit int32
//
// A null or missing operand is absent and routes the case through
// adder.AddNullable, which must report InvalidInput.
//
// # Properties
//
//   - commutative: every case with both operands present yields the same
//     outcome with its operands swapped
//   - identity: every present operand x satisfies x + 0 == 0 + x == x
//
// # Deterministic Testing
//
// Every run uses a fixed run ID (the scenario's run_id or
// testutil.DefaultRunID) and a deterministic logical clock, so traces and
// calculation IDs are byte-identical across runs. Golden traces are
// compared with RunWithGolden.
package harness
