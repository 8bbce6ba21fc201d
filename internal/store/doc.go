// Package store provides a SQLite-backed ledger of evaluated additions.
//
// The ledger is append-only: every calculation is written once under its
// content-addressed ID (see ir.CalculationID) and never updated.
//
// # Ordering
//
// All ordering uses the logical seq column, never wall time. Every query
// ends with ORDER BY seq ASC, id ASC COLLATE BINARY so reads are identical
// across replays.
//
// # Absent operands
//
// Columns a and b are NULL when the operand was absent. sum is NULL unless
// the case is Sum; exact is NULL unless both operands were present.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
