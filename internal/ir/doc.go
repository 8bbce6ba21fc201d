// Package ir provides the shared record types for adder tooling.
//
// This package contains type definitions and their canonical encoding only.
// All other internal packages import ir; ir imports nothing internal
// except the adder core it classifies.
//
// Key design constraints:
//   - Operands are *int32 on records; nil means absent
//   - No float types in canonical JSON
//   - Logical clocks (seq) only, never wall-clock timestamps
//   - All JSON tags use snake_case
package ir
