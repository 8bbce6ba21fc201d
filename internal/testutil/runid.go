package testutil

// DefaultRunID is used when a scenario does not pin its own run ID.
const DefaultRunID = "test-run-default"

// FixedRunID hands out one run ID forever, so every calculation of a
// scenario lands in the same run and golden traces stay byte-identical.
type FixedRunID string

// NewFixedRunID returns a generator for id, or DefaultRunID when id is empty.
func NewFixedRunID(id string) FixedRunID {
	if id == "" {
		return DefaultRunID
	}
	return FixedRunID(id)
}

// Generate returns the fixed run ID.
func (f FixedRunID) Generate() string {
	return string(f)
}
