package ir

// Version constants for records and tooling.
const (
	// RecordVersion is the calculation record schema version.
	RecordVersion = "1"

	// ToolVersion is the adder tooling version.
	ToolVersion = "0.1.0"
)
