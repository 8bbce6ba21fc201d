package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainCalculation is the domain prefix for calculation IDs.
// The version suffix leaves room for algorithm migration.
const DomainCalculation = "adder/calculation/v" + RecordVersion

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CalculationID computes the content-addressed ID of a calculation.
// The ID depends only on the run, the logical seq and the operands, so
// replaying a run yields identical IDs. Absent operands are omitted from
// the hashed object, which keeps them distinct from zero.
func CalculationID(runID string, seq int64, a, b *int32) (string, error) {
	args := map[string]any{}
	if a != nil {
		args["a"] = int64(*a)
	}
	if b != nil {
		args["b"] = int64(*b)
	}

	canonical, err := MarshalCanonical(map[string]any{
		"run_id": runID,
		"seq":    seq,
		"args":   args,
	})
	if err != nil {
		return "", fmt.Errorf("CalculationID: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainCalculation, canonical), nil
}

// MustCalculationID is like CalculationID but panics on error.
// For tests and literal inputs only.
func MustCalculationID(runID string, seq int64, a, b *int32) string {
	id, err := CalculationID(runID, seq, a, b)
	if err != nil {
		panic(err)
	}
	return id
}
