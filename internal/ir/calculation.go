package ir

// Calculation records one evaluated addition.
//
// A and B are nil when the operand was absent. Sum is set only for CaseSum.
// Exact holds the true mathematical sum whenever both operands are present,
// including on overflow.
type Calculation struct {
	ID         string     `json:"id"`
	RunID      string     `json:"run_id"`
	Seq        int64      `json:"seq"`
	A          *int32     `json:"a,omitempty"`
	B          *int32     `json:"b,omitempty"`
	OutputCase OutputCase `json:"output_case"`
	Sum        *int32     `json:"sum,omitempty"`
	Exact      *int64     `json:"exact,omitempty"`
}

// NewCalculation builds a record for the given operands and evaluation
// result, computing its content-addressed ID.
// err must be nil or an error returned by the adder package.
func NewCalculation(runID string, seq int64, a, b *int32, sum int32, err error) (Calculation, error) {
	outputCase, classifyErr := CaseOf(err)
	if classifyErr != nil {
		return Calculation{}, classifyErr
	}

	id, idErr := CalculationID(runID, seq, a, b)
	if idErr != nil {
		return Calculation{}, idErr
	}

	c := Calculation{
		ID:         id,
		RunID:      runID,
		Seq:        seq,
		A:          a,
		B:          b,
		OutputCase: outputCase,
	}
	if a != nil && b != nil {
		exact := int64(*a) + int64(*b)
		c.Exact = &exact
	}
	if outputCase == CaseSum {
		c.Sum = &sum
	}
	return c, nil
}

// Args returns the operands as a canonical-JSON-ready map.
// Absent operands are omitted.
func (c Calculation) Args() map[string]any {
	args := map[string]any{}
	if c.A != nil {
		args["a"] = int64(*c.A)
	}
	if c.B != nil {
		args["b"] = int64(*c.B)
	}
	return args
}

// Result returns the outcome payload as a canonical-JSON-ready map.
func (c Calculation) Result() map[string]any {
	result := map[string]any{}
	if c.Sum != nil {
		result["sum"] = int64(*c.Sum)
	}
	if c.OutputCase == CaseOverflow && c.Exact != nil {
		result["exact"] = *c.Exact
	}
	return result
}

// Int32 returns a pointer to v.
func Int32(v int32) *int32 {
	return &v
}
