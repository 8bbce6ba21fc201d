package harness

import (
	"fmt"

	"github.com/roach88/adder/internal/adder"
)

// checkProperty evaluates a named property over the scenario's cases and
// records a failure message per counterexample.
func checkProperty(name string, cases []Case, result *Result) PropertyResult {
	pr := PropertyResult{Name: name, Pass: true}

	for i, c := range cases {
		a, b, err := c.Operands()
		if err != nil {
			// Validate rejects such cases before Run gets here.
			continue
		}

		var failures []string
		switch name {
		case PropertyCommutative:
			if a == nil || b == nil {
				continue
			}
			pr.Checked++
			failures = checkCommutative(*a, *b)
		case PropertyIdentity:
			for _, x := range []*int32{a, b} {
				if x == nil {
					continue
				}
				pr.Checked++
				failures = append(failures, checkIdentity(*x)...)
			}
		}

		for _, f := range failures {
			pr.Pass = false
			result.AddError(fmt.Sprintf("%s: %s: %s", name, caseLabel(i, c), f))
		}
	}

	return pr
}

func checkCommutative(a, b int32) []string {
	ab, errAB := adder.Add(a, b)
	ba, errBA := adder.Add(b, a)

	if adder.IsOverflow(errAB) != adder.IsOverflow(errBA) {
		return []string{fmt.Sprintf("%d + %d and %d + %d disagree on overflow", a, b, b, a)}
	}
	if ab != ba {
		return []string{fmt.Sprintf("%d + %d = %d but %d + %d = %d", a, b, ab, b, a, ba)}
	}
	return nil
}

func checkIdentity(x int32) []string {
	var failures []string
	if sum, err := adder.Add(x, 0); err != nil || sum != x {
		failures = append(failures, fmt.Sprintf("%d + 0 = %d (err %v)", x, sum, err))
	}
	if sum, err := adder.Add(0, x); err != nil || sum != x {
		failures = append(failures, fmt.Sprintf("0 + %d = %d (err %v)", x, sum, err))
	}
	return failures
}
