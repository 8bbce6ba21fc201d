package harness

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/roach88/adder/internal/ir"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID pins the run ID for deterministic calculation IDs.
	// Defaults to testutil.DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`

	// Properties are checked across all cases after evaluation.
	Properties []string `yaml:"properties,omitempty"`
}

// Case is one addition with its expected outcome.
type Case struct {
	// A and B are nil when the operand is null or missing.
	A *Operand `yaml:"a"`
	B *Operand `yaml:"b"`

	// Kind is the source type of both operands. Empty means int32.
	Kind Kind `yaml:"kind,omitempty"`

	// Description labels the case in failure messages.
	Description string `yaml:"description,omitempty"`

	Expect Expect `yaml:"expect"`
}

// Expect specifies the expected outcome of a case.
type Expect struct {
	// Case is "Sum", "Overflow" or "InvalidInput".
	Case string `yaml:"case"`

	// Sum is required for Sum and forbidden otherwise.
	Sum *int64 `yaml:"sum,omitempty"`
}

// Operand is a numeric YAML literal before conversion to int32.
type Operand struct {
	Int     int64
	Float   float64
	IsFloat bool
	Text    string // literal as written
}

// UnmarshalYAML accepts integer and float scalars only.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a number or null", node.Line)
	}

	o.Text = node.Value
	switch node.ShortTag() {
	case "!!int":
		if err := node.Decode(&o.Int); err != nil {
			return fmt.Errorf("line %d: operand %s: %w", node.Line, node.Value, err)
		}
	case "!!float":
		if err := node.Decode(&o.Float); err != nil {
			return fmt.Errorf("line %d: operand %s: %w", node.Line, node.Value, err)
		}
		o.IsFloat = true
	default:
		return fmt.Errorf("line %d: operand must be a number or null, got %q", node.Line, node.Value)
	}
	return nil
}

// Float64 returns the literal as a float64.
func (o Operand) Float64() float64 {
	if o.IsFloat {
		return o.Float
	}
	return float64(o.Int)
}

// Int returns an integer operand.
func Int(v int64) *Operand {
	return &Operand{Int: v, Text: strconv.FormatInt(v, 10)}
}

// Float returns a floating-point operand.
func Float(v float64) *Operand {
	return &Operand{Float: v, IsFloat: true, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Operands converts the case's literals to int32 operands.
// Absent operands stay nil.
func (c Case) Operands() (a, b *int32, err error) {
	if c.A != nil {
		v, err := c.Kind.ToInt32(*c.A)
		if err != nil {
			return nil, nil, fmt.Errorf("a: %w", err)
		}
		a = &v
	}
	if c.B != nil {
		v, err := c.Kind.ToInt32(*c.B)
		if err != nil {
			return nil, nil, fmt.Errorf("b: %w", err)
		}
		b = &v
	}
	return a, b, nil
}

// Property names.
const (
	PropertyCommutative = "commutative"
	PropertyIdentity    = "identity"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// Validate checks that required fields are present and every case can be
// converted.
func Validate(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
	}

	for i, p := range s.Properties {
		if p != PropertyCommutative && p != PropertyIdentity {
			return fmt.Errorf("properties[%d]: unknown property %q", i, p)
		}
	}

	return nil
}

func validateCase(c Case) error {
	if !c.Kind.Valid() {
		return fmt.Errorf("unknown kind %q: must be one of %v", c.Kind, Kinds)
	}

	if _, _, err := c.Operands(); err != nil {
		return err
	}

	if c.Expect.Case == "" {
		return fmt.Errorf("expect: case is required")
	}
	outputCase, err := ir.ParseOutputCase(c.Expect.Case)
	if err != nil {
		return fmt.Errorf("expect: %w", err)
	}

	switch outputCase {
	case ir.CaseSum:
		if c.Expect.Sum == nil {
			return fmt.Errorf("expect: sum is required for case Sum")
		}
		if *c.Expect.Sum < math.MinInt32 || *c.Expect.Sum > math.MaxInt32 {
			return fmt.Errorf("expect: sum %d is outside int32", *c.Expect.Sum)
		}
	default:
		if c.Expect.Sum != nil {
			return fmt.Errorf("expect: sum is only allowed for case Sum")
		}
	}

	return nil
}
