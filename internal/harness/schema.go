package harness

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// SchemaError is one schema violation in a scenario file.
type SchemaError struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (e SchemaError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", e.File, e.Line, e.Column)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", loc, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", loc, e.Message)
}

// ValidateSchema checks a scenario file against the embedded CUE schema.
// Unlike LoadScenario it reports every violation it finds, with positions.
// The returned error is non-nil only when validation could not run.
func ValidateSchema(path string) ([]SchemaError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ValidateSchemaBytes(path, data)
}

// ValidateSchemaBytes is ValidateSchema for in-memory YAML.
func ValidateSchemaBytes(filename string, data []byte) ([]SchemaError, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile scenario schema: %w", err)
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return toSchemaErrors(filename, err), nil
	}

	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return toSchemaErrors(filename, err), nil
	}

	v := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return toSchemaErrors(filename, err), nil
	}

	return nil, nil
}

// toSchemaErrors flattens a CUE error list, preferring positions inside
// the scenario file over positions inside the schema.
func toSchemaErrors(filename string, err error) []SchemaError {
	var out []SchemaError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		se := SchemaError{
			File:    filename,
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		}
		if pos, ok := positionIn(filename, e); ok {
			se.Line = pos.Line()
			se.Column = pos.Column()
		}
		out = append(out, se)
	}
	if len(out) == 0 {
		out = append(out, SchemaError{File: filename, Message: err.Error()})
	}
	return out
}

func positionIn(filename string, e cueerrors.Error) (token.Pos, bool) {
	candidates := append([]token.Pos{e.Position()}, e.InputPositions()...)
	for _, pos := range candidates {
		if pos.IsValid() && filepath.Clean(pos.Filename()) == filepath.Clean(filename) {
			return pos, true
		}
	}
	return token.NoPos, false
}
