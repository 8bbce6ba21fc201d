package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// harnessScenarios holds the harness package's passing scenarios.
var harnessScenarios = filepath.Join("..", "harness", "testdata", "scenarios")

const passingScenario = `name: small_sums
description: "two small sums"
run_id: cli-run
cases:
  - a: 1
    b: 2
    expect: { case: Sum, sum: 3 }
  - a: 2147483647
    b: 1
    expect: { case: Overflow }
properties: [commutative]
`

const failingScenario = `name: wrong_sum
description: "expects the wrong sum"
cases:
  - a: 1
    b: 1
    expect: { case: Sum, sum: 3 }
`

func writeScenarioFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
