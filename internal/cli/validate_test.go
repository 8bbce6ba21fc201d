package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeValidate(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateHarnessScenarios(t *testing.T) {
	out, err := executeValidate(t, "text", harnessScenarios)
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ All 5 scenario file(s) valid")
}

func TestValidateHarnessScenariosJSON(t *testing.T) {
	out, err := executeValidate(t, "json", harnessScenarios)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 5, resp.Data.Files)
}

func TestValidateNonExistentDirectory(t *testing.T) {
	out, err := executeValidate(t, "text", "/nonexistent/directory/path")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "not found")
}

func TestValidateNotADirectory(t *testing.T) {
	path := writeScenarioFile(t, t.TempDir(), "ok.yaml", passingScenario)

	_, err := executeValidate(t, "text", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestValidateEmptyDirectory(t *testing.T) {
	out, err := executeValidate(t, "text", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "no scenario files found")
}

func TestValidateInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "ok.yaml", passingScenario)
	writeScenarioFile(t, dir, "bad.yaml", `name: bad
description: "sum on overflow"
cases:
  - a: 2147483647
    b: 1
    expect: { case: Overflow, sum: 0 }
`)

	out, err := executeValidate(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, ErrCodeSchema)
	assert.Contains(t, out, "bad.yaml")
	assert.NotContains(t, out, "ok.yaml")
}

func TestValidateInvalidScenarioJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: bad\ncases: []\n"), 0644))

	out, err := executeValidate(t, "json", dir)
	require.Error(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
		Error  *CLIError        `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeSchema, resp.Error.Code)
	assert.False(t, resp.Data.Valid)
	require.NotEmpty(t, resp.Data.Errors)
	assert.Equal(t, filepath.Join(dir, "bad.yaml"), resp.Data.Errors[0].File)
}
