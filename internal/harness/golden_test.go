package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Literals(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/literals.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRunWithGolden_Overflow(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/overflow.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRunWithGolden_Absent(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/absent.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestSnapshot_Format(t *testing.T) {
	scenario := &Scenario{
		Name:        "snapshot",
		Description: "snapshot format",
		RunID:       "run-snap",
		Cases: []Case{
			{A: Int(10), B: Int(20), Kind: KindInt8, Expect: sum(30)},
			{A: nil, B: Int(1), Expect: Expect{Case: "InvalidInput"}},
		},
	}
	result, err := Run(context.Background(), scenario)
	require.NoError(t, err)

	data, err := Snapshot(scenario.Name, result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"run_id":"run-snap","scenario_name":"snapshot","trace":[`+
			`{"args":{"a":10,"b":20},"kind":"int8","seq":1,"type":"invocation"},`+
			`{"output_case":"Sum","result":{"sum":30},"seq":2,"type":"completion"},`+
			`{"args":{"b":1},"kind":"int32","seq":3,"type":"invocation"},`+
			`{"output_case":"InvalidInput","seq":4,"type":"completion"}]}`,
		string(data))

	again, err := Snapshot(scenario.Name, result)
	require.NoError(t, err)
	assert.Equal(t, data, again, "snapshots must be deterministic")
}
