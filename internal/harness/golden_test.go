package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario files under testdata/scenarios have a golden transcript under
// testdata/golden with the same base name. Regenerate with:
//
//	go test ./internal/harness -run TestRunWithGolden -update
func TestRunWithGolden_Scenarios(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		scenario, err := LoadScenario(file)
		require.NoError(t, err, file)

		t.Run(scenario.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestAssertGolden_FromResult(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "gcd_basic.yaml"))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	require.NoError(t, AssertGolden(t, scenario, result))
}

func TestSnapshot_Format(t *testing.T) {
	scenario := &Scenario{Name: "sum_one", Program: "sum"}
	result := NewResult()
	result.AddTrace(EventInput, "1", 1)
	result.AddTrace(EventOutput, "Sum of 1 numbers: 1.0", 2)

	data, err := Snapshot(scenario, result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"run_id":"test-run-default","scenario_name":"sum_one","trace":[{"seq":1,"text":"1","type":"input"},{"seq":2,"text":"Sum of 1 numbers: 1.0","type":"output"}]}`,
		string(data))
}
