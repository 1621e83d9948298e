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

const passingGCDScenario = `name: gcd_ok
description: "Two integers"
program: gcd
input: ["12", "18"]
run_id: run-gcd-ok
expect:
  output: "GCD(12, 18) = 6"
`

const failingSumScenario = `name: sum_wrong
description: "Expects the wrong total"
program: sum
input: ["1 2 3"]
expect:
  output: "Sum of 3 numbers: 7.0"
`

func writeScenario(t *testing.T, dir, file, content string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runTestCommand(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewTestCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := runTestCommand(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	_, err := runTestCommand(t, "text", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandEmptyScenariosDir(t *testing.T) {
	buf, err := runTestCommand(t, "text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No scenarios found")
}

func TestTestCommandEmptyScenariosDirJSON(t *testing.T) {
	buf, err := runTestCommand(t, "json", t.TempDir())
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
}

func TestTestCommandPassingScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_ok.yaml", passingGCDScenario)

	buf, err := runTestCommand(t, "text", dir)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓ gcd_ok")
	assert.Contains(t, output, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.Contains(t, output, "✓ All scenarios passed")
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_ok.yaml", passingGCDScenario)
	writeScenario(t, dir, "sum_wrong.yaml", failingSumScenario)

	buf, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	output := buf.String()
	assert.Contains(t, output, "✗ sum_wrong")
	assert.Contains(t, output, `expect.output: expected "Sum of 3 numbers: 7.0", got "Sum of 3 numbers: 6.0"`)
	assert.Contains(t, output, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommandInvalidScenarioFile(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "broken.yaml", "name: broken\nprogram: gcd\n")

	buf, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ broken.yaml")
	assert.Contains(t, buf.String(), "failed to load scenario")
}

func TestTestCommandJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_ok.yaml", passingGCDScenario)
	writeScenario(t, dir, "sum_wrong.yaml", failingSumScenario)

	buf, err := runTestCommand(t, "json", dir)
	require.Error(t, err)

	var response struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, 1, response.Data.Passed)
	assert.Equal(t, 1, response.Data.Failed)
	assert.Equal(t, 2, response.Data.Total)
	require.NotNil(t, response.Error)
	assert.Equal(t, ErrCodeTestFailed, response.Error.Code)

	require.Len(t, response.Data.Scenarios, 2)
	assert.Equal(t, "gcd_ok", response.Data.Scenarios[0].Name)
	assert.True(t, response.Data.Scenarios[0].Pass)
	assert.Equal(t, "sum_wrong", response.Data.Scenarios[1].Name)
	assert.False(t, response.Data.Scenarios[1].Pass)
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_ok.yaml", passingGCDScenario)
	writeScenario(t, dir, "sum_wrong.yaml", failingSumScenario)

	buf, err := runTestCommand(t, "text", dir, "--filter", "gcd_*")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Test Summary: 1 passed, 0 failed, 1 total")
	assert.NotContains(t, buf.String(), "sum_wrong")
}

func TestTestCommandUpdateWritesGolden(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_ok.yaml", passingGCDScenario)

	buf, err := runTestCommand(t, "text", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ gcd_ok (golden updated)")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "gcd_ok.golden"))
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"run_id":"run-gcd-ok"`)
	assert.Contains(t, string(golden), `"text":"GCD(12, 18) = 6","type":"output"`)

	// A second run compares against the file just written.
	buf, err = runTestCommand(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ gcd_ok")
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_ok.yaml", passingGCDScenario)
	writeScenario(t, dir, filepath.Join("golden", "gcd_ok.golden"), `{"stale":true}`)

	buf, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ gcd_ok")
	assert.Contains(t, buf.String(), "does not match golden file")
}

func TestTestHelpText(t *testing.T) {
	buf, err := runTestCommand(t, "text", "--help")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "--update")
	assert.Contains(t, output, "--filter")
	assert.Contains(t, output, "scenarios-dir")
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "b.yaml", "")
	writeScenario(t, dir, "a.yml", "")
	writeScenario(t, dir, "notes.txt", "")

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}, files)
}

func TestFindScenarioFilesWithFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "gcd_one.yaml", "")
	writeScenario(t, dir, "sum_one.yaml", "")

	files, err := findScenarioFiles(dir, "sum_*")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "sum_one.yaml")}, files)

	_, err = findScenarioFiles(dir, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestFindScenarioFilesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, filepath.Join("nested", "deep.yaml"), "")

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "nested", "deep.yaml")}, files)
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("scenarios", "golden", "gcd_basic.golden"),
		goldenFilePath(filepath.Join("scenarios", "gcd_basic.yaml")))
}

func TestExampleScenarios(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "scenarios")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Skip("examples/scenarios directory not found")
	}

	buf, err := runTestCommand(t, "text", dir)
	require.NoError(t, err, buf.String())
	assert.Contains(t, buf.String(), "✓ All scenarios passed")
}
