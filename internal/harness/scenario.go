package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRunID is used for scenarios that do not pin a run id.
const DefaultRunID = "test-run-default"

// Scenario is a scripted run of one console program.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// Program is the registered program name ("gcd" or "sum").
	Program string `yaml:"program"`

	// Input holds the console lines, in the order they are asked for.
	Input []string `yaml:"input"`

	// RunID is the run id recorded in the snapshot.
	// Empty means DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	Expect Expectation `yaml:"expect"`
}

// Expectation describes how the run must end.
type Expectation struct {
	// Output is the exact result line.
	Output string `yaml:"output,omitempty"`

	// Error is a substring of the error that ends the run.
	Error string `yaml:"error,omitempty"`
}

// EffectiveRunID returns the run id the scenario executes with.
func (s *Scenario) EffectiveRunID() string {
	if s.RunID == "" {
		return DefaultRunID
	}
	return s.RunID
}

// LoadScenario reads, decodes and validates a scenario file.
// Unknown YAML fields are rejected so typos ("expected:" vs "expect:")
// surface as load errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks the scenario against the CUE schema and then the
// rules the schema does not express.
func validateScenario(s *Scenario) error {
	if err := checkSchema(s); err != nil {
		return err
	}

	if s.Expect.Output == "" && s.Expect.Error == "" {
		return fmt.Errorf("expect: one of output or error is required")
	}
	if s.Expect.Output != "" && s.Expect.Error != "" {
		return fmt.Errorf("expect: output and error are mutually exclusive")
	}

	return nil
}

// toCUEMap converts the scenario into plain values for schema unification.
// Unset optional fields are left out so the schema sees them as absent.
func (s *Scenario) toCUEMap() map[string]any {
	input := make([]any, len(s.Input))
	for i, line := range s.Input {
		input[i] = line
	}

	expect := map[string]any{}
	if s.Expect.Output != "" {
		expect["output"] = s.Expect.Output
	}
	if s.Expect.Error != "" {
		expect["error"] = s.Expect.Error
	}

	m := map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"program":     s.Program,
		"input":       input,
		"expect":      expect,
	}
	if s.RunID != "" {
		m["run_id"] = s.RunID
	}
	return m
}
