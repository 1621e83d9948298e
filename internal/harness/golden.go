package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders the transcript of a run as canonical JSON:
//
//	{"run_id":"...","scenario_name":"...","trace":[{"seq":1,"text":"...","type":"prompt"},...]}
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		trace[i] = map[string]any{
			"type": event.Type,
			"text": event.Text,
			"seq":  event.Seq,
		}
	}

	return MarshalCanonical(map[string]any{
		"run_id":        scenario.EffectiveRunID(),
		"scenario_name": scenario.Name,
		"trace":         trace,
	})
}

// RunWithGolden runs a scenario and compares its snapshot with
// testdata/golden/<scenario.Name>.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's snapshot with its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)
	return nil
}
