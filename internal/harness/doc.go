// Package harness runs console programs against scripted transcripts.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: gcd_basic
//	description: "GCD of two positive integers"
//	program: gcd
//	input:
//	  - "12"
//	  - "18"
//	run_id: run-gcd-basic
//	expect:
//	  output: "GCD(12, 18) = 6"
//
// input lists the console lines in the order the program asks for them.
// description and run_id are optional.
// expect carries exactly one of output (the exact result line) or error (a
// substring of the error that ends the run).
//
// Files are decoded strictly (unknown fields are rejected) and then unified
// with the #Scenario CUE schema embedded in this package.
//
// # Deterministic Transcripts
//
// Every run gets a fresh logical clock and the scenario's fixed run id, so
// the transcript of prompt, input, output and error events is identical
// across runs and can be compared against a golden snapshot:
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	snapshot, err := harness.Snapshot(scenario, result)
package harness
