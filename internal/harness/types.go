package harness

import "github.com/RomanKarsunkinWebPS2005/compiler-team/internal/console"

// Trace event types.
const (
	EventPrompt = string(console.KindPrompt)
	EventInput  = string(console.KindInput)
	EventOutput = "output"
	EventError  = "error"
)

// TraceEvent is one step of a program transcript.
type TraceEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Seq  int64  `json:"seq"`
}

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when the transcript met every expectation.
	Pass bool `json:"pass"`

	Trace []TraceEvent `json:"trace"`

	// Errors holds the failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event to the transcript.
func (r *Result) AddTrace(eventType, text string, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{Type: eventType, Text: text, Seq: seq})
}

// Output returns the text of the output event, if the run produced one.
func (r *Result) Output() (string, bool) {
	for _, e := range r.Trace {
		if e.Type == EventOutput {
			return e.Text, true
		}
	}
	return "", false
}
