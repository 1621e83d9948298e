package console

// EventKind classifies a transcript event.
type EventKind string

const (
	KindPrompt EventKind = "prompt"
	KindInput  EventKind = "input"
)

// Event is one entry of a console transcript.
type Event struct {
	Kind EventKind
	Text string
	Seq  int64
}

// Clock hands out transcript sequence numbers.
type Clock interface {
	Next() int64
}

// Recorder wraps a Console and keeps a transcript of its prompts and inputs.
// Not safe for concurrent use.
type Recorder struct {
	inner  Console
	clock  Clock
	events []Event
}

// NewRecorder records every exchange with inner, stamping events with clock.
func NewRecorder(inner Console, clock Clock) *Recorder {
	return &Recorder{inner: inner, clock: clock}
}

// ReadLine records the prompt, delegates, and records the line read.
// Failed reads leave only the prompt in the transcript.
func (r *Recorder) ReadLine(prompt string) (string, error) {
	r.record(KindPrompt, prompt)
	line, err := r.inner.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	r.record(KindInput, line)
	return line, nil
}

// Events returns the transcript so far.
func (r *Recorder) Events() []Event {
	return r.events
}

func (r *Recorder) record(kind EventKind, text string) {
	r.events = append(r.events, Event{Kind: kind, Text: text, Seq: r.clock.Next()})
}
