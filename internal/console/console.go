package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when input ends before a line could be read.
var ErrInputClosed = errors.New("EOF when reading a line")

// Console supplies lines of input to a program.
type Console interface {
	// ReadLine shows prompt and returns the next line without its line
	// terminator.
	ReadLine(prompt string) (string, error)
}

// Stdio is a Console over a reader and a prompt writer.
type Stdio struct {
	r *bufio.Reader
	w io.Writer
}

// NewStdio creates a Console that writes prompts to w and reads lines from r.
func NewStdio(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{r: bufio.NewReader(r), w: w}
}

// ReadLine writes prompt without a trailing newline and reads one line.
// A final line that is not newline-terminated is still returned; end of
// input with nothing read yields ErrInputClosed.
func (c *Stdio) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.w, prompt); err != nil {
			return "", fmt.Errorf("writing prompt: %w", err)
		}
	}

	line, err := c.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Scripted is a Console that returns predetermined lines in order.
// Prompts are collected instead of written anywhere.
type Scripted struct {
	lines   []string
	next    int
	prompts []string
}

// NewScripted creates a Console that answers prompts with lines in order.
func NewScripted(lines ...string) *Scripted {
	return &Scripted{lines: lines}
}

// ReadLine returns the next scripted line, or ErrInputClosed once the
// script is exhausted.
func (s *Scripted) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.next >= len(s.lines) {
		return "", ErrInputClosed
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Prompts returns the prompts shown so far.
func (s *Scripted) Prompts() []string {
	return s.prompts
}

// Remaining returns the number of lines not yet consumed.
func (s *Scripted) Remaining() int {
	return len(s.lines) - s.next
}
