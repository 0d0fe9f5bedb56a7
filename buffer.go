package question

import (
	"errors"
	"strings"
)

// ErrNoInput is returned by Buffer once its scripted lines are used up.
var ErrNoInput = errors.New("question: no input left")

// Buffer is an in-memory LineIO. It answers reads from scripted lines and
// records every prompt written to it. It is meant for tests and examples.
type Buffer struct {
	lines   []string
	prompts []string

	// ReadErr, when set, is returned by every read instead of a line.
	ReadErr error
	// WriteErr, when set, is returned by every prompt write.
	WriteErr error
}

// NewBuffer returns a Buffer that will answer reads with lines in order.
func NewBuffer(lines ...string) *Buffer {
	return &Buffer{lines: lines}
}

// BufferFromString splits input on newlines the way a terminal would.
// A trailing newline does not produce an extra empty line.
func BufferFromString(input string) *Buffer {
	if input == "" {
		return NewBuffer()
	}
	input = strings.TrimSuffix(input, "\n")
	return NewBuffer(strings.Split(input, "\n")...)
}

// WritePrompt implements LineIO.
func (b *Buffer) WritePrompt(text string) error {
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.prompts = append(b.prompts, text)
	return nil
}

// ReadLine implements LineIO.
func (b *Buffer) ReadLine() (string, error) {
	if b.ReadErr != nil {
		return "", b.ReadErr
	}
	if len(b.lines) == 0 {
		return "", ErrNoInput
	}
	line := b.lines[0]
	b.lines = b.lines[1:]
	return strings.TrimSuffix(line, "\r"), nil
}

// Prompts returns every prompt written so far.
func (b *Buffer) Prompts() []string {
	return b.prompts
}

// Output returns all prompts concatenated, as a terminal would show them.
func (b *Buffer) Output() string {
	return strings.Join(b.prompts, "")
}

// Remaining returns the number of scripted lines not yet read.
func (b *Buffer) Remaining() int {
	return len(b.lines)
}
