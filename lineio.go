package question

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineIO is the line-oriented terminal a Question talks to.
type LineIO interface {
	// WritePrompt writes text verbatim, without a newline, and flushes it
	// so it is visible before ReadLine blocks.
	WritePrompt(text string) error

	// ReadLine blocks until a line is available and returns it without
	// its line terminator. A final line without a newline is returned
	// with a nil error; io.EOF is returned once nothing is left.
	ReadLine() (string, error)
}

// Terminal is a LineIO over a reader and a writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

type flusher interface{ Flush() error }

type syncer interface{ Sync() error }

// NewTerminal returns a Terminal reading lines from in and writing
// prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
	}
	return t
}

// Stdio returns a Terminal on os.Stdin and os.Stdout.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// Interactive reports whether input comes from a terminal.
func (t *Terminal) Interactive() bool {
	return t.fd >= 0 && term.IsTerminal(t.fd)
}

// WritePrompt implements LineIO.
func (t *Terminal) WritePrompt(text string) error {
	if _, err := io.WriteString(t.out, text); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	switch w := t.out.(type) {
	case flusher:
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flushing prompt: %w", err)
		}
	case *os.File:
		// Sync fails on terminals and pipes; os.File writes are unbuffered.
	case syncer:
		if err := w.Sync(); err != nil {
			return fmt.Errorf("flushing prompt: %w", err)
		}
	}
	return nil
}

// ReadLine implements LineIO.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimNewline(line), nil
		}
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
