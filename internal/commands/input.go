package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/starshell/question"
	"github.com/starshell/question/surveyio"
)

// defaultTries is the attempt budget for questions that would otherwise
// be asked until valid, when the answers do not come from a person at a
// terminal.
const defaultTries = 3

// interactive reports whether answers are typed at a terminal. Reads
// there block until the user types again, even after Ctrl+D.
func (app *App) interactive() bool {
	t, ok := app.IO.(*question.Terminal)
	return ok && t.Interactive()
}

// attempts turns a requested budget into the one passed to Tries. Zero
// asks until valid at a terminal; piped, scripted and survey input gets
// defaultTries instead, since an ended stream fails every read at once.
func (app *App) attempts(tries uint) uint {
	if tries == 0 && !app.interactive() {
		return defaultTries
	}
	return tries
}

// input wraps app.IO for one command.
func (app *App) input() *inputGuard {
	return &inputGuard{LineIO: app.IO, sticky: !app.interactive()}
}

// inputGuard remembers why the input ended. Once it has, every later
// prompt and read fails with the same error, so the remaining attempts
// are used up without touching the stream again.
type inputGuard struct {
	question.LineIO

	sticky bool
	err    error
}

func (g *inputGuard) WritePrompt(text string) error {
	if g.err != nil {
		return g.err
	}
	return g.LineIO.WritePrompt(text)
}

func (g *inputGuard) ReadLine() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	line, err := g.LineIO.ReadLine()
	if g.sticky && endOfInput(err) {
		g.err = err
	}
	return line, err
}

// noAnswer is the error for a question named label that got no valid
// answer. It also wraps the end of input, if that is what stopped it.
func (g *inputGuard) noAnswer(label string) error {
	if g.err != nil {
		return fmt.Errorf("%s: %w: %w", label, ErrNoAnswer, g.err)
	}
	return fmt.Errorf("%s: %w", label, ErrNoAnswer)
}

func endOfInput(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, question.ErrNoInput) ||
		errors.Is(err, surveyio.ErrAborted)
}
