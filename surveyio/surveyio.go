// Package surveyio lets a question.Question prompt through survey, which
// renders the question with survey's own styling and line editing.
package surveyio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("surveyio: aborted")

type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// IO is a question.LineIO backed by survey.Input. WritePrompt only stores
// the prompt; survey writes it when ReadLine asks.
type IO struct {
	pending string
	help    string
	opts    []survey.AskOpt
	ask     askFunc
}

// Option configures an IO.
type Option func(*IO)

// WithStdio asks on the given streams instead of the process's own.
func WithStdio(stdio terminal.Stdio) Option {
	return func(s *IO) {
		s.opts = append(s.opts, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	}
}

// WithHelp sets the text survey shows when the user enters "?".
func WithHelp(help string) Option {
	return func(s *IO) {
		s.help = help
	}
}

// New returns an IO that asks with survey.AskOne.
func New(opts ...Option) *IO {
	s := &IO{ask: survey.AskOne}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WritePrompt records the prompt for the next ReadLine. The trailing
// separator is dropped since survey adds its own.
func (s *IO) WritePrompt(text string) error {
	s.pending = strings.TrimRight(text, " ")
	return nil
}

// ReadLine asks the pending prompt and returns what the user typed.
func (s *IO) ReadLine() (string, error) {
	var out string
	prompt := &survey.Input{
		Message: s.pending,
		Help:    s.help,
	}
	if err := s.ask(prompt, &out, s.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("surveyio: %w", err)
}
