package input

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/starshell/question"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)

// ConfirmTries is how many invalid answers Confirm tolerates before
// falling back to the default.
const ConfirmTries = 3

// Prompter asks questions through a LineIO.
type Prompter struct {
	IO     question.LineIO
	Logger *zap.Logger
	// Plain disables styling of the question text.
	Plain bool
}

// NewPrompter returns a Prompter on the process's standard streams.
// Styling is disabled when stdout is not a terminal.
func NewPrompter() *Prompter {
	return &Prompter{
		IO:     question.Stdio(),
		Logger: zap.NewNop(),
		Plain:  !term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (p *Prompter) question(message string) *question.Question {
	if !p.Plain {
		message = promptStyle.Render(message)
	}
	return question.NewWithIO(message, p.IO).WithLogger(p.Logger)
}

// Prompt asks for text input with an optional default value.
// If the user presses Enter without typing anything, or input cannot be
// read, the default is returned.
//
// Example:
//
//	modulePath := p.Prompt("Module path", "github.com/username/myapp")
//	// Displays: Module path (github.com/username/myapp) _
func (p *Prompter) Prompt(message, defaultValue string) string {
	q := p.question(message)
	if defaultValue != "" {
		q.Default(question.Response(defaultValue)).ShowDefaults()
	}

	answer, ok := q.Ask()
	if !ok {
		return defaultValue
	}
	return answer.Text()
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES) and false for no.
// Pressing Enter selects the default; after ConfirmTries invalid answers
// the default is returned as well.
//
// Example:
//
//	if p.Confirm("Run go mod tidy?", true) {
//	    // User said yes (or pressed Enter)
//	}
//	// Displays: Run go mod tidy? (Y/n) _
func (p *Prompter) Confirm(message string, defaultYes bool) bool {
	def := question.No
	if defaultYes {
		def = question.Yes
	}

	answer, ok := p.question(message).
		YesNo().
		Default(def).
		ShowDefaults().
		Clarification("Please answer yes or no.").
		Tries(ConfirmTries).
		Ask()
	if !ok {
		return defaultYes
	}
	return answer.IsYes()
}

var std = NewPrompter()

// Prompt asks on the standard streams. See Prompter.Prompt.
func Prompt(message, defaultValue string) string {
	return std.Prompt(message, defaultValue)
}

// Confirm asks on the standard streams. See Prompter.Confirm.
func Confirm(message string, defaultYes bool) bool {
	return std.Confirm(message, defaultYes)
}
