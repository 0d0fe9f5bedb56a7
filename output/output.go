package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	plainMode   bool
	out         io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetPlain disables styling, for output that is not a terminal.
func SetPlain(p bool) {
	plainMode = p
}

// SetOutput redirects all messages to w. A nil w restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

func render(style lipgloss.Style, msg string) string {
	if plainMode {
		return msg
	}
	return style.Render(msg)
}

// Success prints a success message with ✅ emoji and green color.
//
// Example:
//
//	output.Success("Answered 3 questions")
func Success(msg string) {
	fmt.Fprintln(out, render(successStyle, "✅ "+msg))
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(out, render(errorStyle, "❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func Info(msg string) {
	fmt.Fprintln(out, render(infoStyle, "ℹ️  "+msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("name: Ada")
func Step(msg string) {
	fmt.Fprintln(out, render(stepStyle, "   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, render(stepStyle, "🔍 "+msg))
	}
}
