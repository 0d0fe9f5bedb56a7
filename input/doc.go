// Package input provides interactive terminal input utilities.
//
// # Overview
//
// Command line tools use this package for consistent user interaction
// when prompts are needed. It wraps the question package with the two
// shapes almost every tool needs: text with a default, and yes/no.
//
// # Usage
//
// Import the package and call the input functions:
//
//	import "github.com/starshell/question/input"
//
//	// Ask for text input with a default
//	modulePath := input.Prompt("Module path", "github.com/username/myapp")
//
//	// Ask yes/no question
//	if input.Confirm("Continue?", true) {
//	    // User said yes
//	}
//
// # Styling
//
// The question text is displayed in cyan and bold using lipgloss when
// stdout is a terminal. Set Prompter.Plain to turn styling off.
//
// # Testing
//
// Build a Prompter around a question.Buffer to script the user's input:
//
//	p := &input.Prompter{IO: question.NewBuffer("y"), Plain: true}
//	p.Confirm("Continue?", false) // true
package input
