// Package question asks users questions from command line programs.
//
// # Overview
//
// A Question is built with chained calls and then asked with Ask or
// Confirm. Building is declarative; asking runs a prompt, read, validate
// and retry loop until an answer is found or the attempt budget runs out.
//
// # Usage
//
// Ask for free text:
//
//	answer, ok := question.New("What is your favorite color?").Ask()
//
// Ask a yes/no question until a valid response is given:
//
//	if question.New("Continue?").Default(question.Yes).ShowDefaults().Confirm().IsYes() {
//	    // onward
//	}
//
// Give up after three invalid responses, explaining what is expected:
//
//	answer, ok := question.New("Deploy to production?").
//		YesNo().
//		Tries(3).
//		Clarification("Please enter either 'yes' or 'no'").
//		Ask()
//
// # Matching
//
// Valid responses are matched after trimming surrounding whitespace and
// lowercasing, so " YES" is a yes. YesNo registers yes, y, no and n;
// Respond registers any other mapping. Literals added with Accept are
// valid too and come back as a Response holding the literal.
//
// An empty line selects the default, if one was set.
//
// # Input and output
//
// Questions read and write through a LineIO. New uses the process's
// standard streams; NewWithIO takes any LineIO, such as a Buffer in tests.
// Read failures inside a validated loop count as an invalid response and
// are never returned to the caller.
package question
