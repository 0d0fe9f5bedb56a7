// Package output provides styled terminal output for CLI tools.
//
// # Usage
//
//	output.Success("Answered 3 questions")
//	output.Info("Questions from: questions.yml")
//	output.Step("name: Ada")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
// The package uses lipgloss for terminal styling. SetPlain turns it off
// when output is redirected:
//
//   - Success: ✅ green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
