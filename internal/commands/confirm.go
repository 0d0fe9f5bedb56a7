package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/starshell/question"
	"github.com/starshell/question/internal/config"
)

// ConfirmCmd asks a yes/no question. It exits 0 for yes and 1 for no so
// scripts can branch on it directly.
func ConfirmCmd(app *App) *cobra.Command {
	var (
		defaultValue  string
		hideDefault   bool
		clarification string
		tries         uint
	)

	cmd := &cobra.Command{
		Use:   "confirm QUESTION",
		Short: "Ask a yes/no question; exit 0 for yes, 1 for no",
		Long: `Ask a yes/no question; exit 0 for yes, 1 for no.

At a terminal the question is asked until it gets a yes or no. Piped
input and --survey prompts get --tries attempts (3 unless set), and the
command fails once input ends or the prompt is interrupted.`,
		Example: `  question confirm "Continue?" && make deploy
  question confirm "Delete everything?" --default no`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tries == 1 {
				return fmt.Errorf("--tries must be 0 or at least 2, got 1")
			}
			in := app.input()
			q := question.NewWithIO(args[0], in).WithLogger(app.Logger)
			if cmd.Flags().Changed("default") {
				def := config.ParseAnswer(defaultValue)
				if def.IsResponse() {
					return fmt.Errorf("--default must be yes or no, got %q", defaultValue)
				}
				q.Default(def)
			}
			if !hideDefault {
				q.ShowDefaults()
			}
			if clarification != "" {
				q.Clarification(clarification)
			}

			var answer question.Answer
			if budget := app.attempts(tries); budget == 0 {
				answer = q.Confirm()
			} else {
				var ok bool
				answer, ok = q.YesNo().Tries(budget).Ask()
				if !ok {
					return in.noAnswer(strconv.Quote(args[0]))
				}
			}
			fmt.Fprintln(app.Out, answer)
			if answer.IsNo() {
				return ErrDeclined
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Answer used when the input is empty (yes or no)")
	cmd.Flags().BoolVar(&hideDefault, "hide-default", false, "Do not show (y/n) after the question")
	cmd.Flags().StringVar(&clarification, "clarification", "Please answer yes or no.", "Message shown after an invalid answer")
	cmd.Flags().UintVarP(&tries, "tries", "t", 0, "Attempts before giving up (0 asks until valid at a terminal)")

	return cmd
}
