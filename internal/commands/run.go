package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/starshell/question/internal/config"
	"github.com/starshell/question/output"
	"go.uber.org/zap"
)

// RunCmd asks every question in a definitions file, in order.
func RunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run [FILE]",
		Short: "Ask the questions defined in a YAML file",
		Long: `Ask the questions defined in a YAML file and print "name: answer" lines.

FILE defaults to the questions setting (questions.yml). Confirm and
until_acceptable questions are asked until valid only at a terminal;
other input gets 3 attempts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Settings.Questions
			if len(args) == 1 {
				path = args[0]
			}
			output.Verbose("Loading questions from: " + path)

			file, err := config.LoadDefinitions(path)
			if err != nil {
				return err
			}

			in := app.input()
			limit := int(app.attempts(0))
			for i, def := range file.Questions {
				app.Logger.Debug("Asking question", zap.Int("index", i), zap.String("name", def.Label()))
				answer, ok := def.Ask(in, app.Logger, limit)
				if !ok {
					return in.noAnswer(def.Label())
				}
				fmt.Fprintf(app.Out, "%s: %s\n", def.Label(), answer)
			}

			output.Success(fmt.Sprintf("Answered %d questions", len(file.Questions)))
			return nil
		},
	}
}
