package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/starshell/question"
	"github.com/starshell/question/internal/config"
)

type askOptions struct {
	defaultValue    string
	showDefault     bool
	clarification   string
	tries           uint
	untilAcceptable bool
	yesNo           bool
	accept          []string
	respond         map[string]string
}

// AskCmd asks a single question built from flags and prints the answer.
func AskCmd(app *App) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Ask a question and print the answer",
		Long: `Ask a question and print the answer to stdout.

Without --yes-no, --accept or --respond any line is accepted. With them,
invalid answers are asked again, --tries times or until valid. Asking
until valid needs a terminal; other input gets 3 attempts.`,
		Example: `  question ask "What is your name?"
  question ask "Color?" --default blue --show-default
  question ask "Deploy?" --yes-no --tries 3 --clarification "Please answer yes or no"
  question ask "Light?" --respond red=stop --respond green=go --until-acceptable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := config.ResponseKeys(opts.respond)
			if err != nil {
				return fmt.Errorf("--respond: %w", err)
			}

			in := app.input()
			q := question.NewWithIO(args[0], in).WithLogger(app.Logger)
			flags := cmd.Flags()

			if opts.yesNo {
				q.YesNo()
			}
			for _, text := range keys {
				q.Respond(text, config.ParseAnswer(opts.respond[text]))
			}
			q.Acceptable(opts.accept...)
			if flags.Changed("default") {
				if opts.yesNo {
					q.Default(config.ParseAnswer(opts.defaultValue))
				} else {
					q.Default(question.Response(opts.defaultValue))
				}
			}
			if opts.showDefault {
				q.ShowDefaults()
			}
			if opts.clarification != "" {
				q.Clarification(opts.clarification)
			}
			switch {
			case opts.untilAcceptable:
				q.Tries(app.attempts(0))
			case flags.Changed("tries"):
				q.Tries(app.attempts(opts.tries))
			}

			answer, ok := q.Ask()
			if !ok {
				return in.noAnswer(strconv.Quote(args[0]))
			}
			fmt.Fprintln(app.Out, answer)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.defaultValue, "default", "d", "", "Answer used when the input is empty")
	flags.BoolVarP(&opts.showDefault, "show-default", "s", false, "Show the default after the question")
	flags.StringVar(&opts.clarification, "clarification", "", "Message shown after an invalid answer")
	flags.UintVarP(&opts.tries, "tries", "t", 1, "Attempts before giving up (0 asks until valid)")
	flags.BoolVarP(&opts.untilAcceptable, "until-acceptable", "u", false, "Ask until a valid answer is given")
	flags.BoolVarP(&opts.yesNo, "yes-no", "y", false, "Accept yes/y/no/n")
	flags.StringSliceVarP(&opts.accept, "accept", "a", nil, "Accept a literal answer (repeatable)")
	flags.StringToStringVarP(&opts.respond, "respond", "r", nil, "Map an input to an answer, e.g. red=stop (repeatable)")

	return cmd
}
