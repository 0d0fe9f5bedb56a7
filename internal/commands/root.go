package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/starshell/question"
	"github.com/starshell/question/internal/config"
	"github.com/starshell/question/internal/logging"
	"github.com/starshell/question/output"
	"github.com/starshell/question/surveyio"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	// ErrNoAnswer is returned when a question ran out of attempts.
	ErrNoAnswer = errors.New("no valid answer")
	// ErrDeclined is returned by confirm when the answer is no.
	ErrDeclined = errors.New("declined")
)

// App carries what the commands share: where questions are asked, where
// answers are printed, and the settings and logger resolved at startup.
type App struct {
	IO  question.LineIO
	Out io.Writer

	Settings *config.Settings
	Logger   *zap.Logger
}

// NewApp returns an App on the standard streams.
func NewApp() *App {
	return &App{
		IO:     question.Stdio(),
		Out:    os.Stdout,
		Logger: zap.NewNop(),
	}
}

// RootCmd creates and returns the root command for the question CLI
func RootCmd(app *App) *cobra.Command {
	var (
		verbose    bool
		plain      bool
		useSurvey  bool
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "question",
		Short: "Ask questions from shell scripts",
		Long: `question asks the user a question on the terminal and prints the answer.

Use it from scripts to:
• Ask for free text with a default
• Ask yes/no questions until a valid answer is given
• Ask a list of questions defined in a YAML file`,
		Version:       question.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("verbose") {
				settings.Verbose = verbose
			}
			if flags.Changed("plain") {
				settings.Plain = plain
			}
			if flags.Changed("log-level") {
				settings.LogLevel = logLevel
			}
			if flags.Changed("survey") {
				settings.Survey = useSurvey
			}
			if !settings.Plain && !term.IsTerminal(int(os.Stderr.Fd())) {
				settings.Plain = true
			}

			level, err := logging.ParseLevel(settings.LogLevel)
			if err != nil {
				return err
			}
			if settings.Verbose {
				level = logging.LevelDebug
			}

			app.Settings = settings
			app.Logger = logging.New(level, cmd.ErrOrStderr())
			output.SetVerbose(settings.Verbose)
			output.SetPlain(settings.Plain)

			if settings.Survey {
				app.IO = surveyio.New()
			}
			if t, ok := app.IO.(*question.Terminal); ok && !t.Interactive() {
				app.Logger.Debug("Input is not a terminal; reading answers from stdin")
			}

			app.Logger.Debug("Settings resolved",
				zap.String("log_level", level.String()),
				zap.Bool("plain", settings.Plain),
				zap.String("questions", settings.Questions))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and styling")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (default ./question.yml)")
	cmd.PersistentFlags().BoolVar(&useSurvey, "survey", false, "Ask with survey prompts instead of plain lines")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, silent")

	cmd.AddCommand(AskCmd(app))
	cmd.AddCommand(ConfirmCmd(app))
	cmd.AddCommand(RunCmd(app))
	cmd.AddCommand(VersionCmd(app))

	return cmd
}

// VersionCmd prints the version.
func VersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(app.Out, "question v%s\n", question.Version)
		},
	}
}

// Execute runs the CLI on the standard streams and returns the process
// exit status.
func Execute() int {
	err := RootCmd(NewApp()).Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDeclined):
		return 1
	case errors.Is(err, surveyio.ErrAborted):
		output.Error("Aborted")
		return 130
	default:
		output.Error(err.Error())
		return 1
	}
}
