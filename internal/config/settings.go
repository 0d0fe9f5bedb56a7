// Package config loads CLI settings and question definition files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the CLI options that may come from question.yml or the
// environment. Command line flags override them.
type Settings struct {
	Verbose   bool
	Plain     bool
	Survey    bool
	LogLevel  string
	Questions string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:  "info",
		Questions: "questions.yml",
	}
}

// LoadSettings reads settings from path, or from question.yml in the
// working directory when path is empty. A missing question.yml is not an
// error. QUESTION_* environment variables override the file.
func LoadSettings(path string) (*Settings, error) {
	def := DefaultSettings()

	v := viper.New()
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("plain", def.Plain)
	v.SetDefault("survey", def.Survey)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("questions", def.Questions)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("question")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("QUESTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	return &Settings{
		Verbose:   v.GetBool("verbose"),
		Plain:     v.GetBool("plain"),
		Survey:    v.GetBool("survey"),
		LogLevel:  v.GetString("log_level"),
		Questions: v.GetString("questions"),
	}, nil
}
