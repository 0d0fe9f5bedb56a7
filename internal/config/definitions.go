package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/starshell/question"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is a questions.yml document.
type File struct {
	Questions []Definition `yaml:"questions"`
}

// Definition describes one question declaratively.
type Definition struct {
	Name            string            `yaml:"name"`
	Text            string            `yaml:"text"`
	Confirm         bool              `yaml:"confirm"`
	YesNo           bool              `yaml:"yes_no"`
	Default         *string           `yaml:"default"`
	ShowDefault     bool              `yaml:"show_default"`
	Clarification   string            `yaml:"clarification"`
	Tries           *int              `yaml:"tries"`
	UntilAcceptable bool              `yaml:"until_acceptable"`
	Accept          []string          `yaml:"accept"`
	Responses       map[string]string `yaml:"responses"`
}

// LoadDefinitions reads and validates a questions file.
func LoadDefinitions(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading questions file: %w", err)
	}
	return ParseDefinitions(data)
}

// ParseDefinitions decodes and validates a questions document.
func ParseDefinitions(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing questions file: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("questions file defines no questions")
	}
	for i, d := range f.Questions {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &f, nil
}

// Validate checks that the definition can be asked.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("text is required")
	}
	if d.Tries != nil && *d.Tries < 0 {
		return fmt.Errorf("tries must not be negative, got %d", *d.Tries)
	}
	if _, err := ResponseKeys(d.Responses); err != nil {
		return err
	}
	return nil
}

// Label names the question in output: its name, or its text.
func (d Definition) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Text
}

// Build turns the definition into a question asked through io.
func (d Definition) Build(io question.LineIO, logger *zap.Logger) *question.Question {
	q := question.NewWithIO(d.Text, io).WithLogger(logger)

	if d.YesNo {
		q.YesNo()
	}
	for _, text := range slices.Sorted(maps.Keys(d.Responses)) {
		q.Respond(text, ParseAnswer(d.Responses[text]))
	}
	q.Acceptable(d.Accept...)

	if d.Default != nil {
		if d.YesNo || d.Confirm {
			q.Default(ParseAnswer(*d.Default))
		} else {
			q.Default(question.Response(*d.Default))
		}
	}
	if d.ShowDefault {
		q.ShowDefaults()
	}
	if d.Clarification != "" {
		q.Clarification(d.Clarification)
	}
	if d.Tries != nil {
		q.Tries(uint(*d.Tries))
	}
	if d.UntilAcceptable {
		q.UntilAcceptable()
	}
	return q
}

// Ask builds the question and asks it, with Confirm for confirm
// definitions and Ask otherwise.
//
// A positive limit bounds questions that would be asked until valid
// (confirm, until_acceptable and tries: 0) to that many attempts. Such a
// confirm question is asked as a yes/no question and can fail. Since one
// attempt is no limit at all for a question, the smallest limit is two.
func (d Definition) Ask(io question.LineIO, logger *zap.Logger, limit int) (question.Answer, bool) {
	if limit > 0 && d.unbounded() {
		limit = max(limit, 2)
		d.Tries = &limit
		d.UntilAcceptable = false
		if d.Confirm {
			d.Confirm = false
			d.YesNo = true
		}
	}

	q := d.Build(io, logger)
	if d.Confirm {
		return q.Confirm(), true
	}
	return q.Ask()
}

// ResponseKeys returns the inputs of a response mapping in sorted order.
// Inputs are matched trimmed and lowercased, so two keys that only differ
// in case or surrounding space would shadow each other; that is an error.
func ResponseKeys(responses map[string]string) ([]string, error) {
	keys := slices.Sorted(maps.Keys(responses))
	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		norm := strings.ToLower(strings.TrimSpace(key))
		if prev, ok := seen[norm]; ok {
			return nil, fmt.Errorf("responses %q and %q match the same input", prev, key)
		}
		seen[norm] = key
	}
	return keys, nil
}

func (d Definition) unbounded() bool {
	return d.Confirm || d.UntilAcceptable || (d.Tries != nil && *d.Tries == 0)
}

// ParseAnswer reads "yes"/"y" as Yes, "no"/"n" as No, and anything else
// as a Response.
func ParseAnswer(text string) question.Answer {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "y":
		return question.Yes
	case "no", "n":
		return question.No
	default:
		return question.Response(text)
	}
}
