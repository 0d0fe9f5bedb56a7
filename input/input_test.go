package input

import (
	"errors"
	"testing"

	"github.com/starshell/question"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestPrompter(lines ...string) (*Prompter, *question.Buffer) {
	buf := question.NewBuffer(lines...)
	return &Prompter{IO: buf, Logger: zap.NewNop(), Plain: true}, buf
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name         string
		input        []string
		defaultValue string
		want         string
		wantPrompt   string
	}{
		{
			name:         "typed value",
			input:        []string{"  github.com/me/app "},
			defaultValue: "github.com/username/myapp",
			want:         "github.com/me/app",
			wantPrompt:   "Module path (github.com/username/myapp) ",
		},
		{
			name:         "empty selects default",
			input:        []string{""},
			defaultValue: "github.com/username/myapp",
			want:         "github.com/username/myapp",
			wantPrompt:   "Module path (github.com/username/myapp) ",
		},
		{
			name:       "no default",
			input:      []string{"myapp"},
			want:       "myapp",
			wantPrompt: "Module path ",
		},
		{
			name:         "read failure returns default",
			defaultValue: "fallback",
			want:         "fallback",
			wantPrompt:   "Module path (fallback) ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrompter(tt.input...)

			got := p.Prompt("Module path", tt.defaultValue)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{tt.wantPrompt}, buf.Prompts())
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      []string
		defaultYes bool
		want       bool
	}{
		{name: "y", input: []string{"y"}, want: true},
		{name: "YES", input: []string{"YES"}, want: true},
		{name: "no", input: []string{"no"}, defaultYes: true, want: false},
		{name: "empty default yes", input: []string{""}, defaultYes: true, want: true},
		{name: "empty default no", input: []string{""}, want: false},
		{name: "retry then yes", input: []string{"maybe", "y"}, want: true},
		{name: "too many invalid", input: []string{"a", "b", "c", "n"}, defaultYes: true, want: true},
		{name: "no input", defaultYes: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input...)
			assert.Equal(t, tt.want, p.Confirm("Run go mod tidy?", tt.defaultYes))
		})
	}
}

func TestConfirm_Hints(t *testing.T) {
	p, buf := newTestPrompter("maybe", "")

	assert.False(t, p.Confirm("Continue?", false))
	assert.Equal(t, []string{
		"Continue? (y/N) ",
		"Please answer yes or no.\nContinue? (y/N) ",
	}, buf.Prompts())
}

func TestConfirm_WriteFailure(t *testing.T) {
	p, buf := newTestPrompter("n")
	buf.WriteErr = errors.New("broken pipe")

	assert.True(t, p.Confirm("Continue?", true))
}
