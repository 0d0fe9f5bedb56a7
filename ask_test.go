package question

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// flakyIO fails reads listed in failures (1-based) and otherwise reads
// from the wrapped buffer.
type flakyIO struct {
	*Buffer
	reads    int
	failures map[int]bool
}

func (f *flakyIO) ReadLine() (string, error) {
	f.reads++
	if f.failures[f.reads] {
		return "", errors.New("read failed")
	}
	return f.Buffer.ReadLine()
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  Answer
	}{
		{"y", Yes},
		{"yes", Yes},
		{"Y", Yes},
		{" YES ", Yes},
		{" YES\n", Yes},
		{"n", No},
		{"no", No},
		{"N", No},
		{"No\r\n", No},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NewWithIO("Continue?", BufferFromString(tt.input)).Confirm()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_RetriesUntilValid(t *testing.T) {
	buf := NewBuffer("wat", "", "maybe", "n")

	got := NewWithIO("Continue?", buf).Confirm()

	assert.Equal(t, No, got)
	assert.Len(t, buf.Prompts(), 4)
}

func TestConfirm_EmptyLineUsesDefault(t *testing.T) {
	buf := NewBuffer("")

	got := NewWithIO("Continue?", buf).Default(Yes).ShowDefaults().Confirm()

	assert.Equal(t, Yes, got)
	assert.Equal(t, []string{"Continue? (Y/n) "}, buf.Prompts())
}

func TestAsk_FreeForm(t *testing.T) {
	tests := []struct {
		name     string
		question string
		input    string
		want     string
	}{
		{"y with newline", "Continue?", "y\n", "y"},
		{"yes with newline", "Continue?", "yes\n", "yes"},
		{"n with newline", "Continue?", "n\n", "n"},
		{"no with newline", "Continue?", "no\n", "no"},
		{"punctuation kept", "42", "the universe,\n", "the universe,"},
		{"phrase", "42", "and everything\n", "and everything"},
		{"no newline", "Continue?", "yes", "yes"},
		{"no newline phrase", "42", "what is the meaning to life,", "what is the meaning to life,"},
		{"surrounding whitespace trimmed", "42", "  forty two  \n", "forty two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewWithIO(tt.question, BufferFromString(tt.input)).Ask()
			require.True(t, ok)
			assert.Equal(t, Response(tt.want), got)
		})
	}
}

func TestAsk_FreeFormDefault(t *testing.T) {
	got, ok := NewWithIO("Ultimate question?", NewBuffer("")).Default(Response("42")).Ask()
	require.True(t, ok)
	assert.Equal(t, Response("42"), got)
}

func TestAsk_FreeFormEmptyWithoutDefault(t *testing.T) {
	got, ok := NewWithIO("Ultimate question?", NewBuffer("")).Ask()
	require.True(t, ok)
	assert.Equal(t, Response(""), got)
}

func TestAsk_FreeFormReadsOnce(t *testing.T) {
	buf := NewBuffer("first", "second")

	got, ok := NewWithIO("Name?", buf).Ask()

	require.True(t, ok)
	assert.Equal(t, Response("first"), got)
	assert.Equal(t, 1, buf.Remaining())
}

func TestAsk_FreeFormReadFailure(t *testing.T) {
	buf := NewBuffer()
	buf.ReadErr = errors.New("closed")

	_, ok := NewWithIO("Name?", buf).Ask()
	assert.False(t, ok)
}

func TestAsk_FreeFormWriteFailure(t *testing.T) {
	buf := NewBuffer("ignored")
	buf.WriteErr = errors.New("broken pipe")

	_, ok := NewWithIO("Name?", buf).Ask()
	assert.False(t, ok)
	assert.Equal(t, 1, buf.Remaining())
}

func TestAsk_PromptHints(t *testing.T) {
	tests := []struct {
		name       string
		setDefault *Answer
		want       string
	}{
		{name: "yes default", setDefault: &Yes, want: "Continue? (Y/n) "},
		{name: "no default", setDefault: &No, want: "Continue? (y/N) "},
		{name: "response default", setDefault: ptr(Response("42")), want: "Continue? (42) "},
		{name: "no default set", want: "Continue? (y/n) "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer("anything")
			q := NewWithIO("Continue?", buf).ShowDefaults()
			if tt.setDefault != nil {
				q.Default(*tt.setDefault)
			}

			q.Ask()

			require.Len(t, buf.Prompts(), 1)
			assert.Equal(t, tt.want, buf.Prompts()[0])
		})
	}
}

func TestAsk_PromptWithoutHint(t *testing.T) {
	buf := NewBuffer("42")

	NewWithIO("What is the answer?", buf).Default(Response("42")).Ask()

	assert.Equal(t, []string{"What is the answer? "}, buf.Prompts())
}

func TestAsk_BoundedExhausted(t *testing.T) {
	buf := NewBuffer("a", "b", "c")

	got, ok := NewWithIO("Continue?", buf).YesNo().Tries(3).Ask()

	assert.False(t, ok)
	assert.True(t, got.IsZero())
	assert.NotEqual(t, Response(""), got)
	assert.Len(t, buf.Prompts(), 3)
}

func TestAsk_BoundedStopsAtBudget(t *testing.T) {
	buf := NewBuffer("a", "b", "c", "y", "y")

	_, ok := NewWithIO("Continue?", buf).YesNo().Tries(3).Ask()

	assert.False(t, ok)
	assert.Equal(t, 2, buf.Remaining())
}

func TestAsk_BoundedSucceedsWithinBudget(t *testing.T) {
	buf := NewBuffer("a", " YES ")

	got, ok := NewWithIO("Continue?", buf).YesNo().Tries(3).Ask()

	require.True(t, ok)
	assert.Equal(t, Yes, got)
	assert.Len(t, buf.Prompts(), 2)
}

func TestAsk_BoundedReadFailuresCountAsAttempts(t *testing.T) {
	buf := NewBuffer()
	buf.ReadErr = errors.New("closed")

	_, ok := NewWithIO("Continue?", buf).YesNo().Tries(4).Ask()

	assert.False(t, ok)
	assert.Len(t, buf.Prompts(), 4)
}

func TestAsk_BoundedWriteFailuresCountAsAttempts(t *testing.T) {
	buf := NewBuffer("y")
	buf.WriteErr = errors.New("broken pipe")

	_, ok := NewWithIO("Continue?", buf).YesNo().Tries(2).Ask()

	assert.False(t, ok)
	assert.Equal(t, 1, buf.Remaining())
}

func TestAsk_UntilAcceptable(t *testing.T) {
	buf := NewBuffer("wat", "maybe", "", "   ", "nO")

	got, ok := NewWithIO("Continue?", buf).YesNo().UntilAcceptable().Ask()

	require.True(t, ok)
	assert.Equal(t, No, got)
	assert.Len(t, buf.Prompts(), 5)
}

func TestAsk_UntilAcceptableRecoversFromReadFailures(t *testing.T) {
	io := &flakyIO{Buffer: NewBuffer("y"), failures: map[int]bool{1: true, 2: true}}

	got, ok := NewWithIO("Continue?", io).YesNo().UntilAcceptable().Ask()

	require.True(t, ok)
	assert.Equal(t, Yes, got)
	assert.Equal(t, 3, io.reads)
}

func TestAsk_TriesZeroIsUntilAcceptable(t *testing.T) {
	inputs := []string{"a", "b", "c", "d", "yes"}

	viaTries, ok := NewWithIO("Continue?", NewBuffer(inputs...)).YesNo().Tries(0).Ask()
	require.True(t, ok)

	viaUntil, ok := NewWithIO("Continue?", NewBuffer(inputs...)).YesNo().UntilAcceptable().Ask()
	require.True(t, ok)

	assert.Equal(t, viaUntil, viaTries)
	assert.Equal(t, Yes, viaTries)
}

func TestAsk_TriesOneDoesNotLimitAttempts(t *testing.T) {
	buf := NewBuffer("maybe", "y")

	got, ok := NewWithIO("Continue?", buf).YesNo().Tries(1).Ask()

	// Still the free-form single read: no budget of one was imposed.
	require.True(t, ok)
	assert.Equal(t, Response("maybe"), got)
	_, bounded := NewWithIO("Continue?", NewBuffer()).Tries(1).MaxTries()
	assert.False(t, bounded)
}

func TestAsk_UntilAcceptableTakesPrecedenceOverTries(t *testing.T) {
	buf := NewBuffer("a", "b", "c", "y")

	got, ok := NewWithIO("Continue?", buf).YesNo().Tries(2).UntilAcceptable().Ask()

	require.True(t, ok)
	assert.Equal(t, Yes, got)
}

func TestAsk_ValidatedDefault(t *testing.T) {
	got, ok := NewWithIO("Continue?", NewBuffer("")).
		YesNo().
		Default(Response("later")).
		Tries(2).
		Ask()

	require.True(t, ok)
	assert.Equal(t, Response("later"), got)
}

func TestAsk_ValidatedWhitespaceIsNotEmpty(t *testing.T) {
	buf := NewBuffer("   ", "")

	got, ok := NewWithIO("Continue?", buf).YesNo().Default(No).Tries(3).Ask()

	require.True(t, ok)
	assert.Equal(t, No, got)
	assert.Len(t, buf.Prompts(), 2)
}

func TestAsk_ValidatedEmptyWithoutDefaultRetries(t *testing.T) {
	buf := NewBuffer("", "")

	_, ok := NewWithIO("Continue?", buf).YesNo().Tries(2).Ask()

	assert.False(t, ok)
}

func TestAsk_CustomResponses(t *testing.T) {
	buf := NewBuffer("purple", "  GREEN ")

	got, ok := NewWithIO("Traffic light?", buf).
		Respond("red", Response("stop")).
		Respond("green", Response("go")).
		UntilAcceptable().
		Ask()

	require.True(t, ok)
	assert.Equal(t, Response("go"), got)
}

func TestAsk_AcceptedLiterals(t *testing.T) {
	buf := NewBuffer("maybe", "Y")

	got, ok := NewWithIO("Continue?", buf).Accept("y").Accept("n").UntilAcceptable().Ask()

	require.True(t, ok)
	assert.Equal(t, Response("y"), got)
}

func TestAsk_ResponsesWinOverAcceptedLiterals(t *testing.T) {
	got, ok := NewWithIO("Continue?", NewBuffer("y")).Accept("y").YesNo().Tries(2).Ask()

	require.True(t, ok)
	assert.Equal(t, Yes, got)
}

func TestAsk_Clarification(t *testing.T) {
	buf := NewBuffer("wat", "huh", "y")

	got, ok := NewWithIO("Continue?", buf).
		YesNo().
		Default(Yes).
		ShowDefaults().
		Clarification("Please enter either 'yes' or 'no'").
		Tries(3).
		Ask()

	require.True(t, ok)
	assert.Equal(t, Yes, got)
	assert.Equal(t, []string{
		"Continue? (Y/n) ",
		"Please enter either 'yes' or 'no'\nContinue? (Y/n) ",
		"Please enter either 'yes' or 'no'\nContinue? (Y/n) ",
	}, buf.Prompts())
}

func TestAsk_WithoutClarificationRepeatsPrompt(t *testing.T) {
	buf := NewBuffer("wat", "n")

	NewWithIO("Continue?", buf).YesNo().ShowDefaults().UntilAcceptable().Ask()

	assert.Equal(t, []string{"Continue? (y/n) ", "Continue? (y/n) "}, buf.Prompts())
}

func TestAsk_DoesNotChangeQuestionOrDefault(t *testing.T) {
	q := NewWithIO("Continue?", NewBuffer("x", "y")).
		YesNo().
		Default(No).
		ShowDefaults().
		Clarification("yes or no").
		UntilAcceptable()

	q.Ask()

	assert.Equal(t, "Continue?", q.Text())
	got, ok := q.DefaultAnswer()
	require.True(t, ok)
	assert.Equal(t, No, got)
	assert.Equal(t, "yes or no\nContinue? (y/N) ", q.Prompt())
}

func TestAsk_LogsAttempts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	buf := NewBuffer("wat", "y")

	NewWithIO("Continue?", buf).WithLogger(zap.New(core)).YesNo().Tries(2).Ask()

	invalid := logs.FilterMessage("Invalid response").All()
	require.Len(t, invalid, 1)
	assert.Equal(t, int64(1), invalid[0].ContextMap()["attempt"])
	assert.Equal(t, 1, logs.FilterMessage("Valid response").Len())
}

func ptr(a Answer) *Answer { return &a }
