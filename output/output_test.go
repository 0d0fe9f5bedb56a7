package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput collects everything printed while f runs.
func captureOutput(t *testing.T, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetPlain(true)
	t.Cleanup(func() {
		SetOutput(nil)
		SetPlain(false)
		SetVerbose(false)
	})

	f()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		want  string
	}{
		{name: "success", print: Success, want: "✅ Test message\n"},
		{name: "error", print: Error, want: "❌ Test message\n"},
		{name: "info", print: Info, want: "ℹ️  Test message\n"},
		{name: "step", print: Step, want: "   Test message\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureOutput(t, func() { tt.print("Test message") })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerbose(t *testing.T) {
	got := captureOutput(t, func() { Verbose("hidden") })
	assert.Empty(t, got)

	got = captureOutput(t, func() {
		SetVerbose(true)
		Verbose("shown")
	})
	assert.Equal(t, "🔍 shown\n", got)
}

func TestSetOutput_NilRestoresStderr(t *testing.T) {
	SetOutput(nil)
	assert.NotNil(t, out)
}
