package gitexec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/gitcoach/internal/domain"
)

func TestRunner_CapturesOutput(t *testing.T) {
	runner := NewRunner(10 * time.Second)

	result := runner.Run(context.Background(), domain.CommandSpec{
		Program:    "echo",
		Args:       []string{"hello", "world"},
		WorkingDir: t.TempDir(),
	})

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello world", result.Stdout, "trailing newline must be trimmed, content untouched")
	assert.False(t, result.TimedOut)
}

func TestRunner_NonZeroExit(t *testing.T) {
	runner := NewRunner(10 * time.Second)

	result := runner.Run(context.Background(), domain.CommandSpec{
		Program:    "sh",
		Args:       []string{"-c", "echo oops >&2; exit 3"},
		WorkingDir: t.TempDir(),
	})

	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "oops", result.Stderr)
	assert.False(t, result.TimedOut)
}

func TestRunner_MissingExecutableNeverPanics(t *testing.T) {
	runner := NewRunner(10 * time.Second)

	result := runner.Run(context.Background(), domain.CommandSpec{
		Program:    "definitely-not-a-real-binary-xyz",
		WorkingDir: t.TempDir(),
	})

	assert.Equal(t, domain.ExitCodeStartFailed, result.ExitCode)
	assert.True(t, result.StartFailed())
	assert.NotEmpty(t, result.Stderr, "launch fault must be reported as data")
}

func TestRunner_TimeoutBound(t *testing.T) {
	runner := NewRunner(500 * time.Millisecond)

	started := time.Now()
	result := runner.Run(context.Background(), domain.CommandSpec{
		Program:    "sleep",
		Args:       []string{"30"},
		WorkingDir: t.TempDir(),
	})
	took := time.Since(started)

	require.True(t, result.TimedOut)
	assert.False(t, result.StartFailed(), "a timed-out run is not a launch failure")
	assert.Less(t, took, 5*time.Second, "the child must be killed near the ceiling, with scheduling slack")
}

func TestRunner_DefaultTimeoutFallback(t *testing.T) {
	runner := NewRunner(0)
	assert.Equal(t, DefaultTimeout, runner.timeout)
}

func TestTrimTrailingNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"line\n", "line"},
		{"line\r\n", "line"},
		{"line\n\n", "line\n"},
		{"line", "line"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, trimTrailingNewline(tt.in))
	}
}
