// Package gitexec runs git as a child process with captured output and a
// bounded wait. It implements the ports.CommandRunner and ports.EnvProber
// contracts for the real tool.
package gitexec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/ports"
)

// DefaultTimeout bounds an invocation when the caller supplies none.
const DefaultTimeout = 30 * time.Second

// Runner executes commands via os/exec. Every run inherits the parent
// environment plus overrides that force git into non-interactive mode,
// so a command that would open a credential prompt fails (or times out)
// instead of hanging on input nobody can type.
type Runner struct {
	timeout time.Duration
}

// Ensure Runner implements ports.CommandRunner.
var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a runner with the given per-command timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout}
}

// Run executes the spec and always returns a populated ExecutionResult.
// A missing executable, a non-zero exit, or a kill on timeout all come
// back as data; nothing escapes as an error or panic. Output text is
// preserved exactly except for a single trailing newline, since the
// classifier matches on substrings.
func (r *Runner) Run(ctx context.Context, spec domain.CommandSpec) domain.ExecutionResult {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	cmd.Dir = spec.WorkingDir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GCM_INTERACTIVE=never",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := domain.ExecutionResult{
		ExitCode: 0,
		Stdout:   trimTrailingNewline(stdout.String()),
		Stderr:   trimTrailingNewline(stderr.String()),
	}

	if ctx.Err() == context.DeadlineExceeded {
		// CommandContext killed the child; pipes are already closed.
		result.TimedOut = true
		result.ExitCode = domain.ExitCodeStartFailed
		return result
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// The process never started: binary missing, bad working
			// directory, or a similar launch fault.
			result.ExitCode = domain.ExitCodeStartFailed
			if result.Stderr == "" {
				result.Stderr = err.Error()
			}
		}
	}

	return result
}

// trimTrailingNewline removes exactly one trailing newline, the only
// normalization the executor is allowed to apply.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
