package domain

import "strings"

// GitProgram is the external tool every lesson shells out to.
const GitProgram = "git"

// CommandSpec describes a single external invocation. It is built by the
// caller once per step and never mutated afterwards. The command is always
// run as an argument vector, never through a shell.
type CommandSpec struct {
	Program    string
	Args       []string
	WorkingDir string
}

// NewGitCommand builds a CommandSpec for a git subcommand run in dir.
func NewGitCommand(dir string, args ...string) CommandSpec {
	return CommandSpec{
		Program:    GitProgram,
		Args:       args,
		WorkingDir: dir,
	}
}

// Subcommand returns the git subcommand ("commit", "push", ...), or an
// empty string for a bare invocation. Global flags like "-C <path>" that
// precede the subcommand are skipped.
func (s CommandSpec) Subcommand() string {
	for i := 0; i < len(s.Args); i++ {
		arg := s.Args[i]
		if arg == "-C" || arg == "-c" {
			i++ // flag consumes the next argument
			continue
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return arg
	}
	return ""
}

// CommandLine renders the invocation the way a user would type it.
func (s CommandSpec) CommandLine() string {
	return strings.Join(append([]string{s.Program}, s.Args...), " ")
}

// ExecutionResult is the raw outcome of running a CommandSpec. It is
// produced once by the executor and passed by value to the classifier.
// Stdout and Stderr keep the exact text git emitted except for a single
// trailing newline, since classification matches on substrings.
type ExecutionResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// ExitCodeStartFailed is the sentinel exit code reported when the child
// process could not be started at all (typically: git is not installed).
const ExitCodeStartFailed = -1

// StartFailed reports whether the process never ran.
func (r ExecutionResult) StartFailed() bool {
	return r.ExitCode == ExitCodeStartFailed && !r.TimedOut
}
