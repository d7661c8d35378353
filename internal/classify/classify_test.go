package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/gitcoach/internal/domain"
)

func gitCmd(args ...string) domain.CommandSpec {
	return domain.NewGitCommand("/tmp/project", args...)
}

func TestClassify_RuleTable(t *testing.T) {
	tests := []struct {
		name   string
		spec   domain.CommandSpec
		result domain.ExecutionResult
		want   domain.OutcomeKind
	}{
		{
			name:   "clean success",
			spec:   gitCmd("status"),
			result: domain.ExecutionResult{ExitCode: 0, Stdout: "On branch main\nnothing added"},
			want:   domain.KindSuccess,
		},
		{
			name:   "not a repository by stderr",
			spec:   gitCmd("status"),
			result: domain.ExecutionResult{ExitCode: 128, Stderr: "fatal: not a git repository (or any of the parent directories): .git"},
			want:   domain.KindNotARepository,
		},
		{
			name:   "merge conflict in stdout",
			spec:   gitCmd("pull"),
			result: domain.ExecutionResult{ExitCode: 1, Stdout: "CONFLICT (content): Merge conflict in file.txt\nAutomatic merge failed"},
			want:   domain.KindMergeConflict,
		},
		{
			name: "nothing to commit on a commit attempt beats success",
			spec: gitCmd("commit", "-m", "msg"),
			result: domain.ExecutionResult{
				ExitCode: 0,
				Stdout:   "On branch main\nnothing to commit, working tree clean",
			},
			want: domain.KindNothingToCommit,
		},
		{
			name:   "rejected non-fast-forward push",
			spec:   gitCmd("push", "-u", "origin", "main"),
			result: domain.ExecutionResult{ExitCode: 1, Stderr: " ! [rejected]        main -> main (non-fast-forward)"},
			want:   domain.KindDiverged,
		},
		{
			name:   "push with no commits reads as nothing to commit",
			spec:   gitCmd("push", "-u", "origin", "main"),
			result: domain.ExecutionResult{ExitCode: 1, Stderr: "error: src refspec main does not match any"},
			want:   domain.KindNothingToCommit,
		},
		{
			name:   "authentication failure",
			spec:   gitCmd("push", "-u", "origin", "main"),
			result: domain.ExecutionResult{ExitCode: 128, Stderr: "fatal: Authentication failed for 'https://github.com/x/y.git/'"},
			want:   domain.KindAuthFailure,
		},
		{
			name:   "permission denied",
			spec:   gitCmd("push"),
			result: domain.ExecutionResult{ExitCode: 128, Stderr: "git@github.com: Permission denied (publickey)."},
			want:   domain.KindAuthFailure,
		},
		{
			name:   "tool missing sentinel",
			spec:   gitCmd("--version"),
			result: domain.ExecutionResult{ExitCode: domain.ExitCodeStartFailed, Stderr: `exec: "git": executable file not found in $PATH`},
			want:   domain.KindToolMissing,
		},
		{
			name:   "timeout wins over everything",
			spec:   gitCmd("push"),
			result: domain.ExecutionResult{ExitCode: domain.ExitCodeStartFailed, Stderr: "fatal: Authentication failed", TimedOut: true},
			want:   domain.KindTimeout,
		},
		{
			name:   "nothing to commit does not fire for other subcommands",
			spec:   gitCmd("status"),
			result: domain.ExecutionResult{ExitCode: 0, Stdout: "nothing to commit, working tree clean"},
			want:   domain.KindSuccess,
		},
		{
			name:   "unclassified failure is unknown",
			spec:   gitCmd("fetch"),
			result: domain.ExecutionResult{ExitCode: 1, Stderr: "fatal: unable to access: Could not resolve host: github.com"},
			want:   domain.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.spec, tt.result)
			assert.Equal(t, tt.want, outcome.Kind)
			assert.Equal(t, tt.result, outcome.Raw)
			assert.NotEmpty(t, outcome.Explanation)
			assert.False(t, outcome.Blocked)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	spec := gitCmd("push", "-u", "origin", "main")
	result := domain.ExecutionResult{ExitCode: 1, Stderr: " ! [rejected] main -> main (fetch first)"}

	first := Classify(spec, result)
	for i := 0; i < 50; i++ {
		require.Equal(t, first.Kind, Classify(spec, result).Kind)
	}
}

func TestClassify_UnknownKeepsRawStderr(t *testing.T) {
	stderr := "fatal: something nobody has seen before"
	outcome := Classify(gitCmd("gc"), domain.ExecutionResult{ExitCode: 1, Stderr: stderr})

	require.Equal(t, domain.KindUnknown, outcome.Kind)
	assert.True(t, strings.Contains(outcome.Explanation, stderr),
		"unknown explanation must quote stderr verbatim")
}

func TestClassify_UnknownWithEmptyStderr(t *testing.T) {
	outcome := Classify(gitCmd("gc"), domain.ExecutionResult{ExitCode: 42})

	require.Equal(t, domain.KindUnknown, outcome.Kind)
	assert.NotEmpty(t, outcome.Explanation)
}
