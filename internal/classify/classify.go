// Package classify turns raw command results into user-facing outcomes.
//
// Classification is a pure function of (command identity, exit code,
// output text): the same inputs always produce the same kind. The rules
// live in one ordered table, first match wins, with command-specific
// rules declared before the generic success rule so that e.g. a commit
// that exits 0 with "nothing to commit" is not reported as a success.
package classify

import (
	"strings"

	"github.com/xvierd/gitcoach/internal/domain"
)

// rule is one entry of the classification table.
type rule struct {
	kind     domain.OutcomeKind
	matches  func(spec domain.CommandSpec, r domain.ExecutionResult) bool
	template string
}

// rules is evaluated top to bottom; declaration order breaks ties, most
// specific pattern first. The table is deliberately extensible: new
// stderr markers get a new entry, not a new conditional chain.
var rules = []rule{
	{
		kind: domain.KindTimeout,
		matches: func(_ domain.CommandSpec, r domain.ExecutionResult) bool {
			return r.TimedOut
		},
		template: timeoutExplanation,
	},
	{
		kind: domain.KindToolMissing,
		matches: func(_ domain.CommandSpec, r domain.ExecutionResult) bool {
			return r.StartFailed()
		},
		template: toolMissingExplanation,
	},
	{
		kind: domain.KindAuthFailure,
		matches: func(_ domain.CommandSpec, r domain.ExecutionResult) bool {
			return containsAny(r.Stderr,
				"authentication failed",
				"permission denied",
				"could not read username",
				"could not read password",
				"fatal: could not read",
			)
		},
		template: authFailureExplanation,
	},
	{
		kind: domain.KindMergeConflict,
		matches: func(_ domain.CommandSpec, r domain.ExecutionResult) bool {
			return containsAny(r.Stdout, "conflict (", "automatic merge failed") ||
				containsAny(r.Stderr, "conflict (", "fix conflicts")
		},
		template: mergeConflictExplanation,
	},
	{
		kind: domain.KindNotARepository,
		matches: func(_ domain.CommandSpec, r domain.ExecutionResult) bool {
			return strings.Contains(lower(r.Stderr), "not a git repository")
		},
		template: notARepositoryExplanation,
	},
	{
		kind: domain.KindNothingToCommit,
		matches: func(spec domain.CommandSpec, r domain.ExecutionResult) bool {
			if spec.Subcommand() != "commit" {
				return false
			}
			return containsAny(r.Stdout, "nothing to commit", "no changes added to commit") ||
				containsAny(r.Stderr, "nothing to commit")
		},
		template: nothingToCommitExplanation,
	},
	{
		// A push with no commits behind it fails with "src refspec";
		// for a learner that is the same situation as an empty commit.
		kind: domain.KindNothingToCommit,
		matches: func(spec domain.CommandSpec, r domain.ExecutionResult) bool {
			return spec.Subcommand() == "push" &&
				strings.Contains(lower(r.Stderr), "src refspec")
		},
		template: nothingToPushExplanation,
	},
	{
		kind: domain.KindDiverged,
		matches: func(spec domain.CommandSpec, r domain.ExecutionResult) bool {
			if spec.Subcommand() != "push" {
				return false
			}
			return containsAny(r.Stderr,
				"[rejected]",
				"non-fast-forward",
				"failed to push some refs",
				"fetch first",
			)
		},
		template: divergedExplanation,
	},
	{
		kind: domain.KindSuccess,
		matches: func(_ domain.CommandSpec, r domain.ExecutionResult) bool {
			return r.ExitCode == 0
		},
		template: successExplanation,
	},
}

// Classify maps an execution result to a named outcome with an attached
// plain-language explanation. It never fails: anything the table does
// not recognize becomes KindUnknown, with the raw stderr preserved
// verbatim so the user (or whoever helps them) can diagnose it.
func Classify(spec domain.CommandSpec, result domain.ExecutionResult) domain.Outcome {
	for _, r := range rules {
		if r.matches(spec, result) {
			return domain.Outcome{
				Kind:        r.kind,
				Raw:         result,
				Explanation: r.template,
			}
		}
	}
	return domain.Outcome{
		Kind:        domain.KindUnknown,
		Raw:         result,
		Explanation: unknownExplanation(result.Stderr),
	}
}

func lower(s string) string { return strings.ToLower(s) }

func containsAny(haystack string, needles ...string) bool {
	h := lower(haystack)
	for _, n := range needles {
		if strings.Contains(h, n) {
			return true
		}
	}
	return false
}
