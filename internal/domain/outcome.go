package domain

// OutcomeKind is the classified category assigned to a command's result.
type OutcomeKind string

const (
	KindSuccess         OutcomeKind = "success"
	KindNotARepository  OutcomeKind = "not_a_repository"
	KindAuthFailure     OutcomeKind = "auth_failure"
	KindMergeConflict   OutcomeKind = "merge_conflict"
	KindNothingToCommit OutcomeKind = "nothing_to_commit"
	KindDiverged        OutcomeKind = "diverged"
	KindToolMissing     OutcomeKind = "tool_missing"
	KindNoRemote        OutcomeKind = "no_remote"
	KindTimeout         OutcomeKind = "timeout"
	KindUnknown         OutcomeKind = "unknown"
)

// IsFailure reports whether the kind describes something that went wrong.
func (k OutcomeKind) IsFailure() bool {
	return k != KindSuccess
}

// Outcome is the only artifact the core exposes to the presentation
// layer: the classified kind, the raw result it was derived from, and a
// plain-language explanation ready to render. Guardrail-blocked steps
// produce the same shape as executed steps so the menu needs exactly one
// rendering path.
type Outcome struct {
	Kind        OutcomeKind
	Raw         ExecutionResult
	Explanation string

	// Blocked is true when a guardrail refused the step before any
	// process was spawned; Raw is zero-valued in that case.
	Blocked bool
}

// BlockedOutcome builds the synthetic Outcome a guardrail returns in
// place of executing the command.
func BlockedOutcome(kind OutcomeKind, explanation string) Outcome {
	return Outcome{Kind: kind, Explanation: explanation, Blocked: true}
}
