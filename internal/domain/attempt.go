package domain

import "time"

// StepState tracks a single lesson step through its lifecycle.
// Transitions: Pending -> Blocked (guardrail refused) or
// Pending -> Executing -> Classified. Blocked and Classified are
// terminal; re-offering a fixed step is a fresh Attempt.
type StepState string

const (
	StepPending    StepState = "pending"
	StepBlocked    StepState = "blocked"
	StepExecuting  StepState = "executing"
	StepClassified StepState = "classified"
)

// Attempt is one execution of a lesson step: the command that was (or
// would have been) run, the state it ended in, and the classified outcome.
type Attempt struct {
	ID        string
	SessionID string
	LessonID  string
	State     StepState
	Command   string
	Kind      OutcomeKind
	ExitCode  int
	TimedOut  bool
	StartedAt time.Time
	EndedAt   time.Time
}

// NewAttempt creates a pending attempt for the given lesson step.
func NewAttempt(sessionID, lessonID string, spec CommandSpec) *Attempt {
	return &Attempt{
		ID:        generateID(),
		SessionID: sessionID,
		LessonID:  lessonID,
		State:     StepPending,
		Command:   spec.CommandLine(),
		StartedAt: time.Now(),
	}
}

// Block records a guardrail refusal. No process was spawned.
func (a *Attempt) Block(outcome Outcome) {
	a.State = StepBlocked
	a.Kind = outcome.Kind
	a.EndedAt = time.Now()
}

// BeginExecution marks the attempt as running.
func (a *Attempt) BeginExecution() {
	a.State = StepExecuting
}

// Classify records the executed command's classified outcome.
func (a *Attempt) Classify(outcome Outcome) {
	a.State = StepClassified
	a.Kind = outcome.Kind
	a.ExitCode = outcome.Raw.ExitCode
	a.TimedOut = outcome.Raw.TimedOut
	a.EndedAt = time.Now()
}

// Terminal reports whether the attempt reached a terminal state.
func (a *Attempt) Terminal() bool {
	return a.State == StepBlocked || a.State == StepClassified
}
