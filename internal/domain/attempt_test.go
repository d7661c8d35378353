package domain

import "testing"

func TestAttemptLifecycle_Blocked(t *testing.T) {
	attempt := NewAttempt("session-1", "commit", NewGitCommand("/tmp/project", "commit", "-m", "msg"))

	if attempt.State != StepPending {
		t.Fatalf("new attempt state = %s, want pending", attempt.State)
	}
	if attempt.Terminal() {
		t.Error("pending attempt must not be terminal")
	}

	attempt.Block(BlockedOutcome(KindNotARepository, "not a repo"))

	if attempt.State != StepBlocked {
		t.Errorf("state = %s, want blocked", attempt.State)
	}
	if attempt.Kind != KindNotARepository {
		t.Errorf("kind = %s", attempt.Kind)
	}
	if !attempt.Terminal() {
		t.Error("blocked attempt is terminal")
	}
	if attempt.EndedAt.IsZero() {
		t.Error("blocking must stamp an end time")
	}
}

func TestAttemptLifecycle_Classified(t *testing.T) {
	attempt := NewAttempt("session-1", "push", NewGitCommand("/tmp/project", "push"))

	attempt.BeginExecution()
	if attempt.State != StepExecuting {
		t.Fatalf("state = %s, want executing", attempt.State)
	}

	attempt.Classify(Outcome{
		Kind: KindDiverged,
		Raw:  ExecutionResult{ExitCode: 1, Stderr: "[rejected]", TimedOut: false},
	})

	if attempt.State != StepClassified {
		t.Errorf("state = %s, want classified", attempt.State)
	}
	if attempt.Kind != KindDiverged || attempt.ExitCode != 1 {
		t.Errorf("classified attempt = %s exit %d", attempt.Kind, attempt.ExitCode)
	}
	if !attempt.Terminal() {
		t.Error("classified attempt is terminal")
	}
}

func TestNewAttempt_CapturesCommandLine(t *testing.T) {
	attempt := NewAttempt("s", "commit", NewGitCommand("/tmp/project", "commit", "-m", "first"))
	if attempt.Command != "git commit -m first" {
		t.Errorf("Command = %q", attempt.Command)
	}
	if attempt.ID == "" {
		t.Error("attempt must get an identifier")
	}
}

func TestOutcomeKindIsFailure(t *testing.T) {
	if KindSuccess.IsFailure() {
		t.Error("success is not a failure")
	}
	for _, kind := range []OutcomeKind{KindUnknown, KindTimeout, KindMergeConflict, KindNoRemote} {
		if !kind.IsFailure() {
			t.Errorf("%s should count as failure", kind)
		}
	}
}

func TestLearnSessionCounting(t *testing.T) {
	session := NewLearnSession()
	if session.ID == "" {
		t.Fatal("session must get an identifier")
	}

	session.RecordAttempt()
	session.RecordAttempt()
	if session.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", session.Attempts)
	}
}
