// Package services contains the application services that orchestrate
// the domain, ports, and adapters.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/xvierd/gitcoach/internal/classify"
	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/lessons"
	"github.com/xvierd/gitcoach/internal/ports"
)

// SlowNotifier is the optional hook the coach calls when a command took
// longer than the configured threshold.
type SlowNotifier interface {
	NotifyCommandFinished(command string, took time.Duration, succeeded bool) error
}

// CoachService runs one lesson step end to end: guardrail check,
// execution, classification, and history recording. It is the only
// place the four core pieces meet; the menu layer calls it once per
// user-selected action and renders whatever Outcome comes back.
type CoachService struct {
	runner        ports.CommandRunner
	prober        ports.EnvProber
	storage       ports.Storage
	notifier      SlowNotifier
	slowThreshold time.Duration
}

// NewCoachService creates a coach with the required dependencies.
func NewCoachService(runner ports.CommandRunner, prober ports.EnvProber, storage ports.Storage) *CoachService {
	return &CoachService{
		runner:  runner,
		prober:  prober,
		storage: storage,
	}
}

// SetSlowNotifier wires the completion notification for slow commands.
func (s *CoachService) SetSlowNotifier(n SlowNotifier, threshold time.Duration) {
	s.notifier = n
	s.slowThreshold = threshold
}

// Probe takes a fresh environment snapshot for workingDir.
func (s *CoachService) Probe(ctx context.Context, workingDir string) domain.ProbeResult {
	return s.prober.Probe(ctx, workingDir)
}

// Authorize applies a lesson's declarative preconditions against a probe
// snapshot. When one fails it returns the synthetic blocked Outcome the
// menu should render; the command executor is never touched.
func (s *CoachService) Authorize(lesson lessons.Lesson, probe domain.ProbeResult) (domain.Outcome, bool) {
	req := lesson.Requires

	if req.Tool && !probe.ToolInstalled {
		return domain.BlockedOutcome(domain.KindToolMissing, classify.BlockedToolMissing()), false
	}
	if req.Repo && !probe.InsideRepository {
		return domain.BlockedOutcome(domain.KindNotARepository, classify.BlockedNotARepository()), false
	}
	if req.Remote && !probe.RemoteConfigured {
		return domain.BlockedOutcome(domain.KindNoRemote, classify.BlockedNoRemote()), false
	}

	return domain.Outcome{}, true
}

// RunStep executes one lesson step. The returned Outcome is terminal
// either way: Blocked when a guardrail refused, Classified otherwise.
func (s *CoachService) RunStep(ctx context.Context, session *domain.LearnSession, lesson lessons.Lesson, spec domain.CommandSpec) domain.Outcome {
	attempt := domain.NewAttempt(session.ID, lesson.ID, spec)

	probe := s.prober.Probe(ctx, spec.WorkingDir)
	if blocked, ok := s.Authorize(lesson, probe); !ok {
		attempt.Block(blocked)
		s.record(ctx, session, attempt)
		return blocked
	}

	attempt.BeginExecution()
	started := time.Now()
	result := s.runner.Run(ctx, spec)
	took := time.Since(started)

	outcome := classify.Classify(spec, result)
	attempt.Classify(outcome)
	s.record(ctx, session, attempt)

	if s.notifier != nil && s.slowThreshold > 0 && took >= s.slowThreshold {
		_ = s.notifier.NotifyCommandFinished(spec.CommandLine(), took, outcome.Kind == domain.KindSuccess)
	}

	return outcome
}

// Execute runs a raw command with no guardrail and no recording. The
// menu uses it for auxiliary queries (porcelain status, toplevel path)
// whose output feeds prompts rather than lessons.
func (s *CoachService) Execute(ctx context.Context, spec domain.CommandSpec) domain.ExecutionResult {
	return s.runner.Run(ctx, spec)
}

// record saves a terminal attempt; history is best-effort and never
// blocks the lesson flow.
func (s *CoachService) record(ctx context.Context, session *domain.LearnSession, attempt *domain.Attempt) {
	session.RecordAttempt()
	if s.storage == nil {
		return
	}
	_ = s.storage.Attempts().Save(ctx, attempt)
}

// FilterNoise drops stderr lines that would confuse a beginner without
// being actionable, currently the Windows line-ending warnings. The
// classifier always sees the raw text; only the display goes through
// this filter.
func FilterNoise(stderr string) string {
	if stderr == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(stderr, "\n") {
		if strings.Contains(line, "LF will be replaced by CRLF") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
