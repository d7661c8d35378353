package gitexec

import (
	"context"
	"strings"

	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/ports"
)

// Prober checks the environment with lightweight git invocations. Every
// check is fail-safe: an execution fault reads as "check failed", so the
// result is always a complete snapshot even when git is absent.
type Prober struct {
	runner ports.CommandRunner
}

// Ensure Prober implements ports.EnvProber.
var _ ports.EnvProber = (*Prober)(nil)

// NewProber creates a prober that issues its checks through runner.
func NewProber(runner ports.CommandRunner) *Prober {
	return &Prober{runner: runner}
}

// Probe takes a fresh snapshot of the environment for workingDir. The
// snapshot is never cached: repository state can change between menu
// actions, so each guardrail check pays for its own probe.
func (p *Prober) Probe(ctx context.Context, workingDir string) domain.ProbeResult {
	var probe domain.ProbeResult

	probe.ToolInstalled, probe.ToolVersion = p.checkToolInstalled(ctx, workingDir)
	if !probe.ToolInstalled {
		return probe
	}

	probe.InsideRepository = p.checkInsideRepository(ctx, workingDir)
	if !probe.InsideRepository {
		return probe
	}

	probe.RemoteConfigured, probe.RemoteName = p.checkRemoteConfigured(ctx, workingDir)
	probe.Branch = p.currentBranch(ctx, workingDir)
	return probe
}

// checkToolInstalled runs the version query and reports whether it
// succeeded, along with the version line for display.
func (p *Prober) checkToolInstalled(ctx context.Context, dir string) (bool, string) {
	result := p.runner.Run(ctx, domain.NewGitCommand(dir, "--version"))
	if result.StartFailed() || result.TimedOut || result.ExitCode != 0 {
		return false, ""
	}
	return true, strings.TrimSpace(result.Stdout)
}

// checkInsideRepository classifies "not a repository" by exit code.
func (p *Prober) checkInsideRepository(ctx context.Context, dir string) bool {
	result := p.runner.Run(ctx, domain.NewGitCommand(dir, "rev-parse", "--is-inside-work-tree"))
	return result.ExitCode == 0
}

// checkRemoteConfigured treats empty remote-listing output as "no
// remote" and returns the first configured remote name.
func (p *Prober) checkRemoteConfigured(ctx context.Context, dir string) (bool, string) {
	result := p.runner.Run(ctx, domain.NewGitCommand(dir, "remote"))
	if result.ExitCode != 0 {
		return false, ""
	}
	names := strings.Fields(result.Stdout)
	if len(names) == 0 {
		return false, ""
	}
	return true, names[0]
}

// currentBranch returns the checked-out branch, or "main" when it can't
// be determined (fresh repository with no commits).
func (p *Prober) currentBranch(ctx context.Context, dir string) string {
	result := p.runner.Run(ctx, domain.NewGitCommand(dir, "branch", "--show-current"))
	branch := strings.TrimSpace(result.Stdout)
	if result.ExitCode != 0 || branch == "" {
		return "main"
	}
	return branch
}
