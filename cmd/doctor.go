package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/adapters/tui"
	"github.com/xvierd/gitcoach/internal/domain"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment",
	Long: `Probe the environment the way every lesson does before running:
is git installed, is this directory a repository, is a remote
configured. Useful when a lesson keeps getting blocked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		probe := coachService.Probe(ctx, workingDir)

		if jsonOutput {
			return outputJSON(map[string]interface{}{
				"tool_installed":    probe.ToolInstalled,
				"tool_version":      probe.ToolVersion,
				"inside_repository": probe.InsideRepository,
				"remote_configured": probe.RemoteConfigured,
				"remote_name":       probe.RemoteName,
				"branch":            probe.Branch,
			})
		}

		tui.Explain(renderProbe(probe), &appConfig.Theme)
		return nil
	},
}

// renderProbe formats a probe snapshot as a human-readable checklist.
func renderProbe(probe domain.ProbeResult) string {
	check := func(ok bool, yes, no string) string {
		if ok {
			return "[ok] " + yes
		}
		return "[--] " + no
	}

	out := "ENVIRONMENT CHECK:\n\n"
	out += check(probe.ToolInstalled,
		fmt.Sprintf("Git is installed (%s)", probe.ToolVersion),
		"Git is not installed — see https://git-scm.com/downloads") + "\n"

	if !probe.ToolInstalled {
		return out
	}

	out += check(probe.InsideRepository,
		"This directory is a Git repository",
		"Not a repository — run the \"Initialize a new repo\" lesson") + "\n"

	if !probe.InsideRepository {
		return out
	}

	out += check(probe.RemoteConfigured,
		fmt.Sprintf("Remote '%s' is configured", probe.RemoteName),
		"No remote — run the \"Connect to GitHub\" lesson before pushing") + "\n"
	out += fmt.Sprintf("     Current branch: %s", probe.Branch)
	return out
}
