package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/adapters/tui"
	"github.com/xvierd/gitcoach/internal/ports"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show repository context",
	Long:  `Display the current repository's branch, remote, and changed files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		info, err := inspector.Inspect(ctx, workingDir)
		if err != nil {
			if jsonOutput {
				return outputJSON(map[string]interface{}{"repository": nil})
			}
			tui.Explain(`You're not inside a Git repository. Use "Initialize a new
repo" from the menu first.`, &appConfig.Theme)
			return nil
		}

		if jsonOutput {
			return outputStatusJSON(info)
		}

		tui.Explain(renderRepoContext(info), &appConfig.Theme)
		return nil
	},
}

// renderRepoContext formats the repository context for humans.
func renderRepoContext(info *ports.RepoContext) string {
	branch := info.Branch
	if branch == "" {
		branch = "(no commits yet)"
	}
	remote := "(not connected)"
	if info.Remote != "" {
		remote = fmt.Sprintf("%s → %s", info.Remote, info.RemoteURL)
	}

	out := fmt.Sprintf(`Repository: %s
Branch:     %s
Remote:     %s`, info.Root, branch, remote)

	if info.IsClean {
		return out + "\n\nEverything is clean — all files match your last save point."
	}

	if len(info.Modified) > 0 {
		out += fmt.Sprintf("\n\nModified (%d):", len(info.Modified))
		for _, f := range info.Modified {
			out += "\n  " + f
		}
	}
	if len(info.Untracked) > 0 {
		out += fmt.Sprintf("\n\nUntracked (%d):", len(info.Untracked))
		for _, f := range info.Untracked {
			out += "\n  " + f
		}
	}
	return out
}

// outputStatusJSON outputs the repository context in JSON format
func outputStatusJSON(info *ports.RepoContext) error {
	result := map[string]interface{}{
		"repository": map[string]interface{}{
			"root":       info.Root,
			"branch":     info.Branch,
			"is_clean":   info.IsClean,
			"modified":   info.Modified,
			"untracked":  info.Untracked,
			"remote":     info.Remote,
			"remote_url": info.RemoteURL,
		},
	}
	return outputJSON(result)
}

// outputJSON writes indented JSON to stdout.
func outputJSON(v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(jsonData))
	return nil
}
