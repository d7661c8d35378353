package ports

import "context"

// RepoContext holds the repository details shown in lesson headers.
type RepoContext struct {
	Root      string
	Branch    string
	IsClean   bool
	Modified  []string
	Untracked []string
	Remote    string
	RemoteURL string
}

// RepoInspector reads repository context for display purposes.
// This is a driven port (implemented by adapters).
type RepoInspector interface {
	// Inspect scans the working directory for repository context.
	Inspect(ctx context.Context, workingDir string) (*RepoContext, error)
}
