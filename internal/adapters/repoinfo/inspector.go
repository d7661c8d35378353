// Package repoinfo reads repository context using go-git. The lesson
// header shows this context (branch, dirty files, remote) without
// spending a child-process invocation; the executable-git layer stays in
// gitexec.
package repoinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/xvierd/gitcoach/internal/ports"
)

// Inspector implements the ports.RepoInspector interface using go-git.
type Inspector struct{}

// NewInspector creates a new repository inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Ensure Inspector implements ports.RepoInspector.
var _ ports.RepoInspector = (*Inspector)(nil)

// Inspect scans the working directory for repository context.
func (i *Inspector) Inspect(ctx context.Context, workingDir string) (*ports.RepoContext, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repoPath, err := findGitRepo(workingDir)
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	info := &ports.RepoContext{Root: repoPath}

	// A fresh repository has no HEAD until the first commit; the
	// context is still useful without a branch name.
	if head, err := repo.Head(); err == nil {
		branch := head.Name().Short()
		if branch == "HEAD" {
			branch = "HEAD detached"
		}
		info.Branch = branch
	}

	if remotes, err := repo.Remotes(); err == nil && len(remotes) > 0 {
		cfg := remotes[0].Config()
		info.Remote = cfg.Name
		if len(cfg.URLs) > 0 {
			info.RemoteURL = cfg.URLs[0]
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	info.IsClean = status.IsClean()
	for file, s := range status {
		if s.Staging == git.Untracked && s.Worktree == git.Unmodified {
			continue
		}
		if s.Worktree == git.Untracked {
			info.Untracked = append(info.Untracked, file)
		} else {
			info.Modified = append(info.Modified, file)
		}
	}

	return info, nil
}

// findGitRepo traverses up the directory tree to find a .git directory.
func findGitRepo(startPath string) (string, error) {
	currentPath := startPath

	for {
		gitPath := filepath.Join(currentPath, ".git")
		info, err := os.Stat(gitPath)
		if err == nil && info.IsDir() {
			return currentPath, nil
		}

		// A worktree checkout keeps a .git file pointing at the real dir.
		if err == nil && !info.IsDir() {
			content, err := os.ReadFile(gitPath)
			if err == nil && strings.HasPrefix(string(content), "gitdir: ") {
				return currentPath, nil
			}
		}

		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}

	return "", fmt.Errorf("no .git directory found")
}
