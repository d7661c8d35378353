package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xvierd/gitcoach/internal/adapters/tui"
	"github.com/xvierd/gitcoach/internal/domain"
	"github.com/xvierd/gitcoach/internal/lessons"
	"github.com/xvierd/gitcoach/internal/services"
)

// runLesson shows a lesson's intro and dispatches to its flow. Every
// flow funnels through presentStep, so guardrail-blocked steps and
// executed steps render identically.
func runLesson(ctx context.Context, lesson lessons.Lesson) error {
	tui.Explain(fmt.Sprintf("--- %s ---\n\n%s", lesson.Title, lesson.Intro), &appConfig.Theme)

	switch lesson.ID {
	case lessons.LessonInit:
		return flowInit(ctx, lesson)
	case lessons.LessonStatus:
		return flowStatus(ctx, lesson)
	case lessons.LessonCommit:
		return flowCommit(ctx, lesson)
	case lessons.LessonReadme:
		return flowReadme(ctx, lesson)
	case lessons.LessonRemote:
		return flowRemote(ctx, lesson)
	case lessons.LessonPush:
		return flowPush(ctx, lesson)
	case lessons.LessonLog:
		return flowLog(ctx, lesson)
	case lessons.LessonClone:
		return flowClone(ctx, lesson)
	default:
		return fmt.Errorf("unknown lesson: %s", lesson.ID)
	}
}

// presentStep runs one step through the coach and renders the result.
func presentStep(ctx context.Context, lesson lessons.Lesson, spec domain.CommandSpec) domain.Outcome {
	outcome := coachService.RunStep(ctx, session, lesson, spec)

	if !outcome.Blocked {
		tui.ShowCommand(spec.CommandLine(), &appConfig.Theme)
		tui.ShowRawOutput(outcome.Raw, services.FilterNoise(outcome.Raw.Stderr), &appConfig.Theme)
	}
	tui.ShowOutcome(outcome, &appConfig.Theme)
	return outcome
}

// flowInit creates a repository in a user-chosen folder, guarding
// against system paths and folders that are already repositories.
func flowInit(ctx context.Context, lesson lessons.Lesson) error {
	prompt := tui.RunTextPrompt("Project folder:", workingDir, &appConfig.Theme)
	if prompt.Aborted {
		return nil
	}

	path := prompt.Value
	if path == "" {
		path = workingDir
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if lessons.IsProtectedPath(path) {
		tui.Explain(fmt.Sprintf(`That path looks like a system folder:
  %s

You can't (and shouldn't) init a Git repo in a system directory.
Point this at YOUR project folder — the one with the files you
want to track.`, path), &appConfig.Theme)
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !tui.RunConfirm(fmt.Sprintf("'%s' doesn't exist. Create it?", path), &appConfig.Theme) {
			return nil
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if info, err := os.Stat(filepath.Join(path, ".git")); err == nil && info.IsDir() {
		tui.Explain(fmt.Sprintf("This folder is already a Git repo. No need to init again.\nPath: %s", path), &appConfig.Theme)
		return nil
	}

	outcome := presentStep(ctx, lesson, lesson.BuildCommand(path))
	if outcome.Kind != domain.KindSuccess {
		return nil
	}

	workingDir = path
	offerGitignore(path)

	tui.Explain(fmt.Sprintf(`Done! Git is now tracking: %s

Git is watching this folder now, but ONLY on your machine.
Nothing has been uploaded. GitHub doesn't know about this yet.
Next: "Check status" to see what Git sees.`, path), &appConfig.Theme)
	return nil
}

// offerGitignore writes a starter .gitignore on consent.
func offerGitignore(repoPath string) {
	gitignorePath := filepath.Join(repoPath, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		return
	}

	tui.Explain(`One more thing — a .gitignore file tells Git which files to
IGNORE (not track). Without one, Git will try to save everything
in this folder, including junk like caches, dependency trees,
and .env files full of secrets.`, &appConfig.Theme)

	if !tui.RunConfirm("Create a .gitignore with common defaults?", &appConfig.Theme) {
		return
	}
	if err := os.WriteFile(gitignorePath, []byte(lessons.StarterGitignore), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write .gitignore: %v\n", err)
		return
	}
	fmt.Printf("  Created: %s\n", gitignorePath)
}

// flowStatus shows git status and interprets the porcelain buckets.
func flowStatus(ctx context.Context, lesson lessons.Lesson) error {
	outcome := presentStep(ctx, lesson, lesson.BuildCommand(workingDir))
	if outcome.Kind != domain.KindSuccess {
		return nil
	}

	porcelain := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "status", "--porcelain"))
	interpretPorcelain(porcelain.Stdout)
	return nil
}

// interpretPorcelain explains the untracked/modified/staged buckets in
// the short-status output.
func interpretPorcelain(porcelain string) {
	lines := strings.Split(strings.TrimSpace(porcelain), "\n")
	if strings.TrimSpace(porcelain) == "" {
		tui.Explain(`Everything is clean — all your files match your last save
point. There's nothing new to commit right now.`, &appConfig.Theme)
		return
	}

	var hasUntracked, hasModified, hasStaged bool
	for _, line := range lines {
		if strings.HasPrefix(line, "?") {
			hasUntracked = true
		}
		if len(line) > 1 && line[1] == 'M' {
			hasModified = true
		}
		if len(line) > 0 && strings.ContainsRune("MADRC", rune(line[0])) {
			hasStaged = true
		}
	}

	var b strings.Builder
	b.WriteString("WHAT THIS MEANS:\n")
	if hasUntracked {
		b.WriteString("- 'Untracked' files are new files Git can see but hasn't saved yet.\n")
	}
	if hasModified {
		b.WriteString("- 'Modified' files changed since your last save point but aren't staged.\n")
	}
	if hasStaged {
		b.WriteString("- 'Staged' files are ready to be committed (saved).\n")
	}
	b.WriteString("\nTo save these changes, use \"Stage and commit changes\" from the menu.")
	tui.Explain(b.String(), &appConfig.Theme)
}

// flowCommit stages changes (all of them, or one named path) and
// commits with a user-supplied message.
func flowCommit(ctx context.Context, lesson lessons.Lesson) error {
	porcelain := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "status", "--porcelain"))
	if porcelain.ExitCode == 0 && strings.TrimSpace(porcelain.Stdout) == "" {
		tui.Explain(`Nothing to commit — your working directory is clean.
Make some changes first!`, &appConfig.Theme)
		return nil
	}

	short := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "status", "--short"))
	tui.Explain(`STEP 1 of 2 — STAGING

Here's what Git has noticed, in shorthand:
  ??  = Untracked (a new file Git hasn't saved before)
  M   = Modified  (changed since your last save)
  A   = Staged    (already marked for the next save)

`+short.Stdout, &appConfig.Theme)

	choice := tui.RunPicker("Stage which changes?", []tui.PickerItem{
		{Label: "Stage all changes", Desc: "Usually the right call"},
		{Label: "Stage a specific file", Desc: "Pick one file or path"},
		{Label: "Return to menu"},
	}, "", &appConfig.Theme)
	if choice.Aborted || choice.Index == 2 {
		return nil
	}

	target := "."
	if choice.Index == 1 {
		prompt := tui.RunTextPrompt("File name (or path) to stage:", "", &appConfig.Theme)
		if prompt.Aborted || prompt.Value == "" {
			return nil
		}
		target = prompt.Value
	}

	add := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "add", target))
	if add.ExitCode != 0 {
		tui.ShowRawOutput(add, services.FilterNoise(add.Stderr), &appConfig.Theme)
		return nil
	}

	staged := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "status", "--short"))
	tui.Explain(`STEP 2 of 2 — COMMITTING

Here's what's staged and ready to be saved:

`+staged.Stdout+`

Now you need a commit message — a short label describing what
this save point contains. Good messages say WHAT changed and WHY.`, &appConfig.Theme)

	prompt := tui.RunTextPrompt("Commit message:", "e.g. Add player health bar to HUD", &appConfig.Theme)
	if prompt.Aborted || prompt.Value == "" {
		fmt.Println("  No message entered. Cancelled.")
		return nil
	}

	outcome := presentStep(ctx, lesson, lesson.BuildCommand(workingDir, prompt.Value))
	if outcome.Kind == domain.KindSuccess {
		tui.Explain(`Commit created!

Your changes are saved, but ONLY on your machine. GitHub still
doesn't have them. When you're ready, use "Push to GitHub" to
upload your snapshots.`, &appConfig.Theme)
	}
	return nil
}

// flowReadme builds a README.md from guided prompts and writes it at
// the repository root.
func flowReadme(ctx context.Context, lesson lessons.Lesson) error {
	toplevel := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "rev-parse", "--show-toplevel"))
	if toplevel.ExitCode != 0 {
		tui.Explain(`You're not inside a Git repository. Use "Initialize a new
repo" first, then come back to create your README.`, &appConfig.Theme)
		return nil
	}
	repoRoot := strings.TrimSpace(toplevel.Stdout)

	var answers lessons.ReadmeAnswers
	fields := []struct {
		title string
		dest  *string
	}{
		{"Project name:", &answers.ProjectName},
		{"One-line description:", &answers.Tagline},
		{"The Problem — what gap or need existed?", &answers.Problem},
		{"The Solution — what does this project do?", &answers.Solution},
		{"How It Works — high-level architecture:", &answers.HowItWorks},
		{"Results — measurable impact:", &answers.Results},
		{"Tech Stack — languages, libraries, APIs:", &answers.TechStack},
		{"Status (Active / Complete / In Progress):", &answers.Status},
	}
	for _, f := range fields {
		prompt := tui.RunTextPrompt(f.title, "Enter to skip", &appConfig.Theme)
		if prompt.Aborted {
			return nil
		}
		*f.dest = prompt.Value
	}

	content := lessons.BuildReadme(answers)
	tui.Explain("README PREVIEW:\n\n"+content, &appConfig.Theme)

	if !tui.RunConfirm("Write this to README.md?", &appConfig.Theme) {
		fmt.Println("  Cancelled. Nothing was written.")
		return nil
	}

	readmePath := filepath.Join(repoRoot, "README.md")
	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}

	tui.Explain(fmt.Sprintf(`README.md created at: %s

BEFORE YOU PUSH: use "Stage and commit changes" to save the
README into your repo history, then "Push to GitHub".`, readmePath), &appConfig.Theme)
	return nil
}

// flowRemote links the repository to a hosted URL.
func flowRemote(ctx context.Context, lesson lessons.Lesson) error {
	probe := coachService.Probe(ctx, workingDir)
	if probe.RemoteConfigured {
		tui.Explain(fmt.Sprintf(`This repo is already connected: remote '%s' exists.
Use "Push to GitHub" to upload your commits.`, probe.RemoteName), &appConfig.Theme)
		return nil
	}

	prompt := tui.RunTextPrompt("GitHub repo URL:", "https://github.com/you/your-repo.git", &appConfig.Theme)
	if prompt.Aborted || prompt.Value == "" {
		return nil
	}

	outcome := presentStep(ctx, lesson, lesson.BuildCommand(workingDir, appConfig.Git.DefaultRemote, prompt.Value))
	if outcome.Kind == domain.KindSuccess {
		tui.Explain(`Linked! Your local repo now knows where to upload.
Next: "Push to GitHub".`, &appConfig.Theme)
	}
	return nil
}

// flowPush uploads local commits to the configured remote.
func flowPush(ctx context.Context, lesson lessons.Lesson) error {
	probe := coachService.Probe(ctx, workingDir)

	tui.Explain(fmt.Sprintf("Uploading your commits to GitHub (branch: %s):", probe.Branch), &appConfig.Theme)
	outcome := presentStep(ctx, lesson, lesson.BuildCommand(workingDir, appConfig.Git.DefaultRemote, probe.Branch))
	if outcome.Kind == domain.KindSuccess {
		tui.Explain(`Done! Your code is now live on GitHub.

Anyone with the link can now see your project, your code, and
your README. From now on, whenever you make changes: status →
commit → push.`, &appConfig.Theme)
	}
	return nil
}

// flowLog shows recent history once the repo has at least one commit.
func flowLog(ctx context.Context, lesson lessons.Lesson) error {
	check := coachService.Execute(ctx, domain.NewGitCommand(workingDir, "log", "--oneline", "-1"))
	if check.ExitCode != 0 && !strings.Contains(strings.ToLower(check.Stderr), "not a git repository") {
		tui.Explain(`No commits yet. Make your first commit using "Stage and
commit changes".`, &appConfig.Theme)
		return nil
	}

	presentStep(ctx, lesson, lesson.BuildCommand(workingDir))
	return nil
}

// flowClone downloads a repository into an optional destination folder.
func flowClone(ctx context.Context, lesson lessons.Lesson) error {
	urlPrompt := tui.RunTextPrompt("Repo URL to clone:", "", &appConfig.Theme)
	if urlPrompt.Aborted || urlPrompt.Value == "" {
		return nil
	}

	destPrompt := tui.RunTextPrompt("Clone into which folder?", "Enter for current directory", &appConfig.Theme)
	if destPrompt.Aborted {
		return nil
	}

	args := []string{urlPrompt.Value}
	if destPrompt.Value != "" {
		args = append(args, destPrompt.Value)
	}

	outcome := presentStep(ctx, lesson, lesson.BuildCommand(workingDir, args...))
	if outcome.Kind == domain.KindSuccess {
		tui.Explain(`You now have a full copy of the repo — all the files AND the
complete version history. Navigate into the new folder to start
working with it.`, &appConfig.Theme)
	}
	return nil
}
