package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/adapters/tui"
	"github.com/xvierd/gitcoach/internal/config"
	"github.com/xvierd/gitcoach/internal/lessons"
)

// runMenu implements the interactive lesson loop for a bare "gitcoach".
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	probe := coachService.Probe(ctx, workingDir)
	if !probe.ToolInstalled {
		tui.Explain(installGitHelp, &appConfig.Theme)
		return fmt.Errorf("git is not installed")
	}

	if appConfig.FirstRun {
		showWelcome(probe.ToolVersion)
		appConfig.FirstRun = false
		_ = config.Save(appConfig)
	}

	curriculum := lessons.Curriculum()
	for {
		items := make([]tui.PickerItem, 0, len(curriculum)+1)
		for i, l := range curriculum {
			label := l.Title
			if i == 0 {
				label += " ← start here"
			}
			items = append(items, tui.PickerItem{Label: label, Desc: l.Blurb})
		}
		items = append(items, tui.PickerItem{Label: "Exit"})

		footer := "Lessons are listed in the order you'd typically use them."
		result := tui.RunPicker("gitcoach — what do you want to do?", items, footer, &appConfig.Theme)
		if result.Aborted || result.Index == len(curriculum) {
			fmt.Println("\n  See you next time. Keep committing.")
			return nil
		}

		if err := runLesson(ctx, curriculum[result.Index]); err != nil {
			return err
		}
	}
}

const installGitHelp = `Git is not installed, or your terminal can't find it.
You need Git before this tool can do anything.

HOW TO INSTALL:
  1. Go to https://git-scm.com/downloads
  2. Download the installer for your operating system
  3. Run the installer (the default settings are fine)
  4. Close and reopen your terminal
  5. Run gitcoach again`

// showWelcome prints the first-launch explanation of Git, GitHub, and
// this tool. It shows once; the config remembers.
func showWelcome(gitVersion string) {
	tui.Explain(fmt.Sprintf(`WELCOME TO GITCOACH
(%s detected)

WHAT IS GIT?
Git is a version control system. Think of it as an unlimited
'undo history' for your entire project. Every time you save a
snapshot (called a 'commit'), Git remembers exactly what every
file looked like at that moment.

WHAT IS GITHUB?
GitHub is a website that stores your Git snapshots online. Git
is the tool on your computer; GitHub is the cloud backup. You
use Git locally, then 'push' your work up when you're ready.

WHAT DOES THIS TOOL DO?
gitcoach walks you through Git step by step. Before every
action, it explains what's about to happen and why. After every
action, it shows you the real Git command that ran.

The goal: you learn Git by using it, not by memorizing
commands. Eventually, you won't need this tool at all.`, gitVersion), &appConfig.Theme)
}
