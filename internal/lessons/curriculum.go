// Package lessons defines the curriculum: every lesson's copy, the git
// command it teaches, and the environment it requires before it may run.
// The menu presents lessons in the order declared here — the order a
// first-time user would actually need them.
package lessons

import "github.com/xvierd/gitcoach/internal/domain"

// Requirements names the probe fields that must be true before a
// lesson's command is allowed to spend a process invocation.
type Requirements struct {
	Tool   bool
	Repo   bool
	Remote bool
}

// Lesson is one entry of the curriculum.
type Lesson struct {
	ID       string
	Title    string
	Blurb    string
	Intro    string
	Requires Requirements
}

// BuildCommand returns the invocation a lesson runs in dir with the
// given extra arguments (commit message, clone URL, and so on). Lessons
// whose argv depends on user input take it through args; the builder
// keeps everything an argument vector, never a shell string.
func (l Lesson) BuildCommand(dir string, args ...string) domain.CommandSpec {
	base := baseArgs[l.ID]
	return domain.NewGitCommand(dir, append(append([]string{}, base...), args...)...)
}

// baseArgs maps lesson IDs to the fixed front of their argument vector.
var baseArgs = map[string][]string{
	LessonInit:   {"init"},
	LessonStatus: {"status"},
	LessonCommit: {"commit", "-m"},
	LessonRemote: {"remote", "add"},
	LessonPush:   {"push", "-u"},
	LessonLog:    {"log", "--oneline", "--graph", "-10"},
	LessonClone:  {"clone"},
}

// Lesson identifiers, stable across releases (they key stored attempts).
const (
	LessonInit   = "init"
	LessonStatus = "status"
	LessonCommit = "commit"
	LessonReadme = "readme"
	LessonRemote = "remote"
	LessonPush   = "push"
	LessonLog    = "log"
	LessonClone  = "clone"
)

// Curriculum returns every lesson in teaching order.
func Curriculum() []Lesson {
	return []Lesson{
		{
			ID:       LessonInit,
			Title:    "Initialize a new repo",
			Blurb:    "Set up Git tracking in a project folder. This is always the first step.",
			Requires: Requirements{Tool: true},
			Intro: `'git init' creates a hidden .git folder in a project directory.

That .git folder is where Git stores all your version history —
every save point (commit) you'll ever make lives in there. You
never need to open or edit it directly. Git manages it for you.

Think of it as telling Git: "Start watching this folder."

Nothing gets uploaded anywhere. This is purely local — just Git
setting up its tracking system on your machine.`,
		},
		{
			ID:       LessonStatus,
			Title:    "Check status",
			Blurb:    "See what files have changed since your last save point.",
			Requires: Requirements{Tool: true, Repo: true},
			Intro: `'git status' shows you what's changed since your last commit.

You'll see files in three categories:
  - Staged:     Ready to be committed (in the box, ready to ship)
  - Modified:   Changed but not staged yet
  - Untracked:  Brand new files Git hasn't seen before`,
		},
		{
			ID:       LessonCommit,
			Title:    "Stage and commit changes",
			Blurb:    "Select changes and save a snapshot with a descriptive label.",
			Requires: Requirements{Tool: true, Repo: true},
			Intro: `This is a two-step process:

1. STAGE (git add):  Pick which changes to include in your next
   save. Think of it as putting items into a box.

2. COMMIT (git commit):  Seal the box with a label describing
   what's inside. This creates a permanent save point.

You can't commit without staging first — Git needs you to be
intentional about what goes into each save point.`,
		},
		{
			ID:       LessonReadme,
			Title:    "Create a README",
			Blurb:    "Build the front page of your project — the first thing people see.",
			Requires: Requirements{Tool: true, Repo: true},
			Intro: `The README.md is the front page of your project on GitHub.
It's the first thing recruiters, hiring managers, and other
developers see when they visit your repo.

This walks you through creating one that tells the STORY of
your project — not just what it does, but what problem it
solves and what impact it had.`,
		},
		{
			ID:       LessonRemote,
			Title:    "Connect to GitHub",
			Blurb:    "Link your local repo to a hosted copy so you can upload.",
			Requires: Requirements{Tool: true, Repo: true},
			Intro: `Your local repo doesn't know where to upload to yet. A
'remote' is that connection — the first one is always named
'origin', Git's default name for "the original place this
uploads to". You only set this up once per project.

Create an empty repository on github.com/new (no README, no
.gitignore — we handle those locally), copy its URL, and paste
it here.`,
		},
		{
			ID:       LessonPush,
			Title:    "Push to GitHub",
			Blurb:    "Upload your saved snapshots to your GitHub profile.",
			Requires: Requirements{Tool: true, Repo: true, Remote: true},
			Intro: `Right now, your project and its save history only exist on
your computer. If your hard drive dies, it's gone.

'git push' uploads your local commits to GitHub, which stores a
copy of your project online. This backs up your work and makes
it visible on your profile.

Think of it as syncing your local saves to an online backup.`,
		},
		{
			ID:       LessonLog,
			Title:    "View commit history",
			Blurb:    "See a timeline of every snapshot you've saved.",
			Requires: Requirements{Tool: true, Repo: true},
			Intro: `'git log' shows your past commits in reverse order — newest
first. Each entry shows a unique ID (hash), who made it, when,
and the commit message.

Think of it as a timeline of every save you've ever made.`,
		},
		{
			ID:       LessonClone,
			Title:    "Clone a repo",
			Blurb:    "Download an existing project from GitHub to your machine.",
			Requires: Requirements{Tool: true},
			Intro: `'git clone' downloads a complete copy of a repository from
GitHub (or any Git host) to your machine. You get all the files
AND the full version history.

This is how you grab someone else's project, or pull down your
own repo onto a new machine.`,
		},
	}
}

// ByID returns the lesson with the given ID, or false when none matches.
func ByID(id string) (Lesson, bool) {
	for _, l := range Curriculum() {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}
