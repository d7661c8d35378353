package classify

import "fmt"

// Explanation templates are static text: no control flow, no
// substitution beyond the raw stderr appended to the unknown case.
// They are written for someone who has never used git before.

const successExplanation = `That worked. Git did exactly what the lesson described,
and the output above is its confirmation.`

const toolMissingExplanation = `Git is not installed, or your terminal can't find it.

HOW TO FIX IT:
  1. Go to https://git-scm.com/downloads
  2. Download the installer for your operating system
  3. Run it (the default settings are fine)
  4. Close and reopen your terminal, then try this step again`

const timeoutExplanation = `The command ran too long and was stopped.

This usually means git was waiting for input it could never get —
most often a username/password prompt. Nothing was left half-done;
you can safely try the step again once the cause is fixed.`

const notARepositoryExplanation = `This folder is not a Git repository, so Git has nothing
to work with here.

WHAT TO DO:
  Use the "Initialize a new repo" lesson first — it sets up Git
  tracking in your project folder. Then come back to this step.`

const authFailureExplanation = `GitHub (or your Git host) refused to let you in. This is an
authentication problem, not a problem with your code.

WHAT TO DO:
  A browser window may have opened asking you to sign in — follow
  it. If not, run the same command in a regular terminal once; a
  login prompt should appear. After you sign in, future pushes
  from this tool will work automatically.`

const mergeConflictExplanation = `Git found overlapping changes it can't combine on its own.
The files listed above contain conflict markers (<<<<<<< and
>>>>>>>) showing both versions.

WHAT TO DO:
  Open each listed file, pick the lines you want to keep, delete
  the marker lines, then stage and commit the result.`

const nothingToCommitExplanation = `There is nothing new to save. Every file already matches your
last commit, so Git has no changes to record.

Make an edit to one of your files first, then come back and
commit again.`

const nothingToPushExplanation = `The push failed because there is nothing to push yet — this
repository has no commits.

WHAT TO DO:
  Use the "Stage and commit changes" lesson to create your first
  save point, then push again.`

const divergedExplanation = `The push was rejected because the remote copy has commits your
local copy doesn't know about. The most common cause: the repo
was created on GitHub with a README already in it.

WHAT TO DO:
  Either pull the remote changes first (git pull), or — if the
  remote repo is brand new and disposable — recreate it without
  any initial files and push again.`

const noRemoteExplanation = `This repository isn't connected to GitHub yet, so Git doesn't
know where to upload.

WHAT TO DO:
  Use the "Connect to GitHub" lesson to link this repo to a
  remote first, then push.`

// unknownExplanation preserves the raw error text: the deliberate
// catch-all that keeps classification total without hiding diagnostics.
func unknownExplanation(stderr string) string {
	if stderr == "" {
		stderr = "(git printed no error details)"
	}
	return fmt.Sprintf(`Git reported something this tool doesn't recognize yet.
Here is exactly what it said:

%s

If you're not sure what it means, check the repository status
from the main menu and make sure the previous lessons completed
before retrying this one.`, stderr)
}

// Guardrail explanations reuse the same voice for steps that were
// refused before any command ran.

const blockedToolMissing = toolMissingExplanation

const blockedNotARepository = `You're not inside a Git repository, so this step would only
fail. Use "Initialize a new repo" first, then try again.`

const blockedNoRemote = noRemoteExplanation

func BlockedToolMissing() string    { return blockedToolMissing }
func BlockedNotARepository() string { return blockedNotARepository }
func BlockedNoRemote() string       { return blockedNoRemote }
