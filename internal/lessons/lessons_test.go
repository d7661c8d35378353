package lessons

import (
	"strings"
	"testing"
)

func TestCurriculumOrderAndRequirements(t *testing.T) {
	curriculum := Curriculum()
	if len(curriculum) != 8 {
		t.Fatalf("Curriculum() returned %d lessons, want 8", len(curriculum))
	}

	if curriculum[0].ID != LessonInit {
		t.Errorf("first lesson = %s, want %s", curriculum[0].ID, LessonInit)
	}

	for _, lesson := range curriculum {
		if !lesson.Requires.Tool {
			t.Errorf("lesson %s must require the tool", lesson.ID)
		}
		if lesson.Title == "" || lesson.Intro == "" {
			t.Errorf("lesson %s is missing copy", lesson.ID)
		}
	}

	// Only init and clone work outside a repository.
	for _, lesson := range curriculum {
		wantRepo := lesson.ID != LessonInit && lesson.ID != LessonClone
		if lesson.Requires.Repo != wantRepo {
			t.Errorf("lesson %s Repo requirement = %v, want %v", lesson.ID, lesson.Requires.Repo, wantRepo)
		}
	}

	push, _ := ByID(LessonPush)
	if !push.Requires.Remote {
		t.Error("push must require a remote")
	}
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		lessonID string
		extra    []string
		want     []string
	}{
		{LessonInit, nil, []string{"init"}},
		{LessonStatus, nil, []string{"status"}},
		{LessonCommit, []string{"my first commit"}, []string{"commit", "-m", "my first commit"}},
		{LessonRemote, []string{"origin", "https://github.com/x/y.git"}, []string{"remote", "add", "origin", "https://github.com/x/y.git"}},
		{LessonPush, []string{"origin", "main"}, []string{"push", "-u", "origin", "main"}},
		{LessonClone, []string{"https://github.com/x/y.git"}, []string{"clone", "https://github.com/x/y.git"}},
	}

	for _, tt := range tests {
		t.Run(tt.lessonID, func(t *testing.T) {
			lesson, ok := ByID(tt.lessonID)
			if !ok {
				t.Fatalf("ByID(%s) not found", tt.lessonID)
			}

			spec := lesson.BuildCommand("/tmp/project", tt.extra...)

			if spec.Program != "git" {
				t.Errorf("Program = %s, want git", spec.Program)
			}
			if spec.WorkingDir != "/tmp/project" {
				t.Errorf("WorkingDir = %s", spec.WorkingDir)
			}
			if len(spec.Args) != len(tt.want) {
				t.Fatalf("Args = %v, want %v", spec.Args, tt.want)
			}
			for i := range tt.want {
				if spec.Args[i] != tt.want[i] {
					t.Errorf("Args[%d] = %s, want %s", i, spec.Args[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildCommand_MessageStaysOneArgument(t *testing.T) {
	lesson, _ := ByID(LessonCommit)
	spec := lesson.BuildCommand("/tmp/project", "fix: handle spaces; and $(subshells)")

	if len(spec.Args) != 3 {
		t.Fatalf("Args = %v, a commit message must stay a single argument", spec.Args)
	}
}

func TestByID_Unknown(t *testing.T) {
	if _, ok := ByID("rebase"); ok {
		t.Error("ByID should not find lessons outside the curriculum")
	}
}

func TestSearch(t *testing.T) {
	if got := len(Search("")); got != len(Curriculum()) {
		t.Errorf("empty query returned %d lessons", got)
	}

	results := Search("push")
	if len(results) == 0 || results[0].ID != LessonPush {
		t.Errorf("Search(push) = %v", results)
	}

	if results := Search("zzzzqqqq"); len(results) != 0 {
		t.Errorf("nonsense query returned %v", results)
	}
}

func TestIsProtectedPath(t *testing.T) {
	protected := []string{
		`C:\Windows\Temp`,
		`C:\Program Files\App`,
		`c:\users\me\AppData\Roaming`,
		"/usr/local/lib",
		"/etc/nginx",
	}
	for _, path := range protected {
		if !IsProtectedPath(path) {
			t.Errorf("IsProtectedPath(%q) = false, want true", path)
		}
	}

	allowed := []string{
		"/home/me/projects/demo",
		`C:\Users\me\Documents\demo`,
		"/tmp/scratch",
	}
	for _, path := range allowed {
		if IsProtectedPath(path) {
			t.Errorf("IsProtectedPath(%q) = true, want false", path)
		}
	}
}

func TestBuildReadme(t *testing.T) {
	full := BuildReadme(ReadmeAnswers{
		ProjectName: "Weather Dashboard",
		Tagline:     "Live forecasts on one page.",
		Problem:     "Checking five sites every morning.",
		TechStack:   "Go, SQLite",
	})

	if !strings.HasPrefix(full, "# Weather Dashboard\n") {
		t.Errorf("BuildReadme missing title heading:\n%s", full)
	}
	if !strings.Contains(full, "## The Problem") {
		t.Error("answered section must be rendered")
	}
	if strings.Contains(full, "## The Solution") {
		t.Error("empty section must be dropped")
	}

	minimal := BuildReadme(ReadmeAnswers{})
	if !strings.HasPrefix(minimal, "# Project Name\n") {
		t.Errorf("empty answers should fall back to a placeholder title:\n%s", minimal)
	}
}

func TestStarterGitignoreCoversCommonJunk(t *testing.T) {
	for _, entry := range []string{"__pycache__/", "node_modules/", ".env", ".DS_Store"} {
		if !strings.Contains(StarterGitignore, entry) {
			t.Errorf("starter .gitignore missing %s", entry)
		}
	}
}
