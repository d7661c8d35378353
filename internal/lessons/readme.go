package lessons

import (
	"fmt"
	"strings"
)

// ReadmeAnswers collects the guided prompts for the README lesson.
// Empty fields drop their section.
type ReadmeAnswers struct {
	ProjectName string
	Tagline     string
	Problem     string
	Solution    string
	HowItWorks  string
	Results     string
	TechStack   string
	Status      string
}

// BuildReadme renders the answers into README.md content.
func BuildReadme(a ReadmeAnswers) string {
	name := a.ProjectName
	if name == "" {
		name = "Project Name"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", name)

	if a.Tagline != "" {
		fmt.Fprintf(&b, "\n%s\n", a.Tagline)
	}

	sections := []struct {
		title string
		body  string
	}{
		{"The Problem", a.Problem},
		{"The Solution", a.Solution},
		{"How It Works", a.HowItWorks},
		{"Results", a.Results},
		{"Tech Stack", a.TechStack},
		{"Status", a.Status},
	}
	for _, s := range sections {
		if s.body != "" {
			fmt.Fprintf(&b, "\n## %s\n\n%s\n", s.title, s.body)
		}
	}

	return b.String()
}

// StarterGitignore is offered right after init so junk files (caches,
// secrets, dependency trees) never end up in a first commit.
const StarterGitignore = `# Python
__pycache__/
*.pyc
.env
venv/

# Node
node_modules/

# IDE / Editor
.vscode/
.idea/

# OS files
.DS_Store
Thumbs.db
`
