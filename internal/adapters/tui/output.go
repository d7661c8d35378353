package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/gitcoach/internal/config"
	"github.com/xvierd/gitcoach/internal/domain"
)

// maxPanelWidth keeps output readable on wide terminals.
const maxPanelWidth = 76

// panelWidth clamps the render width to the terminal.
func panelWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return maxPanelWidth
	}
	if w-4 < maxPanelWidth {
		return w - 4
	}
	return maxPanelWidth
}

// Explain prints an explanation block, visually distinct from commands
// and their output.
func Explain(text string, theme *config.ThemeConfig) {
	resolved := resolveTheme(theme)
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(resolved.ColorTitle)).
		Width(panelWidth()).
		PaddingLeft(2)

	fmt.Println()
	fmt.Println(style.Render(strings.TrimSpace(text)))
	fmt.Println()
}

// ShowCommand prints the banner naming the exact command that ran, so
// the learner sees what they would have typed themselves.
func ShowCommand(commandLine string, theme *config.ThemeConfig) {
	resolved := resolveTheme(theme)
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(resolved.ColorAccent))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(resolved.ColorHelp))

	fmt.Println()
	fmt.Println("  " + accent.Render("COMMAND RAN: "+commandLine))
	fmt.Println(dim.Render("  Below is the output you'd see if you typed it in your terminal."))
}

// ShowRawOutput renders the captured stdout/stderr inside a bordered
// panel. displayStderr is the noise-filtered text; pass stderr through
// services.FilterNoise first.
func ShowRawOutput(result domain.ExecutionResult, displayStderr string, theme *config.ThemeConfig) {
	resolved := resolveTheme(theme)

	var body strings.Builder
	if result.Stdout != "" {
		body.WriteString(result.Stdout)
	}
	if displayStderr != "" {
		if body.Len() > 0 {
			body.WriteString("\n")
		}
		if result.ExitCode != 0 {
			body.WriteString("ERROR: ")
		}
		body.WriteString(displayStderr)
	}
	if body.Len() == 0 {
		body.WriteString("(no output)")
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(resolved.ColorBorder)).
		Width(panelWidth()).
		Padding(0, 1)

	fmt.Println(border.Render(body.String()))
}

// ShowOutcome renders the classified interpretation under the raw
// output. Blocked and executed outcomes share this single path.
func ShowOutcome(outcome domain.Outcome, theme *config.ThemeConfig) {
	resolved := resolveTheme(theme)

	color := resolved.ColorSuccess
	heading := "WHAT THIS MEANS: it worked"
	if outcome.Kind.IsFailure() {
		color = resolved.ColorError
		heading = "WHAT THIS MEANS"
	}
	if outcome.Blocked {
		heading = "STOPPED BEFORE RUNNING"
	}

	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(resolved.ColorTitle)).
		Width(panelWidth()).
		PaddingLeft(2)

	fmt.Println()
	fmt.Println("  " + headingStyle.Render(heading))
	fmt.Println(bodyStyle.Render(strings.TrimSpace(outcome.Explanation)))
	fmt.Println()
}
