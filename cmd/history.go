package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/adapters/tui"
	"github.com/xvierd/gitcoach/internal/domain"
)

var historyDays int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show what you've practiced",
	Long: `List the commands gitcoach has run for you recently and how each
one turned out, plus running totals per outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		attempts, err := historyService.RecentAttempts(ctx, historyDays)
		if err != nil {
			return err
		}
		totals, err := historyService.KindTotals(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputHistoryJSON(attempts, totals)
		}

		if len(attempts) == 0 {
			tui.Explain("No practice recorded yet. Pick a lesson from the menu to start.", &appConfig.Theme)
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "LAST %d DAYS:\n\n", historyDays)
		for _, a := range attempts {
			state := string(a.Kind)
			if a.State == domain.StepBlocked {
				state += " (blocked before running)"
			}
			fmt.Fprintf(&b, "%s  %-10s %-40s %s\n",
				a.StartedAt.Format("Jan 02 15:04"), a.LessonID, a.Command, state)
		}

		b.WriteString("\nTOTALS:\n")
		for kind, count := range totals {
			fmt.Fprintf(&b, "  %-20s %d\n", kind, count)
		}

		tui.Explain(b.String(), &appConfig.Theme)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "How many days back to show")
}

// outputHistoryJSON outputs attempts and totals in JSON format
func outputHistoryJSON(attempts []*domain.Attempt, totals map[domain.OutcomeKind]int) error {
	items := make([]map[string]interface{}, 0, len(attempts))
	for _, a := range attempts {
		items = append(items, map[string]interface{}{
			"id":         a.ID,
			"session_id": a.SessionID,
			"lesson":     a.LessonID,
			"state":      string(a.State),
			"command":    a.Command,
			"kind":       string(a.Kind),
			"exit_code":  a.ExitCode,
			"timed_out":  a.TimedOut,
			"started_at": a.StartedAt.Format("2006-01-02T15:04:05"),
		})
	}

	totalsJSON := make(map[string]int, len(totals))
	for kind, count := range totals {
		totalsJSON[string(kind)] = count
	}

	return outputJSON(map[string]interface{}{
		"attempts": items,
		"totals":   totalsJSON,
	})
}
