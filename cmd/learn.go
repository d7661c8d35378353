package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/lessons"
)

// learnCmd jumps straight into one lesson, found by fuzzy title match.
var learnCmd = &cobra.Command{
	Use:   "learn [query]",
	Short: "Start a lesson directly",
	Long: `Start a single lesson without going through the menu. The query is
fuzzy-matched against lesson titles, so "gitcoach learn push" and
"gitcoach learn pu" both open the push lesson.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 0 {
			return runMenu(cmd, nil)
		}

		matched := lessons.Search(args[0])
		if len(matched) == 0 {
			var titles []string
			for _, l := range lessons.Curriculum() {
				titles = append(titles, l.Title)
			}
			return fmt.Errorf("no lesson matches %q (have: %s)", args[0], strings.Join(titles, ", "))
		}

		return runLesson(ctx, matched[0])
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)
}
