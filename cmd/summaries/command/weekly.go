package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/summaries"
)

var (
	weeklyYear int
	weeklyWeek int
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Create weekly summaries",
	Long:  "Aggregates daily summaries over one ISO week. Without flags the run covers the last complete week.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(runner *summaries.Runner) error {
			return runner.RunWeekly(context.Background(), weeklyYear, weeklyWeek)
		})
	},
}

func init() {
	weeklyCmd.Flags().IntVar(&weeklyYear, "year", 0, "ISO year")
	weeklyCmd.Flags().IntVar(&weeklyWeek, "week", 0, "ISO week number (1-53)")
	rootCmd.AddCommand(weeklyCmd)
}
