package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/pointer"
	"github.com/diafit-org/summaries/summaries"
)

var allDate string

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Create every summary kind",
	Long:  "Runs the daily task first, then the weekly, monthly, quarterly and rolling tasks so the aggregated kinds see fresh daily records.",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := summaries.DailyParams{}
		if allDate != "" {
			date, err := time.Parse(summaries.DateFormat, allDate)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			params.Date = pointer.FromAny(date)
		}

		return Run(func(runner *summaries.Runner) error {
			ctx := context.Background()
			if err := runner.RunDaily(ctx, params); err != nil {
				return err
			}
			if err := runner.RunWeekly(ctx, 0, 0); err != nil {
				return err
			}
			if err := runner.RunMonthly(ctx, 0, 0); err != nil {
				return err
			}
			if err := runner.RunQuarterly(ctx, 0, 0); err != nil {
				return err
			}
			return runner.RunRolling(ctx, nil, time.Time{})
		})
	},
}

func init() {
	allCmd.Flags().StringVar(&allDate, "date", "", "Day for the daily task (YYYY-MM-DD)")
	rootCmd.AddCommand(allCmd)
}
