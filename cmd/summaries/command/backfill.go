package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/summaries"
)

var (
	backfillStart string
	backfillEnd   string
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Backfill daily summaries over a date range",
	Long:  "Runs the daily task once per day from --start through --end inclusive. --end defaults to yesterday.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(summaries.DateFormat, backfillStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}

		end := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
		if backfillEnd != "" {
			if end, err = time.Parse(summaries.DateFormat, backfillEnd); err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
		}
		if end.Before(start) {
			return fmt.Errorf("--end %s is before --start %s", end.Format(summaries.DateFormat), start.Format(summaries.DateFormat))
		}

		return Run(func(runner *summaries.Runner) error {
			ctx := context.Background()
			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				date := day
				if err := runner.RunDaily(ctx, summaries.DailyParams{Date: &date}); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	backfillCmd.Flags().StringVar(&backfillStart, "start", "", "First day (YYYY-MM-DD)")
	backfillCmd.Flags().StringVar(&backfillEnd, "end", "", "Last day (YYYY-MM-DD)")
	_ = backfillCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(backfillCmd)
}
