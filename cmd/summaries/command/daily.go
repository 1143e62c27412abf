package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/pointer"
	"github.com/diafit-org/summaries/summaries"
)

var (
	dailyDate  string
	dailyStart string
	dailyEnd   string
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Create daily summaries",
	Long:  "Computes one summary per user from the raw events of a single day. Without flags the run covers yesterday.",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := dailyParams()
		if err != nil {
			return err
		}
		return Run(func(runner *summaries.Runner) error {
			return runner.RunDaily(context.Background(), params)
		})
	},
}

func dailyParams() (summaries.DailyParams, error) {
	params := summaries.DailyParams{}

	if dailyDate != "" {
		date, err := time.Parse(summaries.DateFormat, dailyDate)
		if err != nil {
			return params, fmt.Errorf("invalid --date: %w", err)
		}
		params.Date = pointer.FromAny(date)
	}
	if dailyStart != "" {
		start, err := time.Parse(time.RFC3339, dailyStart)
		if err != nil {
			return params, fmt.Errorf("invalid --start: %w", err)
		}
		params.Start = pointer.FromAny(start)
	}
	if dailyEnd != "" {
		end, err := time.Parse(time.RFC3339, dailyEnd)
		if err != nil {
			return params, fmt.Errorf("invalid --end: %w", err)
		}
		params.End = pointer.FromAny(end)
	}

	return params, nil
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Day to summarize (YYYY-MM-DD)")
	dailyCmd.Flags().StringVar(&dailyStart, "start", "", "Window start (RFC3339), overrides --date")
	dailyCmd.Flags().StringVar(&dailyEnd, "end", "", "Window end (RFC3339), overrides --date")
	rootCmd.AddCommand(dailyCmd)
}
