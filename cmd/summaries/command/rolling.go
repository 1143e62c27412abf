package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/summaries"
)

var (
	rollingPeriods []int
	rollingEnd     string
)

var rollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "Create rolling summaries",
	Long:  "Recomputes trailing windows ending on a given day. Without flags the configured periods end today.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var endDate time.Time
		if rollingEnd != "" {
			parsed, err := time.Parse(summaries.DateFormat, rollingEnd)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			endDate = parsed
		}
		return Run(func(runner *summaries.Runner) error {
			return runner.RunRolling(context.Background(), rollingPeriods, endDate)
		})
	},
}

func init() {
	rollingCmd.Flags().IntSliceVar(&rollingPeriods, "periods", nil, "Rolling periods in days")
	rollingCmd.Flags().StringVar(&rollingEnd, "end", "", "End day (YYYY-MM-DD)")
	rootCmd.AddCommand(rollingCmd)
}
