package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/summaries"
)

var (
	monthlyYear  int
	monthlyMonth int
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Create monthly summaries",
	Long:  "Aggregates daily summaries over one calendar month. Without flags the run covers the last complete month.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(runner *summaries.Runner) error {
			return runner.RunMonthly(context.Background(), monthlyYear, monthlyMonth)
		})
	},
}

func init() {
	monthlyCmd.Flags().IntVar(&monthlyYear, "year", 0, "Year")
	monthlyCmd.Flags().IntVar(&monthlyMonth, "month", 0, "Month (1-12)")
	rootCmd.AddCommand(monthlyCmd)
}
