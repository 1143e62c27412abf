package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/summaries"
)

var (
	quarterlyYear    int
	quarterlyQuarter int
)

var quarterlyCmd = &cobra.Command{
	Use:   "quarterly",
	Short: "Create quarterly summaries",
	Long:  "Aggregates daily summaries over one calendar quarter. Without flags the run covers the last complete quarter.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(runner *summaries.Runner) error {
			return runner.RunQuarterly(context.Background(), quarterlyYear, quarterlyQuarter)
		})
	},
}

func init() {
	quarterlyCmd.Flags().IntVar(&quarterlyYear, "year", 0, "Year")
	quarterlyCmd.Flags().IntVar(&quarterlyQuarter, "quarter", 0, "Quarter (1-4)")
	rootCmd.AddCommand(quarterlyCmd)
}
