package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diafit-org/summaries/summaries"
)

var (
	exportUserID string
	exportFrom   string
	exportTo     string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export daily summaries as a spreadsheet",
	Long:  "Writes the persisted daily summaries of one user over an inclusive date range to an xlsx file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for flag, value := range map[string]string{"from": exportFrom, "to": exportTo} {
			if _, err := time.Parse(summaries.DateFormat, value); err != nil {
				return fmt.Errorf("invalid --%s: %w", flag, err)
			}
		}

		return Run(func(runner *summaries.Runner) error {
			file, err := runner.ExportDaily(context.Background(), exportUserID, exportFrom, exportTo)
			if err != nil {
				return err
			}
			if err := file.Save(exportOutput); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", exportOutput)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportUserID, "user", "", "User id")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "First day (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Last day (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "daily_summaries.xlsx", "Output file")
	_ = exportCmd.MarkFlagRequired("user")
	_ = exportCmd.MarkFlagRequired("from")
	_ = exportCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(exportCmd)
}
