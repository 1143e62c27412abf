package summaries

import (
	"context"
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/diafit-org/summaries/errors"
)

const exportSheetName = "Daily Summaries"

var exportColumns = []string{
	"Date",
	"Avg Glucose (mg/dL)",
	"Std Dev (mg/dL)",
	"Time In Range (%)",
	"Time Below Range (%)",
	"Time Above Range (%)",
	"CGM Coverage (%)",
	"Total Bolus (U)",
	"Meals",
	"Carbs (g)",
	"Proteins (g)",
	"Fats (g)",
	"Calories (kcal)",
}

// ExportDaily renders the persisted daily summaries of one user over an
// inclusive date range as a spreadsheet, one row per day.
func (r *Runner) ExportDaily(ctx context.Context, userID string, from, to string) (*xlsx.File, error) {
	dailies, err := r.summaries.ListDaily(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(dailies) == 0 {
		return nil, fmt.Errorf("%w: no daily summaries for %s between %s and %s", errors.NotFound, userID, from, to)
	}

	file := xlsx.NewFile()
	sh, err := file.AddSheet(exportSheetName)
	if err != nil {
		return nil, err
	}

	header := sh.AddRow()
	for _, column := range exportColumns {
		header.AddCell().SetValue(column)
	}

	for _, daily := range dailies {
		row := sh.AddRow()
		row.AddCell().SetValue(daily.Date)
		row.AddCell().SetValue(daily.GlucoseAvg)
		row.AddCell().SetValue(daily.GlucoseStd)
		row.AddCell().SetValue(daily.TimeInRange)
		row.AddCell().SetValue(daily.TimeBelowRange)
		row.AddCell().SetValue(daily.TimeAboveRange)
		row.AddCell().SetValue(daily.Coverage)
		row.AddCell().SetValue(daily.Bolus)
		row.AddCell().SetValue(daily.Meals)
		row.AddCell().SetValue(daily.Carbs)
		row.AddCell().SetValue(daily.Proteins)
		row.AddCell().SetValue(daily.Fats)
		row.AddCell().SetValue(daily.Calories)
	}

	return file, nil
}
