package summaries

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/diafit-org/summaries/coverage"
	"github.com/diafit-org/summaries/events"
)

// DailyParams selects the window of a daily run. With no fields set the
// run covers yesterday's full UTC day. Date selects an explicit day.
// Start/End select an explicit window instead, e.g. a partial day up to
// the current time; when only End is given the window opens at that
// day's midnight.
type DailyParams struct {
	Date  *time.Time
	Start *time.Time
	End   *time.Time
}

// RunDaily computes one daily summary per user from the raw event
// streams. Users without readings in the window are skipped. The window
// never extends past the current time.
func (r *Runner) RunDaily(ctx context.Context, params DailyParams) error {
	now := r.now().UTC()

	start, end, summaryDate := dailyWindow(params, now)
	if end.After(now) {
		end = now
	}

	r.logger.Infow("generating daily summaries",
		"date", summaryDate,
		"start", start,
		"end", end,
	)

	allUsers, err := r.users.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	run := progress{}
	for _, user := range allUsers {
		summary, err := r.computeDaily(ctx, user.ID, summaryDate, start, end)
		if err != nil {
			run.failed++
			r.logger.Errorw("error computing daily summary", "userId", user.ID, "date", summaryDate, zap.Error(err))
			continue
		}
		if summary == nil {
			run.skipped++
			continue
		}

		if err := r.summaries.UpsertDaily(ctx, summary); err != nil {
			run.failed++
			r.logger.Errorw("error saving daily summary", "userId", user.ID, "date", summaryDate, zap.Error(err))
			continue
		}
		run.processed++
	}

	run.log(r.logger, "daily summaries")
	return nil
}

// computeDaily returns nil without error when the user has no readings
// in the window.
func (r *Runner) computeDaily(ctx context.Context, userID string, summaryDate string, start, end time.Time) (*DailySummary, error) {
	readings, err := r.glucose.List(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, nil
	}

	glucose := ComputeGlucoseStats(readings)

	boluses, err := r.bolus.List(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	meals, err := r.meals.List(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	mealTotals := ComputeMealTotals(meals)

	return &DailySummary{
		UserID: userID,
		Date:   summaryDate,
		Stats: Stats{
			GlucoseAvg:     glucose.Avg,
			GlucoseStd:     glucose.Std,
			TimeInRange:    glucose.TimeInRange,
			TimeBelowRange: glucose.TimeBelowRange,
			TimeAboveRange: glucose.TimeAboveRange,
			Coverage:       float64(coverage.Estimate(events.Timestamps(readings), start, end)),
			Bolus:          TotalBolus(boluses),
			Meals:          mealTotals.Meals,
			Carbs:          mealTotals.Carbs,
			Proteins:       mealTotals.Proteins,
			Fats:           mealTotals.Fats,
			Calories:       mealTotals.Calories,
		},
	}, nil
}

func dailyWindow(params DailyParams, now time.Time) (start, end time.Time, summaryDate string) {
	if params.Start != nil || params.End != nil {
		end = now
		if params.End != nil {
			end = params.End.UTC()
		}
		if params.Start != nil {
			start = params.Start.UTC()
		} else {
			start = end.Truncate(24 * time.Hour)
		}
		return start, end, start.Format(DateFormat)
	}

	day := now.AddDate(0, 0, -1)
	if params.Date != nil {
		day = params.Date.UTC()
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1), start.Format(DateFormat)
}
