package summaries

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/diafit-org/summaries/events"
	"github.com/diafit-org/summaries/users"
)

// rawRollingMaxDays is the longest window computed from raw events.
// Longer windows average existing daily summaries instead, which keeps
// reruns cheap even for the 90-day window.
const rawRollingMaxDays = 3

// expectedCadence is the assumed sensor cadence when estimating rolling
// coverage from the reading count.
const expectedCadence = 5 * time.Minute

// RunRolling recomputes trailing windows ending on endDate for all
// users. Empty periodDays selects the configured defaults and a zero
// endDate selects today. Reruns for the same end date overwrite the
// existing records; other end dates are retained.
func (r *Runner) RunRolling(ctx context.Context, periodDays []int, endDate time.Time) error {
	now := r.now().UTC()

	if len(periodDays) == 0 {
		periodDays = r.config.RollingPeriodDays
	}
	if endDate.IsZero() {
		endDate = now
	}
	endDay := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	r.logger.Infow("generating rolling summaries",
		"periods", periodDays,
		"endDate", endDay.Format(DateFormat),
	)

	allUsers, err := r.users.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	run := progress{}
	for _, user := range allUsers {
		for _, period := range periodDays {
			summary, err := r.computeRolling(ctx, user, period, endDay, now)
			if err != nil {
				run.failed++
				r.logger.Errorw("error computing rolling summary", "userId", user.ID, "periodDays", period, zap.Error(err))
				continue
			}
			if summary == nil {
				run.skipped++
				continue
			}

			if err := r.summaries.UpsertRolling(ctx, summary); err != nil {
				run.failed++
				r.logger.Errorw("error saving rolling summary", "userId", user.ID, "periodDays", period, zap.Error(err))
				continue
			}
			run.processed++
		}
	}

	run.log(r.logger, "rolling summaries")
	return nil
}

func (r *Runner) computeRolling(ctx context.Context, user users.User, period int, endDay, now time.Time) (*RollingSummary, error) {
	if period < 1 {
		return nil, fmt.Errorf("invalid rolling period: %d days", period)
	}

	startDay := endDay.AddDate(0, 0, -(period - 1))
	windowStart, windowEnd := dayWindow(startDay, endDay)
	if windowEnd.After(now) {
		windowEnd = now
	}

	summary := &RollingSummary{
		UserID:     user.ID,
		PeriodDays: period,
		StartDate:  startDay.Format(DateFormat),
		EndDate:    endDay.Format(DateFormat),
		UpdatedAt:  now,
	}

	var readings []events.GlucoseReading
	var ok bool
	var err error
	if period <= rawRollingMaxDays {
		readings, ok, err = r.rollingFromRaw(ctx, user.ID, period, windowStart, windowEnd, summary)
	} else {
		readings, ok, err = r.rollingFromDailies(ctx, user.ID, summary)
	}
	if err != nil || !ok {
		return nil, err
	}

	summary.AGP, summary.AGPSummary, summary.Patterns = r.profileFields(user.ID, readings, r.location(user))

	return summary, nil
}

// rollingFromRaw fills the summary stats from raw events. Coverage is
// estimated from the reading count against the expected sensor cadence.
// Reports ok=false when the user has no readings in the window.
func (r *Runner) rollingFromRaw(ctx context.Context, userID string, period int, start, end time.Time, summary *RollingSummary) ([]events.GlucoseReading, bool, error) {
	readings, err := r.glucose.List(ctx, userID, start, end)
	if err != nil {
		return nil, false, err
	}
	if len(readings) == 0 {
		r.logger.Warnw("no readings for rolling summary",
			"userId", userID,
			"periodDays", period,
			"start", start,
			"end", end,
		)
		return nil, false, nil
	}

	glucose := ComputeGlucoseStats(readings)

	expectedReadings := end.Sub(start).Minutes() / expectedCadence.Minutes()
	cov := 0.0
	if expectedReadings > 0 {
		cov = math.Min(100, float64(len(readings))/expectedReadings*100)
	}

	boluses, err := r.bolus.List(ctx, userID, start, end)
	if err != nil {
		return nil, false, err
	}

	meals, err := r.meals.List(ctx, userID, start, end)
	if err != nil {
		return nil, false, err
	}
	mealTotals := ComputeMealTotals(meals)

	days := float64(period)
	summary.Stats = Stats{
		GlucoseAvg:     glucose.Avg,
		GlucoseStd:     glucose.Std,
		TimeInRange:    glucose.TimeInRange,
		TimeBelowRange: glucose.TimeBelowRange,
		TimeAboveRange: glucose.TimeAboveRange,
		Coverage:       math.Round(cov),
		Bolus:          round2(TotalBolus(boluses) / days),
		Meals:          round1(mealTotals.Meals / days),
		Carbs:          round1(mealTotals.Carbs / days),
		Proteins:       round1(mealTotals.Proteins / days),
		Fats:           round1(mealTotals.Fats / days),
		Calories:       math.Round(mealTotals.Calories / days),
	}

	return readings, true, nil
}

// rollingFromDailies fills the summary stats by averaging daily
// summaries, then loads the raw readings only for the profile fields.
// Reports ok=false when the user has no daily summaries in range.
func (r *Runner) rollingFromDailies(ctx context.Context, userID string, summary *RollingSummary) ([]events.GlucoseReading, bool, error) {
	dailies, err := r.summaries.ListDaily(ctx, userID, summary.StartDate, summary.EndDate)
	if err != nil {
		return nil, false, err
	}
	if len(dailies) == 0 {
		r.logger.Warnw("no daily summaries for rolling summary",
			"userId", userID,
			"periodDays", summary.PeriodDays,
			"startDate", summary.StartDate,
			"endDate", summary.EndDate,
		)
		return nil, false, nil
	}

	summary.Stats = averageDailyStats(dailies)

	startDay, _ := time.Parse(DateFormat, summary.StartDate)
	endDay, _ := time.Parse(DateFormat, summary.EndDate)
	windowStart, windowEnd := dayWindow(startDay, endDay)

	readings, err := r.glucose.List(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, false, err
	}

	return readings, true, nil
}
