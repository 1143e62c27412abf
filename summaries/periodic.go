package summaries

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/diafit-org/summaries/users"
)

// RunWeekly aggregates daily summaries over one ISO week. Zero year or
// week selects the last complete week. Profile, day-part summary,
// pattern and sleep fields are recomputed from raw events rather than
// averaged.
func (r *Runner) RunWeekly(ctx context.Context, year, week int) error {
	if year == 0 || week == 0 {
		year, week = PreviousWeek(r.now())
	}
	start, end, err := WeekRange(year, week)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("%d-W%02d", year, week)
	return r.runPeriodic(ctx, "weekly summaries", label, start, end, func(userID string, fields PeriodStats) *periodicUpsert {
		return &periodicUpsert{
			weekly: &WeeklySummary{UserID: userID, Year: year, Week: week, PeriodStats: fields},
		}
	})
}

// RunMonthly aggregates daily summaries over one calendar month. Zero
// year or month selects the last complete month.
func (r *Runner) RunMonthly(ctx context.Context, year, month int) error {
	if year == 0 || month == 0 {
		year, month = PreviousMonth(r.now())
	}
	start, end, err := MonthRange(year, month)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("%d-%02d", year, month)
	return r.runPeriodic(ctx, "monthly summaries", label, start, end, func(userID string, fields PeriodStats) *periodicUpsert {
		return &periodicUpsert{
			monthly: &MonthlySummary{UserID: userID, Year: year, Month: month, PeriodStats: fields},
		}
	})
}

// RunQuarterly aggregates daily summaries over one calendar quarter.
// Zero year or quarter selects the last complete quarter.
func (r *Runner) RunQuarterly(ctx context.Context, year, quarter int) error {
	if year == 0 || quarter == 0 {
		year, quarter = PreviousQuarter(r.now())
	}
	start, end, err := QuarterRange(year, quarter)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("%d-Q%d", year, quarter)
	return r.runPeriodic(ctx, "quarterly summaries", label, start, end, func(userID string, fields PeriodStats) *periodicUpsert {
		return &periodicUpsert{
			quarterly: &QuarterlySummary{UserID: userID, Year: year, Quarter: quarter, PeriodStats: fields},
		}
	})
}

// periodicUpsert carries exactly one summary kind to the repository.
type periodicUpsert struct {
	weekly    *WeeklySummary
	monthly   *MonthlySummary
	quarterly *QuarterlySummary
}

func (r *Runner) runPeriodic(ctx context.Context, task, label string, start, end time.Time, build func(userID string, fields PeriodStats) *periodicUpsert) error {
	r.logger.Infow("generating "+task,
		"period", label,
		"start", start.Format(DateFormat),
		"end", end.Format(DateFormat),
	)

	allUsers, err := r.users.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	run := progress{}
	for _, user := range allUsers {
		fields, err := r.computePeriod(ctx, user, start, end)
		if err != nil {
			run.failed++
			r.logger.Errorw("error computing "+task, "userId", user.ID, "period", label, zap.Error(err))
			continue
		}
		if fields == nil {
			run.skipped++
			continue
		}

		upsert := build(user.ID, *fields)
		switch {
		case upsert.weekly != nil:
			err = r.summaries.UpsertWeekly(ctx, upsert.weekly)
		case upsert.monthly != nil:
			err = r.summaries.UpsertMonthly(ctx, upsert.monthly)
		case upsert.quarterly != nil:
			err = r.summaries.UpsertQuarterly(ctx, upsert.quarterly)
		}
		if err != nil {
			run.failed++
			r.logger.Errorw("error saving "+task, "userId", user.ID, "period", label, zap.Error(err))
			continue
		}
		run.processed++
	}

	run.log(r.logger, task)
	return nil
}

// computePeriod returns nil without error when the user has no daily
// summaries in the range.
func (r *Runner) computePeriod(ctx context.Context, user users.User, start, end time.Time) (*PeriodStats, error) {
	dailies, err := r.summaries.ListDaily(ctx, user.ID, start.Format(DateFormat), end.Format(DateFormat))
	if err != nil {
		return nil, err
	}
	if len(dailies) == 0 {
		return nil, nil
	}

	fields := PeriodStats{
		Stats: averageDailyStats(dailies),
	}

	windowStart, windowEnd := dayWindow(start, end)
	loc := r.location(user)

	readings, err := r.glucose.List(ctx, user.ID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	fields.AGP, fields.AGPSummary, fields.Patterns = r.profileFields(user.ID, readings, loc)

	sessions, err := r.sleep.List(ctx, user.ID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	fields.Sleep = ComputeSleepStats(sessions, loc)

	return &fields, nil
}
