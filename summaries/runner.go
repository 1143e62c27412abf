package summaries

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/diafit-org/summaries/agp"
	"github.com/diafit-org/summaries/config"
	summaryErrs "github.com/diafit-org/summaries/errors"
	"github.com/diafit-org/summaries/events"
	"github.com/diafit-org/summaries/timezone"
	"github.com/diafit-org/summaries/users"
)

// Runner executes the summary computations for all users. Runs iterate
// users sequentially; a failure is scoped to one (user, period)
// computation and never aborts the run.
type Runner struct {
	glucose   events.GlucoseRepository
	bolus     events.BolusRepository
	meals     events.MealRepository
	sleep     events.SleepRepository
	users     users.Service
	summaries Repository
	config    *config.Config
	logger    *zap.SugaredLogger

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewRunner(
	glucose events.GlucoseRepository,
	bolus events.BolusRepository,
	meals events.MealRepository,
	sleep events.SleepRepository,
	usersService users.Service,
	repository Repository,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) (*Runner, error) {
	return &Runner{
		glucose:   glucose,
		bolus:     bolus,
		meals:     meals,
		sleep:     sleep,
		users:     usersService,
		summaries: repository,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// progress tracks the outcome counts of one run for the completion log.
type progress struct {
	processed int
	skipped   int
	failed    int
}

func (p *progress) log(logger *zap.SugaredLogger, task string) {
	logger.Infow(task+" completed",
		"processed", p.processed,
		"skipped", p.skipped,
		"failed", p.failed,
	)
}

// location resolves the timezone day boundaries and clock times are
// reported in for a user, substituting the configured default for users
// without one. An unknown zone degrades to UTC with a warning.
func (r *Runner) location(user users.User) *time.Location {
	name := user.Timezone
	if name == "" {
		name = r.config.DefaultTimezone
	}
	loc, err := timezone.Load(name)
	if err != nil {
		r.logger.Warnw("unknown timezone, falling back to UTC", "userId", user.ID, "timezone", name)
		return time.UTC
	}
	return loc
}

// profileFields fits the ambulatory glucose profile over the given
// readings and derives the day-part summary and detected patterns.
// Too little data for a stable fit degrades all three to nil.
func (r *Runner) profileFields(userID string, readings []events.GlucoseReading, loc *time.Location) (*agp.Profile, map[string]agp.PeriodSummary, []string) {
	profile, err := agp.Calculate(events.GlucoseSamples(readings), loc, agp.DefaultOptions())
	if err != nil {
		if errors.Is(err, summaryErrs.InsufficientData) {
			r.logger.Debugw("not enough data for glucose profile", "userId", userID)
		} else {
			r.logger.Warnw("error calculating glucose profile", "userId", userID, zap.Error(err))
		}
		return nil, nil, nil
	}
	if profile == nil {
		return nil, nil, nil
	}

	return profile, agp.PeriodsSummary(profile), agp.DetectPatterns(profile)
}

// dayWindow converts an inclusive day pair into the half-open raw event
// window [start of first day, start of day after last).
func dayWindow(start, end time.Time) (time.Time, time.Time) {
	return start, end.AddDate(0, 0, 1)
}
