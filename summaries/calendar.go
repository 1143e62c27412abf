package summaries

import (
	"fmt"
	"time"

	"github.com/diafit-org/summaries/errors"
)

// Calendar ranges are returned as inclusive day pairs at UTC midnight.
// Callers derive the raw-event window as [start, end+24h).

// WeekRange returns the first and last day of an ISO week. January 4th
// is always in week 1, which anchors the week grid for the year.
func WeekRange(year, week int) (start, end time.Time, err error) {
	if week < 1 || week > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week %d", errors.InvalidPeriod, week)
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	start = jan4.AddDate(0, 0, (week-1)*7-mondayIndexed(jan4.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end, nil
}

// MonthRange returns the first and last day of a calendar month.
func MonthRange(year, month int) (start, end time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %d", errors.InvalidPeriod, month)
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}

// QuarterRange returns the first and last day of a calendar quarter.
func QuarterRange(year, quarter int) (start, end time.Time, err error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: quarter %d", errors.InvalidPeriod, quarter)
	}
	start = time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 3, -1)
	return start, end, nil
}

// PreviousWeek returns the ISO year and week of the last complete week
// before now.
func PreviousWeek(now time.Time) (year, week int) {
	lastMonday := now.UTC().AddDate(0, 0, -(mondayIndexed(now.UTC().Weekday()) + 7))
	return lastMonday.ISOWeek()
}

// PreviousMonth returns the last complete month before now.
func PreviousMonth(now time.Time) (year, month int) {
	t := now.UTC()
	if t.Month() == time.January {
		return t.Year() - 1, 12
	}
	return t.Year(), int(t.Month()) - 1
}

// PreviousQuarter returns the last complete quarter before now.
func PreviousQuarter(now time.Time) (year, quarter int) {
	t := now.UTC()
	current := (int(t.Month())-1)/3 + 1
	if current == 1 {
		return t.Year() - 1, 4
	}
	return t.Year(), current - 1
}

// mondayIndexed maps time.Weekday (Sunday=0) onto a Monday=0 index.
func mondayIndexed(day time.Weekday) int {
	return (int(day) + 6) % 7
}
