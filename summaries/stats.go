package summaries

import (
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/diafit-org/summaries/events"
)

// Glucose range boundaries in mg/dL. In range is inclusive on both
// ends, so a reading of exactly 70 or 180 counts as in range.
const (
	RangeLow  = 70.0
	RangeHigh = 180.0
)

// GlucoseStats holds the distribution metrics of a set of readings.
// All values are rounded to whole numbers.
type GlucoseStats struct {
	Avg            float64
	Std            float64
	TimeInRange    float64
	TimeBelowRange float64
	TimeAboveRange float64
}

// ComputeGlucoseStats returns nil when there are no readings. The
// standard deviation is the population deviation, zero for a single
// reading.
func ComputeGlucoseStats(readings []events.GlucoseReading) *GlucoseStats {
	if len(readings) == 0 {
		return nil
	}

	values := make([]float64, len(readings))
	var below, above, in float64
	for i, r := range readings {
		values[i] = r.Value
		switch {
		case r.Value < RangeLow:
			below++
		case r.Value > RangeHigh:
			above++
		default:
			in++
		}
	}

	avg, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationPopulation(values)

	total := float64(len(values))
	return &GlucoseStats{
		Avg:            math.Round(avg),
		Std:            math.Round(std),
		TimeInRange:    math.Round(in / total * 100),
		TimeBelowRange: math.Round(below / total * 100),
		TimeAboveRange: math.Round(above / total * 100),
	}
}

// TotalBolus sums the dosed units.
func TotalBolus(boluses []events.Bolus) float64 {
	var total float64
	for _, b := range boluses {
		total += b.Units
	}
	return total
}

// MealTotals are the summed macros over a window.
type MealTotals struct {
	Meals    float64
	Carbs    float64
	Proteins float64
	Fats     float64
	Calories float64
}

func ComputeMealTotals(meals []events.Meal) MealTotals {
	totals := MealTotals{Meals: float64(len(meals))}
	for _, m := range meals {
		totals.Carbs += m.Carbs
		totals.Proteins += m.Proteins
		totals.Fats += m.Fats
		totals.Calories += m.Calories
	}
	return totals
}

// ComputeSleepStats averages session durations and clock times over a
// period. Returns nil when there are no sessions. The fall-asleep time
// is averaged circularly: bedtimes before noon are treated as belonging
// to the next day, so 23:00 and 01:00 average to midnight rather than
// noon.
func ComputeSleepStats(sessions []events.SleepSession, loc *time.Location) *SleepStats {
	if len(sessions) == 0 {
		return nil
	}

	count := float64(len(sessions))
	var totalSleep, totalDeep, totalRem float64
	var fallAsleepMinutes, wakeUpMinutes int
	for _, s := range sessions {
		totalSleep += s.TotalMinutes
		totalDeep += s.DeepSleepMinutes
		totalRem += s.RemSleepMinutes

		start := s.StartTime.In(loc)
		minutes := start.Hour()*60 + start.Minute()
		if minutes < 12*60 {
			minutes += 24 * 60
		}
		fallAsleepMinutes += minutes

		end := s.EndTime.In(loc)
		wakeUpMinutes += end.Hour()*60 + end.Minute()
	}

	avgFallAsleep := (fallAsleepMinutes / len(sessions)) % (24 * 60)
	avgWakeUp := wakeUpMinutes / len(sessions)

	return &SleepStats{
		AvgSleepMinutes:     totalSleep / count,
		AvgDeepSleepMinutes: totalDeep / count,
		AvgRemSleepMinutes:  totalRem / count,
		AvgFallAsleepTime:   formatMinutes(avgFallAsleep),
		AvgWakeUpTime:       formatMinutes(avgWakeUp),
	}
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// averageDailyStats means every numeric field of the given daily
// records. Glucose and percentage fields are rounded to whole numbers,
// the intake fields stay fractional per-day averages.
func averageDailyStats(dailies []DailySummary) Stats {
	count := float64(len(dailies))
	if count == 0 {
		return Stats{}
	}

	var sum Stats
	for _, d := range dailies {
		sum.GlucoseAvg += d.GlucoseAvg
		sum.GlucoseStd += d.GlucoseStd
		sum.TimeInRange += d.TimeInRange
		sum.TimeBelowRange += d.TimeBelowRange
		sum.TimeAboveRange += d.TimeAboveRange
		sum.Coverage += d.Coverage
		sum.Bolus += d.Bolus
		sum.Meals += d.Meals
		sum.Carbs += d.Carbs
		sum.Proteins += d.Proteins
		sum.Fats += d.Fats
		sum.Calories += d.Calories
	}

	return Stats{
		GlucoseAvg:     math.Round(sum.GlucoseAvg / count),
		GlucoseStd:     math.Round(sum.GlucoseStd / count),
		TimeInRange:    math.Round(sum.TimeInRange / count),
		TimeBelowRange: math.Round(sum.TimeBelowRange / count),
		TimeAboveRange: math.Round(sum.TimeAboveRange / count),
		Coverage:       math.Round(sum.Coverage / count),
		Bolus:          sum.Bolus / count,
		Meals:          sum.Meals / count,
		Carbs:          sum.Carbs / count,
		Proteins:       sum.Proteins / count,
		Fats:           sum.Fats / count,
		Calories:       sum.Calories / count,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
