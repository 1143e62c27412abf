// Package coverage estimates what fraction of a time window is observed by a
// set of instantaneous sensor readings. Each reading covers up to half the
// distance to its neighbors, capped at half the typical sampling interval,
// so dense regular sampling approaches 100% while gaps larger than the
// typical interval leave the excess uncovered.
package coverage

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

const (
	// FallbackInterval is assumed when the sampling interval can not be
	// inferred, i.e. there are no positive gaps between readings. Five
	// minutes is the cadence of common CGM sensors.
	FallbackInterval = 5 * time.Minute

	minInterval = time.Second
)

// Estimate returns the percentage of [start, end) covered by the given
// reading timestamps, rounded to the nearest integer. The expected sampling
// interval is inferred as the median of positive consecutive gaps.
func Estimate(timestamps []time.Time, start, end time.Time) int {
	return EstimateWithInterval(timestamps, start, end, 0)
}

// EstimateWithInterval is Estimate with a known sampling interval. A
// non-positive interval means "infer it".
func EstimateWithInterval(timestamps []time.Time, start, end time.Time, expectedInterval time.Duration) int {
	if len(timestamps) == 0 {
		return 0
	}

	totalSeconds := end.Sub(start).Seconds()
	if totalSeconds <= 0 {
		return 0
	}

	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	interval := expectedInterval
	if interval <= 0 {
		interval = inferInterval(sorted)
	}
	if interval < minInterval {
		interval = minInterval
	}

	halfExpected := interval.Seconds() / 2.0

	covered := 0.0
	n := len(sorted)
	for i, ts := range sorted {
		var left float64
		if i == 0 {
			// The boundary gap is not shared with another reading,
			// so it is not halved.
			left = math.Min(ts.Sub(start).Seconds(), halfExpected)
		} else {
			left = math.Min(ts.Sub(sorted[i-1]).Seconds()/2.0, halfExpected)
		}

		var right float64
		if i == n-1 {
			right = math.Min(end.Sub(ts).Seconds(), halfExpected)
		} else {
			right = math.Min(sorted[i+1].Sub(ts).Seconds()/2.0, halfExpected)
		}

		covered += math.Max(0, left) + math.Max(0, right)
	}

	if covered > totalSeconds {
		covered = totalSeconds
	}

	return int(math.Round(covered / totalSeconds * 100.0))
}

func inferInterval(sorted []time.Time) time.Duration {
	deltas := make([]float64, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		if d := sorted[i+1].Sub(sorted[i]); d > 0 {
			deltas = append(deltas, d.Seconds())
		}
	}

	if len(deltas) == 0 {
		return FallbackInterval
	}

	median, err := stats.Median(deltas)
	if err != nil {
		return FallbackInterval
	}

	return time.Duration(median * float64(time.Second))
}
