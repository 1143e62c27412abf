package agp

import (
	"fmt"
	"sort"
	"time"

	"github.com/diafit-org/summaries/errors"
)

// Options control profile computation.
type Options struct {
	// Resolution is the number of grid points over the 24-hour cycle.
	Resolution int

	// Smoothed applies a centered [1 4 1]/6 kernel across the hourly
	// percentile values before spline fitting.
	Smoothed bool
}

func DefaultOptions() Options {
	return Options{
		Resolution: PointsPerDay,
		Smoothed:   true,
	}
}

var percentileLevels = []float64{0.10, 0.25, 0.50, 0.75, 0.90}

// Calculate computes the ambulatory glucose profile for the given samples.
// Timestamps are interpreted in loc, which determines the hour-of-day
// bucketing. No samples yields (nil, nil): absence of data is a valid,
// expected outcome, not an error. Fewer than two non-empty hour buckets
// yields errors.InsufficientData.
func Calculate(samples []Sample, loc *time.Location, opts Options) (*Profile, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	if opts.Resolution <= 0 {
		opts.Resolution = PointsPerDay
	}
	if loc == nil {
		loc = time.UTC
	}

	buckets := bucketByHour(samples, loc)

	nonEmpty := 0
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return nil, fmt.Errorf("%w: %d non-empty hours, spline fitting requires at least 2", errors.InsufficientData, nonEmpty)
	}

	// Hourly percentile series, empty hours filled by circular
	// interpolation between their non-empty neighbors.
	series := make([][]float64, len(percentileLevels))
	for pi, level := range percentileLevels {
		hourly := make([]float64, hoursPerDay)
		missing := make([]bool, hoursPerDay)
		for hour, bucket := range buckets {
			if len(bucket) == 0 {
				missing[hour] = true
				continue
			}
			hourly[hour] = quantile(bucket, level)
		}
		fillCircular(hourly, missing)

		if opts.Smoothed {
			hourly = smooth(hourly)
		}

		series[pi] = hourly
	}

	grid := make([]float64, opts.Resolution)
	for i := range grid {
		grid[i] = float64(hoursPerDay) * float64(i) / float64(opts.Resolution)
	}

	profile := &Profile{Time: makeLabels(len(grid))}
	out := []*[]float64{&profile.P10, &profile.P25, &profile.P50, &profile.P75, &profile.P90}
	for pi, hourly := range series {
		// The hour-0 value repeated at hour 24 closes the periodic
		// control sequence.
		control := append(append([]float64{}, hourly...), hourly[0])
		spline := newPeriodicSpline(control)

		values := make([]float64, len(grid))
		for i, t := range grid {
			values[i] = round1(spline.at(t))
		}
		*out[pi] = values
	}

	return profile, nil
}

func bucketByHour(samples []Sample, loc *time.Location) [hoursPerDay][]float64 {
	var buckets [hoursPerDay][]float64
	for _, sample := range samples {
		hour := sample.Time.In(loc).Hour()
		buckets[hour] = append(buckets[hour], sample.Value)
	}
	return buckets
}

// quantile computes the level-th quantile using linear interpolation between
// order statistics. The input need not be sorted; it is not modified.
func quantile(values []float64, level float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	h := level * float64(len(sorted)-1)
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// fillCircular replaces missing hours by linear interpolation between the
// nearest non-missing hours, treating the 24-hour axis as circular.
func fillCircular(hourly []float64, missing []bool) {
	n := len(hourly)
	for hour := 0; hour < n; hour++ {
		if !missing[hour] {
			continue
		}

		beforeDist, before := nearest(missing, hour, -1)
		afterDist, after := nearest(missing, hour, +1)

		span := float64(beforeDist + afterDist)
		frac := float64(beforeDist) / span
		hourly[hour] = hourly[before] + frac*(hourly[after]-hourly[before])
	}
}

// nearest walks from hour in the given direction until it finds a
// non-missing hour, wrapping around midnight. Callers guarantee at least one
// non-missing hour exists.
func nearest(missing []bool, hour, dir int) (distance, index int) {
	n := len(missing)
	for d := 1; d < n; d++ {
		i := ((hour+dir*d)%n + n) % n
		if !missing[i] {
			return d, i
		}
	}
	return 0, hour
}

// smooth applies the centered [1 4 1]/6 kernel, leaving the two boundary
// hours untouched; they participate in the periodic wrap instead.
func smooth(values []float64) []float64 {
	smoothed := make([]float64, len(values))
	smoothed[0] = values[0]
	smoothed[len(values)-1] = values[len(values)-1]
	for i := 1; i < len(values)-1; i++ {
		smoothed[i] = (values[i-1] + 4*values[i] + values[i+1]) / 6
	}
	return smoothed
}

// makeLabels renders the HH:MM label of each grid point. Minutes are
// derived in integer arithmetic; the float grid accumulates enough error
// to shift labels off the five-minute marks.
func makeLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		totalMin := i * hoursPerDay * 60 / n
		labels[i] = fmt.Sprintf("%02d:%02d", totalMin/60, totalMin%60)
	}
	return labels
}
