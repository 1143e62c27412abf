package agp

import (
	"fmt"
	"math"
	"time"
)

// Sample is a single timestamped scalar observation. Event streams convert
// their records to samples at the call boundary, so the calculator never
// branches on stream-specific field names.
type Sample struct {
	Time  time.Time
	Value float64
}

// Profile is an ambulatory glucose profile: five percentile series over a
// fixed 24-hour time grid. All six slices have identical length. A profile
// is computed wholesale and never mutated.
type Profile struct {
	Time []string  `json:"time" bson:"time"`
	P10  []float64 `json:"p10" bson:"p10"`
	P25  []float64 `json:"p25" bson:"p25"`
	P50  []float64 `json:"p50" bson:"p50"`
	P75  []float64 `json:"p75" bson:"p75"`
	P90  []float64 `json:"p90" bson:"p90"`
}

// Resolution returns the number of grid points.
func (p *Profile) Resolution() int {
	return len(p.Time)
}

// PeriodSummary condenses a day-part of the profile to its mean outer range,
// mean interquartile range, and mean median.
type PeriodSummary struct {
	P10P90Range [2]float64 `json:"p10_p90_range" bson:"p10P90Range"`
	P25P75Range [2]float64 `json:"p25_p75_range" bson:"p25P75Range"`
	P50         float64    `json:"p50" bson:"p50"`
}

// PeriodsSummary averages the profile's percentile bands over each named
// day-part. Returns nil for a nil profile.
func PeriodsSummary(profile *Profile) map[string]PeriodSummary {
	if profile == nil || len(profile.Time) == 0 {
		return nil
	}

	summary := make(map[string]PeriodSummary, len(TimePeriods))
	for _, period := range TimePeriods {
		var indices []int
		for i, label := range profile.Time {
			hour := labelHour(label)
			if period.Start > period.End {
				if hour >= period.Start || hour < period.End {
					indices = append(indices, i)
				}
			} else if hour >= period.Start && hour < period.End {
				indices = append(indices, i)
			}
		}
		if len(indices) == 0 {
			continue
		}

		summary[period.Name] = PeriodSummary{
			P10P90Range: [2]float64{
				round1(meanAt(profile.P10, indices)),
				round1(meanAt(profile.P90, indices)),
			},
			P25P75Range: [2]float64{
				round1(meanAt(profile.P25, indices)),
				round1(meanAt(profile.P75, indices)),
			},
			P50: round1(meanAt(profile.P50, indices)),
		}
	}

	if len(summary) == 0 {
		return nil
	}
	return summary
}

func labelHour(label string) int {
	var hour, minute int
	fmt.Sscanf(label, "%d:%d", &hour, &minute)
	return hour
}

func meanAt(values []float64, indices []int) float64 {
	sum := 0.0
	for _, i := range indices {
		sum += values[i]
	}
	return sum / float64(len(indices))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
