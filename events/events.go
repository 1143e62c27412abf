// Package events exposes read-only access to the ingested physiological
// event streams. Records are immutable once written by the ingestion
// services; this module only ever reads them back in time windows.
package events

import (
	"context"
	"time"

	"github.com/diafit-org/summaries/agp"
)

//go:generate mockgen --build_flags=--mod=mod -source=./events.go -destination=./test/mock_repositories.go -package test

// GlucoseRepository reads CGM readings for one user over [start, end),
// ordered by timestamp.
type GlucoseRepository interface {
	List(ctx context.Context, userID string, start, end time.Time) ([]GlucoseReading, error)
}

// BolusRepository reads insulin bolus doses for one user over [start, end).
type BolusRepository interface {
	List(ctx context.Context, userID string, start, end time.Time) ([]Bolus, error)
}

// MealRepository reads meal entries for one user over [start, end).
type MealRepository interface {
	List(ctx context.Context, userID string, start, end time.Time) ([]Meal, error)
}

// SleepRepository reads sleep sessions starting in [start, end).
type SleepRepository interface {
	List(ctx context.Context, userID string, start, end time.Time) ([]SleepSession, error)
}

// GlucoseReading is a single CGM measurement in mg/dL.
type GlucoseReading struct {
	UserID    string    `bson:"userId"`
	Timestamp time.Time `bson:"timestamp"`
	Value     float64   `bson:"value"`
}

// Bolus is a single insulin bolus dose in units.
type Bolus struct {
	UserID    string    `bson:"userId"`
	Timestamp time.Time `bson:"timestamp"`
	Units     float64   `bson:"units"`
}

// Meal is a logged meal with its macros.
type Meal struct {
	UserID    string    `bson:"userId"`
	Timestamp time.Time `bson:"timestamp"`
	Carbs     float64   `bson:"carbs"`
	Proteins  float64   `bson:"proteins"`
	Fats      float64   `bson:"fats"`
	Calories  float64   `bson:"calories"`
}

// SleepSession is a recorded sleep period with per-stage durations.
type SleepSession struct {
	UserID           string    `bson:"userId"`
	StartTime        time.Time `bson:"startTime"`
	EndTime          time.Time `bson:"endTime"`
	TotalMinutes     float64   `bson:"totalMinutes"`
	DeepSleepMinutes float64   `bson:"deepSleepMinutes"`
	RemSleepMinutes  float64   `bson:"remSleepMinutes"`
}

// GlucoseSamples converts readings to profile calculator samples. Each
// stream converts through its own typed accessor instead of the calculator
// branching on stream names.
func GlucoseSamples(readings []GlucoseReading) []agp.Sample {
	samples := make([]agp.Sample, len(readings))
	for i, r := range readings {
		samples[i] = agp.Sample{Time: r.Timestamp, Value: r.Value}
	}
	return samples
}

// BolusSamples converts bolus doses to profile calculator samples.
func BolusSamples(boluses []Bolus) []agp.Sample {
	samples := make([]agp.Sample, len(boluses))
	for i, b := range boluses {
		samples[i] = agp.Sample{Time: b.Timestamp, Value: b.Units}
	}
	return samples
}

// Timestamps extracts the reading instants for coverage estimation.
func Timestamps(readings []GlucoseReading) []time.Time {
	timestamps := make([]time.Time, len(readings))
	for i, r := range readings {
		timestamps[i] = r.Timestamp
	}
	return timestamps
}
