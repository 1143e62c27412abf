// Package summaries computes and persists multi-resolution glucose
// summaries: one record per calendar day, week, month and quarter, plus
// trailing rolling windows. Daily records are built from raw event
// streams; the coarser periods average the numeric fields of the daily
// records they cover and recompute profile-derived fields from raw data.
package summaries

import (
	"context"
	"time"

	"github.com/diafit-org/summaries/agp"
)

//go:generate mockgen --build_flags=--mod=mod -source=./summaries.go -destination=./test/mock_repository.go -package test

// DateFormat is the canonical day key. Lexicographic order matches
// chronological order, so date strings range-query directly.
const DateFormat = "2006-01-02"

// Stats holds the numeric body shared by every summary kind. In daily
// records Bolus, Meals and the macro fields are totals for the day; in
// aggregated records they are per-day averages.
type Stats struct {
	GlucoseAvg     float64 `bson:"glucoseAvg" json:"glucoseAvg"`
	GlucoseStd     float64 `bson:"glucoseStd" json:"glucoseStd"`
	TimeInRange    float64 `bson:"timeInRange" json:"timeInRange"`
	TimeBelowRange float64 `bson:"timeBelowRange" json:"timeBelowRange"`
	TimeAboveRange float64 `bson:"timeAboveRange" json:"timeAboveRange"`
	Coverage       float64 `bson:"coverage" json:"coverage"`
	Bolus          float64 `bson:"bolus" json:"bolus"`
	Meals          float64 `bson:"meals" json:"meals"`
	Carbs          float64 `bson:"carbs" json:"carbs"`
	Proteins       float64 `bson:"proteins" json:"proteins"`
	Fats           float64 `bson:"fats" json:"fats"`
	Calories       float64 `bson:"calories" json:"calories"`
}

// SleepStats are per-session averages over the sessions of a period.
// Times are "HH:MM" in the user's timezone.
type SleepStats struct {
	AvgSleepMinutes     float64 `bson:"avgSleepMinutes" json:"avgSleepMinutes"`
	AvgDeepSleepMinutes float64 `bson:"avgDeepSleepMinutes" json:"avgDeepSleepMinutes"`
	AvgRemSleepMinutes  float64 `bson:"avgRemSleepMinutes" json:"avgRemSleepMinutes"`
	AvgFallAsleepTime   string  `bson:"avgFallAsleepTime" json:"avgFallAsleepTime"`
	AvgWakeUpTime       string  `bson:"avgWakeUpTime" json:"avgWakeUpTime"`
}

// PeriodStats extends Stats with the profile-derived fields that only
// exist on multi-day summaries. The profile fields degrade to nil when
// the period has too little raw data to fit a profile.
type PeriodStats struct {
	Stats      `bson:",inline"`
	AGP        *agp.Profile                 `bson:"agp,omitempty" json:"agp,omitempty"`
	AGPSummary map[string]agp.PeriodSummary `bson:"agpSummary,omitempty" json:"agpSummary,omitempty"`
	Patterns   []string                     `bson:"patterns,omitempty" json:"patterns,omitempty"`
	Sleep      *SleepStats                  `bson:"sleep,omitempty" json:"sleep,omitempty"`
}

// DailySummary is keyed by (userId, date).
type DailySummary struct {
	UserID string `bson:"userId" json:"userId"`
	Date   string `bson:"date" json:"date"`
	Stats  `bson:",inline"`
}

// WeeklySummary is keyed by (userId, year, week), ISO week numbering.
type WeeklySummary struct {
	UserID      string `bson:"userId" json:"userId"`
	Year        int    `bson:"year" json:"year"`
	Week        int    `bson:"week" json:"week"`
	PeriodStats `bson:",inline"`
}

// MonthlySummary is keyed by (userId, year, month).
type MonthlySummary struct {
	UserID      string `bson:"userId" json:"userId"`
	Year        int    `bson:"year" json:"year"`
	Month       int    `bson:"month" json:"month"`
	PeriodStats `bson:",inline"`
}

// QuarterlySummary is keyed by (userId, year, quarter).
type QuarterlySummary struct {
	UserID      string `bson:"userId" json:"userId"`
	Year        int    `bson:"year" json:"year"`
	Quarter     int    `bson:"quarter" json:"quarter"`
	PeriodStats `bson:",inline"`
}

// RollingSummary is a trailing window ending on EndDate. Records are
// keyed by (userId, periodDays, endDate), so reruns for the same end
// date overwrite while past end dates are retained as history.
type RollingSummary struct {
	UserID     string                       `bson:"userId" json:"userId"`
	PeriodDays int                          `bson:"periodDays" json:"periodDays"`
	StartDate  string                       `bson:"startDate" json:"startDate"`
	EndDate    string                       `bson:"endDate" json:"endDate"`
	Stats      `bson:",inline"`
	AGP        *agp.Profile                 `bson:"agp,omitempty" json:"agp,omitempty"`
	AGPSummary map[string]agp.PeriodSummary `bson:"agpSummary,omitempty" json:"agpSummary,omitempty"`
	Patterns   []string                     `bson:"patterns,omitempty" json:"patterns,omitempty"`
	UpdatedAt  time.Time                    `bson:"updatedAt" json:"updatedAt"`
}

// Repository persists summaries. Upserts are idempotent per key.
type Repository interface {
	UpsertDaily(ctx context.Context, summary *DailySummary) error
	// ListDaily returns the daily summaries of one user with
	// from <= date <= to, ordered by date.
	ListDaily(ctx context.Context, userID string, from, to string) ([]DailySummary, error)
	UpsertWeekly(ctx context.Context, summary *WeeklySummary) error
	UpsertMonthly(ctx context.Context, summary *MonthlySummary) error
	UpsertQuarterly(ctx context.Context, summary *QuarterlySummary) error
	UpsertRolling(ctx context.Context, summary *RollingSummary) error
}
