package agp

// Time grid configuration. The canonical profile resolution is one point per
// five minutes.
const (
	PointsPerHour = 12
	PointsPerDay  = 24 * PointsPerHour

	hoursPerDay = 24
)

// TimePeriod is a named day-part. End is exclusive; a period with Start >
// End wraps past midnight.
type TimePeriod struct {
	Name  string
	Start int
	End   int
}

// TimePeriods are evaluated in this fixed order so findings are deterministic.
var TimePeriods = []TimePeriod{
	{Name: "night", Start: 22, End: 7},
	{Name: "morning", Start: 7, End: 11},
	{Name: "noon", Start: 11, End: 15},
	{Name: "afternoon", Start: 15, End: 18},
	{Name: "evening", Start: 18, End: 22},
}

// Clinical glucose thresholds (mg/dL).
const (
	HypoThreshold       = 70
	SevereHypoThreshold = 54
	TargetLow           = 70
	TargetHigh          = 180
	VeryHigh            = 250
	OptimalLow          = 70
	OptimalHigh         = 140
)

// Fasting glucose thresholds (mg/dL).
const (
	FastingOptimalLow  = 70
	FastingOptimalHigh = 100
	FastingTargetHigh  = 130

	FastingStartHour = 5
	FastingEndHour   = 7
)

// Variability thresholds (mg/dL).
const (
	WideIQR               = 60
	TightIQR              = 30
	InconsistentOuterBand = 100
	ConsistentOuterBand   = 40
)

// Dawn phenomenon window and rise threshold.
const (
	DawnStartHour     = 3
	DawnEndHour       = 7
	DawnRiseThreshold = 20
)

// Somogyi effect windows.
const (
	SomogyiNightStartHour   = 2
	SomogyiNightEndHour     = 4
	SomogyiMorningStartHour = 6
	SomogyiMorningEndHour   = 8
)

// Meal windows (hours) and response thresholds.
const (
	MealSpikeThreshold = 50

	BreakfastPreHour   = 6
	BreakfastStartHour = 7
	BreakfastEndHour   = 10

	LunchPreHour   = 11
	LunchStartHour = 12
	LunchEndHour   = 15

	DinnerPreHour   = 18
	DinnerStartHour = 19
	DinnerEndHour   = 22

	RapidSpikeTimeThreshold    = 30 // minutes
	RapidSpikeRiseThreshold    = 50 // mg/dL
	ProlongedElevationDuration = 90 // minutes
	ElevationThresholdOffset   = 30 // mg/dL above baseline
	RecoveryThreshold          = 20 // mg/dL from baseline
	RecoveryThresholdDelayed   = 30 // mg/dL from baseline

	GoodMealRiseMin     = 20 // mg/dL
	GoodMealRiseMax     = 40 // mg/dL
	GoodMealPeakTimeMin = 30 // minutes
	GoodMealPeakTimeMax = 90 // minutes
)

type mealWindow struct {
	name  string
	pre   int
	start int
	end   int
}

var mealWindows = []mealWindow{
	{name: "breakfast", pre: BreakfastPreHour, start: BreakfastStartHour, end: BreakfastEndHour},
	{name: "lunch", pre: LunchPreHour, start: LunchStartHour, end: LunchEndHour},
	{name: "dinner", pre: DinnerPreHour, start: DinnerStartHour, end: DinnerEndHour},
}
