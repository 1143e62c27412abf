package test

import (
	"time"

	"github.com/diafit-org/summaries/summaries"
	"github.com/diafit-org/summaries/test"
)

func RandomStats() summaries.Stats {
	tir := float64(test.Rand.Intn(101))
	tbr := float64(test.Rand.Intn(int(101 - tir)))
	return summaries.Stats{
		GlucoseAvg:     float64(test.Rand.Intn(150) + 80),
		GlucoseStd:     float64(test.Rand.Intn(60)),
		TimeInRange:    tir,
		TimeBelowRange: tbr,
		TimeAboveRange: 100 - tir - tbr,
		Coverage:       float64(test.Rand.Intn(101)),
		Bolus:          test.Faker.Float64(1, 0, 60),
		Meals:          float64(test.Rand.Intn(6)),
		Carbs:          test.Faker.Float64(1, 0, 300),
		Proteins:       test.Faker.Float64(1, 0, 150),
		Fats:           test.Faker.Float64(1, 0, 120),
		Calories:       test.Faker.Float64(0, 0, 3000),
	}
}

func RandomDailySummary(userID string, date time.Time) summaries.DailySummary {
	return summaries.DailySummary{
		UserID: userID,
		Date:   date.Format(summaries.DateFormat),
		Stats:  RandomStats(),
	}
}

// DailySeries returns one summary per day over [start, start+days).
func DailySeries(userID string, start time.Time, days int) []summaries.DailySummary {
	series := make([]summaries.DailySummary, days)
	for i := range series {
		series[i] = RandomDailySummary(userID, start.AddDate(0, 0, i))
	}
	return series
}
