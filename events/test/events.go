package test

import (
	"time"

	"github.com/diafit-org/summaries/events"
	"github.com/diafit-org/summaries/test"
)

func RandomGlucoseReading(userID string, timestamp time.Time) events.GlucoseReading {
	return events.GlucoseReading{
		UserID:    userID,
		Timestamp: timestamp,
		Value:     test.Faker.Float64(1, 40, 400),
	}
}

// GlucoseSeries returns count readings spaced by interval, with values
// drawn around the given baseline.
func GlucoseSeries(userID string, start time.Time, interval time.Duration, count int, baseline float64) []events.GlucoseReading {
	readings := make([]events.GlucoseReading, count)
	for i := range readings {
		readings[i] = events.GlucoseReading{
			UserID:    userID,
			Timestamp: start.Add(time.Duration(i) * interval),
			Value:     baseline + test.Faker.Float64(1, -10, 10),
		}
	}
	return readings
}

func RandomBolus(userID string, timestamp time.Time) events.Bolus {
	return events.Bolus{
		UserID:    userID,
		Timestamp: timestamp,
		Units:     test.Faker.Float64(1, 1, 15),
	}
}

func RandomMeal(userID string, timestamp time.Time) events.Meal {
	return events.Meal{
		UserID:    userID,
		Timestamp: timestamp,
		Carbs:     test.Faker.Float64(1, 10, 120),
		Proteins:  test.Faker.Float64(1, 5, 60),
		Fats:      test.Faker.Float64(1, 5, 40),
		Calories:  test.Faker.Float64(0, 200, 1200),
	}
}

func RandomSleepSession(userID string, start time.Time) events.SleepSession {
	total := test.Faker.Float64(0, 300, 560)
	end := start.Add(time.Duration(total) * time.Minute)
	return events.SleepSession{
		UserID:           userID,
		StartTime:        start,
		EndTime:          end,
		TotalMinutes:     total,
		DeepSleepMinutes: total * 0.2,
		RemSleepMinutes:  total * 0.25,
	}
}
