package events_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/diafit-org/summaries/events"
	eventsTest "github.com/diafit-org/summaries/events/test"
)

var _ = Describe("Sample converters", func() {
	var start time.Time

	BeforeEach(func() {
		start = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	})

	Describe("GlucoseSamples", func() {
		It("carries timestamp and value per reading", func() {
			readings := eventsTest.GlucoseSeries("user-1", start, 5*time.Minute, 3, 120)

			samples := events.GlucoseSamples(readings)
			Expect(samples).To(HaveLen(3))
			for i, sample := range samples {
				Expect(sample.Time).To(Equal(readings[i].Timestamp))
				Expect(sample.Value).To(Equal(readings[i].Value))
			}
		})

		It("returns an empty slice for no readings", func() {
			Expect(events.GlucoseSamples(nil)).To(BeEmpty())
		})
	})

	Describe("BolusSamples", func() {
		It("carries timestamp and units per dose", func() {
			boluses := []events.Bolus{
				eventsTest.RandomBolus("user-1", start),
				eventsTest.RandomBolus("user-1", start.Add(4*time.Hour)),
			}

			samples := events.BolusSamples(boluses)
			Expect(samples).To(HaveLen(2))
			for i, sample := range samples {
				Expect(sample.Time).To(Equal(boluses[i].Timestamp))
				Expect(sample.Value).To(Equal(boluses[i].Units))
			}
		})
	})

	Describe("Timestamps", func() {
		It("extracts the reading instants in order", func() {
			readings := eventsTest.GlucoseSeries("user-1", start, 5*time.Minute, 4, 110)

			timestamps := events.Timestamps(readings)
			Expect(timestamps).To(HaveLen(4))
			for i, ts := range timestamps {
				Expect(ts).To(Equal(readings[i].Timestamp))
			}
		})
	})
})
