package agp_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/diafit-org/summaries/agp"
	"github.com/diafit-org/summaries/errors"
)

func samplesEvery5Minutes(start time.Time, days int, value func(t time.Time) float64) []agp.Sample {
	var samples []agp.Sample
	end := start.AddDate(0, 0, days)
	for ts := start; ts.Before(end); ts = ts.Add(5 * time.Minute) {
		samples = append(samples, agp.Sample{Time: ts, Value: value(ts)})
	}
	return samples
}

var _ = Describe("Calculate", func() {
	var start time.Time

	BeforeEach(func() {
		start = time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	})

	It("returns nil for no samples", func() {
		profile, err := agp.Calculate(nil, time.UTC, agp.DefaultOptions())
		Expect(err).ToNot(HaveOccurred())
		Expect(profile).To(BeNil())
	})

	It("returns insufficient data for a single non-empty hour", func() {
		samples := []agp.Sample{
			{Time: start.Add(10 * time.Minute), Value: 100},
			{Time: start.Add(20 * time.Minute), Value: 110},
		}
		profile, err := agp.Calculate(samples, time.UTC, agp.DefaultOptions())
		Expect(err).To(MatchError(errors.InsufficientData))
		Expect(profile).To(BeNil())
	})

	It("produces a full resolution time grid", func() {
		samples := samplesEvery5Minutes(start, 3, func(time.Time) float64 { return 120 })
		profile, err := agp.Calculate(samples, time.UTC, agp.DefaultOptions())
		Expect(err).ToNot(HaveOccurred())
		Expect(profile).ToNot(BeNil())

		Expect(profile.Time).To(HaveLen(agp.PointsPerDay))
		for i, label := range profile.Time {
			expected := fmt.Sprintf("%02d:%02d", (i*5)/60, (i*5)%60)
			Expect(label).To(Equal(expected), "label at grid point %d", i)
		}
		for i := 1; i < len(profile.Time); i++ {
			Expect(profile.Time[i] > profile.Time[i-1]).To(BeTrue(),
				"time labels must be strictly increasing")
		}

		Expect(profile.P10).To(HaveLen(agp.PointsPerDay))
		Expect(profile.P25).To(HaveLen(agp.PointsPerDay))
		Expect(profile.P50).To(HaveLen(agp.PointsPerDay))
		Expect(profile.P75).To(HaveLen(agp.PointsPerDay))
		Expect(profile.P90).To(HaveLen(agp.PointsPerDay))
	})

	It("returns constant series for constant input", func() {
		samples := samplesEvery5Minutes(start, 7, func(time.Time) float64 { return 120 })
		profile, err := agp.Calculate(samples, time.UTC, agp.DefaultOptions())
		Expect(err).ToNot(HaveOccurred())

		for i := 0; i < agp.PointsPerDay; i++ {
			Expect(profile.P10[i]).To(Equal(120.0))
			Expect(profile.P25[i]).To(Equal(120.0))
			Expect(profile.P50[i]).To(Equal(120.0))
			Expect(profile.P75[i]).To(Equal(120.0))
			Expect(profile.P90[i]).To(Equal(120.0))
		}
	})

	It("keeps percentiles ordered for well-behaved input", func() {
		values := []float64{80, 95, 110, 125, 140, 155, 170}
		i := 0
		samples := samplesEvery5Minutes(start, 7, func(time.Time) float64 {
			v := values[i%len(values)]
			i++
			return v
		})

		profile, err := agp.Calculate(samples, time.UTC, agp.DefaultOptions())
		Expect(err).ToNot(HaveOccurred())
		for j := 0; j < agp.PointsPerDay; j++ {
			Expect(profile.P10[j]).To(BeNumerically("<=", profile.P25[j]))
			Expect(profile.P25[j]).To(BeNumerically("<=", profile.P50[j]))
			Expect(profile.P50[j]).To(BeNumerically("<=", profile.P75[j]))
			Expect(profile.P75[j]).To(BeNumerically("<=", profile.P90[j]))
		}
	})

	It("buckets hours in the user's timezone", func() {
		// 23:30 UTC is 00:30 in a +01:00 zone. With samples only at
		// 23:30 and 11:30 UTC, the profile computed in the shifted
		// zone anchors those values at hours 0 and 12.
		var samples []agp.Sample
		for day := 0; day < 5; day++ {
			base := start.AddDate(0, 0, day)
			samples = append(samples,
				agp.Sample{Time: base.Add(23*time.Hour + 30*time.Minute), Value: 80},
				agp.Sample{Time: base.Add(11*time.Hour + 30*time.Minute), Value: 160},
			)
		}

		shifted := time.FixedZone("UTC+1", 3600)
		profile, err := agp.Calculate(samples, shifted, agp.DefaultOptions())
		Expect(err).ToNot(HaveOccurred())

		Expect(profile.P50[0]).To(BeNumerically("~", 80, 5))
		Expect(profile.P50[12*agp.PointsPerHour]).To(BeNumerically("~", 160, 5))
	})

	It("honors a custom resolution", func() {
		samples := samplesEvery5Minutes(start, 2, func(time.Time) float64 { return 100 })
		profile, err := agp.Calculate(samples, time.UTC, agp.Options{Resolution: 96, Smoothed: true})
		Expect(err).ToNot(HaveOccurred())
		Expect(profile.Time).To(HaveLen(96))
		Expect(profile.Time[0]).To(Equal("00:00"))
		Expect(profile.Time[1]).To(Equal("00:15"))
	})

	It("fills hours without samples by circular interpolation", func() {
		// Samples only at hours 6 and 18; everything in between is
		// interpolated and must stay within the sampled band.
		var samples []agp.Sample
		for day := 0; day < 5; day++ {
			base := start.AddDate(0, 0, day)
			samples = append(samples,
				agp.Sample{Time: base.Add(6*time.Hour + 30*time.Minute), Value: 100},
				agp.Sample{Time: base.Add(18*time.Hour + 30*time.Minute), Value: 140},
			)
		}

		profile, err := agp.Calculate(samples, time.UTC, agp.DefaultOptions())
		Expect(err).ToNot(HaveOccurred())
		for i := range profile.P50 {
			Expect(profile.P50[i]).To(BeNumerically(">=", 95))
			Expect(profile.P50[i]).To(BeNumerically("<=", 145))
		}
	})
})

var _ = Describe("PeriodsSummary", func() {
	It("returns nil for a nil profile", func() {
		Expect(agp.PeriodsSummary(nil)).To(BeNil())
	})

	It("summarizes a flat profile to its constant value", func() {
		profile := flatProfile(100)
		summary := agp.PeriodsSummary(profile)
		Expect(summary).To(HaveLen(len(agp.TimePeriods)))

		for _, period := range agp.TimePeriods {
			Expect(summary).To(HaveKey(period.Name))
			Expect(summary[period.Name].P50).To(Equal(100.0))
			Expect(summary[period.Name].P10P90Range).To(Equal([2]float64{100, 100}))
			Expect(summary[period.Name].P25P75Range).To(Equal([2]float64{100, 100}))
		}
	})
})
