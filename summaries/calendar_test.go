package summaries_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/diafit-org/summaries/errors"
	"github.com/diafit-org/summaries/summaries"
)

var _ = Describe("Calendar", func() {
	Describe("WeekRange", func() {
		It("returns Monday through Sunday", func() {
			start, end, err := summaries.WeekRange(2026, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(start.Weekday()).To(Equal(time.Monday))
			Expect(end.Weekday()).To(Equal(time.Sunday))
			Expect(end.Sub(start)).To(Equal(6 * 24 * time.Hour))
		})

		It("anchors week 1 on January 4th", func() {
			start, end, err := summaries.WeekRange(2026, 1)
			Expect(err).ToNot(HaveOccurred())
			jan4 := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
			Expect(start.Before(jan4) || start.Equal(jan4)).To(BeTrue())
			Expect(end.After(jan4) || end.Equal(jan4)).To(BeTrue())
		})

		It("round-trips through ISOWeek", func() {
			start, _, err := summaries.WeekRange(2025, 33)
			Expect(err).ToNot(HaveOccurred())
			year, week := start.ISOWeek()
			Expect(year).To(Equal(2025))
			Expect(week).To(Equal(33))
		})

		It("rejects invalid weeks", func() {
			_, _, err := summaries.WeekRange(2026, 0)
			Expect(err).To(MatchError(errors.InvalidPeriod))
		})
	})

	Describe("MonthRange", func() {
		It("handles a leap February", func() {
			start, end, err := summaries.MonthRange(2024, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(start).To(Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
			Expect(end).To(Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
		})

		It("handles December", func() {
			start, end, err := summaries.MonthRange(2025, 12)
			Expect(err).ToNot(HaveOccurred())
			Expect(start).To(Equal(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
			Expect(end).To(Equal(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
		})

		It("rejects invalid months", func() {
			_, _, err := summaries.MonthRange(2025, 13)
			Expect(err).To(MatchError(errors.InvalidPeriod))
		})
	})

	Describe("QuarterRange", func() {
		It("covers three whole months", func() {
			start, end, err := summaries.QuarterRange(2025, 4)
			Expect(err).ToNot(HaveOccurred())
			Expect(start).To(Equal(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
			Expect(end).To(Equal(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
		})

		It("rejects invalid quarters", func() {
			_, _, err := summaries.QuarterRange(2025, 5)
			Expect(err).To(MatchError(errors.InvalidPeriod))
		})
	})

	Describe("PreviousWeek", func() {
		It("returns the week before the current one", func() {
			// Wednesday 2026-02-18 is in ISO week 8.
			now := time.Date(2026, time.February, 18, 15, 0, 0, 0, time.UTC)
			year, week := summaries.PreviousWeek(now)
			Expect(year).To(Equal(2026))
			Expect(week).To(Equal(7))
		})

		It("crosses the year boundary", func() {
			// Thursday 2026-01-01 is in ISO week 1 of 2026.
			now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
			year, week := summaries.PreviousWeek(now)
			Expect(year).To(Equal(2025))
			Expect(week).To(Equal(52))
		})
	})

	Describe("PreviousMonth", func() {
		It("crosses the year boundary in January", func() {
			now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
			year, month := summaries.PreviousMonth(now)
			Expect(year).To(Equal(2025))
			Expect(month).To(Equal(12))
		})

		It("returns the preceding month otherwise", func() {
			now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
			year, month := summaries.PreviousMonth(now)
			Expect(year).To(Equal(2026))
			Expect(month).To(Equal(7))
		})
	})

	Describe("PreviousQuarter", func() {
		It("crosses the year boundary in Q1", func() {
			now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
			year, quarter := summaries.PreviousQuarter(now)
			Expect(year).To(Equal(2025))
			Expect(quarter).To(Equal(4))
		})

		It("returns the preceding quarter otherwise", func() {
			now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
			year, quarter := summaries.PreviousQuarter(now)
			Expect(year).To(Equal(2026))
			Expect(quarter).To(Equal(2))
		})
	})
})
