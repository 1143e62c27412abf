package summaries_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/diafit-org/summaries/errors"
	"github.com/diafit-org/summaries/events"
	eventsTest "github.com/diafit-org/summaries/events/test"
	"github.com/diafit-org/summaries/summaries"
	summariesTest "github.com/diafit-org/summaries/summaries/test"
	"github.com/diafit-org/summaries/users"
	usersTest "github.com/diafit-org/summaries/users/test"
)

var _ = Describe("Periodic summaries", func() {
	var ctrl *gomock.Controller
	var runner *summaries.Runner
	var mocks runnerMocks
	var user users.User

	// ISO week 10 of 2026 runs Monday March 2nd through Sunday March 8th.
	weekStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	windowStart := weekStart
	windowEnd := weekStart.AddDate(0, 0, 7)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner, mocks = newRunner(ctrl, defaultConfig())
		user = usersTest.RandomUser()
		user.Timezone = "UTC"
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("RunWeekly", func() {
		It("averages the daily summaries of the week", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)

			first := summariesTest.RandomDailySummary(user.ID, weekStart)
			second := summariesTest.RandomDailySummary(user.ID, weekStart.AddDate(0, 0, 1))
			first.GlucoseAvg, second.GlucoseAvg = 100, 102
			first.TimeInRange, second.TimeInRange = 80, 90
			first.Bolus, second.Bolus = 10, 20
			first.Carbs, second.Carbs = 100, 150

			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-03-02", "2026-03-08").
				Return([]summaries.DailySummary{first, second}, nil)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)
			mocks.sleep.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)

			var saved *summaries.WeeklySummary
			mocks.repo.EXPECT().UpsertWeekly(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.WeeklySummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunWeekly(context.Background(), 2026, 10)).To(Succeed())

			Expect(saved).ToNot(BeNil())
			Expect(saved.UserID).To(Equal(user.ID))
			Expect(saved.Year).To(Equal(2026))
			Expect(saved.Week).To(Equal(10))
			Expect(saved.GlucoseAvg).To(Equal(101.0))
			Expect(saved.TimeInRange).To(Equal(85.0))
			Expect(saved.Bolus).To(Equal(15.0))
			Expect(saved.Carbs).To(Equal(125.0))
		})

		It("degrades profile fields to nil when the week has too little raw data", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-03-02", "2026-03-08").
				Return(summariesTest.DailySeries(user.ID, weekStart, 7), nil)
			// A single hour of readings is not enough to fit a profile.
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).
				Return(eventsTest.GlucoseSeries(user.ID, windowStart, 5*time.Minute, 6, 110), nil)
			mocks.sleep.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)

			var saved *summaries.WeeklySummary
			mocks.repo.EXPECT().UpsertWeekly(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.WeeklySummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunWeekly(context.Background(), 2026, 10)).To(Succeed())
			Expect(saved.AGP).To(BeNil())
			Expect(saved.AGPSummary).To(BeNil())
			Expect(saved.Patterns).To(BeNil())
		})

		It("computes profile and sleep fields from raw events", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-03-02", "2026-03-08").
				Return(summariesTest.DailySeries(user.ID, weekStart, 7), nil)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).
				Return(eventsTest.GlucoseSeries(user.ID, windowStart, 5*time.Minute, 2016, 110), nil)

			sessions := []events.SleepSession{
				eventsTest.RandomSleepSession(user.ID, weekStart.Add(22*time.Hour)),
			}
			mocks.sleep.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(sessions, nil)

			var saved *summaries.WeeklySummary
			mocks.repo.EXPECT().UpsertWeekly(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.WeeklySummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunWeekly(context.Background(), 2026, 10)).To(Succeed())

			Expect(saved.AGP).ToNot(BeNil())
			Expect(saved.AGP.P50).To(HaveLen(288))
			Expect(saved.AGPSummary).To(HaveKey("morning"))
			Expect(saved.Sleep).ToNot(BeNil())
			Expect(saved.Sleep.AvgFallAsleepTime).To(Equal("22:00"))
		})

		It("skips users without daily summaries", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-03-02", "2026-03-08").
				Return(nil, nil)

			Expect(runner.RunWeekly(context.Background(), 2026, 10)).To(Succeed())
		})

		It("rejects invalid weeks", func() {
			Expect(runner.RunWeekly(context.Background(), 2026, 54)).To(MatchError(errors.InvalidPeriod))
		})
	})

	Describe("RunMonthly", func() {
		It("uses the calendar month as the range", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-02-01", "2026-02-28").
				Return(summariesTest.DailySeries(user.ID, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 28), nil)

			monthWindowStart := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
			monthWindowEnd := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, monthWindowStart, monthWindowEnd).Return(nil, nil)
			mocks.sleep.EXPECT().List(gomock.Any(), user.ID, monthWindowStart, monthWindowEnd).Return(nil, nil)

			var saved *summaries.MonthlySummary
			mocks.repo.EXPECT().UpsertMonthly(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.MonthlySummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunMonthly(context.Background(), 2026, 2)).To(Succeed())
			Expect(saved.Year).To(Equal(2026))
			Expect(saved.Month).To(Equal(2))
		})

		It("rejects invalid months", func() {
			Expect(runner.RunMonthly(context.Background(), 2026, 13)).To(MatchError(errors.InvalidPeriod))
		})
	})

	Describe("RunQuarterly", func() {
		It("uses the calendar quarter as the range", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-04-01", "2026-06-30").
				Return(summariesTest.DailySeries(user.ID, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), 10), nil)

			quarterWindowStart := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
			quarterWindowEnd := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, quarterWindowStart, quarterWindowEnd).Return(nil, nil)
			mocks.sleep.EXPECT().List(gomock.Any(), user.ID, quarterWindowStart, quarterWindowEnd).Return(nil, nil)

			var saved *summaries.QuarterlySummary
			mocks.repo.EXPECT().UpsertQuarterly(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.QuarterlySummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunQuarterly(context.Background(), 2026, 2)).To(Succeed())
			Expect(saved.Year).To(Equal(2026))
			Expect(saved.Quarter).To(Equal(2))
		})

		It("scopes a save failure to the affected user", func() {
			second := usersTest.RandomUser()
			second.Timezone = "UTC"
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user, second}, nil)

			for _, u := range []users.User{user, second} {
				mocks.repo.EXPECT().ListDaily(gomock.Any(), u.ID, "2026-04-01", "2026-06-30").
					Return(summariesTest.DailySeries(u.ID, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), 5), nil)
				mocks.glucose.EXPECT().List(gomock.Any(), u.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
				mocks.sleep.EXPECT().List(gomock.Any(), u.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
			}

			gomock.InOrder(
				mocks.repo.EXPECT().UpsertQuarterly(gomock.Any(), gomock.Any()).Return(fmt.Errorf("write conflict")),
				mocks.repo.EXPECT().UpsertQuarterly(gomock.Any(), gomock.Any()).Return(nil),
			)

			Expect(runner.RunQuarterly(context.Background(), 2026, 2)).To(Succeed())
		})
	})
})
