package summaries_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/diafit-org/summaries/config"
	"github.com/diafit-org/summaries/events"
	eventsTest "github.com/diafit-org/summaries/events/test"
	"github.com/diafit-org/summaries/summaries"
	summariesTest "github.com/diafit-org/summaries/summaries/test"
	"github.com/diafit-org/summaries/users"
	usersTest "github.com/diafit-org/summaries/users/test"
)

var _ = Describe("RunRolling", func() {
	var ctrl *gomock.Controller
	var runner *summaries.Runner
	var mocks runnerMocks
	var user users.User

	endDay := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	endDate := endDay.Add(10 * time.Hour)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner, mocks = newRunner(ctrl, &config.Config{
			DefaultTimezone:   "Europe/Berlin",
			RollingPeriodDays: []int{1},
		})
		user = usersTest.RandomUser()
		user.Timezone = "UTC"
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("for short periods", func() {
		windowStart := endDay
		windowEnd := endDay.AddDate(0, 0, 1)

		It("computes stats from raw events", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)

			// Half a day of five-minute readings: coverage against the
			// expected cadence is 50%.
			readings := eventsTest.GlucoseSeries(user.ID, windowStart, 5*time.Minute, 144, 120)
			for i := range readings {
				readings[i].Value = 120
			}
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(readings, nil)
			mocks.bolus.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return([]events.Bolus{
				{UserID: user.ID, Timestamp: windowStart.Add(time.Hour), Units: 7.125},
			}, nil)
			mocks.meals.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return([]events.Meal{
				{UserID: user.ID, Timestamp: windowStart.Add(time.Hour), Carbs: 45.25, Proteins: 20, Fats: 10, Calories: 500.4},
			}, nil)

			var saved *summaries.RollingSummary
			mocks.repo.EXPECT().UpsertRolling(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.RollingSummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunRolling(context.Background(), []int{1}, endDate)).To(Succeed())

			Expect(saved).ToNot(BeNil())
			Expect(saved.UserID).To(Equal(user.ID))
			Expect(saved.PeriodDays).To(Equal(1))
			Expect(saved.StartDate).To(Equal("2026-03-08"))
			Expect(saved.EndDate).To(Equal("2026-03-08"))
			Expect(saved.GlucoseAvg).To(Equal(120.0))
			Expect(saved.Coverage).To(Equal(50.0))
			Expect(saved.Bolus).To(Equal(7.13))
			Expect(saved.Meals).To(Equal(1.0))
			Expect(saved.Carbs).To(Equal(45.3))
			Expect(saved.Calories).To(Equal(500.0))
			Expect(saved.UpdatedAt).ToNot(BeZero())
		})

		It("fits a profile over the window readings", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)

			readings := eventsTest.GlucoseSeries(user.ID, windowStart, 5*time.Minute, 288, 115)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(readings, nil)
			mocks.bolus.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)
			mocks.meals.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)

			var saved *summaries.RollingSummary
			mocks.repo.EXPECT().UpsertRolling(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.RollingSummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunRolling(context.Background(), []int{1}, endDate)).To(Succeed())
			Expect(saved.AGP).ToNot(BeNil())
			Expect(saved.AGP.P50).To(HaveLen(288))
			Expect(saved.Patterns).ToNot(BeEmpty())
		})

		It("skips users without readings", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)

			Expect(runner.RunRolling(context.Background(), []int{1}, endDate)).To(Succeed())
		})
	})

	Context("for long periods", func() {
		startDay := endDay.AddDate(0, 0, -6)
		windowStart := startDay
		windowEnd := endDay.AddDate(0, 0, 1)

		It("averages existing daily summaries", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)

			dailies := summariesTest.DailySeries(user.ID, startDay, 7)
			for i := range dailies {
				dailies[i].GlucoseAvg = 110
				dailies[i].Bolus = 21
			}
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-03-02", "2026-03-08").
				Return(dailies, nil)
			mocks.glucose.EXPECT().List(gomock.Any(), user.ID, windowStart, windowEnd).Return(nil, nil)

			var saved *summaries.RollingSummary
			mocks.repo.EXPECT().UpsertRolling(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, summary *summaries.RollingSummary) error {
					saved = summary
					return nil
				})

			Expect(runner.RunRolling(context.Background(), []int{7}, endDate)).To(Succeed())

			Expect(saved.PeriodDays).To(Equal(7))
			Expect(saved.StartDate).To(Equal("2026-03-02"))
			Expect(saved.GlucoseAvg).To(Equal(110.0))
			Expect(saved.Bolus).To(Equal(21.0))
			Expect(saved.AGP).To(BeNil())
		})

		It("skips users without daily summaries", func() {
			mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
			mocks.repo.EXPECT().ListDaily(gomock.Any(), user.ID, "2026-03-02", "2026-03-08").
				Return(nil, nil)

			Expect(runner.RunRolling(context.Background(), []int{7}, endDate)).To(Succeed())
		})
	})

	It("falls back to the configured periods", func() {
		mocks.users.EXPECT().List(gomock.Any()).Return([]users.User{user}, nil)
		mocks.glucose.EXPECT().List(gomock.Any(), user.ID, endDay, endDay.AddDate(0, 0, 1)).Return(nil, nil)

		Expect(runner.RunRolling(context.Background(), nil, endDate)).To(Succeed())
	})
})
