package summaries

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/diafit-org/summaries/store"
)

const (
	DailyCollectionName     = "daily_summaries"
	WeeklyCollectionName    = "weekly_summaries"
	MonthlyCollectionName   = "monthly_summaries"
	QuarterlyCollectionName = "quarterly_summaries"
	RollingCollectionName   = "rolling_summaries"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		daily:     db.Collection(DailyCollectionName),
		weekly:    db.Collection(WeeklyCollectionName),
		monthly:   db.Collection(MonthlyCollectionName),
		quarterly: db.Collection(QuarterlyCollectionName),
		rolling:   db.Collection(RollingCollectionName),
		logger:    logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	daily     *mongo.Collection
	weekly    *mongo.Collection
	monthly   *mongo.Collection
	quarterly *mongo.Collection
	rolling   *mongo.Collection
	logger    *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	indexes := []struct {
		collection *mongo.Collection
		keys       bson.D
		name       string
	}{
		{r.daily, bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}, "UniqueUserDate"},
		{r.weekly, bson.D{{Key: "userId", Value: 1}, {Key: "year", Value: 1}, {Key: "week", Value: 1}}, "UniqueUserWeek"},
		{r.monthly, bson.D{{Key: "userId", Value: 1}, {Key: "year", Value: 1}, {Key: "month", Value: 1}}, "UniqueUserMonth"},
		{r.quarterly, bson.D{{Key: "userId", Value: 1}, {Key: "year", Value: 1}, {Key: "quarter", Value: 1}}, "UniqueUserQuarter"},
		{r.rolling, bson.D{{Key: "userId", Value: 1}, {Key: "periodDays", Value: 1}, {Key: "endDate", Value: 1}}, "UniqueUserPeriodEndDate"},
	}

	for _, index := range indexes {
		_, err := index.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: index.keys,
			Options: options.Index().
				SetUnique(true).
				SetName(index.name),
		})
		if err != nil {
			return fmt.Errorf("error creating index %s: %w", index.name, err)
		}
	}

	return nil
}

func (r *repository) UpsertDaily(ctx context.Context, summary *DailySummary) error {
	selector := bson.M{
		"userId": summary.UserID,
		"date":   summary.Date,
	}
	return r.upsert(ctx, r.daily, selector, summary)
}

func (r *repository) ListDaily(ctx context.Context, userID string, from, to string) ([]DailySummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}})

	selector := bson.M{
		"userId": userID,
		"date": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}

	cursor, err := r.daily.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing daily summaries: %w", err)
	}

	var summaries []DailySummary
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("error decoding daily summaries: %w", err)
	}

	return summaries, nil
}

func (r *repository) UpsertWeekly(ctx context.Context, summary *WeeklySummary) error {
	selector := bson.M{
		"userId": summary.UserID,
		"year":   summary.Year,
		"week":   summary.Week,
	}
	return r.upsert(ctx, r.weekly, selector, summary)
}

func (r *repository) UpsertMonthly(ctx context.Context, summary *MonthlySummary) error {
	selector := bson.M{
		"userId": summary.UserID,
		"year":   summary.Year,
		"month":  summary.Month,
	}
	return r.upsert(ctx, r.monthly, selector, summary)
}

func (r *repository) UpsertQuarterly(ctx context.Context, summary *QuarterlySummary) error {
	selector := bson.M{
		"userId":  summary.UserID,
		"year":    summary.Year,
		"quarter": summary.Quarter,
	}
	return r.upsert(ctx, r.quarterly, selector, summary)
}

func (r *repository) UpsertRolling(ctx context.Context, summary *RollingSummary) error {
	selector := bson.M{
		"userId":     summary.UserID,
		"periodDays": summary.PeriodDays,
		"endDate":    summary.EndDate,
	}
	return r.upsert(ctx, r.rolling, selector, summary)
}

// upsert replaces the whole document so reruns leave no stale fields
// behind, e.g. a profile that can no longer be fitted.
func (r *repository) upsert(ctx context.Context, collection *mongo.Collection, selector bson.M, summary any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, selector, summary, opts)
	if store.IsDuplicateKeyError(err) {
		// A concurrent run inserted the document for the same key after
		// our lookup. The retry matches it and replaces.
		_, err = collection.ReplaceOne(ctx, selector, summary, opts)
	}
	if err != nil {
		return fmt.Errorf("error upserting %s: %w", collection.Name(), err)
	}
	return nil
}
