package events

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	GlucoseCollectionName = "cgm"
	BolusCollectionName   = "bolus"
	MealsCollectionName   = "meals"
	SleepCollectionName   = "sleep_sessions"
)

func NewGlucoseRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (GlucoseRepository, error) {
	repo := &glucoseRepository{
		streamRepository: newStreamRepository(db.Collection(GlucoseCollectionName), logger),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func NewBolusRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (BolusRepository, error) {
	repo := &bolusRepository{
		streamRepository: newStreamRepository(db.Collection(BolusCollectionName), logger),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func NewMealRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (MealRepository, error) {
	repo := &mealRepository{
		streamRepository: newStreamRepository(db.Collection(MealsCollectionName), logger),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func NewSleepRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (SleepRepository, error) {
	repo := &sleepRepository{
		streamRepository: newStreamRepository(db.Collection(SleepCollectionName), logger, withTimeField("startTime")),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

// streamRepository implements the time-window query shared by every
// event stream. The timestamp field is configurable because sleep
// sessions are windowed by their start time.
type streamRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
	timeField  string
}

type streamOption func(*streamRepository)

func withTimeField(field string) streamOption {
	return func(r *streamRepository) {
		r.timeField = field
	}
}

func newStreamRepository(collection *mongo.Collection, logger *zap.SugaredLogger, opts ...streamOption) streamRepository {
	repo := streamRepository{
		collection: collection,
		logger:     logger,
		timeField:  "timestamp",
	}
	for _, opt := range opts {
		opt(&repo)
	}
	return repo
}

func (r *streamRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: r.timeField, Value: 1},
			},
			Options: options.Index().
				SetName("UserTimestamp"),
		},
	})
	return err
}

func (r *streamRepository) find(ctx context.Context, userID string, start, end time.Time, results any) error {
	opts := options.Find().
		SetSort(bson.D{{Key: r.timeField, Value: 1}})

	selector := bson.M{
		"userId": userID,
		r.timeField: bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return fmt.Errorf("error listing %s events: %w", r.collection.Name(), err)
	}

	if err = cursor.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding %s events: %w", r.collection.Name(), err)
	}

	return nil
}

type glucoseRepository struct {
	streamRepository
}

func (r *glucoseRepository) List(ctx context.Context, userID string, start, end time.Time) ([]GlucoseReading, error) {
	var readings []GlucoseReading
	if err := r.find(ctx, userID, start, end, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

type bolusRepository struct {
	streamRepository
}

func (r *bolusRepository) List(ctx context.Context, userID string, start, end time.Time) ([]Bolus, error) {
	var boluses []Bolus
	if err := r.find(ctx, userID, start, end, &boluses); err != nil {
		return nil, err
	}
	return boluses, nil
}

type mealRepository struct {
	streamRepository
}

func (r *mealRepository) List(ctx context.Context, userID string, start, end time.Time) ([]Meal, error) {
	var meals []Meal
	if err := r.find(ctx, userID, start, end, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

type sleepRepository struct {
	streamRepository
}

func (r *sleepRepository) List(ctx context.Context, userID string, start, end time.Time) ([]SleepSession, error) {
	var sessions []SleepSession
	if err := r.find(ctx, userID, start, end, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
