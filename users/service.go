package users

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/diafit-org/summaries/errors"
)

const (
	CollectionName = "users"
)

func NewService(db *mongo.Database, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		collection: db.Collection(CollectionName),
		logger:     logger,
	}, nil
}

type service struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (s *service) List(ctx context.Context) ([]User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	var users []User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users list: %w", err)
	}

	return users, nil
}

func (s *service) Get(ctx context.Context, userID string) (*User, error) {
	user := &User{}
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: user %s", errors.NotFound, userID)
	} else if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}
