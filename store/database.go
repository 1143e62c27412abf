package store

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// NewDatabase selects the configured database on an established client.
func NewDatabase(client *mongo.Client, cfg *Config) (*mongo.Database, error) {
	return client.Database(cfg.DatabaseName), nil
}
