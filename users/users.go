package users

import (
	"context"
)

//go:generate mockgen --build_flags=--mod=mod -source=./users.go -destination=./test/mock_service.go -package test

// User is the slice of the profile the summary jobs need: an identity
// and the IANA timezone all day boundaries are resolved in.
type User struct {
	ID       string `bson:"_id"`
	Timezone string `bson:"timezone"`
}

// Service lists the users whose summaries are recomputed by the
// aggregation jobs.
type Service interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, userID string) (*User, error)
}
