package controllers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContextKey string

// UserEmailKey carries the email decoded from the bearer token, attached by
// middleware.VerifyToken.
const UserEmailKey = ContextKey("userEmail")

// dbTimeout bounds every storage call; there are no retries.
const dbTimeout = 5 * time.Second

// Collection is the subset of *mongo.Collection the handlers use. Tests
// substitute the in-memory fake from testing.go.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type InsertResponse struct {
	Message    string      `json:"message,omitempty"`
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func dbContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, dbTimeout)
}
