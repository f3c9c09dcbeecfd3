package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the handles for every backing collection. A single value
// is built at startup and injected into the route table.
type Collections struct {
	Users        *mongo.Collection
	Reviews      *mongo.Collection
	Payments     *mongo.Collection
	Contact      *mongo.Collection
	ScoreHistory *mongo.Collection
}

func ConnectDB() (*mongo.Client, error) {
	MONGO_URI := os.Getenv("MONGOURI")
	if MONGO_URI == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment")
	}

	clientOptions := options.Client().ApplyURI(MONGO_URI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A failed ping is logged but not fatal; the server keeps serving and
	// individual requests surface storage errors as 500s.
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB ping failed: %v", err)
		return client, nil
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

func InitCollections(client *mongo.Client) *Collections {
	dbName := os.Getenv("DB_NAME")
	db := client.Database(dbName)
	return &Collections{
		Users:        db.Collection("users"),
		Reviews:      db.Collection("reviews"),
		Payments:     db.Collection("payments"),
		Contact:      db.Collection("contact"),
		ScoreHistory: db.Collection("scoreHistory"),
	}
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}
	log.Println("MongoDB connection closed")
}
