package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes the transcripts collection relies
// on. Safe to call on every startup; CreateMany is a no-op for indexes that
// already exist.
func EnsureMongoIndexes(client *mongo.Client, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	transcripts := client.Database(dbName).Collection("transcripts")
	_, err := transcripts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// newest-first listing
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
	return err
}
