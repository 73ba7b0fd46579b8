package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the keys the engine's guarantees rest on. The two
// unique compound indexes are load-bearing: one session per device per
// puzzle, and at most one accepted leaderboard submission per device per
// date. Safe to call repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	sessionKeys := mongo.IndexModel{
		Keys:    bson.D{{Key: "deviceId", Value: 1}, {Key: "puzzleId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("sessions").Indexes().CreateOne(ctx, sessionKeys); err != nil {
		return fmt.Errorf("sessions index: %w", err)
	}

	entryKeys := mongo.IndexModel{
		Keys:    bson.D{{Key: "deviceId", Value: 1}, {Key: "puzzleDate", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("leaderboard_entries").Indexes().CreateOne(ctx, entryKeys); err != nil {
		return fmt.Errorf("leaderboard_entries index: %w", err)
	}

	lookups := []mongo.IndexModel{
		{Keys: bson.D{{Key: "puzzleDate", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}
	if _, err := db.Collection("leaderboard_entries").Indexes().CreateMany(ctx, lookups); err != nil {
		return fmt.Errorf("leaderboard_entries lookup indexes: %w", err)
	}

	eventKeys := mongo.IndexModel{
		Keys: bson.D{{Key: "at", Value: 1}},
	}
	if _, err := db.Collection("events").Indexes().CreateOne(ctx, eventKeys); err != nil {
		return fmt.Errorf("events index: %w", err)
	}

	return nil
}
