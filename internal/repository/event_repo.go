package repository

import (
	"context"

	"cricguess/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepo stores telemetry batches.
type EventRepo interface {
	InsertBatch(ctx context.Context, events []model.GameEvent) error
}

type eventRepo struct {
	collection *mongo.Collection
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *mongo.Database) EventRepo {
	return &eventRepo{
		collection: db.Collection("events"),
	}
}

func (r *eventRepo) InsertBatch(ctx context.Context, events []model.GameEvent) error {
	if len(events) == 0 {
		return nil
	}

	docs := make([]interface{}, len(events))
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = primitive.NewObjectID().Hex()
		}
		docs[i] = events[i]
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
