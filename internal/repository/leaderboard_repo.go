package repository

import (
	"context"

	"cricguess/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeaderboardRepo persists submitted results. Insert reports inserted=false
// when the (deviceId, puzzleDate) pair already holds a row: the unique index
// is the submission idempotency guard, so racing devices and client retries
// can never produce duplicates.
type LeaderboardRepo interface {
	Insert(ctx context.Context, entry *model.LeaderboardEntry) (bool, error)
	Get(ctx context.Context, deviceID, puzzleDate string) (*model.LeaderboardEntry, error)
	ListByDate(ctx context.Context, puzzleDate string) ([]model.LeaderboardEntry, error)
	ListByEmail(ctx context.Context, email string) ([]model.LeaderboardEntry, error)
	AttachEmail(ctx context.Context, deviceID, email string) (int64, error)
	LinkedEmail(ctx context.Context, deviceID string) (string, error)
}

type leaderboardRepo struct {
	collection *mongo.Collection
}

// NewLeaderboardRepo creates a new leaderboard repository
func NewLeaderboardRepo(db *mongo.Database) LeaderboardRepo {
	return &leaderboardRepo{
		collection: db.Collection("leaderboard_entries"),
	}
}

func (r *leaderboardRepo) Insert(ctx context.Context, entry *model.LeaderboardEntry) (bool, error) {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *leaderboardRepo) Get(ctx context.Context, deviceID, puzzleDate string) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	err := r.collection.FindOne(ctx, bson.M{"deviceId": deviceID, "puzzleDate": puzzleDate}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *leaderboardRepo) ListByDate(ctx context.Context, puzzleDate string) ([]model.LeaderboardEntry, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"puzzleDate": puzzleDate}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *leaderboardRepo) ListByEmail(ctx context.Context, email string) ([]model.LeaderboardEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *leaderboardRepo) AttachEmail(ctx context.Context, deviceID, email string) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"deviceId": deviceID},
		bson.M{"$set": bson.M{"email": email}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// LinkedEmail returns the email attached to the device's most recent entry,
// empty when the device never linked one. New submissions inherit it.
func (r *leaderboardRepo) LinkedEmail(ctx context.Context, deviceID string) (string, error) {
	opts := options.FindOne().SetSort(bson.M{"submittedAt": -1})
	filter := bson.M{"deviceId": deviceID, "email": bson.M{"$exists": true, "$ne": ""}}

	var entry model.LeaderboardEntry
	err := r.collection.FindOne(ctx, filter, opts).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Email, nil
}
