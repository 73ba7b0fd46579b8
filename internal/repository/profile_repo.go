package repository

import (
	"context"

	"cricguess/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sort keys accepted by the all-time leaderboard.
const (
	SortWins       = "wins"
	SortWinRate    = "winRate"
	SortBestStreak = "bestStreak"
	SortAvgGuesses = "avgGuesses"
)

// ProfileRepo stores recomputed player aggregates keyed by email.
type ProfileRepo interface {
	Upsert(ctx context.Context, profile *model.PlayerProfile) error
	GetByEmail(ctx context.Context, email string) (*model.PlayerProfile, error)
	Top(ctx context.Context, sortKey string, limit int) ([]model.PlayerProfile, error)
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) Upsert(ctx context.Context, profile *model.PlayerProfile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.Email}, profile, opts)
	return err
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*model.PlayerProfile, error) {
	var profile model.PlayerProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Top(ctx context.Context, sortKey string, limit int) ([]model.PlayerProfile, error) {
	sort := bson.D{{Key: "totalWins", Value: -1}}
	switch sortKey {
	case SortWinRate:
		sort = bson.D{{Key: "winRate", Value: -1}, {Key: "totalWins", Value: -1}}
	case SortBestStreak:
		sort = bson.D{{Key: "bestStreak", Value: -1}, {Key: "totalWins", Value: -1}}
	case SortAvgGuesses:
		// Fewer guesses is better; break ties toward more wins.
		sort = bson.D{{Key: "avgGuesses", Value: 1}, {Key: "totalWins", Value: -1}}
	}

	opts := options.Find().SetSort(sort).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []model.PlayerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
