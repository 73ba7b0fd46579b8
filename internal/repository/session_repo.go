package repository

import (
	"context"

	"cricguess/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepo persists game sessions keyed by (device, puzzle). Get returns
// nil for a pair that has never played, so callers can tell "never played"
// apart from an empty session. The save/load round trip must preserve every
// field across restarts, status and resultAcknowledged above all.
type SessionRepo interface {
	Get(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error)
	Save(ctx context.Context, session *model.GameSession) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Get(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error) {
	var session model.GameSession
	err := r.collection.FindOne(ctx, bson.M{"deviceId": deviceID, "puzzleId": puzzleID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Save(ctx context.Context, session *model.GameSession) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"deviceId": session.DeviceID, "puzzleId": session.PuzzleID},
		session, opts)
	return err
}
