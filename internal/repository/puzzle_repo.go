package repository

import (
	"context"

	"cricguess/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PuzzleRepo handles MongoDB operations for the puzzle catalog. The catalog
// is read-only to the engine; writes happen only at seed time.
type PuzzleRepo interface {
	Upsert(ctx context.Context, puzzle *model.Puzzle) error
	GetByID(ctx context.Context, id int) (*model.Puzzle, error)
	Count(ctx context.Context) (int, error)
}

type puzzleRepo struct {
	collection *mongo.Collection
}

// NewPuzzleRepo creates a new puzzle repository
func NewPuzzleRepo(db *mongo.Database) PuzzleRepo {
	return &puzzleRepo{
		collection: db.Collection("puzzles"),
	}
}

func (r *puzzleRepo) Upsert(ctx context.Context, puzzle *model.Puzzle) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": puzzle.ID}, puzzle, opts)
	return err
}

func (r *puzzleRepo) GetByID(ctx context.Context, id int) (*model.Puzzle, error) {
	var puzzle model.Puzzle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&puzzle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (r *puzzleRepo) Count(ctx context.Context) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
