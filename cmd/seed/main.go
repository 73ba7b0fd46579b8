package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"

	"cricguess/config"
	"cricguess/internal/cache"
	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/repository"
)

// scheduleFile pins puzzles to dates ahead of time, overriding the daily
// rotation. Dates are YYYY-MM-DD, values are puzzle ids.
type scheduleFile struct {
	Overrides map[string]int `yaml:"overrides"`
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	playerRepo := repository.NewPlayerRepo(db)
	puzzleRepo := repository.NewPuzzleRepo(db)

	players := seedPlayers()
	for i := range players {
		if err := playerRepo.Upsert(ctx, &players[i]); err != nil {
			log.Fatalf("Failed to upsert player %s: %v", players[i].ID, err)
		}
	}

	puzzles := seedPuzzles()
	for i := range puzzles {
		if err := puzzleRepo.Upsert(ctx, &puzzles[i]); err != nil {
			log.Fatalf("Failed to upsert puzzle %d: %v", puzzles[i].ID, err)
		}
	}

	fmt.Printf("Seeded %d players and %d puzzles\n", len(players), len(puzzles))

	if path := os.Getenv("SCHEDULE_FILE"); path != "" {
		if err := applySchedule(ctx, cfg, path, puzzles); err != nil {
			log.Fatalf("Failed to apply schedule file: %v", err)
		}
	}
}

func applySchedule(ctx context.Context, cfg *config.Config, path string, puzzles []model.Puzzle) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var sched scheduleFile
	if err := yaml.Unmarshal(raw, &sched); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	known := make(map[int]bool, len(puzzles))
	for _, p := range puzzles {
		known[p.ID] = true
	}

	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	scheduleCache := cache.NewScheduleCache(rdb)
	for date, id := range sched.Overrides {
		if _, err := time.Parse(game.DateLayout, date); err != nil {
			return fmt.Errorf("bad date %q in schedule file", date)
		}
		if !known[id] {
			return fmt.Errorf("schedule pins unknown puzzle %d to %s", id, date)
		}
		if err := scheduleCache.Set(ctx, date, id); err != nil {
			return err
		}
		fmt.Printf("Pinned puzzle %d to %s\n", id, date)
	}
	return nil
}
