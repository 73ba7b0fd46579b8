package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cricguess/config"
	"cricguess/internal/cache"
	"cricguess/internal/game"
	"cricguess/internal/repository"
	"cricguess/internal/service"
	"cricguess/internal/transport/rest"
	"cricguess/internal/transport/ws"
)

// @title CricGuess API
// @version 1.0
// @description Daily cricket player-of-the-match guessing game
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	gameCfg, err := game.NewConfig(cfg.PuzzleEpoch, cfg.MaxGuesses, cfg.TZOffsetMin)
	if err != nil {
		log.Fatal("Invalid game configuration:", err)
	}
	log.Printf("Game config: epoch=%s maxGuesses=%d tzOffsetMin=%d",
		cfg.PuzzleEpoch, cfg.MaxGuesses, cfg.TZOffsetMin)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	puzzleRepo := repository.NewPuzzleRepo(db)
	playerRepo := repository.NewPlayerRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	leaderboardRepo := repository.NewLeaderboardRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	eventRepo := repository.NewEventRepo(db)

	// Initialize caches
	scheduleCache := cache.NewScheduleCache(rdb)
	sessionCache := cache.NewSessionCache(rdb)
	standingsCache := cache.NewStandingsCache(rdb)

	// Telemetry writer runs for the life of the process; Close flushes
	// whatever is still buffered
	telemetry := service.NewTelemetryService(eventRepo)
	telemetry.Start()

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword)
	puzzleSvc := service.NewPuzzleService(puzzleRepo, playerRepo, scheduleCache, gameCfg)
	gameSvc := service.NewGameService(sessionRepo, playerRepo, sessionCache, puzzleSvc, gameCfg, telemetry)
	profileSvc := service.NewProfileService(leaderboardRepo, profileRepo)
	lbSvc := service.NewLeaderboardService(leaderboardRepo, sessionRepo, standingsCache, profileSvc, telemetry)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	lbSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		Config:             gameCfg,
		AuthService:        authSvc,
		PuzzleService:      puzzleSvc,
		GameService:        gameSvc,
		LeaderboardService: lbSvc,
		ProfileService:     profileSvc,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/devices")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/puzzles/today")
		log.Println("  GET  /v1/puzzles/{id}")
		log.Println("  POST /v1/puzzles/{id}/guesses")
		log.Println("  POST /v1/puzzles/{id}/ack")
		log.Println("  GET  /v1/players")
		log.Println("  POST/GET /v1/leaderboard")
		log.Println("  GET  /v1/leaderboard/all-time")
		log.Println("  POST /v1/profiles/link")
		log.Println("  GET  /v1/profiles")
		log.Println("  PUT/GET/DELETE /v1/admin/schedule/{date}")
		log.Println("  WS   /v1/ws/leaderboard/{date}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Flush buffered telemetry while Mongo is still connected
	telemetry.Close()

	log.Println("Server exited")
}
