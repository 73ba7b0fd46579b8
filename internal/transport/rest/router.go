package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"cricguess/internal/game"
	"cricguess/internal/service"
	"cricguess/internal/transport/rest/handler"
	"cricguess/internal/transport/rest/middleware"
	"cricguess/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config             game.Config
	AuthService        *service.AuthService
	PuzzleService      *service.PuzzleService
	GameService        *service.GameService
	LeaderboardService *service.LeaderboardService
	ProfileService     *service.ProfileService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	puzzleHandler := handler.NewPuzzleHandler(c.PuzzleService, c.GameService)
	lbHandler := handler.NewLeaderboardHandler(c.LeaderboardService, c.ProfileService, c.Config)
	profileHandler := handler.NewProfileHandler(c.ProfileService)
	scheduleHandler := handler.NewScheduleHandler(c.PuzzleService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/devices", authHandler.RegisterDevice).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/leaderboard/{date}", wsHandler.LeaderboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Device routes (require device auth)
	deviceRoutes := v1.NewRoute().Subrouter()
	deviceRoutes.Use(authMW.RequireDevice)

	// /puzzles/today must register before /puzzles/{id}
	deviceRoutes.HandleFunc("/puzzles/today", puzzleHandler.Today).Methods("GET", "OPTIONS")
	deviceRoutes.HandleFunc("/puzzles/{id}", puzzleHandler.Archive).Methods("GET", "OPTIONS")
	deviceRoutes.HandleFunc("/puzzles/{id}/session", puzzleHandler.Session).Methods("GET", "OPTIONS")
	deviceRoutes.HandleFunc("/puzzles/{id}/guesses", puzzleHandler.Guess).Methods("POST", "OPTIONS")
	deviceRoutes.HandleFunc("/puzzles/{id}/ack", puzzleHandler.Acknowledge).Methods("POST", "OPTIONS")
	deviceRoutes.HandleFunc("/players", puzzleHandler.Players).Methods("GET", "OPTIONS")

	deviceRoutes.HandleFunc("/leaderboard", lbHandler.Submit).Methods("POST", "OPTIONS")
	deviceRoutes.HandleFunc("/leaderboard", lbHandler.Standings).Methods("GET", "OPTIONS")
	deviceRoutes.HandleFunc("/leaderboard/all-time", lbHandler.AllTime).Methods("GET", "OPTIONS")

	deviceRoutes.HandleFunc("/profiles/link", profileHandler.Link).Methods("POST", "OPTIONS")
	deviceRoutes.HandleFunc("/profiles", profileHandler.Get).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/schedule/{date}", scheduleHandler.Put).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/admin/schedule/{date}", scheduleHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/schedule/{date}", scheduleHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
