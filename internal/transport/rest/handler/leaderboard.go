package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/service"
	"cricguess/internal/transport/rest/middleware"
)

const maxDisplayNameLen = 30

// LeaderboardHandler handles standings and score submission endpoints
type LeaderboardHandler struct {
	lbSvc      *service.LeaderboardService
	profileSvc *service.ProfileService
	cfg        game.Config
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(lbSvc *service.LeaderboardService, profileSvc *service.ProfileService, cfg game.Config) *LeaderboardHandler {
	return &LeaderboardHandler{lbSvc: lbSvc, profileSvc: profileSvc, cfg: cfg}
}

// SubmitRequest represents a leaderboard submission
type SubmitRequest struct {
	PuzzleID    int    `json:"puzzleId"`
	DisplayName string `json:"displayName"`
}

// Submit handles POST /v1/leaderboard
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PuzzleID < 1 {
		writeError(w, http.StatusBadRequest, "invalid puzzle id")
		return
	}
	name := strings.TrimSpace(req.DisplayName)
	if name == "" || len(name) > maxDisplayNameLen {
		writeError(w, http.StatusBadRequest, "display name must be 1-30 characters")
		return
	}

	result, err := h.lbSvc.Submit(r.Context(), deviceID, req.PuzzleID, name, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Standings handles GET /v1/leaderboard?date=YYYY-MM-DD (today when omitted)
func (h *LeaderboardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.cfg.DateString(time.Now())
	}

	standings, err := h.lbSvc.Standings(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, standings)
}

// AllTime handles GET /v1/leaderboard/all-time?sort=wins&limit=20
func (h *LeaderboardHandler) AllTime(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	profiles, err := h.profileSvc.TopProfiles(r.Context(), sortKey, limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string][]model.PlayerProfile{"profiles": profiles})
}
