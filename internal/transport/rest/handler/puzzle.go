package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"cricguess/internal/model"
	"cricguess/internal/service"
	"cricguess/internal/transport/rest/middleware"
)

// PuzzleHandler handles puzzle views and gameplay endpoints
type PuzzleHandler struct {
	puzzleSvc *service.PuzzleService
	gameSvc   *service.GameService
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzleSvc *service.PuzzleService, gameSvc *service.GameService) *PuzzleHandler {
	return &PuzzleHandler{puzzleSvc: puzzleSvc, gameSvc: gameSvc}
}

// Today handles GET /v1/puzzles/today
func (h *PuzzleHandler) Today(w http.ResponseWriter, r *http.Request) {
	view, err := h.puzzleSvc.TodayView(r.Context(), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Archive handles GET /v1/puzzles/{id}
func (h *PuzzleHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := puzzleID(w, r)
	if !ok {
		return
	}

	view, err := h.puzzleSvc.ArchiveView(r.Context(), id, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Session handles GET /v1/puzzles/{id}/session
func (h *PuzzleHandler) Session(w http.ResponseWriter, r *http.Request) {
	id, ok := puzzleID(w, r)
	if !ok {
		return
	}
	deviceID := middleware.GetDeviceID(r.Context())

	sess, err := h.gameSvc.Session(r.Context(), deviceID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// GuessRequest represents a guess submission
type GuessRequest struct {
	PlayerID string `json:"playerId"`
}

// Guess handles POST /v1/puzzles/{id}/guesses
func (h *PuzzleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id, ok := puzzleID(w, r)
	if !ok {
		return
	}
	deviceID := middleware.GetDeviceID(r.Context())

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "playerId is required")
		return
	}

	sess, feedback, err := h.gameSvc.Guess(r.Context(), deviceID, id, req.PlayerID, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &model.GuessResponse{Session: sess, Feedback: feedback})
}

// Acknowledge handles POST /v1/puzzles/{id}/ack
func (h *PuzzleHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id, ok := puzzleID(w, r)
	if !ok {
		return
	}
	deviceID := middleware.GetDeviceID(r.Context())

	sess, err := h.gameSvc.Acknowledge(r.Context(), deviceID, id, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Players handles GET /v1/players
func (h *PuzzleHandler) Players(w http.ResponseWriter, r *http.Request) {
	players, err := h.puzzleSvc.Players(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, players)
}

// puzzleID parses the {id} path variable, writing a 400 on garbage.
func puzzleID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid puzzle id")
		return 0, false
	}
	return id, true
}
