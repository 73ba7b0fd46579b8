package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"cricguess/internal/game"
	"cricguess/internal/service"
)

// ScheduleHandler handles admin schedule-override endpoints
type ScheduleHandler struct {
	puzzleSvc *service.PuzzleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(puzzleSvc *service.PuzzleService) *ScheduleHandler {
	return &ScheduleHandler{puzzleSvc: puzzleSvc}
}

// ScheduleRequest represents a schedule override
type ScheduleRequest struct {
	PuzzleID int `json:"puzzleId"`
}

// Put handles PUT /v1/admin/schedule/{date}
func (h *ScheduleHandler) Put(w http.ResponseWriter, r *http.Request) {
	date, ok := scheduleDate(w, r)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PuzzleID < 1 {
		writeError(w, http.StatusBadRequest, "invalid puzzle id")
		return
	}

	if err := h.puzzleSvc.ScheduleOverride(r.Context(), date, req.PuzzleID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":     date,
		"puzzleId": req.PuzzleID,
	})
}

// Get handles GET /v1/admin/schedule/{date}
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := scheduleDate(w, r)
	if !ok {
		return
	}

	puzzleID, err := h.puzzleSvc.ScheduledPuzzle(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read schedule")
		return
	}
	if puzzleID == nil {
		writeError(w, http.StatusNotFound, "no override scheduled for this date")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":     date,
		"puzzleId": *puzzleID,
	})
}

// Delete handles DELETE /v1/admin/schedule/{date}
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	date, ok := scheduleDate(w, r)
	if !ok {
		return
	}

	if err := h.puzzleSvc.ClearOverride(r.Context(), date); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear schedule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// scheduleDate parses the {date} path variable, writing a 400 on garbage.
func scheduleDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := mux.Vars(r)["date"]
	if _, err := time.Parse(game.DateLayout, date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}
