package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/service"
)

// AuthHandler handles device registration and admin login
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RegisterDevice handles POST /v1/devices
func (h *AuthHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authSvc.RegisterDevice()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to register device")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps gameplay and lookup failures onto HTTP responses.
// Rule rejections carry their code so clients can branch without matching
// message strings; fatal catalog problems collapse to one message.
func writeServiceError(w http.ResponseWriter, err error) {
	var gameErr *game.GameError
	switch {
	case errors.Is(err, service.ErrPuzzleNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotFinished),
		errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &gameErr):
		if gameErr.Code == game.ErrCodeConfiguration || gameErr.Code == game.ErrCodeNoPuzzles {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error": "puzzle unavailable",
				"code":  string(gameErr.Code),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": gameErr.Message,
			"code":  string(gameErr.Code),
		})
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
