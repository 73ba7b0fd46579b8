package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"cricguess/internal/service"
	"cricguess/internal/transport/rest/middleware"
)

// ProfileHandler handles cross-device profile endpoints
type ProfileHandler struct {
	profileSvc *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// LinkEmailRequest represents an email link request
type LinkEmailRequest struct {
	Email string `json:"email"`
}

// Link handles POST /v1/profiles/link
func (h *ProfileHandler) Link(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	var req LinkEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	profile, err := h.profileSvc.LinkEmail(r.Context(), deviceID, req.Email, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Get handles GET /v1/profiles?email=...
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	profile, err := h.profileSvc.Profile(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
