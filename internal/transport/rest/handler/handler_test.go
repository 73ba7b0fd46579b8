package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricguess/internal/game"
	"cricguess/internal/service"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"puzzle not found", service.ErrPuzzleNotFound, http.StatusNotFound, ""},
		{"session not found", service.ErrSessionNotFound, http.StatusNotFound, ""},
		{"profile not found", service.ErrProfileNotFound, http.StatusNotFound, ""},
		{"session not finished", service.ErrNotFinished, http.StatusBadRequest, ""},
		{"bad email", service.ErrInvalidEmail, http.StatusBadRequest, ""},
		{"duplicate guess", game.NewDuplicateGuessError("virat-kohli"), http.StatusBadRequest, "DUPLICATE_GUESS"},
		{"unknown entity", game.NewUnknownEntityError("x"), http.StatusBadRequest, "UNKNOWN_ENTITY"},
		{"finished session", game.NewSessionCompleteError(), http.StatusBadRequest, "SESSION_COMPLETE"},
		{"empty catalog", game.NewNoPuzzlesError(), http.StatusServiceUnavailable, "NO_PUZZLES_AVAILABLE"},
		{"bad epoch", game.NewConfigurationError("date before epoch"), http.StatusServiceUnavailable, "CONFIGURATION_ERROR"},
		{"anything else", errors.New("mongo exploded"), http.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tc.wantCode, body["code"])
		})
	}
}

func TestWriteServiceError_NeverLeaksInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("connection refused to mongodb:27017"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "mongodb", "infra errors stay out of responses")
}

func TestWriteServiceError_FatalCodesCollapseMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, game.NewNoPuzzlesError())

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "puzzle unavailable", body["error"])
}

func TestPuzzleID_Parsing(t *testing.T) {
	for raw, want := range map[string]bool{"7": true, "abc": false, "0": false, "-3": false} {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/puzzles/"+raw, nil)
			req = mux.SetURLVars(req, map[string]string{"id": raw})
			rec := httptest.NewRecorder()

			id, ok := puzzleID(rec, req)
			assert.Equal(t, want, ok)
			if want {
				assert.Equal(t, 7, id)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestScheduleDate_Parsing(t *testing.T) {
	for raw, want := range map[string]bool{"2024-05-01": true, "2024-13-40": false, "May 1st": false, "": false} {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/schedule/x", nil)
			req = mux.SetURLVars(req, map[string]string{"date": raw})
			rec := httptest.NewRecorder()

			date, ok := scheduleDate(rec, req)
			assert.Equal(t, want, ok)
			if want {
				assert.Equal(t, raw, date)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}
