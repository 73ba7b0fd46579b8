package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"cricguess/internal/cache"
	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotFinished     = errors.New("game is not finished")
)

// EventSink receives telemetry events. Implementations must not block the
// caller; gameplay never waits on telemetry.
type EventSink interface {
	Emit(event model.GameEvent)
}

// GameService runs guesses against persisted sessions. Mongo is the
// authority for session state; the Redis snapshot only accelerates reloads.
type GameService struct {
	sessionRepo  repository.SessionRepo
	playerRepo   repository.PlayerRepo
	sessionCache cache.SessionCache
	puzzleSvc    *PuzzleService
	evaluator    *game.Evaluator
	events       EventSink
}

// NewGameService creates a new game service. events may be nil.
func NewGameService(
	sessionRepo repository.SessionRepo,
	playerRepo repository.PlayerRepo,
	sessionCache cache.SessionCache,
	puzzleSvc *PuzzleService,
	cfg game.Config,
	events EventSink,
) *GameService {
	return &GameService{
		sessionRepo:  sessionRepo,
		playerRepo:   playerRepo,
		sessionCache: sessionCache,
		puzzleSvc:    puzzleSvc,
		evaluator:    game.NewEvaluator(cfg),
		events:       events,
	}
}

// Guess applies one guess for a device against a puzzle. The puzzle must be
// playable now (today's selection or an already-shown archive id). The
// session is created on the first accepted guess; rejected guesses persist
// nothing.
func (s *GameService) Guess(ctx context.Context, deviceID string, puzzleID int, playerID string, now time.Time) (*model.GameSession, *model.FeedbackVector, error) {
	sel, err := s.puzzleSvc.PlayableSelection(ctx, puzzleID, now)
	if err != nil {
		return nil, nil, err
	}
	puzzle, err := s.puzzleSvc.Puzzle(ctx, puzzleID)
	if err != nil {
		return nil, nil, err
	}

	sess, err := s.loadSession(ctx, deviceID, puzzleID)
	if err != nil {
		return nil, nil, err
	}
	created := sess == nil
	if created {
		sess = &model.GameSession{
			DeviceID:      deviceID,
			PuzzleID:      puzzleID,
			PuzzleOrdinal: sel.Ordinal,
			PuzzleDate:    sel.Date,
			Status:        model.StatusInProgress,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	// The guessed and target players are fetched here so that storage
	// failures stay storage failures; only a genuine catalog miss may
	// reach the evaluator as an unknown entity.
	guessed, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player: %w", err)
	}
	target, err := s.playerRepo.GetByID(ctx, puzzle.TargetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get target player: %w", err)
	}
	players := func(id string) (model.Player, bool) {
		switch {
		case guessed != nil && id == guessed.ID:
			return *guessed, true
		case target != nil && id == target.ID:
			return *target, true
		}
		return model.Player{}, false
	}

	updated, feedback, err := s.evaluator.Evaluate(*sess, playerID, puzzle.TargetID, players, puzzle.PerformanceOf, now)
	if err != nil {
		return nil, nil, err
	}

	if err := s.sessionRepo.Save(ctx, &updated); err != nil {
		return nil, nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.sessionCache.Set(ctx, &updated); err != nil {
		log.Printf("session cache update failed: %v", err)
	}

	if created {
		s.emit(model.GameEvent{
			Type:     model.EventSessionStarted,
			DeviceID: deviceID,
			PuzzleID: puzzleID,
			Ordinal:  sel.Ordinal,
			At:       now,
		})
	}
	s.emit(model.GameEvent{
		Type:     model.EventGuessEvaluated,
		DeviceID: deviceID,
		PuzzleID: puzzleID,
		Ordinal:  sel.Ordinal,
		Detail: map[string]string{
			"playerId": playerID,
			"position": strconv.Itoa(updated.GuessesUsed()),
		},
		At: now,
	})
	switch updated.Status {
	case model.StatusWon:
		s.emit(model.GameEvent{
			Type:     model.EventGameWon,
			DeviceID: deviceID,
			PuzzleID: puzzleID,
			Ordinal:  sel.Ordinal,
			Detail:   map[string]string{"guesses": strconv.Itoa(updated.GuessesUsed())},
			At:       now,
		})
	case model.StatusLost:
		s.emit(model.GameEvent{
			Type:     model.EventGameLost,
			DeviceID: deviceID,
			PuzzleID: puzzleID,
			Ordinal:  sel.Ordinal,
			Detail:   map[string]string{"guesses": strconv.Itoa(updated.GuessesUsed())},
			At:       now,
		})
	}

	return &updated, &feedback, nil
}

// Session returns the device's session for a puzzle
func (s *GameService) Session(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error) {
	sess, err := s.loadSession(ctx, deviceID, puzzleID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Acknowledge marks a finished session's result as seen. Idempotent: a
// second call neither writes nor emits, so the completion notice can never
// fire twice for one puzzle.
func (s *GameService) Acknowledge(ctx context.Context, deviceID string, puzzleID int, now time.Time) (*model.GameSession, error) {
	sess, err := s.loadSession(ctx, deviceID, puzzleID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if !sess.Finished() {
		return nil, ErrNotFinished
	}
	if sess.ResultAcknowledged {
		return sess, nil
	}

	sess.ResultAcknowledged = true
	sess.UpdatedAt = now
	if err := s.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.sessionCache.Set(ctx, sess); err != nil {
		log.Printf("session cache update failed: %v", err)
	}

	s.emit(model.GameEvent{
		Type:     model.EventResultAcknowledged,
		DeviceID: deviceID,
		PuzzleID: puzzleID,
		Ordinal:  sess.PuzzleOrdinal,
		At:       now,
	})
	return sess, nil
}

// loadSession reads through the cache to Mongo. nil means never played.
func (s *GameService) loadSession(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error) {
	cached, err := s.sessionCache.Get(ctx, deviceID, puzzleID)
	if err != nil {
		log.Printf("session cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	sess, err := s.sessionRepo.Get(ctx, deviceID, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess != nil {
		if err := s.sessionCache.Set(ctx, sess); err != nil {
			log.Printf("session cache update failed: %v", err)
		}
	}
	return sess, nil
}

func (s *GameService) emit(event model.GameEvent) {
	if s.events != nil {
		s.events.Emit(event)
	}
}
