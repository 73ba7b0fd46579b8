package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"cricguess/internal/cache"
	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/repository"
)

// LeaderboardService accepts submissions and serves per-date standings.
// Everything competitive is derived server-side: guesses used and the win
// flag come from the stored session, never from the request.
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepo
	sessionRepo     repository.SessionRepo
	standingsCache  cache.StandingsCache
	profileSvc      *ProfileService
	events          EventSink
	broadcaster     Broadcaster
}

// NewLeaderboardService creates a new leaderboard service. events may be nil.
func NewLeaderboardService(
	leaderboardRepo repository.LeaderboardRepo,
	sessionRepo repository.SessionRepo,
	standingsCache cache.StandingsCache,
	profileSvc *ProfileService,
	events EventSink,
) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		sessionRepo:     sessionRepo,
		standingsCache:  standingsCache,
		profileSvc:      profileSvc,
		events:          events,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket standings pushes
func (s *LeaderboardService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit records the device's result for the puzzle's date. The session
// must be terminal. At most one entry per (device, date) ever exists; a
// repeat submission is the already_submitted outcome carrying the stored
// entry and its current rank, not an error.
func (s *LeaderboardService) Submit(ctx context.Context, deviceID string, puzzleID int, displayName string, now time.Time) (*model.SubmitResult, error) {
	sess, err := s.sessionRepo.Get(ctx, deviceID, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if !sess.Finished() {
		return nil, ErrNotFinished
	}

	email, err := s.leaderboardRepo.LinkedEmail(ctx, deviceID)
	if err != nil {
		log.Printf("linked email lookup failed: %v", err)
		email = ""
	}

	entry := &model.LeaderboardEntry{
		DeviceID:    deviceID,
		PuzzleDate:  sess.PuzzleDate,
		PuzzleID:    sess.PuzzleID,
		Ordinal:     sess.PuzzleOrdinal,
		DisplayName: displayName,
		GuessesUsed: sess.GuessesUsed(),
		Won:         sess.Status == model.StatusWon,
		Email:       email,
		SubmittedAt: now,
	}

	inserted, err := s.leaderboardRepo.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	if !inserted {
		existing, err := s.leaderboardRepo.Get(ctx, deviceID, entry.PuzzleDate)
		if err != nil {
			return nil, fmt.Errorf("failed to get existing entry: %w", err)
		}
		if existing == nil {
			return nil, fmt.Errorf("entry for device %s on %s vanished during submit", deviceID, entry.PuzzleDate)
		}
		result := &model.SubmitResult{Outcome: model.SubmitAlreadySubmitted, Entry: *existing}
		s.scoreResult(ctx, result)
		return result, nil
	}

	if entry.Won {
		if err := s.standingsCache.RecordWin(ctx, entry.PuzzleDate, deviceID, entry.GuessesUsed, entry.SubmittedAt); err != nil {
			log.Printf("standings cache update failed: %v", err)
		}
	}

	s.emit(model.GameEvent{
		Type:     model.EventEntrySubmitted,
		DeviceID: deviceID,
		PuzzleID: entry.PuzzleID,
		Ordinal:  entry.Ordinal,
		Detail: map[string]string{
			"date":    entry.PuzzleDate,
			"won":     strconv.FormatBool(entry.Won),
			"guesses": strconv.Itoa(entry.GuessesUsed),
		},
		At: now,
	})

	if email != "" {
		if _, err := s.profileSvc.Refresh(ctx, email, now); err != nil {
			log.Printf("profile refresh for %s failed: %v", email, err)
		}
	}

	result := &model.SubmitResult{Outcome: model.SubmitAccepted, Entry: *entry}
	entries := s.scoreResult(ctx, result)

	if s.broadcaster != nil && entries != nil {
		winners, didNotSolve := game.Rank(entries)
		s.broadcaster.BroadcastStandings(entry.PuzzleDate, &model.Standings{
			Date:        entry.PuzzleDate,
			Winners:     winners,
			DidNotSolve: didNotSolve,
		})
	}
	return result, nil
}

// Standings returns one date's leaderboard in rank order
func (s *LeaderboardService) Standings(ctx context.Context, date string) (*model.Standings, error) {
	if _, err := time.Parse(game.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	entries, err := s.leaderboardRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	winners, didNotSolve := game.Rank(entries)
	return &model.Standings{Date: date, Winners: winners, DidNotSolve: didNotSolve}, nil
}

// scoreResult fills Rank and Percentile on a submit result and returns the
// date's entries for reuse. Scoring is best-effort: a failed fetch logs and
// leaves the zero values, it never voids a stored submission.
func (s *LeaderboardService) scoreResult(ctx context.Context, result *model.SubmitResult) []model.LeaderboardEntry {
	entry := result.Entry
	entries, err := s.leaderboardRepo.ListByDate(ctx, entry.PuzzleDate)
	if err != nil {
		log.Printf("standings fetch for %s failed: %v", entry.PuzzleDate, err)
		return nil
	}
	result.Percentile = game.Percentile(entries, entry.GuessesUsed, entry.Won)

	if entry.Won {
		rank, err := s.standingsCache.GetRank(ctx, entry.PuzzleDate, entry.DeviceID)
		if err == nil && rank > 0 {
			result.Rank = int(rank)
		} else {
			result.Rank = game.RankOf(entries, entry.DeviceID)
		}
	}
	return entries
}

func (s *LeaderboardService) emit(event model.GameEvent) {
	if s.events != nil {
		s.events.Emit(event)
	}
}
