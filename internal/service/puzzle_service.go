package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cricguess/internal/cache"
	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/repository"
)

var ErrPuzzleNotFound = errors.New("puzzle not found")

// PuzzleService resolves which puzzle a calendar date shows and builds the
// client-facing views. Admin schedule pins live here too.
type PuzzleService struct {
	puzzleRepo    repository.PuzzleRepo
	playerRepo    repository.PlayerRepo
	scheduleCache cache.ScheduleCache
	selector      *game.Selector
	cfg           game.Config
}

// NewPuzzleService creates a new puzzle service
func NewPuzzleService(
	puzzleRepo repository.PuzzleRepo,
	playerRepo repository.PlayerRepo,
	scheduleCache cache.ScheduleCache,
	cfg game.Config,
) *PuzzleService {
	return &PuzzleService{
		puzzleRepo:    puzzleRepo,
		playerRepo:    playerRepo,
		scheduleCache: scheduleCache,
		selector:      game.NewSelector(cfg),
		cfg:           cfg,
	}
}

// CurrentSelection resolves the selection for now's canonical day. A
// schedule pin is honored only when the pinned puzzle exists; a pin at a
// missing puzzle and an unreadable schedule both fall back to the default
// rotation rather than failing the day.
func (s *PuzzleService) CurrentSelection(ctx context.Context, now time.Time) (game.Selection, error) {
	count, err := s.puzzleRepo.Count(ctx)
	if err != nil {
		return game.Selection{}, fmt.Errorf("failed to count puzzles: %w", err)
	}

	date := s.cfg.DateString(now)
	override, err := s.scheduleCache.Lookup(ctx, date)
	if err != nil {
		log.Printf("schedule lookup for %s failed, using rotation: %v", date, err)
		override = nil
	}

	sel, err := s.selector.Select(now, count, override)
	if err != nil {
		return game.Selection{}, err
	}

	if sel.Overridden {
		puzzle, err := s.puzzleRepo.GetByID(ctx, sel.PuzzleID)
		if err != nil {
			return game.Selection{}, fmt.Errorf("failed to get pinned puzzle: %w", err)
		}
		if puzzle == nil {
			log.Printf("schedule pin for %s points at missing puzzle %d, using rotation", date, sel.PuzzleID)
			return s.selector.Select(now, count, nil)
		}
	}
	return sel, nil
}

// TodayView returns the puzzle shown right now, shaped for clients
func (s *PuzzleService) TodayView(ctx context.Context, now time.Time) (*model.PuzzleView, error) {
	sel, err := s.CurrentSelection(ctx, now)
	if err != nil {
		return nil, err
	}
	return s.viewOf(ctx, sel)
}

// ArchiveView returns a past puzzle by id. Only puzzles the rotation has
// already shown are served; everything else is reported as not found so
// future targets stay hidden.
func (s *PuzzleService) ArchiveView(ctx context.Context, id int, now time.Time) (*model.PuzzleView, error) {
	sel, err := s.CurrentSelection(ctx, now)
	if err != nil {
		return nil, err
	}

	count, err := s.puzzleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count puzzles: %w", err)
	}
	ordinal, ok := s.selector.LastShown(id, count, sel.Ordinal)
	if !ok {
		return nil, ErrPuzzleNotFound
	}

	return s.viewOf(ctx, game.Selection{
		PuzzleID: id,
		Ordinal:  ordinal,
		Date:     s.cfg.DateOfOrdinal(ordinal),
	})
}

// PlayableSelection resolves the selection metadata under which puzzle id
// may be played right now. Today's puzzle plays under today's ordinal;
// an already-shown archive puzzle plays under the ordinal of its most
// recent appearance. Unreached ids are not found.
func (s *PuzzleService) PlayableSelection(ctx context.Context, puzzleID int, now time.Time) (game.Selection, error) {
	sel, err := s.CurrentSelection(ctx, now)
	if err != nil {
		return game.Selection{}, err
	}
	if puzzleID == sel.PuzzleID {
		return sel, nil
	}

	count, err := s.puzzleRepo.Count(ctx)
	if err != nil {
		return game.Selection{}, fmt.Errorf("failed to count puzzles: %w", err)
	}
	ordinal, ok := s.selector.LastShown(puzzleID, count, sel.Ordinal)
	if !ok {
		return game.Selection{}, ErrPuzzleNotFound
	}
	return game.Selection{
		PuzzleID: puzzleID,
		Ordinal:  ordinal,
		Date:     s.cfg.DateOfOrdinal(ordinal),
	}, nil
}

// Puzzle returns the raw catalog entry, target included. Server-side only.
func (s *PuzzleService) Puzzle(ctx context.Context, id int) (*model.Puzzle, error) {
	puzzle, err := s.puzzleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}
	if puzzle == nil {
		return nil, ErrPuzzleNotFound
	}
	return puzzle, nil
}

// Players returns the full guessable catalog, sorted by name
func (s *PuzzleService) Players(ctx context.Context) ([]*model.Player, error) {
	return s.playerRepo.List(ctx)
}

// ScheduleOverride pins puzzle id to a calendar date. The pin must point at
// an existing puzzle; dates are canonical yyyy-mm-dd strings.
func (s *PuzzleService) ScheduleOverride(ctx context.Context, date string, puzzleID int) error {
	if _, err := time.Parse(game.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	puzzle, err := s.puzzleRepo.GetByID(ctx, puzzleID)
	if err != nil {
		return fmt.Errorf("failed to get puzzle: %w", err)
	}
	if puzzle == nil {
		return ErrPuzzleNotFound
	}
	return s.scheduleCache.Set(ctx, date, puzzleID)
}

// ScheduledPuzzle returns the pinned puzzle id for a date, nil when the
// date follows the default rotation
func (s *PuzzleService) ScheduledPuzzle(ctx context.Context, date string) (*int, error) {
	if _, err := time.Parse(game.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.scheduleCache.Lookup(ctx, date)
}

// ClearOverride removes the pin for a date, restoring the rotation
func (s *PuzzleService) ClearOverride(ctx context.Context, date string) error {
	if _, err := time.Parse(game.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.scheduleCache.Delete(ctx, date)
}

func (s *PuzzleService) viewOf(ctx context.Context, sel game.Selection) (*model.PuzzleView, error) {
	puzzle, err := s.puzzleRepo.GetByID(ctx, sel.PuzzleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}
	if puzzle == nil {
		return nil, ErrPuzzleNotFound
	}

	return &model.PuzzleView{
		ID:           puzzle.ID,
		Ordinal:      sel.Ordinal,
		Date:         sel.Date,
		Teams:        puzzle.Teams,
		Venue:        puzzle.Venue,
		MatchDate:    puzzle.MatchDate,
		Season:       puzzle.Season,
		Winner:       puzzle.Winner,
		TeamScores:   puzzle.TeamScores,
		Participants: puzzle.Participants,
		Trivia:       puzzle.Trivia,
		MaxGuesses:   s.cfg.MaxGuesses,
	}, nil
}
