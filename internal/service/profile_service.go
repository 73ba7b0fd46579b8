package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cricguess/internal/game"
	"cricguess/internal/model"
	"cricguess/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidEmail    = errors.New("invalid email address")
)

// ProfileService links emails to device submissions and maintains the
// derived per-email aggregates. Profiles are never edited in place; every
// change is a full recomputation over the linked entries.
type ProfileService struct {
	leaderboardRepo repository.LeaderboardRepo
	profileRepo     repository.ProfileRepo
}

// NewProfileService creates a new profile service
func NewProfileService(leaderboardRepo repository.LeaderboardRepo, profileRepo repository.ProfileRepo) *ProfileService {
	return &ProfileService{
		leaderboardRepo: leaderboardRepo,
		profileRepo:     profileRepo,
	}
}

// LinkEmail attaches an email to every entry the device has submitted and
// rebuilds that email's profile. Linking the same email from a second
// device merges both devices' history into one profile.
func (s *ProfileService) LinkEmail(ctx context.Context, deviceID, email string, now time.Time) (*model.PlayerProfile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if _, err := s.leaderboardRepo.AttachEmail(ctx, deviceID, email); err != nil {
		return nil, fmt.Errorf("failed to attach email: %w", err)
	}
	return s.Refresh(ctx, email, now)
}

// Refresh recomputes and stores the profile for an email from its linked
// entries. Idempotent; safe to call after every accepted submission.
func (s *ProfileService) Refresh(ctx context.Context, email string, now time.Time) (*model.PlayerProfile, error) {
	entries, err := s.leaderboardRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	profile := game.RecomputeProfile(email, entries, now)
	if err := s.profileRepo.Upsert(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return &profile, nil
}

// Profile returns the stored profile for an email
func (s *ProfileService) Profile(ctx context.Context, email string) (*model.PlayerProfile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// TopProfiles returns the all-time leaderboard under one of the supported
// sort keys. Limit defaults to 20 and is capped at 100.
func (s *ProfileService) TopProfiles(ctx context.Context, sortKey string, limit int) ([]model.PlayerProfile, error) {
	if sortKey == "" {
		sortKey = repository.SortWins
	}
	switch sortKey {
	case repository.SortWins, repository.SortWinRate, repository.SortBestStreak, repository.SortAvgGuesses:
	default:
		return nil, fmt.Errorf("unsupported sort key %q", sortKey)
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.profileRepo.Top(ctx, sortKey, limit)
}

// normalizeEmail lowercases and trims an email and applies a light shape
// check. Real verification is out of scope; the address is an aggregation
// key, not an identity proof.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at != strings.LastIndex(email, "@") || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return "", ErrInvalidEmail
	}
	return email, nil
}
