package service

import (
	"context"
	"testing"
	"time"

	"cricguess/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardEntry(deviceID, date string, guesses int, won bool, at time.Time) model.LeaderboardEntry {
	return model.LeaderboardEntry{
		DeviceID:    deviceID,
		PuzzleDate:  date,
		DisplayName: "CoverDrive",
		GuessesUsed: guesses,
		Won:         won,
		SubmittedAt: at,
	}
}

func TestProfileService_LinkEmail_MergesDevices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := env.day(5)

	for _, e := range []model.LeaderboardEntry{
		boardEntry("dev-phone", "2024-01-01", 3, true, env.day(0)),
		boardEntry("dev-laptop", "2024-01-02", 2, true, env.day(1)),
	} {
		entry := e
		_, err := env.board.Insert(ctx, &entry)
		require.NoError(t, err)
	}

	profile, err := env.profSvc.LinkEmail(ctx, "dev-phone", "Fan@Example.COM ", now)
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", profile.Email, "emails are normalized before use")
	assert.Equal(t, 1, profile.TotalGames)

	profile, err = env.profSvc.LinkEmail(ctx, "dev-laptop", "fan@example.com", now)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.TotalGames, "one email spans every linked device")
	assert.Equal(t, 2, profile.TotalWins)
	assert.Equal(t, 2, profile.BestStreak, "adjacent winning dates chain across devices")
}

func TestProfileService_LinkEmail_RejectsMalformed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, email := range []string{"", "plainstring", "@nolocal.com", "trailing@", "two@@ats.com", "a@b@c.com"} {
		_, err := env.profSvc.LinkEmail(ctx, "dev-1", email, env.day(0))
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
	assert.Empty(t, env.profiles.profiles)
}

func TestProfileService_Profile_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profSvc.Profile(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_Refresh_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	entry := boardEntry("dev-1", "2024-01-01", 2, true, env.day(0))
	entry.Email = "fan@example.com"
	_, err := env.board.Insert(ctx, &entry)
	require.NoError(t, err)

	first, err := env.profSvc.Refresh(ctx, "fan@example.com", env.day(1))
	require.NoError(t, err)
	second, err := env.profSvc.Refresh(ctx, "fan@example.com", env.day(2))
	require.NoError(t, err)

	assert.Equal(t, first.TotalGames, second.TotalGames)
	assert.Equal(t, first.TotalWins, second.TotalWins)
	assert.Equal(t, first.BestStreak, second.BestStreak)
	assert.Equal(t, first.AvgGuesses, second.AvgGuesses)
}

func TestProfileService_TopProfiles_ValidatesSort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, env.profiles.Upsert(ctx, &model.PlayerProfile{
			Email:     email,
			TotalWins: i + 1,
		}))
	}

	_, err := env.profSvc.TopProfiles(ctx, "shoeSize", 10)
	assert.Error(t, err, "unknown sort keys are rejected")

	top, err := env.profSvc.TopProfiles(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, top, 2, "limit caps the page")
	assert.Equal(t, "c@example.com", top[0].Email, "the default sort is total wins")
}
