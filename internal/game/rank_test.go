package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricguess/internal/model"
)

func entry(device string, guesses int, won bool, submittedAt time.Time) model.LeaderboardEntry {
	return model.LeaderboardEntry{
		DeviceID:    device,
		PuzzleDate:  "2024-05-20",
		DisplayName: device,
		GuessesUsed: guesses,
		Won:         won,
		SubmittedAt: submittedAt,
	}
}

func at(sec int) time.Time {
	return time.Date(2024, 5, 20, 12, 0, sec, 0, time.UTC)
}

func TestRank_FewerGuessesFirst(t *testing.T) {
	// Submitted in the "wrong" order: the 3-guess win arrives first.
	entries := []model.LeaderboardEntry{
		entry("dev-a", 3, true, at(0)),
		entry("dev-b", 2, true, at(10)),
	}

	ranked, didNotSolve := Rank(entries)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, didNotSolve)
	assert.Equal(t, "dev-b", ranked[0].DeviceID, "2 guesses outranks 3 regardless of submission order")
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRank_TimestampBreaksTies(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-late", 2, true, at(30)),
		entry("dev-early", 2, true, at(5)),
	}

	ranked, _ := Rank(entries)
	require.Len(t, ranked, 2)
	assert.Equal(t, "dev-early", ranked[0].DeviceID, "earlier submission ranks higher on equal guesses")
}

func TestRank_DeviceIDBreaksResidualTies(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-b", 2, true, at(5)),
		entry("dev-a", 2, true, at(5)),
	}

	ranked, _ := Rank(entries)
	require.Len(t, ranked, 2)
	assert.Equal(t, "dev-a", ranked[0].DeviceID)
	assert.Equal(t, "dev-b", ranked[1].DeviceID)
}

func TestRank_ExcludesNonWinners(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 2, true, at(0)),
		entry("dev-b", 4, false, at(1)),
		entry("dev-c", 4, false, at(2)),
	}

	ranked, didNotSolve := Rank(entries)
	assert.Len(t, ranked, 1)
	assert.Equal(t, 2, didNotSolve)
}

func TestRank_TotalOrder(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 3, true, at(0)),
		entry("dev-b", 2, true, at(1)),
		entry("dev-c", 2, true, at(1)),
		entry("dev-d", 2, true, at(0)),
		entry("dev-e", 1, true, at(9)),
	}

	ranked, _ := Rank(entries)
	require.Len(t, ranked, 5)
	seen := make(map[int]bool)
	for i, e := range ranked {
		assert.Equal(t, i+1, e.Rank, "ranks are dense and 1-based")
		assert.False(t, seen[e.Rank], "no two entries share a rank")
		seen[e.Rank] = true
	}

	again, _ := Rank(entries)
	assert.Equal(t, ranked, again, "ranking is deterministic")
}

func TestRankOf(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 3, true, at(0)),
		entry("dev-b", 2, true, at(1)),
		entry("dev-c", 4, false, at(2)),
	}

	assert.Equal(t, 1, RankOf(entries, "dev-b"))
	assert.Equal(t, 2, RankOf(entries, "dev-a"))
	assert.Equal(t, 0, RankOf(entries, "dev-c"), "losses hold no competitive rank")
	assert.Equal(t, 0, RankOf(entries, "dev-x"))
}

func TestPercentile_LossWorseThanEveryWin(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 4, true, at(0)),
		entry("dev-b", 1, true, at(1)),
	}

	// Even a 4-guess win strictly beats a loss.
	p := Percentile(entries, 4, false)
	assert.Equal(t, 0.0, p)
}

func TestPercentile_LossesTieEachOther(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 4, false, at(0)),
		entry("dev-b", 4, false, at(1)),
	}

	p := Percentile(entries, 4, false)
	assert.Equal(t, 100.0, p, "a loss is at least as good as every other loss")
}

func TestPercentile_Mixed(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 2, true, at(0)),
		entry("dev-b", 3, true, at(1)),
		entry("dev-c", 4, false, at(2)),
	}

	// A 3-guess win is at least as good as dev-b and dev-c, beaten by dev-a.
	p := Percentile(entries, 3, true)
	assert.InDelta(t, 66.67, p, 0.01)

	assert.Equal(t, 100.0, Percentile(entries, 2, true))
	assert.InDelta(t, 33.33, Percentile(entries, 4, false), 0.01)
}

func TestPercentile_Bounds(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("dev-a", 1, true, at(0)),
		entry("dev-b", 2, true, at(1)),
		entry("dev-c", 3, true, at(2)),
		entry("dev-d", 4, false, at(3)),
	}

	for guesses := 1; guesses <= 4; guesses++ {
		for _, won := range []bool{true, false} {
			p := Percentile(entries, guesses, won)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
}

func TestPercentile_EmptySet(t *testing.T) {
	assert.Equal(t, 100.0, Percentile(nil, 2, true))
}
