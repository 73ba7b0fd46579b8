package game

import (
	"sort"

	"cricguess/internal/model"
)

// Rank orders one date's entries competitively: winners ascending by
// guesses used, ties broken by earlier submission, residual ties by device
// id, so the order is total and stable. Non-winners are excluded from
// ranking; the second return is their count.
func Rank(entries []model.LeaderboardEntry) ([]model.RankedEntry, int) {
	winners := make([]model.LeaderboardEntry, 0, len(entries))
	didNotSolve := 0
	for _, e := range entries {
		if e.Won {
			winners = append(winners, e)
		} else {
			didNotSolve++
		}
	}

	sort.Slice(winners, func(i, j int) bool {
		a, b := winners[i], winners[j]
		if a.GuessesUsed != b.GuessesUsed {
			return a.GuessesUsed < b.GuessesUsed
		}
		if !a.SubmittedAt.Equal(b.SubmittedAt) {
			return a.SubmittedAt.Before(b.SubmittedAt)
		}
		return a.DeviceID < b.DeviceID
	})

	ranked := make([]model.RankedEntry, len(winners))
	for i, e := range winners {
		ranked[i] = model.RankedEntry{Rank: i + 1, LeaderboardEntry: e}
	}
	return ranked, didNotSolve
}

// RankOf returns the candidate device's competitive rank within entries, or
// 0 when the device has no winning entry.
func RankOf(entries []model.LeaderboardEntry, deviceID string) int {
	ranked, _ := Rank(entries)
	for _, e := range ranked {
		if e.DeviceID == deviceID {
			return e.Rank
		}
	}
	return 0
}

// Percentile scores a candidate result against the date's full entry set:
// the share of entries the candidate is strictly better than or equal to,
// expressed 0-100. Any win beats any loss regardless of guesses used;
// among wins fewer guesses is better; losses tie each other. An empty set
// scores 100.
func Percentile(entries []model.LeaderboardEntry, guessesUsed int, won bool) float64 {
	if len(entries) == 0 {
		return 100
	}
	candidate := result{won: won, guesses: guessesUsed}
	atLeastAsGood := 0
	for _, e := range entries {
		if !(result{won: e.Won, guesses: e.GuessesUsed}).beats(candidate) {
			atLeastAsGood++
		}
	}
	return 100 * float64(atLeastAsGood) / float64(len(entries))
}

type result struct {
	won     bool
	guesses int
}

// beats reports whether r is strictly better than o.
func (r result) beats(o result) bool {
	if r.won != o.won {
		return r.won
	}
	if !r.won {
		return false
	}
	return r.guesses < o.guesses
}
