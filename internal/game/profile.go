package game

import (
	"sort"
	"time"

	"cricguess/internal/model"
)

// RecomputeProfile rebuilds the aggregate for one identity from every
// leaderboard entry linked to it. Deterministic and insensitive to input
// order: entries collapse to one result per puzzle date (an email may span
// devices), and streaks follow calendar-date adjacency, not submission
// order. now only stamps UpdatedAt.
func RecomputeProfile(email string, entries []model.LeaderboardEntry, now time.Time) model.PlayerProfile {
	profile := model.PlayerProfile{Email: email, UpdatedAt: now}

	byDate := make(map[string]dayResult, len(entries))
	var latestSubmit time.Time
	for _, e := range entries {
		day, err := time.Parse(DateLayout, e.PuzzleDate)
		if err != nil {
			// Malformed rows don't poison the aggregate.
			continue
		}
		r, seen := byDate[e.PuzzleDate]
		if !seen {
			r = dayResult{date: day, won: e.Won, guesses: e.GuessesUsed}
		} else if e.Won && (!r.won || e.GuessesUsed < r.guesses) {
			r.won = true
			r.guesses = e.GuessesUsed
		}
		byDate[e.PuzzleDate] = r

		if e.SubmittedAt.After(latestSubmit) {
			latestSubmit = e.SubmittedAt
			profile.DisplayName = e.DisplayName
		}
	}
	if len(byDate) == 0 {
		return profile
	}

	days := make([]dayResult, 0, len(byDate))
	for _, r := range byDate {
		days = append(days, r)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })

	guessSum := 0
	run := 0
	for i, d := range days {
		profile.TotalGames++
		if !d.won {
			run = 0
			continue
		}
		profile.TotalWins++
		guessSum += d.guesses
		if i > 0 && days[i-1].won && d.date.Sub(days[i-1].date) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > profile.BestStreak {
			profile.BestStreak = run
		}
	}
	if days[len(days)-1].won {
		profile.CurrentStreak = run
	}
	if profile.TotalWins > 0 {
		profile.AvgGuesses = float64(guessSum) / float64(profile.TotalWins)
	}
	profile.WinRate = float64(profile.TotalWins) / float64(profile.TotalGames)
	return profile
}

type dayResult struct {
	date    time.Time
	won     bool
	guesses int
}
