package model

import "time"

// LeaderboardEntry is one device's submitted result for one puzzle date.
// (DeviceID, PuzzleDate) is unique; an entry is immutable once inserted
// except for the later attachment of an email.
type LeaderboardEntry struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	DeviceID    string    `json:"deviceId" bson:"deviceId"`
	PuzzleDate  string    `json:"puzzleDate" bson:"puzzleDate"`
	PuzzleID    int       `json:"puzzleId" bson:"puzzleId"`
	Ordinal     int       `json:"ordinal" bson:"ordinal"`
	DisplayName string    `json:"displayName" bson:"displayName"`
	GuessesUsed int       `json:"guessesUsed" bson:"guessesUsed"`
	Won         bool      `json:"won" bson:"won"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}

// RankedEntry pairs an entry with its 1-based competitive rank.
type RankedEntry struct {
	Rank int `json:"rank"`
	LeaderboardEntry
}

// Standings is one puzzle date's leaderboard: winners in rank order plus a
// count of entries that did not solve.
type Standings struct {
	Date        string        `json:"date"`
	Winners     []RankedEntry `json:"winners"`
	DidNotSolve int           `json:"didNotSolve"`
}

type SubmitOutcome string

const (
	SubmitAccepted         SubmitOutcome = "accepted"
	SubmitAlreadySubmitted SubmitOutcome = "already_submitted"
)

// SubmitResult reports what happened to a leaderboard submission. Rank is 0
// for non-winning entries.
type SubmitResult struct {
	Outcome    SubmitOutcome    `json:"outcome"`
	Rank       int              `json:"rank"`
	Percentile float64          `json:"percentile"`
	Entry      LeaderboardEntry `json:"entry"`
}

// PlayerProfile is the recomputed aggregate for one email across every
// leaderboard entry linked to it. Never edited in place; always rebuilt
// from the entries.
type PlayerProfile struct {
	Email         string    `json:"email" bson:"_id"`
	DisplayName   string    `json:"displayName" bson:"displayName"`
	TotalGames    int       `json:"totalGames" bson:"totalGames"`
	TotalWins     int       `json:"totalWins" bson:"totalWins"`
	CurrentStreak int       `json:"currentStreak" bson:"currentStreak"`
	BestStreak    int       `json:"bestStreak" bson:"bestStreak"`
	AvgGuesses    float64   `json:"avgGuesses" bson:"avgGuesses"`
	WinRate       float64   `json:"winRate" bson:"winRate"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
