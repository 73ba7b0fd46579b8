package model

import "time"

type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusLost       GameStatus = "lost"
)

// Comparison is the direction of a numeric attribute relative to the target:
// the guessed player's value is higher, lower, or equal. Direction only;
// magnitudes are never revealed.
type Comparison string

const (
	ComparisonEqual  Comparison = "equal"
	ComparisonHigher Comparison = "higher"
	ComparisonLower  Comparison = "lower"
)

// FeedbackVector is the fixed set of per-attribute results returned after a
// guess. At most one guess in a session carries IsTarget=true, and that
// guess is always the last one recorded.
type FeedbackVector struct {
	IsTarget bool       `json:"isTarget" bson:"isTarget"`
	Played   bool       `json:"played" bson:"played"`
	SameTeam bool       `json:"sameTeam" bson:"sameTeam"`
	SameRole bool       `json:"sameRole" bson:"sameRole"`
	Runs     Comparison `json:"runs" bson:"runs"`
	Wickets  Comparison `json:"wickets" bson:"wickets"`
}

// GuessRecord is one submitted guess with its feedback. Append-only.
type GuessRecord struct {
	PlayerID  string         `json:"playerId" bson:"playerId"`
	Position  int            `json:"position" bson:"position"`
	Feedback  FeedbackVector `json:"feedback" bson:"feedback"`
	GuessedAt time.Time      `json:"guessedAt" bson:"guessedAt"`
}

// GameSession is the per-device record for one puzzle. Status and
// ResultAcknowledged are independent: finishing the game and having seen the
// completion notice are different facts, and only the second is ever set by
// acknowledgment.
type GameSession struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	DeviceID           string        `json:"deviceId" bson:"deviceId"`
	PuzzleID           int           `json:"puzzleId" bson:"puzzleId"`
	PuzzleOrdinal      int           `json:"puzzleOrdinal" bson:"puzzleOrdinal"`
	PuzzleDate         string        `json:"puzzleDate" bson:"puzzleDate"`
	Guesses            []GuessRecord `json:"guesses" bson:"guesses"`
	Status             GameStatus    `json:"status" bson:"status"`
	ResultAcknowledged bool          `json:"resultAcknowledged" bson:"resultAcknowledged"`
	CreatedAt          time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// GuessResponse is returned after an accepted guess: the updated session
// plus the feedback for the guess just made.
type GuessResponse struct {
	Session  *GameSession    `json:"session"`
	Feedback *FeedbackVector `json:"feedback"`
}

// Finished reports whether the session is terminal.
func (s *GameSession) Finished() bool {
	return s.Status != StatusInProgress
}

// GuessesUsed is the number of guesses recorded so far.
func (s *GameSession) GuessesUsed() int {
	return len(s.Guesses)
}

// HasGuessed reports whether the player id already appears among the
// session's guesses.
func (s *GameSession) HasGuessed(playerID string) bool {
	for _, g := range s.Guesses {
		if g.PlayerID == playerID {
			return true
		}
	}
	return false
}
