package model

// Puzzle is one match-puzzle from the catalog. Immutable once published;
// the engine only ever reads it. The integer id is stable and 1-based.
// Which calendar date a puzzle appears on is decided by the selector, never
// stored here.
type Puzzle struct {
	ID           int                  `json:"id" bson:"_id"`
	TargetID     string               `json:"targetId" bson:"targetId"`
	Teams        []string             `json:"teams" bson:"teams"`
	Venue        string               `json:"venue" bson:"venue"`
	MatchDate    string               `json:"matchDate" bson:"matchDate"`
	Season       string               `json:"season" bson:"season"`
	Winner       string               `json:"winner" bson:"winner"`
	TeamScores   map[string]TeamScore `json:"teamScores" bson:"teamScores"`
	Participants []Performance        `json:"participants" bson:"participants"`
	Trivia       []string             `json:"trivia,omitempty" bson:"trivia,omitempty"`
}

// TeamScore is one side's innings total.
type TeamScore struct {
	Runs    int `json:"runs" bson:"runs"`
	Wickets int `json:"wickets" bson:"wickets"`
}

// Performance is one participant's line in the scorecard. Name and role are
// denormalized from the player catalog for display; team, runs, wickets and
// the played flag are the match facts guesses are compared against.
type Performance struct {
	PlayerID    string `json:"playerId" bson:"playerId"`
	Name        string `json:"name" bson:"name"`
	Team        string `json:"team" bson:"team"`
	Role        Role   `json:"role" bson:"role"`
	Runs        int    `json:"runs" bson:"runs"`
	Wickets     int    `json:"wickets" bson:"wickets"`
	BallsFaced  int    `json:"ballsFaced" bson:"ballsFaced"`
	BallsBowled int    `json:"ballsBowled" bson:"ballsBowled"`
	Fours       int    `json:"fours" bson:"fours"`
	Sixes       int    `json:"sixes" bson:"sixes"`
	Played      bool   `json:"played" bson:"played"`
}

// PerformanceOf returns the participant record for a player id. The second
// return is false when the player was not in this match; callers get the
// zero Performance in that case.
func (p *Puzzle) PerformanceOf(playerID string) (Performance, bool) {
	for _, perf := range p.Participants {
		if perf.PlayerID == playerID {
			return perf, true
		}
	}
	return Performance{}, false
}

// PuzzleView is the client-facing shape of a puzzle. It deliberately has no
// target field: the target identity never leaves the server before the game
// is decided.
type PuzzleView struct {
	ID           int                  `json:"id"`
	Ordinal      int                  `json:"ordinal"`
	Date         string               `json:"date"`
	Teams        []string             `json:"teams"`
	Venue        string               `json:"venue"`
	MatchDate    string               `json:"matchDate"`
	Season       string               `json:"season"`
	Winner       string               `json:"winner"`
	TeamScores   map[string]TeamScore `json:"teamScores"`
	Participants []Performance        `json:"participants"`
	Trivia       []string             `json:"trivia,omitempty"`
	MaxGuesses   int                  `json:"maxGuesses"`
}
