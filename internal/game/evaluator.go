package game

import (
	"time"

	"cricguess/internal/model"
)

// PlayerLookup resolves a player id against the reference catalog.
type PlayerLookup func(playerID string) (model.Player, bool)

// PerformanceLookup resolves a player id to their line in the current
// puzzle's scorecard. ok=false means the player was not in this match;
// callers receive the zero Performance for them.
type PerformanceLookup func(playerID string) (model.Performance, bool)

// Evaluator applies guesses to sessions. It is pure: the input session is
// never mutated, nothing is persisted, and the guess timestamp is supplied
// by the caller.
type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate compares a guessed player against the puzzle's target and
// returns the updated session copy plus the feedback for this guess.
// Rejections (finished session, duplicate, unknown entity) leave the
// session unchanged and consume no guess.
func (e *Evaluator) Evaluate(
	sess model.GameSession,
	guessedID, targetID string,
	players PlayerLookup,
	perfs PerformanceLookup,
	at time.Time,
) (model.GameSession, model.FeedbackVector, error) {
	if sess.Finished() {
		return sess, model.FeedbackVector{}, NewSessionCompleteError()
	}
	if sess.HasGuessed(guessedID) {
		return sess, model.FeedbackVector{}, NewDuplicateGuessError(guessedID)
	}

	guessed, ok := players(guessedID)
	if !ok {
		return sess, model.FeedbackVector{}, NewUnknownEntityError(guessedID)
	}
	target, ok := players(targetID)
	if !ok {
		return sess, model.FeedbackVector{}, NewConfigurationError("target %s not in reference catalog", targetID)
	}

	guessedPerf, _ := perfs(guessedID)
	targetPerf, _ := perfs(targetID)

	feedback := model.FeedbackVector{
		IsTarget: guessedID == targetID,
		Played:   guessedPerf.Played == targetPerf.Played,
		SameTeam: guessedPerf.Team == targetPerf.Team,
		SameRole: guessed.Role == target.Role,
		Runs:     compare(guessedPerf.Runs, targetPerf.Runs),
		Wickets:  compare(guessedPerf.Wickets, targetPerf.Wickets),
	}

	// Copy before append so the caller's session is untouched.
	guesses := make([]model.GuessRecord, len(sess.Guesses), len(sess.Guesses)+1)
	copy(guesses, sess.Guesses)
	sess.Guesses = append(guesses, model.GuessRecord{
		PlayerID:  guessedID,
		Position:  len(guesses) + 1,
		Feedback:  feedback,
		GuessedAt: at,
	})

	switch {
	case feedback.IsTarget:
		sess.Status = model.StatusWon
	case len(sess.Guesses) >= e.cfg.MaxGuesses:
		sess.Status = model.StatusLost
	default:
		sess.Status = model.StatusInProgress
	}
	sess.UpdatedAt = at

	return sess, feedback, nil
}

// compare reports the guessed value's direction relative to the target's.
// Direction only: raw target magnitudes must not leak through feedback.
func compare(guessed, target int) model.Comparison {
	switch {
	case guessed > target:
		return model.ComparisonHigher
	case guessed < target:
		return model.ComparisonLower
	default:
		return model.ComparisonEqual
	}
}
