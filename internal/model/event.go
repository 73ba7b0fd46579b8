package model

import "time"

type EventType string

const (
	EventSessionStarted     EventType = "session_started"
	EventGuessEvaluated     EventType = "guess_evaluated"
	EventGameWon            EventType = "game_won"
	EventGameLost           EventType = "game_lost"
	EventResultAcknowledged EventType = "result_acknowledged"
	EventEntrySubmitted     EventType = "entry_submitted"
)

// GameEvent is a semantic telemetry record. Delivery is best-effort: events
// are buffered in process and flushed in batches, and gameplay never waits
// on them.
type GameEvent struct {
	ID       string            `json:"id" bson:"_id,omitempty"`
	Type     EventType         `json:"type" bson:"type"`
	DeviceID string            `json:"deviceId" bson:"deviceId"`
	PuzzleID int               `json:"puzzleId" bson:"puzzleId"`
	Ordinal  int               `json:"ordinal,omitempty" bson:"ordinal,omitempty"`
	Detail   map[string]string `json:"detail,omitempty" bson:"detail,omitempty"`
	At       time.Time         `json:"at" bson:"at"`
}
