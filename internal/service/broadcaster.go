package service

import "cricguess/internal/model"

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastStandings(date string, standings *model.Standings)
}
