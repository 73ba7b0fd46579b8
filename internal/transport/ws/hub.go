package ws

import (
	"encoding/json"
	"log"
	"sync"

	"cricguess/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgStandings MessageType = "standings"
	MsgError     MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for live leaderboard watching.
// Connections are keyed by puzzle date; every accepted submission for a
// date fans out to that date's watchers.
type Hub struct {
	// date -> connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection watching one date
type Connection struct {
	Date     string
	DeviceID string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast to a date's watchers
type BroadcastMessage struct {
	Date    string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.Date] == nil {
				h.conns[conn.Date] = make(map[*Connection]bool)
			}
			h.conns[conn.Date][conn] = true
			log.Printf("Device %s watching leaderboard for %s", conn.DeviceID, conn.Date)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.conns[conn.Date]; ok {
				if watchers[conn] {
					delete(watchers, conn)
					close(conn.Send)
					log.Printf("Device %s stopped watching leaderboard for %s", conn.DeviceID, conn.Date)
				}
				if len(watchers) == 0 {
					delete(h.conns, conn.Date)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if watchers, ok := h.conns[msg.Date]; ok {
				for conn := range watchers {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastStandings pushes fresh standings to everyone watching the date
// (implements service.Broadcaster)
func (h *Hub) BroadcastStandings(date string, standings *model.Standings) {
	data, _ := json.Marshal(standings)
	h.broadcast <- &BroadcastMessage{
		Date: date,
		Message: &Message{
			Type:    MsgStandings,
			Payload: data,
		},
	}
}
