package sessionhub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"

	"guitarmaster/internal/scoring"
)

// TickMessage is the JSON frame pushed to clients watching a scoring
// session.
type TickMessage struct {
	Type         string  `json:"t"` // tick, scored, expired
	SessionID    string  `json:"id"`
	TimeLeft     float64 `json:"tl"`
	CurrentScore int     `json:"s"`
	TotalScore   int     `json:"ts"`
}

// FromSnapshot converts a scoring snapshot into a wire frame.
func FromSnapshot(snap scoring.Snapshot) TickMessage {
	msgType := "tick"
	switch snap.State {
	case scoring.StateExpired:
		msgType = "expired"
	case scoring.StateScored:
		msgType = "scored"
	}
	return TickMessage{
		Type:         msgType,
		SessionID:    snap.ID,
		TimeLeft:     snap.TimeLeft,
		CurrentScore: snap.CurrentScore,
		TotalScore:   snap.TotalScore,
	}
}

// Client represents a single WebSocket connection watching one session.
type Client struct {
	ID        string
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub manages WebSocket subscribers keyed by client id.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.Send)
		delete(h.clients, clientID)
	}
}

// Broadcast sends a frame to every client watching the session.
// Non-blocking: drops frames for clients with full buffers.
func (h *Hub) Broadcast(sessionID string, msg TickMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[SessionHub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if c.SessionID != sessionID {
			continue
		}
		select {
		case c.Send <- data:
		default:
			// Drop frame if channel full
		}
	}
}

// Watchers reports how many clients are subscribed to a session.
func (h *Hub) Watchers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.clients {
		if c.SessionID == sessionID {
			n++
		}
	}
	return n
}
