package broadcast

import (
	"encoding/json"
	"log"
	"sync"

	"guitarmaster/internal/events"
)

// EventMessage is one server-sent event: an event name plus a JSON
// payload.
type EventMessage struct {
	Event string
	Msg   string
}

// Broadcaster fans bus events out to all subscribed SSE clients.
type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan EventMessage]bool
}

func NewBroadcaster(bus *events.Bus) *Broadcaster {
	b := &Broadcaster{
		Clients: make(map[chan EventMessage]bool),
	}
	go func() {
		for ev := range bus.BadgeUnlocks {
			b.broadcastJSON("badgeUnlocked", ev)
		}
	}()
	go func() {
		for ev := range bus.Records {
			b.broadcastJSON("newRecord", ev)
		}
	}()
	return b
}

func (b *Broadcaster) Subscribe() chan EventMessage {
	ch := make(chan EventMessage, 10)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan EventMessage) {
	b.Mu.Lock()
	delete(b.Clients, ch)
	b.Mu.Unlock()
	close(ch)
}

func (b *Broadcaster) broadcastJSON(event string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Broadcast] Marshal error: %v\n", err)
		return
	}
	b.Broadcast(event, string(raw))
}

func (b *Broadcaster) Broadcast(event string, message string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- EventMessage{Event: event, Msg: message}:
		default:
			// skip clients with full data channels
		}
	}
}
