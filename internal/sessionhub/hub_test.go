package sessionhub

import (
	"encoding/json"
	"testing"
	"time"

	"guitarmaster/internal/scoring"
)

func TestRegisterAndBroadcast(t *testing.T) {
	h := NewHub()

	c1 := &Client{ID: "c1", SessionID: "s1", Send: make(chan []byte, 16)}
	c2 := &Client{ID: "c2", SessionID: "s1", Send: make(chan []byte, 16)}
	c3 := &Client{ID: "c3", SessionID: "s2", Send: make(chan []byte, 16)}

	h.Register(c1)
	h.Register(c2)
	h.Register(c3)

	h.Broadcast("s1", TickMessage{Type: "tick", SessionID: "s1", TimeLeft: 7.5, TotalScore: 200})

	// c1 and c2 watch s1 and should receive the frame; c3 should not
	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.Send:
			var got TickMessage
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "tick" || got.TimeLeft != 7.5 || got.TotalScore != 200 {
				t.Fatalf("unexpected frame: %+v", got)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("%s did not receive frame", c.ID)
		}
	}

	select {
	case <-c3.Send:
		t.Fatal("c3 should not receive frames for s1")
	default:
		// expected
	}
}

func TestUnregister(t *testing.T) {
	h := NewHub()

	c := &Client{ID: "c1", SessionID: "s1", Send: make(chan []byte, 16)}
	h.Register(c)
	h.Unregister("c1")

	// Send channel should be closed
	_, ok := <-c.Send
	if ok {
		t.Fatal("c.Send should be closed")
	}

	if h.Watchers("s1") != 0 {
		t.Error("session should have no watchers after unregister")
	}
}

func TestUnregisterNonexistent(t *testing.T) {
	h := NewHub()
	// Should not panic
	h.Unregister("nonexistent")
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	h := NewHub()

	// Channel with capacity 1
	c := &Client{ID: "c1", SessionID: "s1", Send: make(chan []byte, 1)}
	h.Register(c)

	// Fill the channel
	c.Send <- []byte("filler")

	// This should not block; the frame is dropped
	h.Broadcast("s1", TickMessage{Type: "tick", SessionID: "s1"})

	// Only the filler should be in the channel
	data := <-c.Send
	if string(data) != "filler" {
		t.Fatalf("expected filler, got: %s", data)
	}

	select {
	case <-c.Send:
		t.Fatal("should be empty after draining filler")
	default:
		// expected
	}
}

func TestWatchers(t *testing.T) {
	h := NewHub()
	h.Register(&Client{ID: "c1", SessionID: "s1", Send: make(chan []byte, 1)})
	h.Register(&Client{ID: "c2", SessionID: "s1", Send: make(chan []byte, 1)})

	if got := h.Watchers("s1"); got != 2 {
		t.Errorf("Watchers(s1) = %d, want 2", got)
	}
	if got := h.Watchers("s2"); got != 0 {
		t.Errorf("Watchers(s2) = %d, want 0", got)
	}
}

func TestFromSnapshot(t *testing.T) {
	tick := FromSnapshot(scoring.Snapshot{ID: "s1", State: scoring.StateRunning, TimeLeft: 3.2})
	if tick.Type != "tick" {
		t.Errorf("running type = %q, want tick", tick.Type)
	}

	expired := FromSnapshot(scoring.Snapshot{ID: "s1", State: scoring.StateExpired})
	if expired.Type != "expired" {
		t.Errorf("expired type = %q, want expired", expired.Type)
	}

	scored := FromSnapshot(scoring.Snapshot{ID: "s1", State: scoring.StateScored, CurrentScore: 100})
	if scored.Type != "scored" {
		t.Errorf("scored type = %q, want scored", scored.Type)
	}
}
