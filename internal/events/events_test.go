package events

import (
	"testing"
	"time"
)

func TestNewBus(t *testing.T) {
	bus := NewBus()
	if bus == nil {
		t.Fatal("NewBus() returned nil")
	}
	if bus.BadgeUnlocks == nil {
		t.Fatal("BadgeUnlocks channel is nil")
	}
	if bus.Records == nil {
		t.Fatal("Records channel is nil")
	}
}

func TestBus_SendReceive(t *testing.T) {
	bus := NewBus()
	ev := BadgeUnlockEvent{BadgeID: "fretboard-beginner", Name: "Chord Novice", Nickname: "Alice"}

	go func() {
		bus.BadgeUnlocks <- ev
	}()

	select {
	case received := <-bus.BadgeUnlocks:
		if received.BadgeID != "fretboard-beginner" {
			t.Errorf("received BadgeID = %q, want %q", received.BadgeID, "fretboard-beginner")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_Buffered(t *testing.T) {
	bus := NewBus()

	// Should be able to send up to 10 without blocking
	for i := 0; i < 10; i++ {
		bus.BadgeUnlocks <- BadgeUnlockEvent{BadgeID: "input-beginner"}
		bus.Records <- RecordEvent{GameMode: "chordInput_beginner", Score: i}
	}

	// Drain
	for i := 0; i < 10; i++ {
		<-bus.BadgeUnlocks
		<-bus.Records
	}
}
