package events

// BadgeUnlockEvent announces a badge earned through either the
// automatic progress trigger or a manual claim.
type BadgeUnlockEvent struct {
	BadgeID  string `json:"badgeId"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Nickname string `json:"nickname"`
}

// RecordEvent announces a new personal best for a game mode.
type RecordEvent struct {
	GameMode string `json:"gameMode"`
	Score    int    `json:"score"`
	Nickname string `json:"nickname"`
}

type Bus struct {
	BadgeUnlocks chan BadgeUnlockEvent
	Records      chan RecordEvent
}

func NewBus() *Bus {
	return &Bus{
		BadgeUnlocks: make(chan BadgeUnlockEvent, 10),
		Records:      make(chan RecordEvent, 10),
	}
}
