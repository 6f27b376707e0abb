package profile

import (
	"errors"
	"time"

	"guitarmaster/internal/badges"
	"guitarmaster/internal/chords"
)

var (
	ErrNoProfile       = errors.New("no active profile")
	ErrInvalidNickname = errors.New("nickname must be 2-20 characters")
	ErrAlreadyClaimed  = errors.New("badge already claimed")
	ErrBadgeNotFound   = errors.New("badge not found")
)

// LevelCounts maps a level name to an integer (a high score or a
// completed-set counter).
type LevelCounts map[string]int

// GameTable holds one LevelCounts per game type, matching the persisted
// profile blob layout.
type GameTable struct {
	FretboardMatch LevelCounts `json:"fretboardMatch"`
	ChordInput     LevelCounts `json:"chordInput"`
}

// ForGame returns the counts map for a game type.
func (t *GameTable) ForGame(gameType chords.GameType) LevelCounts {
	if gameType == chords.GameFretboardMatch {
		return t.FretboardMatch
	}
	return t.ChordInput
}

func newGameTable() GameTable {
	return GameTable{
		FretboardMatch: LevelCounts{},
		ChordInput:     LevelCounts{},
	}
}

func newProgressTable() GameTable {
	zero := func() LevelCounts {
		return LevelCounts{
			string(chords.LevelBeginner):     0,
			string(chords.LevelIntermediate): 0,
			string(chords.LevelAdvanced):     0,
		}
	}
	return GameTable{
		FretboardMatch: zero(),
		ChordInput:     zero(),
	}
}

// UserProfile is the durable record for the single user of this
// install. Badges are append-only in earn order; HighScores entries
// only ever grow; GameProgress counters only ever increment.
type UserProfile struct {
	Nickname     string         `json:"nickname"`
	CreatedAt    time.Time      `json:"createdAt"`
	LastPlayed   time.Time      `json:"lastPlayed"`
	Badges       []badges.Badge `json:"badges"`
	HighScores   GameTable      `json:"highScores"`
	GameProgress GameTable      `json:"gameProgress"`
}

func (p *UserProfile) hasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// clone returns a deep copy so callers can never mutate store state
// through a snapshot.
func (p *UserProfile) clone() *UserProfile {
	cp := *p
	cp.Badges = append([]badges.Badge(nil), p.Badges...)
	cp.HighScores = cloneTable(p.HighScores)
	cp.GameProgress = cloneTable(p.GameProgress)
	return &cp
}

func cloneTable(t GameTable) GameTable {
	return GameTable{
		FretboardMatch: cloneCounts(t.FretboardMatch),
		ChordInput:     cloneCounts(t.ChordInput),
	}
}

func cloneCounts(c LevelCounts) LevelCounts {
	out := make(LevelCounts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
