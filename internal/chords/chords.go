package chords

import "math/rand"

// Level is a difficulty tier, each bound to a fixed chord subset.
type Level string

const (
	LevelBeginner     = Level("beginner")
	LevelIntermediate = Level("intermediate")
	LevelAdvanced     = Level("advanced")
)

// GameType identifies one of the two game modes. Wire form uses
// hyphens; the profile blob keys its maps by the camel-case form.
type GameType string

const (
	GameFretboardMatch = GameType("fretboard-match")
	GameChordInput     = GameType("chord-input")
)

// Key returns the profile-blob map key for the game type.
func (g GameType) Key() string {
	switch g {
	case GameFretboardMatch:
		return "fretboardMatch"
	case GameChordInput:
		return "chordInput"
	}
	return string(g)
}

// ParseGameType accepts both the wire form and the profile-key form.
func ParseGameType(s string) (GameType, bool) {
	switch s {
	case "fretboard-match", "fretboardMatch":
		return GameFretboardMatch, true
	case "chord-input", "chordInput":
		return GameChordInput, true
	}
	return "", false
}

func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return Level(s), true
	}
	return "", false
}

func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

func GameTypes() []GameType {
	return []GameType{GameFretboardMatch, GameChordInput}
}

// Chord is one entry of the static catalog.
type Chord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Frets [6]int `json:"frets"` // -1 muted, 0 open
	Level Level  `json:"level"`
}

// ForLevel returns the fixed chord subset bound to a level.
func ForLevel(level Level) []Chord {
	var out []Chord
	for _, c := range catalog {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// ByID looks up a chord in the catalog.
func ByID(id string) (Chord, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Chord{}, false
}

// Deal picks n distinct random chords from a level for one round. If n
// exceeds the level's subset, the whole subset is returned shuffled.
func Deal(level Level, n int) []Chord {
	pool := ForLevel(level)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > 0 && n < len(pool) {
		pool = pool[:n]
	}
	return pool
}

// SetSize is the number of chords in one complete set for a level.
func SetSize(level Level) int {
	return len(ForLevel(level))
}
