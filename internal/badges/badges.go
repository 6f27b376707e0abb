package badges

import (
	"time"

	"guitarmaster/internal/chords"
)

// ProgressTarget is the number of completed sets that unlocks a badge.
const ProgressTarget = 5

// Badge is a persistent unlockable achievement tied to a game type and
// level. UnlockedAt is set only on the earned instance stored in a
// profile; catalog entries leave it nil.
type Badge struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Level       chords.Level    `json:"level"`
	GameType    chords.GameType `json:"gameType"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	UnlockedAt  *time.Time      `json:"unlockedAt,omitempty"`
}

// All is the full badge catalog: one badge per game type and level.
var All = []Badge{
	{
		ID:          "fretboard-beginner",
		Name:        "Chord Novice",
		Description: "Complete 5 beginner matching game sets",
		Level:       chords.LevelBeginner,
		GameType:    chords.GameFretboardMatch,
		Icon:        "🎸",
		Color:       "bg-green-500",
	},
	{
		ID:          "fretboard-intermediate",
		Name:        "Chord Apprentice",
		Description: "Complete 5 intermediate matching game sets",
		Level:       chords.LevelIntermediate,
		GameType:    chords.GameFretboardMatch,
		Icon:        "🎯",
		Color:       "bg-blue-500",
	},
	{
		ID:          "fretboard-advanced",
		Name:        "Chord Master",
		Description: "Complete 5 advanced matching game sets",
		Level:       chords.LevelAdvanced,
		GameType:    chords.GameFretboardMatch,
		Icon:        "👑",
		Color:       "bg-purple-500",
	},
	{
		ID:          "input-beginner",
		Name:        "Fretboard Explorer",
		Description: "Complete 5 beginner chord input game sets",
		Level:       chords.LevelBeginner,
		GameType:    chords.GameChordInput,
		Icon:        "🗺️",
		Color:       "bg-orange-500",
	},
	{
		ID:          "input-intermediate",
		Name:        "Fretboard Adept",
		Description: "Complete 5 intermediate chord input game sets",
		Level:       chords.LevelIntermediate,
		GameType:    chords.GameChordInput,
		Icon:        "⚡",
		Color:       "bg-yellow-500",
	},
	{
		ID:          "input-advanced",
		Name:        "Fretboard Virtuoso",
		Description: "Complete 5 advanced chord input game sets",
		Level:       chords.LevelAdvanced,
		GameType:    chords.GameChordInput,
		Icon:        "🏆",
		Color:       "bg-red-500",
	},
}

// IDFor derives the badge id for a game type and level.
func IDFor(gameType chords.GameType, level chords.Level) string {
	if gameType == chords.GameFretboardMatch {
		return "fretboard-" + string(level)
	}
	return "input-" + string(level)
}

// Lookup finds a badge definition in the catalog.
func Lookup(id string) (Badge, bool) {
	for _, b := range All {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// EarnedByProgress reports whether a progress counter value unlocks the
// badge. The unlock is edge-triggered: only the increment that lands
// exactly on the target fires, later increments never re-trigger.
func EarnedByProgress(completedSets int) bool {
	return completedSets == ProgressTarget
}

// ClaimEligible reports whether the manual claim path is open for a
// level. A recorded high score above zero stands in for having
// completed the level's chords.
func ClaimEligible(highScore int) bool {
	return highScore > 0
}
