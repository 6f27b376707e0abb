package scoring

import (
	"fmt"
	"log"
	"strconv"

	"guitarmaster/internal/db"
)

const bestKeyPrefix = "guitarApp_bestScore_"

// Bests tracks the per-game-mode best score for this install. It is a
// device-local cache kept alongside the profile's high scores; the
// profile record is the canonical one.
type Bests struct {
	db *db.DB
}

func NewBests(database *db.DB) *Bests {
	return &Bests{db: database}
}

func bestKey(gameMode string) string {
	return bestKeyPrefix + gameMode
}

// Best returns the stored best for a game mode, 0 when none exists.
func (b *Bests) Best(gameMode string) int {
	raw, ok, err := b.db.GetBlob(bestKey(gameMode))
	if err != nil {
		log.Printf("[Scoring] Read best error: %v\n", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		log.Printf("[Scoring] Bad best value %q: %v\n", raw, err)
		return 0
	}
	return n
}

// CompleteRound records a finished game's score against the stored
// best. Returns true (and persists) only on a strict improvement.
func (b *Bests) CompleteRound(gameMode string, finalScore int) bool {
	current := b.Best(gameMode)
	if finalScore <= current {
		return false
	}
	if err := b.db.PutBlob(bestKey(gameMode), []byte(strconv.Itoa(finalScore))); err != nil {
		log.Printf("[Scoring] Save best error: %v\n", err)
	}
	log.Printf("[Scoring] New record for %s: %d -> %d\n", gameMode, current, finalScore)
	return true
}

// Mode builds the game-mode key used for best-score storage, e.g.
// "fretboardMatch_beginner".
func Mode(gameTypeKey, level string) string {
	return fmt.Sprintf("%s_%s", gameTypeKey, level)
}
