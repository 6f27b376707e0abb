package leaderboard

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"guitarmaster/internal/chords"
	"guitarmaster/internal/db"
)

const (
	storageKey = "guitarMasterLeaderboard"

	// MaxEntries caps the board globally, not per game type or level.
	MaxEntries = 50
)

// ScoreEntry is an immutable fact appended on every game completion.
// Entries are never updated, only evicted when the cap is exceeded.
type ScoreEntry struct {
	Nickname   string          `json:"nickname"`
	Score      int             `json:"score"`
	Level      chords.Level    `json:"level"`
	GameType   chords.GameType `json:"gameType"`
	AchievedAt time.Time       `json:"achievedAt"`
}

// Store keeps the capped, score-descending board in memory and mirrors
// every change to the kv blob.
type Store struct {
	mu      sync.Mutex
	db      *db.DB
	entries []ScoreEntry
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Load reads the persisted board. Missing blob means an empty board.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.db.GetBlob(storageKey)
	if err != nil {
		return fmt.Errorf("loading leaderboard: %w", err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, &s.entries); err != nil {
		return fmt.Errorf("parsing leaderboard: %w", err)
	}
	return nil
}

func (s *Store) save() {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("[Leaderboard] Marshal error: %v\n", err)
		return
	}
	if err := s.db.PutBlob(storageKey, raw); err != nil {
		log.Printf("[Leaderboard] Save error: %v\n", err)
	}
}

// Append adds an entry, re-sorts the board by score descending (stable,
// so equal scores keep insertion order) and drops everything past the
// cap.
func (s *Store) Append(entry ScoreEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Score > s.entries[j].Score
	})
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	s.save()
}

// All returns a snapshot of the full board, best score first.
func (s *Store) All() []ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ScoreEntry(nil), s.entries...)
}

// ForSlice returns the board entries for one game type and level.
func (s *Store) ForSlice(gameType chords.GameType, level chords.Level) []ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ScoreEntry
	for _, e := range s.entries {
		if e.GameType == gameType && e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// ForNickname returns the user's own entries across all slices.
func (s *Store) ForNickname(nickname string) []ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ScoreEntry
	for _, e := range s.entries {
		if e.Nickname == nickname {
			out = append(out, e)
		}
	}
	return out
}

// RankOf returns the 1-based position of the user's best entry within
// a game type and level slice, or 0 when the user has no entry there.
func (s *Store) RankOf(nickname string, gameType chords.GameType, level chords.Level) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := -1
	for _, e := range s.entries {
		if e.GameType == gameType && e.Level == level && e.Nickname == nickname && e.Score > best {
			best = e.Score
		}
	}
	if best < 0 {
		return 0
	}

	rank := 0
	for _, e := range s.entries {
		if e.GameType != gameType || e.Level != level {
			continue
		}
		rank++
		if e.Nickname == nickname && e.Score == best {
			return rank
		}
	}
	return 0
}
