package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"guitarmaster/internal/badges"
	"guitarmaster/internal/chords"
	"guitarmaster/internal/db"
)

const storageKey = "guitarMasterProfile"

// Store is the single source of truth for the user's durable state.
// Construct one at startup and inject it wherever profile access is
// needed; all mutation goes through its methods.
type Store struct {
	mu      sync.Mutex
	db      *db.DB
	profile *UserProfile
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Load reads the persisted profile if present and upgrades older blob
// shapes in place. Safe to call when no profile has been created yet.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.db.GetBlob(storageKey)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	if !ok {
		return nil
	}

	var p UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("parsing profile: %w", err)
	}
	s.profile = &p

	if migrated := upgrade(s.profile); migrated {
		log.Println("[Profile] Migrated profile to current schema")
		s.save()
	}
	return nil
}

// save persists the active profile. Write failures are logged and
// swallowed; the in-memory state stays authoritative.
func (s *Store) save() {
	if s.profile == nil {
		return
	}
	raw, err := json.Marshal(s.profile)
	if err != nil {
		log.Printf("[Profile] Marshal error: %v\n", err)
		return
	}
	if err := s.db.PutBlob(storageKey, raw); err != nil {
		log.Printf("[Profile] Save error: %v\n", err)
	}
}

// Create starts a fresh profile, replacing any previous one for this
// install.
func (s *Store) Create(nickname string) (*UserProfile, error) {
	nickname = strings.TrimSpace(nickname)
	if len([]rune(nickname)) < 2 || len([]rune(nickname)) > 20 {
		return nil, ErrInvalidNickname
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.profile = &UserProfile{
		Nickname:     nickname,
		CreatedAt:    now,
		LastPlayed:   now,
		Badges:       []badges.Badge{},
		HighScores:   newGameTable(),
		GameProgress: newProgressTable(),
	}
	s.save()
	return s.profile.clone(), nil
}

// Get returns a snapshot of the active profile, or nil if none exists.
func (s *Store) Get() *UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	return s.profile.clone()
}

// Clear removes the profile entirely.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	if err := s.db.DeleteBlob(storageKey); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	return nil
}

// UpdateLastPlayed stamps the profile with the current time. No-op
// without an active profile.
func (s *Store) UpdateLastPlayed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return
	}
	s.profile.LastPlayed = time.Now()
	s.save()
}

// UpdateHighScore records a new best for the game type and level.
// Returns true only when the score strictly beats the stored value;
// ties and lower scores leave the record untouched.
func (s *Store) UpdateHighScore(gameType chords.GameType, level chords.Level, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return false
	}

	scores := s.profile.HighScores.ForGame(gameType)
	current := scores[string(level)]
	if score <= current {
		return false
	}
	scores[string(level)] = score
	s.save()
	log.Printf("[Profile] New high score %s/%s: %d -> %d\n", gameType.Key(), level, current, score)
	return true
}

// IncrementGameProgress bumps the completed-set counter for the game
// type and level. When the counter lands exactly on the badge target
// and the badge is not yet owned, the badge is unlocked and returned;
// every other call returns nil.
func (s *Store) IncrementGameProgress(gameType chords.GameType, level chords.Level) *badges.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}

	progress := s.profile.GameProgress.ForGame(gameType)
	progress[string(level)]++
	count := progress[string(level)]
	log.Printf("[Profile] Progress %s/%s: %d\n", gameType.Key(), level, count)

	if badges.EarnedByProgress(count) {
		id := badges.IDFor(gameType, level)
		if def, ok := badges.Lookup(id); ok && !s.profile.hasBadge(id) {
			unlocked := def
			now := time.Now()
			unlocked.UnlockedAt = &now
			s.profile.Badges = append(s.profile.Badges, unlocked)
			log.Printf("[Profile] Badge unlocked: %s\n", unlocked.Name)
			s.save()
			return &unlocked
		}
	}

	s.save()
	return nil
}

// ClaimBadge is the manual unlock path, independent of the automatic
// progress trigger. The completion precondition (a recorded high score
// for the level) is the caller's responsibility.
func (s *Store) ClaimBadge(gameType chords.GameType, level chords.Level) (*badges.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, ErrNoProfile
	}

	id := badges.IDFor(gameType, level)
	if s.profile.hasBadge(id) {
		return nil, ErrAlreadyClaimed
	}

	def, ok := badges.Lookup(id)
	if !ok {
		return nil, ErrBadgeNotFound
	}

	unlocked := def
	now := time.Now()
	unlocked.UnlockedAt = &now
	s.profile.Badges = append(s.profile.Badges, unlocked)
	s.save()
	log.Printf("[Profile] Badge claimed: %s\n", unlocked.Name)
	return &unlocked, nil
}

// HighScore returns the recorded best for a game type and level, 0 when
// nothing is recorded or no profile exists.
func (s *Store) HighScore(gameType chords.GameType, level chords.Level) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return 0
	}
	return s.profile.HighScores.ForGame(gameType)[string(level)]
}

// BadgeProgress returns the completed-set counter capped at the badge
// target, for progress-bar display.
func (s *Store) BadgeProgress(gameType chords.GameType, level chords.Level) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return 0
	}
	count := s.profile.GameProgress.ForGame(gameType)[string(level)]
	if count > badges.ProgressTarget {
		return badges.ProgressTarget
	}
	return count
}

// Summary is a lightweight view for the profile screen.
type Summary struct {
	Nickname       string    `json:"nickname"`
	BadgeCount     int       `json:"badgeCount"`
	TotalBadges    int       `json:"totalBadges"`
	CompletionRate int       `json:"completionRate"` // percent
	JoinedAt       time.Time `json:"joinedAt"`
}

// Summarize returns display stats for the active profile, or nil.
func (s *Store) Summarize() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	total := len(badges.All)
	earned := len(s.profile.Badges)
	return &Summary{
		Nickname:       s.profile.Nickname,
		BadgeCount:     earned,
		TotalBadges:    total,
		CompletionRate: earned * 100 / total,
		JoinedAt:       s.profile.CreatedAt,
	}
}
