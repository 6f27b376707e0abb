package profile

import (
	"encoding/json"
	"fmt"

	"guitarmaster/internal/leaderboard"
)

type exportDocument struct {
	Profile     *UserProfile             `json:"profile"`
	Leaderboard []leaderboard.ScoreEntry `json:"leaderboard"`
}

// Export produces the downloadable backup document: the profile plus
// the user's own leaderboard entries. Returns an empty payload when no
// profile is active. There is no matching import path.
func (s *Store) Export(board *leaderboard.Store) ([]byte, error) {
	p := s.Get()
	if p == nil {
		return nil, nil
	}

	doc := exportDocument{
		Profile:     p,
		Leaderboard: board.ForNickname(p.Nickname),
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting profile: %w", err)
	}
	return raw, nil
}
