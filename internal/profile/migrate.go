package profile

import (
	"log"

	"guitarmaster/internal/badges"
)

// Older installs persisted profiles without gameProgress or highScores.
// Upgrade steps run in order against the decoded profile and report
// whether they changed anything; the caller persists once if any did.
// New schema changes append a step here.
type migrationStep struct {
	name  string
	apply func(*UserProfile) bool
}

var migrations = []migrationStep{
	{
		name: "add gameProgress",
		apply: func(p *UserProfile) bool {
			changed := false
			if p.GameProgress.FretboardMatch == nil && p.GameProgress.ChordInput == nil {
				p.GameProgress = newProgressTable()
				return true
			}
			if p.GameProgress.FretboardMatch == nil {
				p.GameProgress.FretboardMatch = newProgressTable().FretboardMatch
				changed = true
			}
			if p.GameProgress.ChordInput == nil {
				p.GameProgress.ChordInput = newProgressTable().ChordInput
				changed = true
			}
			return changed
		},
	},
	{
		name: "add highScores",
		apply: func(p *UserProfile) bool {
			changed := false
			if p.HighScores.FretboardMatch == nil {
				p.HighScores.FretboardMatch = LevelCounts{}
				changed = true
			}
			if p.HighScores.ChordInput == nil {
				p.HighScores.ChordInput = LevelCounts{}
				changed = true
			}
			return changed
		},
	},
	{
		name: "init badges",
		apply: func(p *UserProfile) bool {
			if p.Badges == nil {
				p.Badges = []badges.Badge{}
				return true
			}
			return false
		},
	},
}

// upgrade applies all pending migration steps and reports whether the
// profile changed. Idempotent: a current-shape profile is untouched.
func upgrade(p *UserProfile) bool {
	changed := false
	for _, m := range migrations {
		if m.apply(p) {
			log.Printf("[Profile] Migration applied: %s\n", m.name)
			changed = true
		}
	}
	return changed
}
