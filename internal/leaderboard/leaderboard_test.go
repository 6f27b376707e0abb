package leaderboard

import (
	"fmt"
	"testing"
	"time"

	"guitarmaster/internal/chords"
	"guitarmaster/internal/db"
)

func getTestStore(t *testing.T) (*Store, *db.DB) {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database), database
}

func entry(nick string, score int) ScoreEntry {
	return ScoreEntry{
		Nickname:   nick,
		Score:      score,
		Level:      chords.LevelBeginner,
		GameType:   chords.GameFretboardMatch,
		AchievedAt: time.Now(),
	}
}

func TestAppend_SortedDescending(t *testing.T) {
	s, _ := getTestStore(t)

	s.Append(entry("a", 100))
	s.Append(entry("b", 300))
	s.Append(entry("c", 200))

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Score > all[i-1].Score {
			t.Errorf("entries out of order at %d: %d > %d", i, all[i].Score, all[i-1].Score)
		}
	}
	if all[0].Nickname != "b" {
		t.Errorf("top entry = %q, want b", all[0].Nickname)
	}
}

func TestAppend_StableTies(t *testing.T) {
	s, _ := getTestStore(t)

	s.Append(entry("first", 100))
	s.Append(entry("second", 100))

	all := s.All()
	if all[0].Nickname != "first" || all[1].Nickname != "second" {
		t.Errorf("tie order = %q,%q, want first,second", all[0].Nickname, all[1].Nickname)
	}
}

func TestAppend_CapFifty(t *testing.T) {
	s, _ := getTestStore(t)

	for i := 1; i <= 55; i++ {
		s.Append(entry(fmt.Sprintf("p%d", i), i))
	}

	all := s.All()
	if len(all) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(all), MaxEntries)
	}
	if all[0].Score != 55 {
		t.Errorf("top score = %d, want 55", all[0].Score)
	}
	if all[len(all)-1].Score != 6 {
		t.Errorf("lowest kept score = %d, want 6 (1..5 evicted)", all[len(all)-1].Score)
	}
}

func TestForSlice(t *testing.T) {
	s, _ := getTestStore(t)

	s.Append(entry("a", 100))
	s.Append(ScoreEntry{Nickname: "b", Score: 500, Level: chords.LevelAdvanced, GameType: chords.GameChordInput})

	slice := s.ForSlice(chords.GameChordInput, chords.LevelAdvanced)
	if len(slice) != 1 || slice[0].Nickname != "b" {
		t.Errorf("ForSlice = %+v, want only b", slice)
	}
	if got := s.ForSlice(chords.GameChordInput, chords.LevelBeginner); got != nil {
		t.Errorf("empty slice = %+v, want nil", got)
	}
}

func TestRankOf(t *testing.T) {
	s, _ := getTestStore(t)

	s.Append(entry("alice", 100))
	s.Append(entry("bob", 300))
	s.Append(entry("carol", 200))
	s.Append(entry("alice", 250))

	if r := s.RankOf("bob", chords.GameFretboardMatch, chords.LevelBeginner); r != 1 {
		t.Errorf("bob rank = %d, want 1", r)
	}
	if r := s.RankOf("alice", chords.GameFretboardMatch, chords.LevelBeginner); r != 2 {
		t.Errorf("alice rank = %d, want 2 (best entry 250)", r)
	}
	if r := s.RankOf("carol", chords.GameFretboardMatch, chords.LevelBeginner); r != 3 {
		t.Errorf("carol rank = %d, want 3", r)
	}
	if r := s.RankOf("nobody", chords.GameFretboardMatch, chords.LevelBeginner); r != 0 {
		t.Errorf("unknown rank = %d, want 0 (unranked)", r)
	}
	if r := s.RankOf("alice", chords.GameChordInput, chords.LevelBeginner); r != 0 {
		t.Errorf("rank in empty slice = %d, want 0", r)
	}
}

func TestLoad_Persisted(t *testing.T) {
	s, database := getTestStore(t)

	s.Append(entry("a", 100))
	s.Append(entry("b", 200))

	s2 := NewStore(database)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	all := s2.All()
	if len(all) != 2 {
		t.Fatalf("reloaded len = %d, want 2", len(all))
	}
	if all[0].Nickname != "b" {
		t.Errorf("reloaded top = %q, want b", all[0].Nickname)
	}
}

func TestLoad_Empty(t *testing.T) {
	s, _ := getTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(s.All()) != 0 {
		t.Error("fresh board should be empty")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	s, _ := getTestStore(t)
	s.Append(entry("a", 100))

	all := s.All()
	all[0].Score = 9999

	if s.All()[0].Score != 100 {
		t.Error("mutating the returned slice should not affect the store")
	}
}
