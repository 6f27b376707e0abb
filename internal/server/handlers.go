package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"guitarmaster/internal/badges"
	"guitarmaster/internal/broadcast"
	"guitarmaster/internal/chords"
	"guitarmaster/internal/db"
	"guitarmaster/internal/events"
	"guitarmaster/internal/leaderboard"
	"guitarmaster/internal/profile"
	"guitarmaster/internal/scoring"
	"guitarmaster/internal/sessionhub"
)

type Server struct {
	Profiles    *profile.Store
	Leaderboard *leaderboard.Store
	Bests       *scoring.Bests
	Sessions    *scoring.Registry
	Hub         *sessionhub.Hub
	Bus         *events.Bus
	Broadcaster *broadcast.Broadcaster
	DB          *db.DB
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handle] Encode error: %v\n", err)
	}
}

// sliceParams parses the gameType and level query or body fields shared
// by the progress, claim and leaderboard endpoints.
func sliceParams(gameType, level string) (chords.GameType, chords.Level, error) {
	gt, ok := chords.ParseGameType(gameType)
	if !ok {
		return "", "", fmt.Errorf("unknown game type %q", gameType)
	}
	lv, ok := chords.ParseLevel(level)
	if !ok {
		return "", "", fmt.Errorf("unknown level %q", level)
	}
	return gt, lv, nil
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:CreateProfile] Request Received")

	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.Profiles.Create(req.Nickname)
	if err != nil {
		if errors.Is(err, profile.ErrInvalidNickname) {
			http.Error(w, "Nickname must be 2-20 characters", http.StatusBadRequest)
			return
		}
		log.Println(err)
		http.Error(w, "Failed to create profile", http.StatusInternalServerError)
		return
	}

	fmt.Printf("[Handle:CreateProfile] Created profile for %s\n", p.Nickname)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p := s.Profiles.Get()
	if p == nil {
		http.Error(w, "No profile", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:DeleteProfile] Request Received")
	if err := s.Profiles.Clear(); err != nil {
		log.Println(err)
		http.Error(w, "Failed to delete profile", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportProfile(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:ExportProfile] Request Received")

	// Snapshot the profile once; the export and the filename must come
	// from the same view of it.
	p := s.Profiles.Get()
	if p == nil {
		http.Error(w, "No profile", http.StatusNotFound)
		return
	}

	raw, err := s.Profiles.Export(s.Leaderboard)
	if err != nil {
		log.Println(err)
		http.Error(w, "Failed to export profile", http.StatusInternalServerError)
		return
	}
	if raw == nil {
		http.Error(w, "No profile", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("guitar-master-%s-%s.json", p.Nickname, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(raw)
}

func (s *Server) handleProfileSummary(w http.ResponseWriter, r *http.Request) {
	summary := s.Profiles.Summarize()
	if summary == nil {
		http.Error(w, "No profile", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleBadgeProgress(w http.ResponseWriter, r *http.Request) {
	gt, lv, err := sliceParams(r.URL.Query().Get("gameType"), r.URL.Query().Get("level"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"completed": s.Profiles.BadgeProgress(gt, lv),
		"required":  badges.ProgressTarget,
	})
}

type badgeStatus struct {
	badges.Badge
	Unlocked bool `json:"unlocked"`
}

func (s *Server) handleListBadges(w http.ResponseWriter, r *http.Request) {
	p := s.Profiles.Get()

	out := make([]badgeStatus, 0, len(badges.All))
	for _, b := range badges.All {
		status := badgeStatus{Badge: b}
		if p != nil {
			for _, earned := range p.Badges {
				if earned.ID == b.ID {
					status.Unlocked = true
					status.UnlockedAt = earned.UnlockedAt
					break
				}
			}
		}
		out = append(out, status)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClaimBadge(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:ClaimBadge] Request Received")

	var req struct {
		GameType string `json:"gameType"`
		Level    string `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	gt, lv, err := sliceParams(req.GameType, req.Level)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A badge can only be claimed once the level has been scored at
	// least once. The caller checks this before asking the store.
	if !badges.ClaimEligible(s.Profiles.HighScore(gt, lv)) {
		http.Error(w, "Level not completed yet", http.StatusForbidden)
		return
	}

	badge, err := s.Profiles.ClaimBadge(gt, lv)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrNoProfile):
			http.Error(w, "No profile", http.StatusNotFound)
		case errors.Is(err, profile.ErrAlreadyClaimed):
			http.Error(w, "Badge already claimed", http.StatusConflict)
		case errors.Is(err, profile.ErrBadgeNotFound):
			http.Error(w, "Badge not found", http.StatusNotFound)
		default:
			log.Println(err)
			http.Error(w, "Failed to claim badge", http.StatusInternalServerError)
		}
		return
	}

	s.publishBadge(badge)
	fmt.Printf("[Handle:ClaimBadge] Claimed %s\n", badge.ID)
	writeJSON(w, http.StatusOK, badge)
}

func (s *Server) publishBadge(badge *badges.Badge) {
	nickname := ""
	if p := s.Profiles.Get(); p != nil {
		nickname = p.Nickname
	}
	select {
	case s.Bus.BadgeUnlocks <- events.BadgeUnlockEvent{
		BadgeID:  badge.ID,
		Name:     badge.Name,
		Icon:     badge.Icon,
		Nickname: nickname,
	}:
	default:
		log.Println("[Events] Badge unlock channel full, dropping event")
	}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	gameType := r.URL.Query().Get("gameType")
	level := r.URL.Query().Get("level")

	if gameType == "" && level == "" {
		writeJSON(w, http.StatusOK, map[string]any{"entries": s.Leaderboard.All()})
		return
	}

	gt, lv, err := sliceParams(gameType, level)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]any{"entries": s.Leaderboard.ForSlice(gt, lv)}
	if p := s.Profiles.Get(); p != nil {
		resp["rank"] = s.Leaderboard.RankOf(p.Nickname, gt, lv)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChords(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")
	if level == "" {
		// Without a level the whole catalog is served, grouped by tier.
		out := make(map[chords.Level][]chords.Chord, len(chords.Levels()))
		for _, lv := range chords.Levels() {
			out[lv] = chords.ForLevel(lv)
		}
		writeJSON(w, http.StatusOK, out)
		return
	}
	lv, ok := chords.ParseLevel(level)
	if !ok {
		http.Error(w, "unknown level", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, chords.ForLevel(lv))
}

func (s *Server) handleChordByID(w http.ResponseWriter, r *http.Request) {
	chord, ok := chords.ByID(r.PathValue("id"))
	if !ok {
		http.Error(w, "Chord not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, chord)
}

// handleModes serves the game-type and level enumerations plus the set
// size dealt per level, so clients never hard-code them.
func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	setSizes := make(map[chords.Level]int, len(chords.Levels()))
	for _, lv := range chords.Levels() {
		setSizes[lv] = chords.SetSize(lv)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"gameTypes": chords.GameTypes(),
		"levels":    chords.Levels(),
		"setSizes":  setSizes,
	})
}

func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		key = "C"
	}
	scales, ok := chords.ScalesFor(key)
	if !ok {
		http.Error(w, "unknown key", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"keys":   chords.Keys(),
		"scales": scales,
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgChan := s.Broadcaster.Subscribe()
	defer s.Broadcaster.Unsubscribe(msgChan)

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-msgChan:
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Msg, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
			return
		}
	}
	fmt.Fprintf(w, `{"status":"%s","sessions":%d}`, status, s.Sessions.Count())
}
