package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"guitarmaster/internal/chords"
	"guitarmaster/internal/events"
	"guitarmaster/internal/leaderboard"
	"guitarmaster/internal/scoring"
	"guitarmaster/internal/sessionhub"
)

// getSession resolves the session from the {id} path segment.
func (s *Server) getSession(r *http.Request) *scoring.Session {
	return s.Sessions.Get(r.PathValue("id"))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:CreateSession] Request Received")

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

	sess := s.Sessions.Create(scoring.Mode(gt.Key(), string(lv)))
	sess.OnTick(func(snap scoring.Snapshot) {
		s.Hub.Broadcast(snap.ID, sessionhub.FromSnapshot(snap))
	})

	fmt.Printf("[Handle:CreateSession] Created session %s for %s\n", sess.ID(), sess.GameMode())
	writeJSON(w, http.StatusCreated, map[string]any{
		"snapshot": sess.Snapshot(),
		"chords":   chords.Deal(lv, chords.SetSize(lv)),
	})
}

// sessionLevel recovers the difficulty tier from a session's game-mode
// key ("fretboardMatch_beginner" and the like).
func sessionLevel(sess *scoring.Session) (chords.Level, bool) {
	_, level, found := strings.Cut(sess.GameMode(), "_")
	if !found {
		return "", false
	}
	return chords.ParseLevel(level)
}

// handleDealRound deals a fresh randomized chord set for the session's
// level, used when the player advances to the next round.
func (s *Server) handleDealRound(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	lv, ok := sessionLevel(sess)
	if !ok {
		http.Error(w, "Session has no level", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"chords": chords.Deal(lv, chords.SetSize(lv)),
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	sess.Start()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var req struct {
		Correct bool `json:"correct"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	var awarded int
	if req.Correct {
		awarded = sess.HandleCorrectAnswer()
	} else {
		awarded = sess.HandleWrongAnswer()
	}

	snap := sess.Snapshot()
	s.Hub.Broadcast(snap.ID, sessionhub.FromSnapshot(snap))
	writeJSON(w, http.StatusOK, map[string]any{
		"awarded":  awarded,
		"snapshot": snap,
	})
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var req struct {
		Full bool `json:"full"` // also zero the running total
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	if req.Full {
		sess.ResetGame()
	} else {
		sess.ResetRound()
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// handleCompleteSession finishes a game: it records the final score
// against the mode best, the profile high-score table and the
// leaderboard, bumps the completed-set counter, and reports whether a
// badge unlocked and where the player now ranks.
func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:CompleteSession] Request Received")

	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

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

	sess.Stop()
	total := sess.TotalScore()
	mode := scoring.Mode(gt.Key(), string(lv))

	newRecord := s.Bests.CompleteRound(mode, total)
	newHigh := s.Profiles.UpdateHighScore(gt, lv, total)

	resp := map[string]any{
		"totalScore":   total,
		"newRecord":    newRecord,
		"newHighScore": newHigh,
	}

	if p := s.Profiles.Get(); p != nil {
		s.Leaderboard.Append(leaderboard.ScoreEntry{
			Nickname:   p.Nickname,
			Score:      total,
			Level:      lv,
			GameType:   gt,
			AchievedAt: time.Now(),
		})
		s.Profiles.UpdateLastPlayed()

		if badge := s.Profiles.IncrementGameProgress(gt, lv); badge != nil {
			s.publishBadge(badge)
			resp["badge"] = badge
		}
		resp["rank"] = s.Leaderboard.RankOf(p.Nickname, gt, lv)

		if newRecord {
			select {
			case s.Bus.Records <- events.RecordEvent{
				GameMode: mode,
				Score:    total,
				Nickname: p.Nickname,
			}:
			default:
				log.Println("[Events] Record channel full, dropping event")
			}
		}
	}

	s.Sessions.Delete(sess.ID())
	fmt.Printf("[Handle:CompleteSession] Session %s finished with %d points\n", sess.ID(), total)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSessionSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	client := &sessionhub.Client{
		ID:        uuid.New().String(),
		SessionID: sess.ID(),
		Conn:      conn,
		Send:      make(chan []byte, 16),
	}
	s.Hub.Register(client)
	defer s.Hub.Unregister(client.ID)
	log.Printf("[WS] Session %s now has %d watchers\n", sess.ID(), s.Hub.Watchers(sess.ID()))

	// Send the current state immediately so a late joiner is not blank
	// until the next poll tick.
	s.Hub.Broadcast(sess.ID(), sessionhub.FromSnapshot(sess.Snapshot()))

	client.WritePump(r.Context())
	conn.Close(websocket.StatusNormalClosure, "")
}
