package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"guitarmaster/internal/broadcast"
	"guitarmaster/internal/config"
	"guitarmaster/internal/db"
	"guitarmaster/internal/events"
	"guitarmaster/internal/leaderboard"
	"guitarmaster/internal/profile"
	"guitarmaster/internal/scoring"
	"guitarmaster/internal/sessionhub"
)

func Run() error {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Println("[DB] Database opened and migrations applied")

	profiles := profile.NewStore(database)
	if err := profiles.Load(); err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	board := leaderboard.NewStore(database)
	if err := board.Load(); err != nil {
		return fmt.Errorf("loading leaderboard: %w", err)
	}

	bus := events.NewBus()
	srv := &Server{
		Profiles:    profiles,
		Leaderboard: board,
		Bests:       scoring.NewBests(database),
		Sessions:    scoring.NewRegistry(time.Duration(cfg.RoundTime) * time.Second),
		Hub:         sessionhub.NewHub(),
		Bus:         bus,
		Broadcaster: broadcast.NewBroadcaster(bus),
		DB:          database,
	}

	addr := "0.0.0.0:" + cfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", cfg.Port)
	return http.ListenAndServe(addr, srv.routes())
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/profile", s.handleCreateProfile)
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("DELETE /api/profile", s.handleDeleteProfile)
	mux.HandleFunc("GET /api/profile/export", s.handleExportProfile)
	mux.HandleFunc("GET /api/profile/summary", s.handleProfileSummary)
	mux.HandleFunc("GET /api/profile/progress", s.handleBadgeProgress)
	mux.HandleFunc("GET /api/badges", s.handleListBadges)
	mux.HandleFunc("POST /api/badges/claim", s.handleClaimBadge)
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /api/chords", s.handleChords)
	mux.HandleFunc("GET /api/chords/{id}", s.handleChordByID)
	mux.HandleFunc("GET /api/scales", s.handleScales)
	mux.HandleFunc("GET /api/modes", s.handleModes)
	mux.HandleFunc("POST /api/session", s.handleCreateSession)
	mux.HandleFunc("POST /api/session/{id}/deal", s.handleDealRound)
	mux.HandleFunc("POST /api/session/{id}/start", s.handleStartSession)
	mux.HandleFunc("POST /api/session/{id}/answer", s.handleAnswer)
	mux.HandleFunc("POST /api/session/{id}/reset", s.handleResetSession)
	mux.HandleFunc("POST /api/session/{id}/complete", s.handleCompleteSession)
	mux.HandleFunc("GET /ws/session/{id}", s.handleSessionSocket)
	mux.HandleFunc("GET /api/events", s.handleEvents)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}
