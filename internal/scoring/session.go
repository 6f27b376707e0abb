package scoring

import (
	"sync"
	"time"
)

// PointsPerAnswer is the flat award for a correct answer, regardless of
// remaining time.
const PointsPerAnswer = 100

const pollInterval = 100 * time.Millisecond

type State string

const (
	StateIdle    = State("idle")
	StateRunning = State("running")
	StateScored  = State("scored")
	StateExpired = State("expired")
)

// Snapshot is a read-only view of a session, safe to hand to clients.
type Snapshot struct {
	ID           string  `json:"id"`
	GameMode     string  `json:"gameMode"`
	State        State   `json:"state"`
	CurrentScore int     `json:"currentScore"`
	TotalScore   int     `json:"totalScore"`
	TimeLeft     float64 `json:"timeLeft"` // seconds
	IsActive     bool    `json:"isActive"`
}

// Session is the per-round countdown and scoring state machine. One
// round runs Idle -> Running -> Scored or Expired; the caller re-enters
// Idle via ResetRound to play the next question. TimeLeft is recomputed
// from the wall clock by a short-interval poller rather than decremented
// in steps.
type Session struct {
	mu        sync.Mutex
	id        string
	gameMode  string
	maxTime   time.Duration
	state     State
	startedAt time.Time
	current   int
	total     int
	timeLeft  time.Duration
	stop      chan struct{}
	onTick    func(Snapshot)
	createdAt time.Time
}

func NewSession(id, gameMode string, maxTime time.Duration) *Session {
	return &Session{
		id:        id,
		gameMode:  gameMode,
		maxTime:   maxTime,
		state:     StateIdle,
		timeLeft:  maxTime,
		createdAt: time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) GameMode() string { return s.gameMode }

// OnTick registers a callback invoked with a snapshot on every poller
// tick and on expiry. Set it before the first Start.
func (s *Session) OnTick(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// Start begins a round: captures the start instant, resets the
// countdown and launches the poller. Restarting a running session
// restarts the countdown.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopPollerLocked()
	s.state = StateRunning
	s.startedAt = time.Now()
	s.timeLeft = s.maxTime
	s.current = 0
	s.stop = make(chan struct{})
	go s.poll(s.stop)
}

func (s *Session) poll(stop chan struct{}) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.state != StateRunning {
				s.mu.Unlock()
				return
			}
			remaining := s.maxTime - time.Since(s.startedAt)
			if remaining <= 0 {
				// Timed out: the round ends unscored.
				s.timeLeft = 0
				s.current = 0
				s.state = StateExpired
				s.stopPollerLocked()
				snap := s.snapshotLocked()
				fn := s.onTick
				s.mu.Unlock()
				if fn != nil {
					fn(snap)
				}
				return
			}
			s.timeLeft = remaining
			snap := s.snapshotLocked()
			fn := s.onTick
			s.mu.Unlock()
			if fn != nil {
				fn(snap)
			}
		}
	}
}

func (s *Session) stopPollerLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// HandleCorrectAnswer awards the flat score, adds it to the round
// total and ends the question. Returns the awarded points.
func (s *Session) HandleCorrectAnswer() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = PointsPerAnswer
	s.total += PointsPerAnswer
	s.state = StateScored
	s.stopPollerLocked()
	return PointsPerAnswer
}

// HandleWrongAnswer ends the question without reward.
func (s *Session) HandleWrongAnswer() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = 0
	s.state = StateScored
	s.stopPollerLocked()
	return 0
}

// ResetRound returns to Idle for the next question, keeping the
// running total.
func (s *Session) ResetRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopPollerLocked()
	s.state = StateIdle
	s.current = 0
	s.timeLeft = s.maxTime
	s.startedAt = time.Time{}
}

// ResetGame zeroes the total as well as the per-round state.
func (s *Session) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopPollerLocked()
	s.state = StateIdle
	s.current = 0
	s.total = 0
	s.timeLeft = s.maxTime
	s.startedAt = time.Time{}
}

// Stop halts the poller without changing scores. Used on teardown.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPollerLocked()
	if s.state == StateRunning {
		s.state = StateIdle
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:           s.id,
		GameMode:     s.gameMode,
		State:        s.state,
		CurrentScore: s.current,
		TotalScore:   s.total,
		TimeLeft:     s.timeLeft.Seconds(),
		IsActive:     s.state == StateRunning,
	}
}

// TotalScore returns the running sum across rounds in this session.
func (s *Session) TotalScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}
