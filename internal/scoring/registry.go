package scoring

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const staleTTL = 1 * time.Hour

// Registry tracks live scoring sessions by id. Abandoned sessions are
// swept after a TTL so browsers that navigate away don't leak pollers.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	maxTime  time.Duration
}

func NewRegistry(maxTime time.Duration) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		maxTime:  maxTime,
	}
	go r.sweepStale()
	return r
}

// Create registers a new session for a game mode.
func (r *Registry) Create(gameMode string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := NewSession(uuid.New().String(), gameMode, r.maxTime)
	r.sessions[s.ID()] = s
	return s
}

func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	s := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if s != nil {
		s.Stop()
	}
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for id, s := range r.sessions {
			if now.Sub(s.createdAt) > staleTTL {
				s.Stop()
				delete(r.sessions, id)
			}
		}
		r.mu.Unlock()
	}
}
