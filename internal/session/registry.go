package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/engine"
	"github.com/movieakinator/engine/internal/errs"
)

// Registry owns sessions by opaque id with inactivity-based eviction,
// mirroring the teacher's map-backed handler registry shape.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewRegistry builds an empty Registry with the given inactivity TTL.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{sessions: make(map[string]*Session), ttl: ttl}
}

// Create starts a new game and registers it under a fresh uuid.
func (r *Registry) Create(films []*catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap, cfg engine.Config) *Session {
	id := uuid.NewString()
	eng := engine.New(films, lookup, genres, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	s := newSession(id, eng)

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

// Get looks up a session by id, returning SessionNotFound or
// SessionExpired per spec §7.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.NewSessionNotFoundError(id)
	}

	s.mu.Lock()
	expired := r.ttl > 0 && time.Since(s.lastAccess) > r.ttl
	s.mu.Unlock()
	if expired {
		r.Evict(id)
		return nil, errs.NewSessionExpiredError(id)
	}
	return s, nil
}

// Evict drops a session outright (explicit close, or TTL sweep).
func (r *Registry) Evict(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Sweep removes every session inactive for longer than the registry's
// TTL. Intended to run on a periodic timer owned by the caller.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		stale := now.Sub(s.lastAccess) > r.ttl
		s.mu.Unlock()
		if stale {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
