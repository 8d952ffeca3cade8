// Package session is the external session handler that owns engines
// by opaque id, serializes turns per session, and implements undo as
// a stack of deep-copied engine snapshots (spec §6).
package session

import (
	"sync"
	"time"

	"github.com/movieakinator/engine/internal/engine"
	"github.com/movieakinator/engine/internal/tri"
)

const maxUndoDepth = 20

// Session wraps one game's Engine with a turn-serializing mutex and an
// undo stack of state snapshots. The core (internal/engine) owns no
// session concept; this is the external collaborator spec §6 and §3's
// Lifecycle section name without specifying.
type Session struct {
	ID string

	mu         sync.Mutex
	eng        *engine.Engine
	undoStack  []undoEntry
	lastAccess time.Time
}

type undoEntry struct {
	state *engine.State
	phase engine.Phase
}

func newSession(id string, eng *engine.Engine) *Session {
	return &Session{ID: id, eng: eng, lastAccess: time.Now()}
}

func (s *Session) touch() { s.lastAccess = time.Now() }

func (s *Session) snapshotForUndo() {
	s.undoStack = append(s.undoStack, undoEntry{state: s.eng.State().Clone(), phase: s.eng.Phase()})
	if len(s.undoStack) > maxUndoDepth {
		s.undoStack = s.undoStack[len(s.undoStack)-maxUndoDepth:]
	}
}

// Start begins the game and pushes the initial snapshot.
func (s *Session) Start() (engine.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.snapshotForUndo()
	return s.eng.Start()
}

// Answer applies an answer for the current turn.
func (s *Session) Answer(a tri.Answer) (engine.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.snapshotForUndo()
	return s.eng.Answer(a)
}

// Confirm resolves a proposed guess.
func (s *Session) Confirm(correct bool) (engine.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.snapshotForUndo()
	return s.eng.Confirm(correct)
}

// Undo pops the most recent snapshot and restores it, per spec §6's
// optional undo operation. Returns false if there is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undoStack) == 0 {
		return false
	}
	entry := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.eng.Restore(entry.state, entry.phase)
	s.touch()
	return true
}

// Snapshot exposes the read-only diagnostic view (spec SUPPLEMENTED
// FEATURES, §debug).
func (s *Session) Snapshot(n int) []engine.CandidateScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Snapshot(n)
}

// Phase reports the session's current engine phase.
func (s *Session) Phase() engine.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Phase()
}

