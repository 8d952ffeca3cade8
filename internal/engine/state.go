// Package engine implements the decision engine: candidate state,
// question selection, answer application, and the convergence rule
// that decides when to guess.
package engine

import (
	"sort"

	"github.com/movieakinator/engine/internal/catalogue"
)

// maxRecentTypes bounds RecentTypes for diversity control (spec §3).
const maxRecentTypes = 10

// Streak tracks how long a film has held the #1 candidate position.
type Streak struct {
	FilmID int
	Length int
}

// State is the mutable game state: the ranked candidate pool, scores,
// strikes, the asked-question set, and convergence bookkeeping
// (spec §3).
type State struct {
	Candidates []*catalogue.Film
	Scores     map[int]float64
	Strikes    map[int]int

	Asked         map[string]struct{}
	QuestionCount int

	GuessCooldown      int
	TopStreak          Streak
	ConsecutiveGuesses int
	RecentTypes        []string

	// ProposedFilmID is the id of the film currently offered for
	// confirmation, or 0 when not in the Guessing state.
	ProposedFilmID int
}

// NewState builds the initial engine state from the full catalogue,
// per init_state(movies) (spec §3).
func NewState(films []*catalogue.Film) *State {
	s := &State{
		Candidates: append([]*catalogue.Film(nil), films...),
		Scores:     make(map[int]float64, len(films)),
		Strikes:    make(map[int]int, len(films)),
		Asked:      make(map[string]struct{}),
	}
	for _, f := range films {
		s.Scores[f.ID] = 0
		s.Strikes[f.ID] = 0
	}
	s.resort()
	return s
}

// resort re-establishes the Candidates-sorted-by-(-score,-popularity)
// invariant. Called after every mutation to Candidates or Scores
// (spec §3 invariants).
func (s *State) resort() {
	sort.SliceStable(s.Candidates, func(i, j int) bool {
		a, b := s.Candidates[i], s.Candidates[j]
		sa, sb := s.Scores[a.ID], s.Scores[b.ID]
		if sa != sb {
			return sa > sb
		}
		return a.Popularity > b.Popularity
	})
}

// scoreAt returns the score of the candidate at position i (0-based,
// 0 = top) and true, or 0 and false if the pool is smaller. Used for
// convergence rules that reference score(#1)/score(#2).
func (s *State) scoreAt(i int) (float64, bool) {
	if i < 0 || i >= len(s.Candidates) {
		return 0, false
	}
	return s.Scores[s.Candidates[i].ID], true
}

// removeCandidates drops every film whose id is in drop, purging its
// score and strike entries in the same step (spec §3 invariant).
func (s *State) removeCandidates(drop map[int]struct{}) {
	if len(drop) == 0 {
		return
	}
	kept := s.Candidates[:0:0]
	for _, f := range s.Candidates {
		if _, gone := drop[f.ID]; gone {
			delete(s.Scores, f.ID)
			delete(s.Strikes, f.ID)
			continue
		}
		kept = append(kept, f)
	}
	s.Candidates = kept
}

// markAsked records key (and any extra keys, e.g. language siblings)
// in Asked. Asked is append-only within one game (spec §3 invariant).
func (s *State) markAsked(keys ...string) {
	for _, k := range keys {
		s.Asked[k] = struct{}{}
	}
}

// pushRecentType appends a category tag to RecentTypes, trimmed to
// the last maxRecentTypes entries (spec §4.5).
func (s *State) pushRecentType(tag string) {
	s.RecentTypes = append(s.RecentTypes, tag)
	if len(s.RecentTypes) > maxRecentTypes {
		s.RecentTypes = s.RecentTypes[len(s.RecentTypes)-maxRecentTypes:]
	}
}

// updateStreak tracks how long the current #1 candidate has held that
// position (spec §4.6).
func (s *State) updateStreak() {
	if len(s.Candidates) == 0 {
		s.TopStreak = Streak{}
		return
	}
	top := s.Candidates[0].ID
	if s.TopStreak.FilmID == top {
		s.TopStreak.Length++
	} else {
		s.TopStreak = Streak{FilmID: top, Length: 1}
	}
}

// Clone deep-copies the state for the undo stack (spec §6).
func (s *State) Clone() *State {
	clone := &State{
		Candidates:         append([]*catalogue.Film(nil), s.Candidates...),
		Scores:             make(map[int]float64, len(s.Scores)),
		Strikes:            make(map[int]int, len(s.Strikes)),
		Asked:              make(map[string]struct{}, len(s.Asked)),
		QuestionCount:      s.QuestionCount,
		GuessCooldown:      s.GuessCooldown,
		TopStreak:          s.TopStreak,
		ConsecutiveGuesses: s.ConsecutiveGuesses,
		RecentTypes:        append([]string(nil), s.RecentTypes...),
		ProposedFilmID:     s.ProposedFilmID,
	}
	for id, v := range s.Scores {
		clone.Scores[id] = v
	}
	for id, v := range s.Strikes {
		clone.Strikes[id] = v
	}
	for k := range s.Asked {
		clone.Asked[k] = struct{}{}
	}
	return clone
}
