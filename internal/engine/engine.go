package engine

import (
	"fmt"
	"math/rand"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/errs"
	"github.com/movieakinator/engine/internal/predicate"
	"github.com/movieakinator/engine/internal/question"
	"github.com/movieakinator/engine/internal/tri"
)

// Phase is the engine's state-machine position (spec §4.7).
type Phase int

const (
	PhaseAsking Phase = iota
	PhaseGuessing
	PhaseTerminalSuccess
	PhaseTerminalFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseGuessing:
		return "guessing"
	case PhaseTerminalSuccess:
		return "terminal_success"
	case PhaseTerminalFailure:
		return "terminal_failure"
	default:
		return "unknown"
	}
}

// Step is what one call into the engine returns to its caller: either
// the next question to ask, or a guess to confirm (spec §6).
type Step struct {
	Action         string // "question", "guess", or "terminal"
	Text           string
	QuestionNumber int
	Phase          Phase
	TotalFilms     int
}

// Config bundles the tunables enumerated in spec §6.
type Config struct {
	MaxStrikes            int
	TopStreakQuestions    int
	GuessCooldown         int
	MaxConsecutiveGuesses int
}

// Engine drives one game end to end: the candidate state, the
// question catalogue, the selector, the applicator, and the
// convergence controller, as a single turn-driven state machine
// (spec §4.7, §5).
type Engine struct {
	state   *State
	phase   Phase
	lookup  catalogue.DetailsLookup
	genres  *catalogue.GenreMap
	catalog *question.Catalogue

	selector    *Selector
	applicator  *Applicator
	convergence *Convergence

	lastQuestion *question.Question
	totalFilms   int
}

// New builds an Engine over the full film pool loaded from the
// catalogue store.
func New(films []*catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap, cfg Config, rng *rand.Rand) *Engine {
	return &Engine{
		state:       NewState(films),
		phase:       PhaseAsking,
		lookup:      lookup,
		genres:      genres,
		catalog:     question.NewCatalogue(genres),
		selector:    NewSelector(rng),
		applicator:  NewApplicator(cfg.MaxStrikes),
		convergence: NewConvergence(cfg.TopStreakQuestions, cfg.GuessCooldown, cfg.MaxConsecutiveGuesses),
		totalFilms:  len(films),
	}
}

// Phase reports the engine's current state-machine position.
func (e *Engine) Phase() Phase { return e.phase }

// State exposes the live game state for diagnostics (Snapshot) and
// for the session layer's undo stack. Callers must not mutate it.
func (e *Engine) State() *State { return e.state }

// Restore replaces the live state, used by the session layer's undo.
func (e *Engine) Restore(s *State, phase Phase) {
	e.state = s
	e.phase = phase
}

// Start begins the game: it checks the boundary cases of spec §4.7
// (a single-film or empty catalogue resolves immediately) and
// otherwise picks the first question.
func (e *Engine) Start() (Step, error) {
	if len(e.state.Candidates) == 0 {
		e.phase = PhaseTerminalFailure
		return Step{Action: "terminal", Phase: e.phase, TotalFilms: e.totalFilms}, nil
	}
	if len(e.state.Candidates) == 1 {
		e.phase = PhaseTerminalSuccess
		return Step{Action: "terminal", Phase: e.phase, TotalFilms: e.totalFilms}, nil
	}
	return e.nextTurn(true)
}

// Answer applies the player's answer to the last-asked question, then
// advances the turn (spec §4.5, §4.7).
func (e *Engine) Answer(a tri.Answer) (Step, error) {
	if e.phase != PhaseAsking {
		return Step{}, fmt.Errorf("answer called outside the Asking phase (currently %s)", e.phase)
	}
	if e.lastQuestion == nil {
		return Step{}, fmt.Errorf("answer called with no pending question")
	}

	e.applicator.Apply(e.state, *e.lastQuestion, a, e.lookup, e.genres)
	e.lastQuestion = nil
	e.state.TickCooldown()

	if len(e.state.Candidates) == 0 {
		e.phase = PhaseTerminalFailure
		return Step{Action: "terminal", Phase: e.phase, QuestionNumber: e.state.QuestionCount, TotalFilms: e.totalFilms}, nil
	}
	if len(e.state.Candidates) == 1 {
		e.phase = PhaseTerminalSuccess
		return Step{Action: "terminal", Phase: e.phase, QuestionNumber: e.state.QuestionCount, TotalFilms: e.totalFilms}, nil
	}

	return e.nextTurn(false)
}

// Confirm resolves a proposed guess (spec §4.6, §4.7).
func (e *Engine) Confirm(correct bool) (Step, error) {
	if e.phase != PhaseGuessing {
		return Step{}, fmt.Errorf("confirm called outside the Guessing phase (currently %s)", e.phase)
	}
	if correct {
		e.convergence.Confirm(e.state)
		e.phase = PhaseTerminalSuccess
		return Step{Action: "terminal", Phase: e.phase, QuestionNumber: e.state.QuestionCount, TotalFilms: e.totalFilms}, nil
	}

	e.convergence.Reject(e.state)
	e.phase = PhaseAsking
	if len(e.state.Candidates) == 0 {
		e.phase = PhaseTerminalFailure
		return Step{Action: "terminal", Phase: e.phase, QuestionNumber: e.state.QuestionCount, TotalFilms: e.totalFilms}, nil
	}
	if len(e.state.Candidates) == 1 {
		e.phase = PhaseTerminalSuccess
		return Step{Action: "terminal", Phase: e.phase, QuestionNumber: e.state.QuestionCount, TotalFilms: e.totalFilms}, nil
	}
	return e.nextTurn(false)
}

// nextTurn evaluates the convergence rule, then either proposes a
// guess or asks the next selected question.
func (e *Engine) nextTurn(firstTurn bool) (Step, error) {
	if e.convergence.ShouldGuess(e.state) && !e.convergence.EscapeHatchActive(e.state) {
		filmID := e.convergence.Propose(e.state)
		e.phase = PhaseGuessing
		title := ""
		for _, f := range e.state.Candidates {
			if f.ID == filmID {
				title = f.Title
				break
			}
		}
		return Step{
			Action:         "guess",
			Text:           fmt.Sprintf("Is it %q?", title),
			QuestionNumber: e.state.QuestionCount,
			Phase:          e.phase,
			TotalFilms:     e.totalFilms,
		}, nil
	}

	offered := e.catalog.Offer(e.state.Candidates, e.lookup)
	if e.convergence.EscapeHatchActive(e.state) {
		offered = targetedOnly(offered)
	}

	q, ok := e.selector.Select(e.state.Candidates, e.lookup, e.genres, offered, e.state.Asked, e.state.RecentTypes, firstTurn)
	if !ok {
		return Step{}, errs.NewNoEligibleQuestionError(len(e.state.Candidates))
	}

	if e.convergence.EscapeHatchActive(e.state) {
		e.state.ResetConsecutiveGuesses()
	}

	e.lastQuestion = &q
	e.phase = PhaseAsking
	return Step{
		Action:         "question",
		Text:           q.Prompt,
		QuestionNumber: e.state.QuestionCount + 1,
		Phase:          e.phase,
		TotalFilms:     e.totalFilms,
	}, nil
}

// CandidateScore is one row of a Snapshot diagnostic.
type CandidateScore struct {
	FilmID  int
	Title   string
	Score   float64
	Strikes int
}

// Snapshot returns the top-n candidates with their current score and
// strike count, a pure read-only diagnostic equivalent to the
// original debug view (spec SUPPLEMENTED FEATURES).
func (e *Engine) Snapshot(n int) []CandidateScore {
	if n <= 0 || n > len(e.state.Candidates) {
		n = len(e.state.Candidates)
	}
	out := make([]CandidateScore, 0, n)
	for _, f := range e.state.Candidates[:n] {
		out = append(out, CandidateScore{
			FilmID:  f.ID,
			Title:   f.Title,
			Score:   e.state.Scores[f.ID],
			Strikes: e.state.Strikes[f.ID],
		})
	}
	return out
}

// targetedOnly restricts the offered set to the categories with the
// strongest discrimination power, used by the escape hatch (spec
// §4.6: "the top by discrimination score on the current pool").
func targetedOnly(offered []question.Question) []question.Question {
	var out []question.Question
	for _, q := range offered {
		switch q.Category {
		case predicate.CategoryValidation, predicate.CategoryLanguage, predicate.CategoryDirector,
			predicate.CategorySaga, predicate.CategoryCharacter:
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return offered
	}
	return out
}
