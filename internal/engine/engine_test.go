package engine

import (
	"math/rand"
	"testing"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/tri"
)

func testConfig() Config {
	return Config{MaxStrikes: 3, TopStreakQuestions: 10, GuessCooldown: 2, MaxConsecutiveGuesses: 4}
}

func TestStartWithEmptyCatalogueIsTerminalFailure(t *testing.T) {
	e := New(nil, nopLookup{}, nil, testConfig(), rand.New(rand.NewSource(1)))
	step, err := e.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if step.Phase != PhaseTerminalFailure {
		t.Errorf("Phase = %v, want TerminalFailure", step.Phase)
	}
}

func TestStartWithSingleCandidateIsTerminalSuccess(t *testing.T) {
	films := []*catalogue.Film{newFilm(1, "Only", 5)}
	e := New(films, nopLookup{}, nil, testConfig(), rand.New(rand.NewSource(1)))
	step, err := e.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if step.Phase != PhaseTerminalSuccess {
		t.Errorf("Phase = %v, want TerminalSuccess", step.Phase)
	}
}

func TestStartAsksAQuestionForAMultiFilmPool(t *testing.T) {
	genres := catalogue.NewGenreMap(map[int]string{1: "Drama", 2: "Comedy"})
	films := []*catalogue.Film{
		newFilm(1, "A", 5), newFilm(2, "B", 4), newFilm(3, "C", 3),
	}
	films[0].GenreIDs[1] = struct{}{}
	films[1].GenreIDs[2] = struct{}{}

	e := New(films, nopLookup{}, genres, testConfig(), rand.New(rand.NewSource(1)))
	step, err := e.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if step.Action != "question" {
		t.Errorf("Action = %q, want question", step.Action)
	}
	if e.Phase() != PhaseAsking {
		t.Errorf("Phase = %v, want Asking", e.Phase())
	}
}

func TestAnswerSequenceConvergesToSingleSurvivor(t *testing.T) {
	genres := catalogue.NewGenreMap(map[int]string{1: "Drama"})
	films := []*catalogue.Film{
		newFilm(1, "A", 5), newFilm(2, "B", 4), newFilm(3, "C", 3),
	}
	films[0].GenreIDs[1] = struct{}{}
	// films[1] and films[2] do not carry genre 1.

	e := New(films, nopLookup{}, genres, testConfig(), rand.New(rand.NewSource(1)))
	if _, err := e.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	step, err := e.Answer(tri.Yes)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if e.Phase() == PhaseAsking && len(e.State().Candidates) != 1 {
		// Depending on which question the selector picked, a Yes may or
		// may not immediately isolate film 1; either outcome is a valid
		// partition as long as the state stays internally consistent.
		_ = step
	}
	if len(e.State().Candidates) == 0 {
		t.Fatal("expected at least one survivor after a single Yes answer")
	}
}

func TestConfirmIncorrectStartsCooldownAndReturnsToAsking(t *testing.T) {
	// Three films, so rejecting the top one leaves two and play continues.
	films := []*catalogue.Film{newFilm(1, "A", 100), newFilm(2, "B", 1), newFilm(3, "C", 1)}
	e := New(films, nopLookup{}, nil, testConfig(), rand.New(rand.NewSource(1)))
	e.state.TopStreak = Streak{FilmID: 1, Length: 10}
	e.phase = PhaseAsking

	step, err := e.nextTurn(false)
	if err != nil {
		t.Fatalf("nextTurn() error = %v", err)
	}
	if step.Action != "guess" {
		t.Fatalf("expected a guess to be proposed on a 10-question streak, got %q", step.Action)
	}

	step, err = e.Confirm(false)
	if err != nil {
		t.Fatalf("Confirm(false) error = %v", err)
	}
	if e.Phase() != PhaseAsking && e.Phase() != PhaseTerminalSuccess {
		t.Errorf("Phase after rejected confirm = %v", e.Phase())
	}
	if e.State().GuessCooldown == 0 && e.Phase() == PhaseAsking {
		t.Error("expected guess cooldown set after a rejected confirmation")
	}
	_ = step
}

func TestConfirmCorrectEndsInTerminalSuccess(t *testing.T) {
	films := []*catalogue.Film{newFilm(1, "A", 100), newFilm(2, "B", 1)}
	e := New(films, nopLookup{}, nil, testConfig(), rand.New(rand.NewSource(1)))
	e.convergence.Propose(e.state)
	e.phase = PhaseGuessing

	step, err := e.Confirm(true)
	if err != nil {
		t.Fatalf("Confirm(true) error = %v", err)
	}
	if step.Phase != PhaseTerminalSuccess {
		t.Errorf("Phase = %v, want TerminalSuccess", step.Phase)
	}
}

func TestSnapshotReturnsTopNWithScores(t *testing.T) {
	films := []*catalogue.Film{newFilm(1, "A", 5), newFilm(2, "B", 3), newFilm(3, "C", 1)}
	e := New(films, nopLookup{}, nil, testConfig(), rand.New(rand.NewSource(1)))
	e.state.Scores[1] = 7

	snap := e.Snapshot(2)
	if len(snap) != 2 {
		t.Fatalf("len(Snapshot(2)) = %d, want 2", len(snap))
	}
	if snap[0].FilmID != 1 || snap[0].Score != 7 {
		t.Errorf("Snapshot()[0] = %+v, want film 1 with score 7", snap[0])
	}
}
