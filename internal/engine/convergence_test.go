package engine

import (
	"testing"

	"github.com/movieakinator/engine/internal/catalogue"
)

func TestShouldGuessSingleCandidate(t *testing.T) {
	s := NewState([]*catalogue.Film{newFilm(1, "A", 5)})
	c := NewConvergence(10, 2, 4)
	if !c.ShouldGuess(s) {
		t.Error("expected ShouldGuess true with a single candidate")
	}
}

func TestShouldGuessDomination(t *testing.T) {
	s := NewState([]*catalogue.Film{newFilm(1, "A", 5), newFilm(2, "B", 5), newFilm(3, "C", 5)})
	s.QuestionCount = 5
	s.Scores[1] = 20
	s.Scores[2] = 5
	s.Scores[3] = 1
	s.resort()
	c := NewConvergence(10, 2, 4)
	if !c.ShouldGuess(s) {
		t.Error("expected domination rule (score1 >= 2*score2, score2 > 0) to trigger")
	}
}

func TestShouldGuessStreak(t *testing.T) {
	s := NewState([]*catalogue.Film{newFilm(1, "A", 5), newFilm(2, "B", 5)})
	s.TopStreak = Streak{FilmID: 1, Length: 10}
	c := NewConvergence(10, 2, 4)
	if !c.ShouldGuess(s) {
		t.Error("expected streak rule to trigger at length 10")
	}
}

func TestShouldGuessSuppressedByCooldown(t *testing.T) {
	s := NewState([]*catalogue.Film{newFilm(1, "A", 5)})
	s.GuessCooldown = 2
	c := NewConvergence(10, 2, 4)
	if c.ShouldGuess(s) {
		t.Error("expected cooldown to suppress an otherwise-true rule")
	}
}

func TestRejectEliminatesProposedFilmAndStartsCooldown(t *testing.T) {
	s := NewState([]*catalogue.Film{newFilm(1, "A", 5), newFilm(2, "B", 3)})
	c := NewConvergence(10, 2, 4)
	c.Propose(s)
	proposed := s.ProposedFilmID

	c.Reject(s)

	for _, f := range s.Candidates {
		if f.ID == proposed {
			t.Fatal("expected the proposed film to be eliminated on rejection")
		}
	}
	if s.GuessCooldown != 2 {
		t.Errorf("GuessCooldown = %d, want 2", s.GuessCooldown)
	}
	if s.ConsecutiveGuesses != 1 {
		t.Errorf("ConsecutiveGuesses = %d, want 1", s.ConsecutiveGuesses)
	}
	if s.TopStreak.Length != 0 {
		t.Errorf("TopStreak.Length = %d, want 0 after rejection", s.TopStreak.Length)
	}
}

func TestEscapeHatchActive(t *testing.T) {
	s := NewState([]*catalogue.Film{newFilm(1, "A", 5)})
	c := NewConvergence(10, 2, 4)
	s.ConsecutiveGuesses = 4
	if !c.EscapeHatchActive(s) {
		t.Error("expected escape hatch active at ConsecutiveGuesses == max")
	}
}
