package engine

import "github.com/movieakinator/engine/internal/logging"

// DefaultTopStreakQuestions is the streak length that alone triggers a
// guess (spec §4.6, rule 3).
const DefaultTopStreakQuestions = 10

// DefaultGuessCooldown is how many turns the convergence rule is
// suppressed after a rejected guess (spec §4.6).
const DefaultGuessCooldown = 2

// DefaultMaxConsecutiveGuesses is the escape-hatch threshold (spec
// §4.6).
const DefaultMaxConsecutiveGuesses = 4

// Convergence decides when to stop asking and propose a guess, and
// manages the cooldown/escape-hatch cycle around a rejected guess
// (spec §4.6).
type Convergence struct {
	TopStreakQuestions    int
	GuessCooldown         int
	MaxConsecutiveGuesses int
	logger                *logging.Logger
}

// NewConvergence builds a Convergence controller, substituting spec
// defaults for non-positive configuration values.
func NewConvergence(topStreak, cooldown, maxConsecutive int) *Convergence {
	if topStreak <= 0 {
		topStreak = DefaultTopStreakQuestions
	}
	if cooldown <= 0 {
		cooldown = DefaultGuessCooldown
	}
	if maxConsecutive <= 0 {
		maxConsecutive = DefaultMaxConsecutiveGuesses
	}
	return &Convergence{
		TopStreakQuestions:    topStreak,
		GuessCooldown:         cooldown,
		MaxConsecutiveGuesses: maxConsecutive,
		logger:                logging.New(""),
	}
}

// ShouldGuess reports whether the core should propose a guess this
// turn, per the four rules of spec §4.6. The cooldown suppresses a
// positive result even when a rule matches.
func (c *Convergence) ShouldGuess(s *State) bool {
	if s.GuessCooldown > 0 {
		return false
	}
	if len(s.Candidates) == 1 {
		return true
	}
	if len(s.Candidates) == 0 {
		return false
	}

	score1, ok1 := s.scoreAt(0)
	score2, ok2 := s.scoreAt(1)

	if s.QuestionCount >= 5 && ok1 && ok2 {
		if score2 > 0 && score1 >= 2*score2 {
			return true
		}
		if score2 <= 0 && score1 >= 10 {
			return true
		}
	}

	if s.TopStreak.Length >= c.TopStreakQuestions {
		return true
	}

	if len(s.Candidates) <= 5 && s.QuestionCount >= 7 && ok1 && score1 >= 15 {
		return true
	}

	return false
}

// EscapeHatchActive reports whether the escape hatch (spec §4.6) has
// tripped: the next question must come from the targeted set rather
// than a free selector pick.
func (c *Convergence) EscapeHatchActive(s *State) bool {
	return s.ConsecutiveGuesses >= c.MaxConsecutiveGuesses
}

// Propose marks the top candidate as the proposed film for
// confirmation (spec §4.6/§4.7).
func (c *Convergence) Propose(s *State) int {
	if len(s.Candidates) == 0 {
		return 0
	}
	s.ProposedFilmID = s.Candidates[0].ID
	c.logger.WithField("film_id", s.ProposedFilmID).WithField("question_count", s.QuestionCount).
		Info("proposing a guess")
	return s.ProposedFilmID
}

// Reject handles a rejected guess: eliminate the proposed film, start
// the cooldown, reset the streak, and count the consecutive rejection
// (spec §4.6).
func (c *Convergence) Reject(s *State) {
	if s.ProposedFilmID != 0 {
		s.removeCandidates(map[int]struct{}{s.ProposedFilmID: {}})
	}
	s.ProposedFilmID = 0
	s.GuessCooldown = c.GuessCooldown
	s.TopStreak = Streak{}
	s.ConsecutiveGuesses++
	s.resort()
	c.logger.WithField("cooldown", s.GuessCooldown).WithField("consecutive_guesses", s.ConsecutiveGuesses).
		Info("guess rejected, starting cooldown")
}

// Confirm handles an accepted guess: clears the proposal. The caller
// transitions to Terminal(success).
func (c *Convergence) Confirm(s *State) {
	s.ProposedFilmID = 0
}

// TickCooldown decrements the cooldown once per Asking turn, floored
// at zero.
func (s *State) TickCooldown() {
	if s.GuessCooldown > 0 {
		s.GuessCooldown--
	}
}

// ResetConsecutiveGuesses clears the escape-hatch counter after one
// targeted question has been consumed (spec §4.6).
func (s *State) ResetConsecutiveGuesses() {
	s.ConsecutiveGuesses = 0
}
