package engine

import (
	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/predicate"
	"github.com/movieakinator/engine/internal/question"
	"github.com/movieakinator/engine/internal/tri"
)

// DefaultMaxStrikes is the strike threshold at which a film is
// eliminated after a non-hard answer (spec §4.5).
const DefaultMaxStrikes = 3

// Applicator applies one answer to the state (spec §4.5).
type Applicator struct {
	MaxStrikes int
}

// NewApplicator builds an Applicator with the given strike threshold.
func NewApplicator(maxStrikes int) *Applicator {
	if maxStrikes <= 0 {
		maxStrikes = DefaultMaxStrikes
	}
	return &Applicator{MaxStrikes: maxStrikes}
}

type boosts struct{ yes, no float64 }

// boostsFor returns yes_boost(tag)/no_boost(tag) per the table in
// spec §4.5.
func boostsFor(category predicate.Category) boosts {
	switch category {
	case predicate.CategoryValidation:
		return boosts{8, 4}
	case predicate.CategoryDirector:
		return boosts{7, 4}
	case predicate.CategorySaga, predicate.CategoryCharacter:
		return boosts{6, 4}
	case predicate.CategoryActor:
		return boosts{5, 3}
	case predicate.CategoryLanguage, predicate.CategoryDecade, predicate.CategoryYear:
		return boosts{5, 3}
	case predicate.CategoryGenre:
		return boosts{3, 3}
	default:
		return boosts{5, 3}
	}
}

// classification of one candidate film against the chosen predicate.
type partition struct {
	yes, no, unknown []*catalogue.Film
}

func classify(q question.Question, films []*catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap) partition {
	var p partition
	for _, f := range films {
		switch q.Evaluate.Evaluate(f, lookup, genres) {
		case tri.True:
			p.yes = append(p.yes, f)
		case tri.False:
			p.no = append(p.no, f)
		default:
			p.unknown = append(p.unknown, f)
		}
	}
	return p
}

// Apply updates s in place for one (question, answer) pair, per the
// behaviour table of spec §4.5. It always re-sorts, updates the top
// streak, records recency history, and marks the question (and, for a
// Yes language answer, all sibling language keys) as asked.
func (a *Applicator) Apply(s *State, q question.Question, answer tri.Answer, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap) {
	hard := predicate.IsHard(q.Category)
	b := boostsFor(q.Category)
	part := classify(q, s.Candidates, lookup, genres)

	switch answer {
	case tri.Yes:
		drop := idSet(part.no)
		for _, f := range part.yes {
			s.Scores[f.ID] += b.yes
		}
		for _, f := range part.unknown {
			if hard {
				s.Scores[f.ID] -= 2.0
			} else {
				s.Scores[f.ID] -= 0.5
			}
		}
		s.removeCandidates(drop)

	case tri.No:
		drop := idSet(part.yes)
		for _, f := range part.no {
			s.Scores[f.ID] += b.no
		}
		for _, f := range part.unknown {
			if hard {
				s.Scores[f.ID] -= 1.0
			} else {
				s.Scores[f.ID] += 0.3
			}
		}
		s.removeCandidates(drop)

	case tri.ProbablyYes:
		for _, f := range part.yes {
			if hard {
				s.Scores[f.ID] += 2
			} else {
				s.Scores[f.ID] += 1
			}
		}
		for _, f := range part.no {
			if hard {
				s.Scores[f.ID] -= 2.5
				s.Strikes[f.ID]++
			} else {
				s.Scores[f.ID] -= 1.0
			}
		}
		a.eliminateStruck(s)

	case tri.ProbablyNo:
		for _, f := range part.no {
			if hard {
				s.Scores[f.ID] += 2
			} else {
				s.Scores[f.ID] += 1
			}
		}
		for _, f := range part.yes {
			if hard {
				s.Scores[f.ID] -= 2.5
				s.Strikes[f.ID]++
			} else {
				s.Scores[f.ID] -= 1.0
			}
		}
		a.eliminateStruck(s)

	case tri.AnswerUnknown:
		for _, f := range part.unknown {
			s.Scores[f.ID] += 0.2
		}
		a.eliminateStruck(s)
	}

	if answer == tri.Yes && q.Category == predicate.CategoryLanguage {
		s.markAsked(append([]string{q.Key}, question.LanguageSiblingKeys(q.Key)...)...)
	} else {
		s.markAsked(q.Key)
	}

	s.QuestionCount++
	s.resort()
	s.updateStreak()
	s.pushRecentType(string(q.Category))
}

// eliminateStruck drops every candidate whose strike count reached the
// configured threshold, purging its score/strikes entries (spec §4.5).
func (a *Applicator) eliminateStruck(s *State) {
	drop := make(map[int]struct{})
	for _, f := range s.Candidates {
		if s.Strikes[f.ID] >= a.MaxStrikes {
			drop[f.ID] = struct{}{}
		}
	}
	s.removeCandidates(drop)
}

func idSet(films []*catalogue.Film) map[int]struct{} {
	set := make(map[int]struct{}, len(films))
	for _, f := range films {
		set[f.ID] = struct{}{}
	}
	return set
}
