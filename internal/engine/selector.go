package engine

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/logging"
	"github.com/movieakinator/engine/internal/predicate"
	"github.com/movieakinator/engine/internal/question"
	"github.com/movieakinator/engine/internal/tri"
)

// maxScoredPool bounds the cost of per-question scoring: larger pools
// are sampled to their first maxScoredPool candidates (spec §4.4).
const maxScoredPool = 500

// Selector chooses the next question by entropy, category multiplier,
// and diversity penalty (spec §4.4).
type Selector struct {
	rng    *rand.Rand
	logger *logging.Logger
}

// NewSelector builds a Selector. rng may be nil, in which case a
// source with the fixed seed 1 is used; tests pass a seeded source for
// deterministic first-turn tie-breaking.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Selector{rng: rng, logger: logging.New("")}
}

type scoredQuestion struct {
	q     question.Question
	score float64
}

// Select picks the next question from candidates offered against pool,
// or returns ok=false when the selector is exhausted (no positive
// score survives).
func (sel *Selector) Select(pool []*catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap, offered []question.Question, asked map[string]struct{}, recentTypes []string, firstTurn bool) (question.Question, bool) {
	sample := pool
	if len(sample) > maxScoredPool {
		sample = sample[:maxScoredPool]
	}

	var scored []scoredQuestion
	rejected := 0
	for _, q := range offered {
		if !eligible(q, asked) {
			continue
		}
		s := sel.score(q, sample, lookup, genres, recentTypes, len(pool))
		if s > 0 {
			scored = append(scored, scoredQuestion{q: q, score: s})
		} else {
			rejected++
		}
	}
	if len(scored) == 0 {
		sel.logger.WithField("candidates", len(pool)).WithField("rejected", rejected).
			Debug("selector exhausted: no question scored above zero")
		return question.Question{}, false
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if firstTurn {
		top := scored
		if len(top) > 3 {
			top = top[:3]
		}
		return top[sel.rng.Intn(len(top))].q, true
	}
	return scored[0].q, true
}

// eligible applies the filter of spec §4.4: not yet asked, requires
// satisfied, excludes clear (including the declared contradiction
// pairs), and at most one title joker per game.
func eligible(q question.Question, asked map[string]struct{}) bool {
	if _, done := asked[q.Key]; done {
		return false
	}
	for _, req := range q.Requires {
		if _, ok := asked[req]; !ok {
			return false
		}
	}
	excludes := append(append([]string(nil), q.Excludes...), question.ContradictionExcludes(q.Key)...)
	for _, ex := range excludes {
		if _, ok := asked[ex]; ok {
			return false
		}
	}
	if q.Category == predicate.CategoryTitle {
		for k := range asked {
			if strings.HasPrefix(k, "title_bucket_") || strings.HasPrefix(k, "binletter_") {
				return false
			}
		}
	}
	return true
}

// score computes a single question's selection score (spec §4.4).
func (sel *Selector) score(q question.Question, sample []*catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap, recentTypes []string, poolSize int) float64 {
	var yes, no, unknown int
	for _, f := range sample {
		switch q.Evaluate.Evaluate(f, lookup, genres) {
		case tri.True:
			yes++
		case tri.False:
			no++
		default:
			unknown++
		}
	}

	if (yes == 0 && unknown == 0) || (no == 0 && unknown == 0) {
		return -1
	}

	n := yes + no
	if n == 0 {
		return -1
	}

	h := entropyTerm(float64(yes)/float64(n)) + entropyTerm(float64(no)/float64(n))
	score := h - 0.5*float64(unknown)/float64(len(sample))

	score *= categoryMultiplier(q, poolSize, yes, no, unknown)
	score *= diversityMultiplier(q.Category, recentTypes)

	return score
}

// entropyTerm is h(p) = -p*log2(p), with h(0) defined as 0.
func entropyTerm(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -p * math.Log2(p)
}

// categoryMultiplier implements the hierarchy of spec §4.4.
func categoryMultiplier(q question.Question, poolSize, yes, no, unknown int) float64 {
	switch q.Category {
	case predicate.CategoryLanguage:
		return 120
	case predicate.CategoryValidation:
		switch {
		case poolSize <= 20:
			return 80
		case poolSize <= 50:
			return 60
		default:
			return 40
		}
	case predicate.CategoryDirector:
		return 2
	case predicate.CategorySaga:
		return 1.8
	case predicate.CategoryCharacter:
		return 1.5
	case predicate.CategoryActor:
		if yes > 0 && no > 0 {
			return 1.4
		}
		return 1
	case predicate.CategoryKeyword:
		if strings.HasPrefix(q.Key, "dynkw_") && poolSize <= 30 {
			return 1.3
		}
		return 1
	case predicate.CategoryCountry:
		return 1.25
	case predicate.CategoryTitle:
		if poolSize <= 10 {
			return 1.2
		}
		return 1
	default:
		return 1
	}
}

// diversityMultiplier penalises repeating or recently-overused
// category tags, exempting language and validation (spec §4.4).
func diversityMultiplier(category predicate.Category, recentTypes []string) float64 {
	if category == predicate.CategoryLanguage || category == predicate.CategoryValidation {
		return 1
	}
	n := len(recentTypes)
	if n >= 2 && recentTypes[n-1] == string(category) && recentTypes[n-2] == string(category) {
		return 0.1
	}

	last5 := recentTypes
	if n > 5 {
		last5 = recentTypes[n-5:]
	}
	distinct := make(map[string]struct{})
	count := 0
	for _, t := range last5 {
		distinct[t] = struct{}{}
		if t == string(category) {
			count++
		}
	}
	if len(distinct) < 3 && count >= 2 {
		return 0.1
	}
	return 1
}
