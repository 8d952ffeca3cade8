// Package predicate is the predicate library of spec §4.2: a catalogue
// of named, total functions from a film to {True, False, Unknown}.
// Unknown means "the underlying attribute is missing", never "no" —
// that distinction is the contract the Answer Applicator relies on to
// tell "doesn't match" apart from "we can't tell" (spec §4.2).
package predicate

import (
	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/tri"
)

// Category tags a predicate for scoring multipliers and diversity
// control (spec §4.2, §4.4). The tag travels with the predicate rather
// than being inferred from its shape.
type Category string

const (
	CategoryLanguage   Category = "language"
	CategoryValidation Category = "validation"
	CategoryDirector   Category = "director"
	CategoryActor      Category = "actor"
	CategoryGenre      Category = "genre"
	CategoryCharacter  Category = "character"
	CategoryDecade     Category = "decade"
	CategoryYear       Category = "year"
	CategoryRuntime    Category = "runtime"
	CategoryCountry    Category = "country"
	CategoryKeyword    Category = "keyword"
	CategoryFinance    Category = "finance"
	CategoryPopularity Category = "popularity"
	CategoryFormat     Category = "format"
	CategoryMeta       Category = "meta"
	CategoryTitle      Category = "title"
)

// hardCategories is is_hard(q) from spec §4.5. A Yes or No answer
// drops contradicting candidates whatever the category; being hard
// makes Unknown-valued films pay a larger penalty on Yes/No and makes
// contradicting films take a strike on ProbablyYes/ProbablyNo.
// "saga" and "genre-binary" are franchise- and
// genre-shaped hard variants distinguished by tag at construction time
// (CategorySaga, CategoryGenreBinary) rather than by a separate table.
const (
	CategorySaga        Category = "saga"
	CategoryGenreBinary Category = "genre_binary"
	CategoryBudget      Category = "budget"
)

var hardCategories = map[Category]bool{
	CategoryLanguage:    true,
	CategoryValidation:  true,
	CategoryDirector:    true,
	CategoryCharacter:   true,
	CategoryDecade:      true,
	CategoryYear:        true,
	CategoryRuntime:     true,
	CategoryCountry:     true,
	CategorySaga:        true,
	CategoryBudget:      true,
	CategoryGenreBinary: true,
}

// IsHard reports whether a category is scored as hard by the answer
// applicator (see hardCategories above, spec §4.5).
func IsHard(c Category) bool {
	return hardCategories[c]
}

// Func evaluates a predicate against a film. lookup provides the
// extended per-film record (cast, crew, keywords, countries); genres
// resolves genre ids to names. Both may be used or ignored depending
// on what the predicate needs. Predicates never raise: missing
// attributes must produce tri.Unknown (spec §7, §9 — predicates
// receive the catalogue and state at evaluation time, they do not own
// either).
type Func func(f *catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap) tri.Tri

// Predicate pairs an evaluation function with its category tag.
type Predicate struct {
	Category Category
	Evaluate Func
}

// New builds a Predicate from a category and evaluation function.
func New(category Category, fn Func) Predicate {
	return Predicate{Category: category, Evaluate: fn}
}
