package predicate

import (
	"strings"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/tri"
)

// Language builds a hard predicate: does the film's original language
// equal the given ISO 639-1 code.
func Language(code string) Predicate {
	code = strings.ToLower(code)
	return New(CategoryLanguage, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.OriginalLanguage == "" {
			return tri.Unknown
		}
		return tri.FromBool(strings.ToLower(f.OriginalLanguage) == code)
	})
}

// Genre builds a soft predicate: is the film tagged with genreID.
func Genre(genreID int) Predicate {
	return New(CategoryGenre, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		return tri.FromBool(f.HasGenre(genreID))
	})
}

// GenreBinary builds a hard variant of Genre, used for genre choices
// that fork the candidate pool (e.g. "animation or live-action").
func GenreBinary(genreID int) Predicate {
	return New(CategoryGenreBinary, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		return tri.FromBool(f.HasGenre(genreID))
	})
}

// Decade builds a hard predicate: was the film released in
// [startYear, startYear+10).
func Decade(startYear int) Predicate {
	return New(CategoryDecade, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Year == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Year >= startYear && f.Year < startYear+10)
	})
}

// YearAfter builds a hard predicate: was the film released after pivot
// (strictly).
func YearAfter(pivot int) Predicate {
	return New(CategoryYear, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Year == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Year > pivot)
	})
}

// YearBefore builds a hard predicate: was the film released before
// pivot (strictly).
func YearBefore(pivot int) Predicate {
	return New(CategoryYear, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Year == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Year < pivot)
	})
}

// YearExact builds a hard predicate: was the film released exactly in
// the given year.
func YearExact(year int) Predicate {
	return New(CategoryYear, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Year == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Year == year)
	})
}

// RuntimeLessThan builds a hard predicate: is the runtime strictly
// under minutes.
func RuntimeLessThan(minutes int) Predicate {
	return New(CategoryRuntime, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Runtime == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Runtime < minutes)
	})
}

// RuntimeAtLeast builds a hard predicate: is the runtime minutes or
// longer.
func RuntimeAtLeast(minutes int) Predicate {
	return New(CategoryRuntime, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Runtime == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Runtime >= minutes)
	})
}

// Country builds a hard predicate: does the film's production country
// set intersect codes.
func Country(codes []string) Predicate {
	return New(CategoryCountry, func(f *catalogue.Film, lookup catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		details := lookup.Details(f.ID)
		if details == nil || len(details.Countries) == 0 {
			return tri.Unknown
		}
		for _, code := range codes {
			if details.HasCountry(strings.ToUpper(code)) || details.HasCountry(strings.ToLower(code)) {
				return tri.True
			}
		}
		return tri.False
	})
}

// Director builds a hard predicate: does any crew member with job
// "Director" match name (case-insensitive substring).
func Director(name string) Predicate {
	return New(CategoryDirector, func(f *catalogue.Film, lookup catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		details := lookup.Details(f.ID)
		if details == nil || len(details.Crew) == 0 {
			return tri.Unknown
		}
		found := false
		for _, c := range details.Crew {
			if c.Job != "Director" || c.Name == "" {
				continue
			}
			found = true
			if ContainsFold(c.Name, name) {
				return tri.True
			}
		}
		if !found {
			return tri.Unknown
		}
		return tri.False
	})
}

// Actor builds a soft predicate: does the cast list contain a member
// matching name (case-insensitive substring).
func Actor(name string) Predicate {
	return New(CategoryActor, func(f *catalogue.Film, lookup catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		details := lookup.Details(f.ID)
		if details == nil || len(details.Cast) == 0 {
			return tri.Unknown
		}
		for _, c := range details.Cast {
			if ContainsFold(c.Name, name) {
				return tri.True
			}
		}
		return tri.False
	})
}

// Character builds a hard predicate: does any cast member's character
// name match (case-insensitive substring).
func Character(name string) Predicate {
	return New(CategoryCharacter, func(f *catalogue.Film, lookup catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		details := lookup.Details(f.ID)
		if details == nil || len(details.Cast) == 0 {
			return tri.Unknown
		}
		for _, c := range details.Cast {
			if c.Character == "" {
				continue
			}
			if ContainsFold(c.Character, name) {
				return tri.True
			}
		}
		return tri.False
	})
}

// Keyword builds a soft predicate: does the film carry a keyword whose
// name contains substr (case-insensitive).
func Keyword(substr string) Predicate {
	return New(CategoryKeyword, func(f *catalogue.Film, lookup catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		details := lookup.Details(f.ID)
		if details == nil || len(details.Keywords) == 0 {
			return tri.Unknown
		}
		for kw := range details.Keywords {
			if ContainsFold(kw, substr) {
				return tri.True
			}
		}
		return tri.False
	})
}

// Franchise builds a hard predicate: does the film's collection name
// match substr, OR does its title match one of the special-case
// aliases (for sagas whose TMDB collection grouping is inconsistent,
// e.g. "Harry Potter" spanning two collection ids in practice).
func Franchise(substr string, titleAliases ...string) Predicate {
	return New(CategorySaga, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.CollectionName != "" && ContainsFold(f.CollectionName, substr) {
			return tri.True
		}
		for _, alias := range titleAliases {
			if ContainsFold(f.Title, alias) {
				return tri.True
			}
		}
		if f.CollectionName == "" && len(titleAliases) == 0 {
			return tri.Unknown
		}
		return tri.False
	})
}

// PopularityAtLeast builds a soft predicate over the catalogue's
// popularity score.
func PopularityAtLeast(threshold float64) Predicate {
	return New(CategoryPopularity, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Popularity == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Popularity >= threshold)
	})
}

// VoteAverageAtLeast builds a soft predicate over audience rating.
func VoteAverageAtLeast(threshold float64) Predicate {
	return New(CategoryPopularity, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.VoteCount == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.VoteAverage >= threshold)
	})
}

// BudgetAtLeast builds a hard predicate: is the reported production
// budget at or above threshold (in dollars). Zero budget means
// unrecorded, not free.
func BudgetAtLeast(threshold int64) Predicate {
	return New(CategoryBudget, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Budget == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Budget >= threshold)
	})
}

// RevenueAtLeast builds a soft predicate over box-office revenue.
func RevenueAtLeast(threshold int64) Predicate {
	return New(CategoryFinance, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Revenue == 0 {
			return tri.Unknown
		}
		return tri.FromBool(f.Revenue >= threshold)
	})
}

// IsPartOfCollection builds a soft predicate: does the film belong to
// any named collection at all (as opposed to a specific one).
func IsPartOfCollection() Predicate {
	return New(CategoryMeta, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		return tri.FromBool(f.CollectionID != 0)
	})
}

// IsAnimation builds a soft format predicate keyed off the
// "Animation" genre, since the catalogue carries no separate format
// column.
func IsAnimation(animationGenreID int) Predicate {
	return New(CategoryFormat, func(f *catalogue.Film, _ catalogue.DetailsLookup, genres *catalogue.GenreMap) tri.Tri {
		if genres == nil {
			return tri.Unknown
		}
		return tri.FromBool(f.HasGenre(animationGenreID))
	})
}

// BasedOnKeyword builds a soft meta predicate: does the film carry a
// keyword indicating adaptation from another medium, e.g.
// "based on novel" or "based on comic".
func BasedOnKeyword(sourceSubstr string) Predicate {
	return New(CategoryMeta, func(f *catalogue.Film, lookup catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		details := lookup.Details(f.ID)
		if details == nil || len(details.Keywords) == 0 {
			return tri.Unknown
		}
		for kw := range details.Keywords {
			if ContainsFold(kw, "based on") && ContainsFold(kw, sourceSubstr) {
				return tri.True
			}
		}
		return tri.False
	})
}

// TitleInBucket builds a soft predicate over the normalized
// first-letter bucket of the title (spec §4.2's title jokers).
func TitleInBucket(bucket string) Predicate {
	return New(CategoryTitle, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Title == "" {
			return tri.Unknown
		}
		return tri.FromBool(TitleBucket(NormalizeTitle(f.Title)) == bucket)
	})
}

// TitleStartsWith builds a soft predicate over whether the normalized
// title begins with the given (single-character) prefix.
func TitleStartsWith(prefix string) Predicate {
	prefix = NormalizeTitle(prefix)
	return New(CategoryTitle, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Title == "" {
			return tri.Unknown
		}
		return tri.FromBool(strings.HasPrefix(NormalizeTitle(f.Title), prefix))
	})
}

// TitleWordCount builds a soft predicate: does the title split into
// exactly n whitespace-separated words. Counted on the raw title, not
// the normalized one, since normalization drops whitespace entirely.
func TitleWordCount(n int) Predicate {
	return New(CategoryTitle, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Title == "" {
			return tri.Unknown
		}
		return tri.FromBool(len(strings.Fields(f.Title)) == n)
	})
}

// TitleContainsWord builds a soft predicate over a single word's
// (case/accent-insensitive) presence in the title. No question builder
// currently uses it.
func TitleContainsWord(word string) Predicate {
	needle := NormalizeTitle(word)
	return New(CategoryTitle, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		if f.Title == "" {
			return tri.Unknown
		}
		return tri.FromBool(strings.Contains(NormalizeTitle(f.Title), needle))
	})
}

// Validation builds an always-applicable hard predicate that singles
// out one candidate by id ("is it <film>?"). The validation question
// builder does not use it; its questions carry the director, actor,
// year, keyword and saga predicates instead.
func Validation(filmID int) Predicate {
	return New(CategoryValidation, func(f *catalogue.Film, _ catalogue.DetailsLookup, _ *catalogue.GenreMap) tri.Tri {
		return tri.FromBool(f.ID == filmID)
	})
}
