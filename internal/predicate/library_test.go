package predicate

import (
	"testing"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/tri"
)

type fakeLookup map[int]*catalogue.Details

func (f fakeLookup) Details(filmID int) *catalogue.Details {
	return f[filmID]
}

func newFilm(id int) *catalogue.Film {
	return &catalogue.Film{ID: id, GenreIDs: make(map[int]struct{})}
}

func TestLanguage(t *testing.T) {
	f := newFilm(1)
	f.OriginalLanguage = "fr"
	p := Language("fr")
	if got := p.Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("Language(fr) on fr film = %v, want True", got)
	}
	p2 := Language("en")
	if got := p2.Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("Language(en) on fr film = %v, want False", got)
	}
	blank := newFilm(2)
	if got := p.Evaluate(blank, nil, nil); got != tri.Unknown {
		t.Errorf("Language on blank-language film = %v, want Unknown", got)
	}
}

func TestGenreAndDecadeAndYear(t *testing.T) {
	f := newFilm(1)
	f.GenreIDs[5] = struct{}{}
	f.Year = 1994

	if got := Genre(5).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("Genre(5) = %v, want True", got)
	}
	if got := Genre(6).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("Genre(6) = %v, want False", got)
	}
	if got := Decade(1990).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("Decade(1990) = %v, want True", got)
	}
	if got := Decade(2000).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("Decade(2000) = %v, want False", got)
	}
	if got := YearAfter(1990).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("YearAfter(1990) = %v, want True", got)
	}
	if got := YearBefore(1990).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("YearBefore(1990) = %v, want False", got)
	}
	if got := YearExact(1994).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("YearExact(1994) = %v, want True", got)
	}

	blank := newFilm(2)
	if got := Decade(1990).Evaluate(blank, nil, nil); got != tri.Unknown {
		t.Errorf("Decade on yearless film = %v, want Unknown", got)
	}
}

func TestRuntime(t *testing.T) {
	f := newFilm(1)
	f.Runtime = 90
	if got := RuntimeLessThan(100).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("RuntimeLessThan(100) = %v, want True", got)
	}
	if got := RuntimeAtLeast(100).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("RuntimeAtLeast(100) = %v, want False", got)
	}
	blank := newFilm(2)
	if got := RuntimeAtLeast(100).Evaluate(blank, nil, nil); got != tri.Unknown {
		t.Errorf("RuntimeAtLeast on runtimeless film = %v, want Unknown", got)
	}
}

func TestCountryDirectorActorCharacterKeyword(t *testing.T) {
	f := newFilm(1)
	details := &catalogue.Details{
		FilmID:    1,
		Countries: map[string]struct{}{"FR": {}},
		Keywords:  map[string]struct{}{"paris": {}, "based on novel": {}},
		Cast: []catalogue.CastMember{
			{PersonID: 1, Name: "Audrey Tautou", Character: "Amelie Poulain"},
		},
		Crew: []catalogue.CrewMember{
			{PersonID: 2, Name: "Jean-Pierre Jeunet", Job: "Director"},
		},
	}
	lookup := fakeLookup{1: details}

	if got := Country([]string{"fr"}).Evaluate(f, lookup, nil); got != tri.True {
		t.Errorf("Country(fr) = %v, want True", got)
	}
	if got := Country([]string{"us"}).Evaluate(f, lookup, nil); got != tri.False {
		t.Errorf("Country(us) = %v, want False", got)
	}
	if got := Director("Jeunet").Evaluate(f, lookup, nil); got != tri.True {
		t.Errorf("Director(Jeunet) = %v, want True", got)
	}
	if got := Actor("Tautou").Evaluate(f, lookup, nil); got != tri.True {
		t.Errorf("Actor(Tautou) = %v, want True", got)
	}
	if got := Character("Poulain").Evaluate(f, lookup, nil); got != tri.True {
		t.Errorf("Character(Poulain) = %v, want True", got)
	}
	if got := Keyword("paris").Evaluate(f, lookup, nil); got != tri.True {
		t.Errorf("Keyword(paris) = %v, want True", got)
	}
	if got := BasedOnKeyword("novel").Evaluate(f, lookup, nil); got != tri.True {
		t.Errorf("BasedOnKeyword(novel) = %v, want True", got)
	}

	blankLookup := fakeLookup{2: &catalogue.Details{FilmID: 2}}
	blank := newFilm(2)
	if got := Director("anyone").Evaluate(blank, blankLookup, nil); got != tri.Unknown {
		t.Errorf("Director on crewless film = %v, want Unknown", got)
	}
}

func TestFranchise(t *testing.T) {
	collection := newFilm(1)
	collection.CollectionName = "Harry Potter Collection"
	if got := Franchise("Harry Potter").Evaluate(collection, nil, nil); got != tri.True {
		t.Errorf("Franchise matched by collection = %v, want True", got)
	}

	aliasOnly := newFilm(2)
	aliasOnly.Title = "Harry Potter and the Philosopher's Stone"
	if got := Franchise("Harry Potter", "Harry Potter").Evaluate(aliasOnly, nil, nil); got != tri.True {
		t.Errorf("Franchise matched by title alias = %v, want True", got)
	}

	noSignal := newFilm(3)
	if got := Franchise("Harry Potter", "Harry Potter").Evaluate(noSignal, nil, nil); got != tri.False {
		t.Errorf("Franchise with alias set and no match = %v, want False", got)
	}

	noAliases := newFilm(4)
	if got := Franchise("Harry Potter").Evaluate(noAliases, nil, nil); got != tri.Unknown {
		t.Errorf("Franchise with no collection and no aliases = %v, want Unknown", got)
	}
}

func TestFinanceAndPopularity(t *testing.T) {
	f := newFilm(1)
	f.Popularity = 50
	f.VoteAverage = 8.0
	f.VoteCount = 100
	f.Budget = 200_000_000
	f.Revenue = 1_000_000_000

	if got := PopularityAtLeast(10).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("PopularityAtLeast(10) = %v, want True", got)
	}
	if got := VoteAverageAtLeast(9).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("VoteAverageAtLeast(9) = %v, want False", got)
	}
	if got := BudgetAtLeast(100_000_000).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("BudgetAtLeast(100M) = %v, want True", got)
	}
	if got := RevenueAtLeast(2_000_000_000).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("RevenueAtLeast(2B) = %v, want False", got)
	}

	blank := newFilm(2)
	if got := BudgetAtLeast(1).Evaluate(blank, nil, nil); got != tri.Unknown {
		t.Errorf("BudgetAtLeast on zero-budget film = %v, want Unknown", got)
	}
}

func TestTitlePredicatesAndValidation(t *testing.T) {
	f := newFilm(1)
	f.Title = "The Matrix"

	if got := TitleInBucket("I-M").Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("TitleInBucket(I-M) = %v, want True", got)
	}
	if got := TitleContainsWord("matrix").Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("TitleContainsWord(matrix) = %v, want True", got)
	}
	if got := Validation(1).Evaluate(f, nil, nil); got != tri.True {
		t.Errorf("Validation(1) on film 1 = %v, want True", got)
	}
	if got := Validation(2).Evaluate(f, nil, nil); got != tri.False {
		t.Errorf("Validation(2) on film 1 = %v, want False", got)
	}
}

func TestIsHard(t *testing.T) {
	if !IsHard(CategoryLanguage) {
		t.Error("language should be hard")
	}
	if !IsHard(CategorySaga) {
		t.Error("saga should be hard")
	}
	if IsHard(CategoryActor) {
		t.Error("actor should be soft")
	}
	if IsHard(CategoryKeyword) {
		t.Error("keyword should be soft")
	}
}
