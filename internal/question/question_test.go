package question

import (
	"strings"
	"testing"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/tri"
)

type fakeLookup map[int]*catalogue.Details

func (f fakeLookup) Details(filmID int) *catalogue.Details {
	if d, ok := f[filmID]; ok {
		return d
	}
	return &catalogue.Details{FilmID: filmID}
}

func film(id int, title string, year int, lang string) *catalogue.Film {
	return &catalogue.Film{ID: id, Title: title, Year: year, OriginalLanguage: lang, GenreIDs: make(map[int]struct{})}
}

func TestContradictionExcludes(t *testing.T) {
	out := ContradictionExcludes("finance_big_budget")
	if len(out) != 1 || out[0] != "finance_small_budget" {
		t.Errorf("ContradictionExcludes(finance_big_budget) = %v", out)
	}
	reverse := ContradictionExcludes("finance_small_budget")
	if len(reverse) != 1 || reverse[0] != "finance_big_budget" {
		t.Errorf("ContradictionExcludes(finance_small_budget) = %v", reverse)
	}
}

func TestBuildStaticIncludesGenres(t *testing.T) {
	genres := catalogue.NewGenreMap(map[int]string{1: "Drama", 2: "Comedy"})
	qs := BuildStatic(genres)

	found := map[string]bool{}
	for _, q := range qs {
		found[q.Key] = true
	}
	if !found["genre_1"] || !found["genre_2"] {
		t.Error("expected genre questions for both loaded genres")
	}
	if !found["lang_en"] {
		t.Error("expected static language questions")
	}
	if !found["saga_harry_potter"] {
		t.Error("expected franchise special-case questions")
	}
}

func TestBuildValidationRespectsPoolBounds(t *testing.T) {
	lookup := fakeLookup{}
	small := make([]*catalogue.Film, 5)
	for i := range small {
		small[i] = film(i, "Film", 2000, "en")
	}
	if qs := BuildValidation(small, lookup); qs != nil {
		t.Errorf("BuildValidation on pool of 5 = %v, want nil", qs)
	}

	mid := make([]*catalogue.Film, 20)
	for i := range mid {
		mid[i] = film(i, "Film", 2000, "en")
	}
	lookup[0] = &catalogue.Details{
		FilmID: 0,
		Crew:   []catalogue.CrewMember{{Name: "A Director", Job: "Director"}},
	}
	qs := BuildValidation(mid, lookup)
	found := false
	for _, q := range qs {
		if q.Key == "validate_director_director" { // slug drops the leading article "A "
			found = true
		}
	}
	if !found {
		t.Errorf("expected a director validation question, got %v", qs)
	}
}

func TestBuildBinaryRespectsPoolBounds(t *testing.T) {
	lookup := fakeLookup{}
	tooLarge := make([]*catalogue.Film, 20)
	for i := range tooLarge {
		tooLarge[i] = film(i, "Film", 2000, "en")
	}
	if qs := BuildBinary(tooLarge, lookup); qs != nil {
		t.Errorf("BuildBinary on pool of 20 = %v, want nil", qs)
	}

	small := []*catalogue.Film{
		film(1, "Amelie", 2001, "fr"),
		film(2, "Batman", 1989, "en"),
	}
	qs := BuildBinary(small, lookup)
	if len(qs) == 0 {
		t.Fatal("expected at least one binary question for a strictly-splitting letter")
	}
}

func TestBuildDynamicYearMedianSplits(t *testing.T) {
	pool := []*catalogue.Film{
		film(1, "A", 1990, "en"),
		film(2, "B", 2000, "en"),
		film(3, "C", 2010, "en"),
	}
	qs := BuildDynamicYear(pool)
	if len(qs) == 0 {
		t.Fatal("expected at least the median dichotomy question")
	}
}

func TestCatalogueOfferOrdering(t *testing.T) {
	genres := catalogue.NewGenreMap(map[int]string{1: "Drama"})
	c := NewCatalogue(genres)
	pool := []*catalogue.Film{
		film(1, "Amelie", 2001, "fr"),
		film(2, "Batman", 1989, "en"),
	}
	offered := c.Offer(pool, fakeLookup{})
	if len(offered) == 0 {
		t.Fatal("expected a non-empty offer")
	}
	// Static questions (genre/lang) must appear, but after any dynamic ones.
	lastDynamicIdx := -1
	firstStaticIdx := -1
	for i, q := range offered {
		if q.Key == "genre_1" {
			firstStaticIdx = i
		}
	}
	for i, q := range offered {
		if strings.HasPrefix(q.Key, "bin") || strings.HasPrefix(q.Key, "dyn") || strings.HasPrefix(q.Key, "validate_") {
			lastDynamicIdx = i
		}
	}
	if firstStaticIdx == -1 {
		t.Fatal("expected static genre question present in offer")
	}
	if lastDynamicIdx > firstStaticIdx {
		t.Errorf("dynamic question at index %d follows static genre_1 at index %d", lastDynamicIdx, firstStaticIdx)
	}
}

func TestTriFromBoolSanity(t *testing.T) {
	if tri.FromBool(true) != tri.True {
		t.Error("sanity check failed")
	}
}
