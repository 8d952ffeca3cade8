package question

import (
	"fmt"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/predicate"
	"github.com/movieakinator/engine/internal/tri"
)

// commonLanguages is the static language roster offered regardless of
// the loaded catalogue; each Yes answer marks every sibling language
// key as asked (spec §4.2).
var commonLanguages = []struct {
	code string
	name string
}{
	{"en", "English"},
	{"fr", "French"},
	{"es", "Spanish"},
	{"ja", "Japanese"},
	{"de", "German"},
	{"it", "Italian"},
	{"ko", "Korean"},
	{"zh", "Chinese"},
	{"hi", "Hindi"},
}

// LanguageSiblingKeys returns every language routing key other than
// key itself, used to mark siblings asked after a Yes (spec §4.5).
func LanguageSiblingKeys(key string) []string {
	var out []string
	for _, lang := range commonLanguages {
		k := "lang_" + lang.code
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// decadeStarts is the static decade roster, from silent-era cinema
// through the contemporary decade.
var decadeStarts = []int{1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}

// franchiseSpecials hand-tunes the collection-name/title-alias
// resolution for sagas whose TMDB collection grouping is inconsistent.
var franchiseSpecials = []struct {
	key     string
	substr  string
	aliases []string
}{
	{"saga_harry_potter", "Harry Potter", []string{"Harry Potter"}},
	{"saga_star_wars", "Star Wars", []string{"Star Wars"}},
	{"saga_lotr", "The Lord of the Rings", []string{"Lord of the Rings"}},
	{"saga_marvel", "Avengers", []string{"Avengers", "Marvel's"}},
	{"saga_bond", "James Bond", []string{"James Bond", "007"}},
	{"saga_fast_furious", "Fast & Furious", []string{"Fast & Furious", "Fast and Furious"}},
}

// BuildStatic assembles the static portion of the question catalogue:
// genre, decade, year-pivot, runtime, language, country, franchise, and
// title-bucket entries. Genre entries are data-driven off the loaded
// GenreMap since genre ids are catalogue-specific.
func BuildStatic(genres *catalogue.GenreMap) []Question {
	var qs []Question

	for _, lang := range commonLanguages {
		key := "lang_" + lang.code
		qs = append(qs, New(key,
			fmt.Sprintf("Is the film originally in %s?", lang.name),
			predicate.Language(lang.code), nil, nil))
	}

	if genres != nil {
		for _, name := range genres.Names() {
			id, ok := genres.ID(name)
			if !ok {
				continue
			}
			key := fmt.Sprintf("genre_%d", id)
			qs = append(qs, New(key,
				fmt.Sprintf("Is it a %s film?", name),
				predicate.Genre(id), nil, nil))
		}
	}

	for _, start := range decadeStarts {
		key := fmt.Sprintf("decade_%d", start)
		qs = append(qs, New(key,
			fmt.Sprintf("Was it released in the %ds?", start),
			predicate.Decade(start), nil, nil))
	}

	qs = append(qs,
		New("year_after_1980", "Was it released after 1980?", predicate.YearAfter(1980), nil,
			ContradictionExcludes("year_after_1980")),
		New("year_before_1970", "Was it released before 1970?", predicate.YearBefore(1970), nil,
			ContradictionExcludes("year_before_1970")),
		New("runtime_lt_90", "Is it shorter than 90 minutes?", predicate.RuntimeLessThan(90), nil,
			ContradictionExcludes("runtime_lt_90")),
		New("runtime_ge_150", "Is it 150 minutes or longer?", predicate.RuntimeAtLeast(150), nil,
			ContradictionExcludes("runtime_ge_150")),
		New("country_american", "Was it produced in the United States or Canada?", predicate.Country(predicate.RegionAmerican), nil, nil),
		New("country_french", "Was it produced in France?", predicate.Country(predicate.RegionFrench), nil, nil),
		New("country_european", "Was it produced in Europe?", predicate.Country(predicate.RegionEuropean), nil, nil),
		New("country_asian", "Was it produced in Asia?", predicate.Country(predicate.RegionAsian), nil, nil),
		New("finance_big_budget", "Did it have a large production budget (over $100 million)?", predicate.BudgetAtLeast(100_000_000), nil,
			ContradictionExcludes("finance_big_budget")),
		New("finance_small_budget", "Did it have a modest production budget (under $10 million)?", invert(predicate.BudgetAtLeast(10_000_000)), nil,
			ContradictionExcludes("finance_small_budget")),
		New("finance_blockbuster_revenue", "Did it gross over $500 million worldwide?", predicate.RevenueAtLeast(500_000_000), nil, nil),
		New("popularity_highly_rated", "Is it rated 7.5 or higher on average?", predicate.VoteAverageAtLeast(7.5), nil, nil),
		New("meta_in_collection", "Is it part of a film series or collection?", predicate.IsPartOfCollection(), nil, nil),
		New("meta_based_on_novel", "Is it based on a novel?", predicate.BasedOnKeyword("novel"), nil, nil),
		New("meta_based_on_comic", "Is it based on a comic book?", predicate.BasedOnKeyword("comic"), nil, nil),
		New("saga_is_standalone", "Is it a standalone film, not part of any series?", invert(predicate.IsPartOfCollection()), nil,
			ContradictionExcludes("saga_is_standalone")),
	)

	for _, special := range franchiseSpecials {
		qs = append(qs, New(special.key,
			fmt.Sprintf("Is it part of the %s franchise?", special.substr),
			predicate.Franchise(special.substr, special.aliases...), nil,
			ContradictionExcludes(special.key)))
	}

	if genres != nil {
		if animeID, ok := genres.ID("Animation"); ok {
			qs = append(qs,
				New("format_is_animation", "Is it an animated film?",
					predicate.GenreBinary(animeID), nil,
					ContradictionExcludes("format_is_animation")),
				New("format_is_live_action", "Is it a live-action film (not animated)?",
					invert(predicate.IsAnimation(animeID)), nil,
					ContradictionExcludes("format_is_live_action")),
			)
		}
	}

	for _, bucket := range []string{"A-D", "E-H", "I-M", "N-R", "S-Z", "0-9"} {
		qs = append(qs, New("title_bucket_"+bucket,
			fmt.Sprintf("Does the title start with a letter in %s?", bucket),
			predicate.TitleInBucket(bucket), nil, nil))
	}

	return qs
}

// invert wraps a predicate, flipping True and False while passing
// Unknown through unchanged. Used for the handful of static questions
// phrased as the negation of an existing predicate (e.g. "standalone"
// as not-in-collection) rather than duplicating evaluation logic.
func invert(p predicate.Predicate) predicate.Predicate {
	evaluate := p.Evaluate
	return predicate.New(p.Category, func(f *catalogue.Film, lookup catalogue.DetailsLookup, genres *catalogue.GenreMap) tri.Tri {
		switch evaluate(f, lookup, genres) {
		case tri.True:
			return tri.False
		case tri.False:
			return tri.True
		default:
			return tri.Unknown
		}
	})
}
