package question

import (
	"fmt"
	"sort"
	"strings"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/predicate"
)

// genericKeywords are dropped by the dynamic keyword builder: too
// common across any pool to discriminate.
var genericKeywords = map[string]bool{
	"woman director": true, "independent film": true, "duringcreditsstinger": true,
	"aftercreditsstinger": true, "based on novel or book": true,
}

// BuildValidation emits up to ~20 questions targeting the top
// candidate's director, top cast, exact year, rarest pool keywords,
// and collection, active when the pool size falls in [10, 500]
// (spec §4.3).
func BuildValidation(pool []*catalogue.Film, lookup catalogue.DetailsLookup) []Question {
	if len(pool) < 10 || len(pool) > 500 {
		return nil
	}
	top := pool[0]
	details := lookup.Details(top.ID)
	var qs []Question

	if director := details.Director(); director != "" {
		qs = append(qs, New("validate_director_"+slug(director),
			fmt.Sprintf("Was it directed by %s?", director),
			predicate.Director(director), nil, nil))
	}

	for i, cast := range topCast(details, 3) {
		key := fmt.Sprintf("validate_actor_%s", slug(cast.Name))
		qs = append(qs, New(key,
			fmt.Sprintf("Does it star %s?", cast.Name),
			predicate.Actor(cast.Name), nil, nil))
		if i >= 2 {
			break
		}
	}

	if top.Year != 0 {
		qs = append(qs, New(fmt.Sprintf("validate_year_%d", top.Year),
			fmt.Sprintf("Was it released in %d?", top.Year),
			predicate.YearExact(top.Year), nil, nil))
	}

	for _, kw := range rarestKeywords(top, pool, lookup, 5) {
		qs = append(qs, New("validate_keyword_"+slug(kw),
			fmt.Sprintf("Does it involve %s?", kw),
			predicate.Keyword(kw), nil, nil))
	}

	if top.CollectionName != "" {
		qs = append(qs, New("validate_collection_"+slug(top.CollectionName),
			fmt.Sprintf("Is it part of %s?", top.CollectionName),
			predicate.Franchise(top.CollectionName), nil, nil))
	}

	return qs
}

func topCast(details *catalogue.Details, n int) []catalogue.CastMember {
	if details == nil {
		return nil
	}
	cast := append([]catalogue.CastMember(nil), details.Cast...)
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	if len(cast) > n {
		cast = cast[:n]
	}
	return cast
}

// rarestKeywords ranks the top film's own keywords by ascending
// frequency across pool, returning up to n.
func rarestKeywords(top *catalogue.Film, pool []*catalogue.Film, lookup catalogue.DetailsLookup, n int) []string {
	topDetails := lookup.Details(top.ID)
	if topDetails == nil {
		return nil
	}
	freq := keywordFrequency(pool, lookup)
	type kf struct {
		word string
		n    int
	}
	var ranked []kf
	for kw := range topDetails.Keywords {
		if genericKeywords[kw] || len(kw) < 4 {
			continue
		}
		ranked = append(ranked, kf{kw, freq[kw]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n < ranked[j].n
		}
		return ranked[i].word < ranked[j].word
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, len(ranked))
	for i, k := range ranked {
		out[i] = k.word
	}
	return out
}

func keywordFrequency(pool []*catalogue.Film, lookup catalogue.DetailsLookup) map[string]int {
	freq := make(map[string]int)
	for _, f := range pool {
		details := lookup.Details(f.ID)
		if details == nil {
			continue
		}
		for kw := range details.Keywords {
			freq[kw]++
		}
	}
	return freq
}

// BuildDynamicKeyword counts keywords across the pool and emits
// questions for a top-k subset, discarding generic/short entries and,
// on pools of 50+, keywords with under-2 or over-85% film coverage
// (spec §4.3).
func BuildDynamicKeyword(pool []*catalogue.Film, lookup catalogue.DetailsLookup) []Question {
	freq := keywordFrequency(pool, lookup)
	n := len(pool)
	topK := 30
	switch {
	case n <= 30:
		topK = 15
	case n <= 100:
		topK = 25
	}

	type kf struct {
		word string
		n    int
	}
	var ranked []kf
	for kw, count := range freq {
		if genericKeywords[kw] || len(kw) < 4 {
			continue
		}
		if n >= 50 {
			ratio := float64(count) / float64(n)
			if count < 2 || ratio > 0.85 {
				continue
			}
		}
		ranked = append(ranked, kf{kw, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].word < ranked[j].word
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	qs := make([]Question, 0, len(ranked))
	for _, k := range ranked {
		qs = append(qs, New("dynkw_"+slug(k.word),
			fmt.Sprintf("Does it involve %s?", k.word),
			predicate.Keyword(k.word), nil, nil))
	}
	return qs
}

// BuildDynamicPeople counts cast and directors across the pool,
// restricting actors to those whose pool appearances predominantly
// share the pool's dominant original language (spec §4.3).
func BuildDynamicPeople(pool []*catalogue.Film, lookup catalogue.DetailsLookup) []Question {
	dominant, ok := dominantLanguage(pool)

	directorCount := make(map[string]int)
	actorCount := make(map[string]int)
	actorLangMatches := make(map[string]int)
	actorAppearances := make(map[string]int)

	for _, f := range pool {
		details := lookup.Details(f.ID)
		if details == nil {
			continue
		}
		if d := details.Director(); d != "" {
			directorCount[d]++
		}
		for _, c := range topCast(details, 5) {
			actorCount[c.Name]++
			actorAppearances[c.Name]++
			if ok && strings.EqualFold(f.OriginalLanguage, dominant) {
				actorLangMatches[c.Name]++
			}
		}
	}

	var qs []Question
	for name, count := range directorCount {
		if count < 2 {
			continue
		}
		qs = append(qs, New("dynppl_director_"+slug(name),
			fmt.Sprintf("Was it directed by %s?", name),
			predicate.Director(name), nil, nil))
	}
	for name, count := range actorCount {
		if count < 2 {
			continue
		}
		if ok && actorAppearances[name] > 0 {
			share := float64(actorLangMatches[name]) / float64(actorAppearances[name])
			if share < 0.5 {
				continue
			}
		}
		qs = append(qs, New("dynppl_actor_"+slug(name),
			fmt.Sprintf("Does it star %s?", name),
			predicate.Actor(name), nil, nil))
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].Key < qs[j].Key })
	return qs
}

// dominantLanguage returns the pool's most common original language if
// it reaches a 70% share. Below that share it returns "en" when English
// is the most common language, and nothing otherwise; release years are
// not taken into account.
func dominantLanguage(pool []*catalogue.Film) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	counts := make(map[string]int)
	for _, f := range pool {
		if f.OriginalLanguage != "" {
			counts[f.OriginalLanguage]++
		}
	}
	var best string
	var bestCount int
	for lang, count := range counts {
		if count > bestCount {
			best, bestCount = lang, count
		}
	}
	if bestCount == 0 {
		return "", false
	}
	if float64(bestCount)/float64(len(pool)) >= 0.7 {
		return best, true
	}
	if best == "en" {
		return "en", true
	}
	return "", false
}

// BuildDynamicYear builds a median-year dichotomy plus per-decade
// questions for decades that strictly split the pool (spec §4.3).
func BuildDynamicYear(pool []*catalogue.Film) []Question {
	var years []int
	for _, f := range pool {
		if f.Year != 0 {
			years = append(years, f.Year)
		}
	}
	if len(years) == 0 {
		return nil
	}
	sort.Ints(years)
	median := years[len(years)/2]

	qs := []Question{
		New(fmt.Sprintf("dynyr_median_%d", median),
			fmt.Sprintf("Was it released after %d?", median),
			predicate.YearAfter(median), nil, nil),
	}

	decadeCount := make(map[int]int)
	for _, y := range years {
		decadeCount[(y/10)*10]++
	}
	for decade, count := range decadeCount {
		if count > 0 && count < len(years) {
			qs = append(qs, New(fmt.Sprintf("dynyr_decade_%d", decade),
				fmt.Sprintf("Was it released in the %ds?", decade),
				predicate.Decade(decade), nil, nil))
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].Key < qs[j].Key })
	return qs
}

// BuildBinary adds title-first-letter, title-word-count, per-actor, and
// per-director questions that strictly partition a small pool (2 to 15
// candidates), active per spec §4.3.
func BuildBinary(pool []*catalogue.Film, lookup catalogue.DetailsLookup) []Question {
	if len(pool) < 2 || len(pool) > 15 {
		return nil
	}

	var qs []Question
	letterCount := make(map[string]int)
	for _, f := range pool {
		norm := predicate.NormalizeTitle(f.Title)
		if norm == "" {
			continue
		}
		letterCount[norm[:1]]++
	}
	for letter, count := range letterCount {
		if count > 0 && count < len(pool) {
			qs = append(qs, New("binletter_"+letter,
				fmt.Sprintf("Does the title start with the letter %s?", letter),
				predicate.TitleStartsWith(letter), nil, nil))
		}
	}

	wordCount := make(map[int]int)
	for _, f := range pool {
		if n := len(strings.Fields(f.Title)); n > 0 {
			wordCount[n]++
		}
	}
	for n, count := range wordCount {
		if count > 0 && count < len(pool) {
			qs = append(qs, New(fmt.Sprintf("binwords_%d", n),
				fmt.Sprintf("Does the title have %d word(s)?", n),
				predicate.TitleWordCount(n), nil, nil))
		}
	}

	directorCount := make(map[string]int)
	actorCount := make(map[string]int)
	for _, f := range pool {
		details := lookup.Details(f.ID)
		if details == nil {
			continue
		}
		if d := details.Director(); d != "" {
			directorCount[d]++
		}
		for _, c := range topCast(details, 3) {
			actorCount[c.Name]++
		}
	}
	for name, count := range directorCount {
		if count > 0 && count < len(pool) {
			qs = append(qs, New("bindir_"+slug(name),
				fmt.Sprintf("Was it directed by %s?", name),
				predicate.Director(name), nil, nil))
		}
	}
	for name, count := range actorCount {
		if count > 0 && count < len(pool) {
			qs = append(qs, New("binact_"+slug(name),
				fmt.Sprintf("Does it star %s?", name),
				predicate.Actor(name), nil, nil))
		}
	}

	sort.Slice(qs, func(i, j int) bool { return qs[i].Key < qs[j].Key })
	return qs
}

// slug lower-cases and strips a name/word down to its alphanumeric
// normalized form for use in a routing key.
func slug(s string) string {
	return strings.ToLower(predicate.NormalizeTitle(s))
}
