package question

import "github.com/movieakinator/engine/internal/catalogue"

// Catalogue is the full set of questions offered to the selector on a
// given turn: the static roster built once at startup, plus the
// per-turn dynamic questions rebuilt from the live candidate pool.
type Catalogue struct {
	static []Question
}

// NewCatalogue builds the static portion once, at engine start, from
// the loaded genre map.
func NewCatalogue(genres *catalogue.GenreMap) *Catalogue {
	return &Catalogue{static: BuildStatic(genres)}
}

// Offer returns the union of questions eligible for selection this
// turn: validation, binary, dynamic-keyword, dynamic-people,
// dynamic-year, then static — in that priority order (spec §4.3),
// which the selector's stable tie-break relies on as insertion order.
func (c *Catalogue) Offer(pool []*catalogue.Film, lookup catalogue.DetailsLookup) []Question {
	var all []Question
	all = append(all, BuildValidation(pool, lookup)...)
	all = append(all, BuildBinary(pool, lookup)...)
	all = append(all, BuildDynamicKeyword(pool, lookup)...)
	all = append(all, BuildDynamicPeople(pool, lookup)...)
	all = append(all, BuildDynamicYear(pool)...)
	all = append(all, c.static...)
	return all
}
