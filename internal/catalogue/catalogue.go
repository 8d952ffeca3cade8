// Package catalogue is the read-only relational accessor over the
// movie catalogue: films, genres, and per-film extended detail (cast,
// crew, keywords, countries, collection). Pure data, no game logic,
// per spec §4.1.
package catalogue

// Film holds the essential attributes used by most predicates and by
// scoring/ordering. Optional numeric fields use the zero value to mean
// "absent" per spec §3 (predicates must treat that as Unknown, not as
// a negative match).
type Film struct {
	ID               int
	Title            string
	Year             int // 0 if release_date could not be parsed
	Popularity       float64
	VoteAverage      float64
	VoteCount        int
	Runtime          int // 0 if unknown
	Budget           int64
	Revenue          int64
	OriginalLanguage string
	GenreIDs         map[int]struct{}
	CollectionID     int
	CollectionName   string
}

// HasGenre reports whether the film is tagged with the given genre id.
func (f *Film) HasGenre(genreID int) bool {
	_, ok := f.GenreIDs[genreID]
	return ok
}

// GenreMap is the bijection between genre id and genre name, loaded
// once per game and shared read-only thereafter.
type GenreMap struct {
	idToName map[int]string
	nameToID map[string]int
}

// NewGenreMap builds a GenreMap from an id->name mapping.
func NewGenreMap(idToName map[int]string) *GenreMap {
	gm := &GenreMap{
		idToName: idToName,
		nameToID: make(map[string]int, len(idToName)),
	}
	for id, name := range idToName {
		gm.nameToID[name] = id
	}
	return gm
}

// Name returns the genre name for an id, or "" if unknown.
func (g *GenreMap) Name(id int) string {
	if g == nil {
		return ""
	}
	return g.idToName[id]
}

// ID returns the genre id for a name (case-sensitive, as stored), and
// whether it was found.
func (g *GenreMap) ID(name string) (int, bool) {
	if g == nil {
		return 0, false
	}
	id, ok := g.nameToID[name]
	return id, ok
}

// Names returns every genre name known to the map.
func (g *GenreMap) Names() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.nameToID))
	for name := range g.nameToID {
		names = append(names, name)
	}
	return names
}

// CastMember is one entry in a film's cast.
type CastMember struct {
	PersonID  int
	Name      string
	Character string
	Order     int
}

// CrewMember is one entry in a film's crew.
type CrewMember struct {
	PersonID   int
	Name       string
	Job        string
	Department string
}

// Details holds the extended, lazily-loaded attributes of a film.
type Details struct {
	FilmID    int
	Keywords  map[string]struct{}
	Cast      []CastMember
	Crew      []CrewMember
	Countries map[string]struct{}
}

// HasKeyword reports whether a keyword (case-sensitive, as stored) is
// present on the film.
func (d *Details) HasKeyword(keyword string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Keywords[keyword]
	return ok
}

// HasCountry reports whether a production country code is present.
func (d *Details) HasCountry(code string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Countries[code]
	return ok
}

// Director returns the name of the first crew member with job
// "Director", or "" if none is recorded.
func (d *Details) Director() string {
	if d == nil {
		return ""
	}
	for _, c := range d.Crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return ""
}

// DetailsLookup is the read-only view the predicate library and
// question builders use to fetch extended per-film data without
// depending on the catalogue store's connection lifecycle directly.
// Per spec §9 ("questions reference neither the catalogue nor state"),
// this is handed to predicates at evaluation time, not embedded in them.
type DetailsLookup interface {
	Details(filmID int) *Details
}
