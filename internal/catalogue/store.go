package catalogue

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/movieakinator/engine/internal/errs"
)

// Store is a read-only accessor over the catalogue's relational
// tables (movies, genres, movie_genres, keywords, movie_keywords,
// people, movie_cast, movie_crew), per spec §4.1/§6.
type Store struct {
	db *sql.DB

	detailsMu    sync.Mutex
	detailsCache map[int]*Details // monotone-growth memoisation, no invalidation
}

// Open connects to the SQLite catalogue at path (the store only ever
// reads; the connection is not opened in SQLite's read-only mode),
// tuning pragmas for read-heavy, single-writer-absent access the way the
// original engine's open_db() does: synchronous=OFF, journal_mode and
// temp_store in MEMORY, a generous page cache.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("open %q: %v", path, err))
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("ping %q: %v", path, err))
	}

	for _, pragma := range []string{
		"PRAGMA synchronous = OFF",
		"PRAGMA journal_mode = MEMORY",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA cache_size = 10000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("pragma %q: %v", pragma, err))
		}
	}

	// SQLite handles a single writer-less connection best with one pool slot.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{
		db:           db,
		detailsCache: make(map[int]*Details),
	}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadGenres loads the full genre id<->name bijection. A missing
// genres table degrades to an empty map rather than a fatal error, per
// spec §4.1.
func (s *Store) LoadGenres() (*GenreMap, error) {
	rows, err := s.db.Query("SELECT id, name FROM genres")
	if err != nil {
		return NewGenreMap(map[int]string{}), nil
	}
	defer rows.Close()

	idToName := make(map[int]string)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("scan genre row: %v", err))
		}
		idToName[id] = name
	}
	return NewGenreMap(idToName), nil
}

// DiscoverFilms loads every film ordered by descending popularity, with
// each film's genre-id set populated in a single bulk join rather than
// a per-film query, bounded by limit (0 means unlimited).
func (s *Store) DiscoverFilms(limit int) ([]*Film, error) {
	query := `
		SELECT id, title, release_date, popularity, vote_average, vote_count,
		       runtime, budget, revenue, original_language,
		       collection_id, collection_name
		FROM movies
		ORDER BY popularity DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("discover films: %v", err))
	}
	defer rows.Close()

	films := make(map[int]*Film)
	order := make([]int, 0)

	for rows.Next() {
		var (
			id                         int
			title                      string
			releaseDate                sql.NullString
			popularity, voteAverage    sql.NullFloat64
			voteCount                  sql.NullInt64
			runtime                    sql.NullInt64
			budget, revenue            sql.NullInt64
			originalLanguage           sql.NullString
			collectionID               sql.NullInt64
			collectionName             sql.NullString
		)
		if err := rows.Scan(&id, &title, &releaseDate, &popularity, &voteAverage,
			&voteCount, &runtime, &budget, &revenue, &originalLanguage,
			&collectionID, &collectionName); err != nil {
			return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("scan film row: %v", err))
		}

		film := &Film{
			ID:               id,
			Title:            title,
			Year:             yearFromReleaseDate(releaseDate.String),
			Popularity:       popularity.Float64,
			VoteAverage:      voteAverage.Float64,
			VoteCount:        int(voteCount.Int64),
			Runtime:          int(runtime.Int64),
			Budget:           budget.Int64,
			Revenue:          revenue.Int64,
			OriginalLanguage: originalLanguage.String,
			GenreIDs:         make(map[int]struct{}),
			CollectionID:     int(collectionID.Int64),
			CollectionName:   collectionName.String,
		}
		films[id] = film
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewCatalogueUnavailableError(fmt.Sprintf("iterate films: %v", err))
	}

	if err := s.fillGenres(films); err != nil {
		return nil, err
	}

	result := make([]*Film, 0, len(order))
	for _, id := range order {
		result = append(result, films[id])
	}
	return result, nil
}

// fillGenres bulk-joins movie_genres for every film already loaded.
func (s *Store) fillGenres(films map[int]*Film) error {
	if len(films) == 0 {
		return nil
	}
	rows, err := s.db.Query(`SELECT movie_id, genre_id FROM movie_genres`)
	if err != nil {
		// Missing junction table: films simply carry no genres.
		return nil
	}
	defer rows.Close()

	for rows.Next() {
		var movieID, genreID int
		if err := rows.Scan(&movieID, &genreID); err != nil {
			return errs.NewCatalogueUnavailableError(fmt.Sprintf("scan movie_genres row: %v", err))
		}
		if film, ok := films[movieID]; ok {
			film.GenreIDs[genreID] = struct{}{}
		}
	}
	return rows.Err()
}

// Details returns the extended, lazily-loaded record for a film,
// memoised per process with monotone growth (no invalidation), per
// spec §4.1/§5.
func (s *Store) Details(filmID int) *Details {
	s.detailsMu.Lock()
	if cached, ok := s.detailsCache[filmID]; ok {
		s.detailsMu.Unlock()
		return cached
	}
	s.detailsMu.Unlock()

	details := &Details{
		FilmID:    filmID,
		Keywords:  make(map[string]struct{}),
		Countries: make(map[string]struct{}),
	}

	s.loadKeywords(filmID, details)
	s.loadCast(filmID, details)
	s.loadCrew(filmID, details)
	s.loadCountries(filmID, details)

	s.detailsMu.Lock()
	s.detailsCache[filmID] = details
	s.detailsMu.Unlock()

	return details
}

func (s *Store) loadKeywords(filmID int, details *Details) {
	rows, err := s.db.Query(`
		SELECT k.name FROM keywords k
		JOIN movie_keywords mk ON mk.keyword_id = k.id
		WHERE mk.movie_id = ?`, filmID)
	if err != nil {
		return
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if rows.Scan(&name) == nil {
			details.Keywords[name] = struct{}{}
		}
	}
}

func (s *Store) loadCast(filmID int, details *Details) {
	rows, err := s.db.Query(`
		SELECT p.id, p.name, mc.character, mc.cast_order
		FROM movie_cast mc
		JOIN people p ON p.id = mc.person_id
		WHERE mc.movie_id = ?
		ORDER BY mc.cast_order ASC`, filmID)
	if err != nil {
		return
	}
	defer rows.Close()
	for rows.Next() {
		var c CastMember
		var character sql.NullString
		if rows.Scan(&c.PersonID, &c.Name, &character, &c.Order) == nil {
			c.Character = character.String
			details.Cast = append(details.Cast, c)
		}
	}
}

func (s *Store) loadCrew(filmID int, details *Details) {
	rows, err := s.db.Query(`
		SELECT p.id, p.name, mc.job, mc.department
		FROM movie_crew mc
		JOIN people p ON p.id = mc.person_id
		WHERE mc.movie_id = ?`, filmID)
	if err != nil {
		return
	}
	defer rows.Close()
	for rows.Next() {
		var c CrewMember
		var job, department sql.NullString
		if rows.Scan(&c.PersonID, &c.Name, &job, &department) == nil {
			c.Job = job.String
			c.Department = department.String
			details.Crew = append(details.Crew, c)
		}
	}
}

func (s *Store) loadCountries(filmID int, details *Details) {
	var countriesJSON sql.NullString
	err := s.db.QueryRow(`SELECT countries_json FROM movies WHERE id = ?`, filmID).Scan(&countriesJSON)
	if err != nil || !countriesJSON.Valid || countriesJSON.String == "" {
		return
	}
	var codes []string
	if err := json.Unmarshal([]byte(countriesJSON.String), &codes); err != nil {
		return
	}
	for _, code := range codes {
		details.Countries[code] = struct{}{}
	}
}

// yearFromReleaseDate derives a release year from a "YYYY-MM-DD"
// (or "YYYY") date string. Returns 0 when the date is empty or
// malformed; predicates must read 0 as "unknown", not "year zero".
func yearFromReleaseDate(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for i := 0; i < 4; i++ {
		c := date[i]
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

// SortFilmsByPopularity stably orders films by descending popularity.
// The CLI applies it to the films DiscoverFilms returns.
func SortFilmsByPopularity(films []*Film) {
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].Popularity > films[j].Popularity
	})
}
