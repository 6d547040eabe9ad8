// Package catalog supplies the immutable movie and cinema catalog handed
// to every session at creation. There is no update interface; snapshots
// are copied out so callers can never mutate the seed data.
package catalog

import (
	"strings"

	"cinequest/models"
)

// Provider hands out catalog snapshots and entity lookups.
type Provider interface {
	Movies() []models.Movie
	Cinemas() []models.Cinema
	MovieByID(id int) (models.Movie, bool)
	CinemaByID(id int) (models.Cinema, bool)
}

// StaticProvider serves the fixed seed catalog.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Movies() []models.Movie {
	out := make([]models.Movie, len(seedMovies))
	copy(out, seedMovies)
	return out
}

func (p *StaticProvider) Cinemas() []models.Cinema {
	out := make([]models.Cinema, len(seedCinemas))
	copy(out, seedCinemas)
	return out
}

func (p *StaticProvider) MovieByID(id int) (models.Movie, bool) {
	for _, m := range seedMovies {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

func (p *StaticProvider) CinemaByID(id int) (models.Cinema, bool) {
	for _, c := range seedCinemas {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cinema{}, false
}

// FilterMovies applies a case-insensitive contains match over genre and
// title. Empty criteria is a no-op filter: the full catalog comes back.
func FilterMovies(movies []models.Movie, genre, searchTerm string) []models.Movie {
	genre = strings.ToLower(strings.TrimSpace(genre))
	searchTerm = strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if genre != "" && !strings.Contains(strings.ToLower(m.Genre), genre) {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(m.Title), searchTerm) {
			continue
		}
		out = append(out, m)
	}
	return out
}
