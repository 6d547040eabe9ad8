package models

import "strings"

// Page identifies which stage of the booking flow the user is on.
type Page string

const (
	PageMovies  Page = "movies"
	PageCinemas Page = "cinemas"
	PageSeats   Page = "seats"
)

// BookingContext is the per-session record of where the user stands in the
// movies → cinemas → seats flow. It is mutated only through the session
// service; CurrentPage is always derived from CurrentRoute and never set
// by callers directly.
type BookingContext struct {
	CurrentPage      Page     `json:"currentPage"`
	CurrentRoute     string   `json:"currentRoute"`
	CurrentMovieID   *int     `json:"currentMovieId,omitempty"`
	CurrentCinemaID  *int     `json:"currentCinemaId,omitempty"`
	SelectedShowtime string   `json:"selectedShowtime,omitempty"`
	SelectedSeats    []string `json:"selectedSeats,omitempty"`

	// Catalog snapshots attached at session creation; immutable for the
	// lifetime of the session.
	AvailableMovies  []Movie  `json:"availableMovies"`
	AvailableCinemas []Cinema `json:"availableCinemas"`
}

// PageFromRoute derives the booking page from a route path. The route is
// the single authority for the page.
func PageFromRoute(path string) Page {
	switch {
	case strings.HasPrefix(path, "/seats"):
		return PageSeats
	case strings.HasPrefix(path, "/cinemas"):
		return PageCinemas
	default:
		return PageMovies
	}
}

// ApplyRoute records a route change and recomputes CurrentPage from it.
func (c *BookingContext) ApplyRoute(path string) {
	c.CurrentRoute = path
	c.CurrentPage = PageFromRoute(path)
}

// MovieByID looks a movie up in the session's catalog snapshot.
func (c *BookingContext) MovieByID(id int) (Movie, bool) {
	for _, m := range c.AvailableMovies {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}

// MovieByTitle resolves a movie by exact case-insensitive title match.
func (c *BookingContext) MovieByTitle(title string) (Movie, bool) {
	for _, m := range c.AvailableMovies {
		if strings.EqualFold(m.Title, title) {
			return m, true
		}
	}
	return Movie{}, false
}

// CinemaByID looks a cinema up in the session's catalog snapshot.
func (c *BookingContext) CinemaByID(id int) (Cinema, bool) {
	for _, cn := range c.AvailableCinemas {
		if cn.ID == id {
			return cn, true
		}
	}
	return Cinema{}, false
}

// CinemaByName resolves a cinema by exact case-insensitive name match.
func (c *BookingContext) CinemaByName(name string) (Cinema, bool) {
	for _, cn := range c.AvailableCinemas {
		if strings.EqualFold(cn.Name, name) {
			return cn, true
		}
	}
	return Cinema{}, false
}
