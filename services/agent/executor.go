// File: cinequest/services/agent/executor.go
package agent

import (
	"fmt"
	"net/url"
	"strings"

	"cinequest/catalog"
	"cinequest/models"
	"cinequest/utils"

	"go.uber.org/zap"
)

// Navigator is the outward navigation capability. Navigate is
// fire-and-forget; the executor separately records the route on the
// booking context, which stays the single authority for the current page.
type Navigator interface {
	Navigate(path string)
}

var seatTiers = map[string]bool{"regular": true, "premium": true, "vip": true}

// Executor applies resolved actions to a session. Actions run
// sequentially, in order, independently: a failure is recorded as that
// action's result string and the remaining actions still execute.
type Executor struct {
	Nav Navigator
}

func NewExecutor(nav Navigator) *Executor {
	return &Executor{Nav: nav}
}

// Execute returns exactly one human-readable result string per action, in
// input order, plus a parallel slice marking which actions succeeded.
func (e *Executor) Execute(sess *models.Session, actions []models.Action) ([]string, []bool) {
	results := make([]string, 0, len(actions))
	oks := make([]bool, 0, len(actions))
	for _, action := range actions {
		result, err := e.apply(sess, action)
		if err != nil {
			utils.GetLogger().Warn("Action failed",
				zap.String("session", sess.ID),
				zap.String("action", string(action.Type)),
				zap.Error(err))
			result = err.Error()
		}
		results = append(results, result)
		oks = append(oks, err == nil)
	}
	return results, oks
}

func (e *Executor) apply(sess *models.Session, action models.Action) (string, error) {
	switch action.Type {
	case models.ActionNavigate:
		return e.applyNavigate(sess, action.Params)
	case models.ActionFilterMovies:
		return e.applyFilterMovies(sess, action.Params)
	case models.ActionSelectMovie:
		return e.applySelectMovie(sess, action.Params)
	case models.ActionFindCinemas:
		return e.applyFindCinemas(sess, action.Params)
	case models.ActionSelectShowtime:
		return e.applySelectShowtime(sess, action.Params)
	case models.ActionSelectSeats:
		return e.applySelectSeats(sess, action.Params)
	case models.ActionShowInfo:
		return e.applyShowInfo(sess, action.Params)
	default:
		// Unreachable once actions pass through SanitizeAction, kept so a
		// rogue value degrades to a result string instead of a panic.
		return "", notFound("unknown action %q", action.Type)
	}
}

// navigateTo records the route on the context and forwards it to the
// outward navigation surface.
func (e *Executor) navigateTo(sess *models.Session, path string) {
	sess.Context.ApplyRoute(path)
	if e.Nav != nil {
		e.Nav.Navigate(path)
	}
}

func (e *Executor) applyNavigate(sess *models.Session, params map[string]any) (string, error) {
	page := stringParam(params, "page")

	switch models.Page(page) {
	case models.PageMovies:
		e.navigateTo(sess, "/")
		return "Navigated to the movies page", nil

	case models.PageCinemas:
		movieID, ok := intParam(params, "movieId")
		if !ok {
			// Fall back to the movie already in context before failing.
			if sess.Context.CurrentMovieID == nil {
				return "", preconditionMissing("cannot open the cinemas page: no movie selected")
			}
			movieID = *sess.Context.CurrentMovieID
		}
		if _, found := sess.Context.MovieByID(movieID); !found {
			return "", notFound("movie #%d not found", movieID)
		}
		sess.Context.CurrentMovieID = &movieID
		e.navigateTo(sess, fmt.Sprintf("/cinemas/%d", movieID))
		return fmt.Sprintf("Navigated to cinemas for movie #%d", movieID), nil

	case models.PageSeats:
		movieID, ok := intParam(params, "movieId")
		if !ok {
			if sess.Context.CurrentMovieID == nil {
				return "", preconditionMissing("cannot open seat selection: no movie selected")
			}
			movieID = *sess.Context.CurrentMovieID
		}
		cinemaID, ok := intParam(params, "cinemaId")
		if !ok {
			if sess.Context.CurrentCinemaID == nil {
				return "", preconditionMissing("cannot open seat selection: no cinema selected")
			}
			cinemaID = *sess.Context.CurrentCinemaID
		}
		sess.Context.CurrentMovieID = &movieID
		sess.Context.CurrentCinemaID = &cinemaID
		path := fmt.Sprintf("/seats/%d/%d", movieID, cinemaID)
		if showtime := stringParam(params, "showtime"); showtime != "" {
			sess.Context.SelectedShowtime = showtime
			path += "?time=" + url.QueryEscape(showtime)
		}
		e.navigateTo(sess, path)
		return "Navigated to seat selection", nil

	default:
		return "", preconditionMissing("navigate requires a page of movies, cinemas, or seats")
	}
}

func (e *Executor) applyFilterMovies(sess *models.Session, params map[string]any) (string, error) {
	genre := stringParam(params, "genre")
	searchTerm := stringParam(params, "searchTerm")

	filtered := catalog.FilterMovies(sess.Context.AvailableMovies, genre, searchTerm)

	// Empty criteria is a no-op filter: the full catalog, no restriction
	// recorded on the session.
	if genre == "" && searchTerm == "" {
		sess.FilteredMovieIDs = nil
		return fmt.Sprintf("Showing all %d movies", len(filtered)), nil
	}

	ids := make([]int, 0, len(filtered))
	titles := make([]string, 0, len(filtered))
	for _, m := range filtered {
		ids = append(ids, m.ID)
		titles = append(titles, m.Title)
	}
	sess.FilteredMovieIDs = ids

	var criteria []string
	if genre != "" {
		criteria = append(criteria, "genre: "+genre)
	}
	if searchTerm != "" {
		criteria = append(criteria, "matching: "+searchTerm)
	}
	if len(filtered) == 0 {
		return fmt.Sprintf("No movies found for %s", strings.Join(criteria, ", ")), nil
	}
	return fmt.Sprintf("Filtered movies by %s: %s", strings.Join(criteria, ", "), strings.Join(titles, ", ")), nil
}

func (e *Executor) applySelectMovie(sess *models.Session, params map[string]any) (string, error) {
	movie, err := e.resolveMovie(sess, params)
	if err != nil {
		return "", err
	}

	id := movie.ID
	sess.Context.CurrentMovieID = &id
	e.navigateTo(sess, fmt.Sprintf("/cinemas/%d", id))
	return fmt.Sprintf("Selected %s. Showing available cinemas", movie.Title), nil
}

func (e *Executor) applyFindCinemas(sess *models.Session, params map[string]any) (string, error) {
	movieID, ok := intParam(params, "movieId")
	if !ok {
		if sess.Context.CurrentMovieID == nil {
			return "", preconditionMissing("cannot find cinemas: no movie selected")
		}
		movieID = *sess.Context.CurrentMovieID
	}
	movie, found := sess.Context.MovieByID(movieID)
	if !found {
		return "", notFound("movie #%d not found", movieID)
	}

	location := strings.ToLower(stringParam(params, "location"))
	maxDistance := strings.ToLower(stringParam(params, "maxDistance"))

	var names []string
	for _, c := range sess.Context.AvailableCinemas {
		if location != "" &&
			!strings.Contains(strings.ToLower(c.Location), location) &&
			!strings.Contains(strings.ToLower(c.Name), location) {
			continue
		}
		if maxDistance != "" && !strings.HasPrefix(strings.ToLower(c.Distance), maxDistance) &&
			!strings.Contains(strings.ToLower(c.Distance), maxDistance) {
			continue
		}
		names = append(names, c.Name)
	}

	sess.Context.CurrentMovieID = &movieID
	e.navigateTo(sess, fmt.Sprintf("/cinemas/%d", movieID))

	if len(names) == 0 {
		return fmt.Sprintf("No cinemas matched, showing all cinemas for %s", movie.Title), nil
	}
	return fmt.Sprintf("Showing cinemas for %s: %s", movie.Title, strings.Join(names, ", ")), nil
}

func (e *Executor) applySelectShowtime(sess *models.Session, params map[string]any) (string, error) {
	movieID, ok := intParam(params, "movieId")
	if !ok {
		if sess.Context.CurrentMovieID == nil {
			return "", preconditionMissing("cannot select a showtime: no movie selected")
		}
		movieID = *sess.Context.CurrentMovieID
	}
	if _, found := sess.Context.MovieByID(movieID); !found {
		return "", notFound("movie #%d not found", movieID)
	}

	cinema, err := e.resolveCinema(sess, params)
	if err != nil {
		return "", err
	}

	showtime := stringParam(params, "showtime")
	if showtime != "" && !offersShowtime(cinema, showtime) {
		return "", notFound("%s does not offer a %s showtime", cinema.Name, showtime)
	}

	id := cinema.ID
	sess.Context.CurrentMovieID = &movieID
	sess.Context.CurrentCinemaID = &id

	path := fmt.Sprintf("/seats/%d/%d", movieID, id)
	if showtime != "" {
		sess.Context.SelectedShowtime = showtime
		path += "?time=" + url.QueryEscape(showtime)
	}
	e.navigateTo(sess, path)

	if showtime != "" {
		return fmt.Sprintf("Selected the %s showtime at %s", showtime, cinema.Name), nil
	}
	return fmt.Sprintf("Taking you to seat selection at %s", cinema.Name), nil
}

func (e *Executor) applySelectSeats(sess *models.Session, params map[string]any) (string, error) {
	quantity, _ := intParam(params, "quantity")
	tier := strings.ToLower(stringParam(params, "tier"))
	seatIDs := stringSliceParam(params, "seatIds")

	if !seatTiers[tier] {
		tier = ""
	}
	if quantity <= 0 && len(seatIDs) == 0 {
		return "", preconditionMissing("seat selection needs a quantity or explicit seat ids")
	}

	// Recorded as an intent only; SelectedSeats stays untouched until the
	// seat view consumes it.
	sess.PendingSeats = &models.SeatIntent{
		Quantity: quantity,
		Tier:     tier,
		SeatIDs:  seatIDs,
	}

	if len(seatIDs) > 0 {
		return fmt.Sprintf("Will select seats %s when the seat map opens", strings.Join(seatIDs, ", ")), nil
	}
	if tier != "" {
		return fmt.Sprintf("Will select %d %s seat(s) when the seat map opens", quantity, tier), nil
	}
	return fmt.Sprintf("Will select %d seat(s) when the seat map opens", quantity), nil
}

func (e *Executor) applyShowInfo(sess *models.Session, params map[string]any) (string, error) {
	movie, err := e.resolveMovie(sess, params)
	if err != nil {
		// show_info with no reference falls back to the current movie.
		if sess.Context.CurrentMovieID != nil {
			if m, found := sess.Context.MovieByID(*sess.Context.CurrentMovieID); found {
				movie = m
				err = nil
			}
		}
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%s (%s, %s): %s", movie.Title, movie.Genre, movie.Runtime, movie.Synopsis), nil
}

// resolveMovie resolves movieId directly or movieTitle by exact
// case-insensitive match against the catalog snapshot.
func (e *Executor) resolveMovie(sess *models.Session, params map[string]any) (models.Movie, error) {
	if id, ok := intParam(params, "movieId"); ok {
		movie, found := sess.Context.MovieByID(id)
		if !found {
			return models.Movie{}, notFound("movie #%d not found", id)
		}
		return movie, nil
	}
	if title := stringParam(params, "movieTitle"); title != "" {
		movie, found := sess.Context.MovieByTitle(title)
		if !found {
			return models.Movie{}, notFound("movie %q not found", title)
		}
		return movie, nil
	}
	return models.Movie{}, preconditionMissing("no movie id or title given")
}

func (e *Executor) resolveCinema(sess *models.Session, params map[string]any) (models.Cinema, error) {
	if id, ok := intParam(params, "cinemaId"); ok {
		cinema, found := sess.Context.CinemaByID(id)
		if !found {
			return models.Cinema{}, notFound("cinema #%d not found", id)
		}
		return cinema, nil
	}
	if name := stringParam(params, "cinemaName"); name != "" {
		cinema, found := sess.Context.CinemaByName(name)
		if !found {
			return models.Cinema{}, notFound("cinema %q not found", name)
		}
		return cinema, nil
	}
	if sess.Context.CurrentCinemaID != nil {
		cinema, found := sess.Context.CinemaByID(*sess.Context.CurrentCinemaID)
		if found {
			return cinema, nil
		}
	}
	return models.Cinema{}, preconditionMissing("cannot select a showtime: no cinema selected")
}

func offersShowtime(cinema models.Cinema, showtime string) bool {
	for _, t := range cinema.Showtimes {
		if strings.EqualFold(t, showtime) {
			return true
		}
	}
	return false
}
