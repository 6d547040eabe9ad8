// File: cinequest/services/agent/schema.go
package agent

import (
	"cinequest/models"

	genai "github.com/google/generative-ai-go/genai"
)

// functionNameToAction maps the function names exposed to the model onto
// the closed action vocabulary. Anything the model invents outside this
// table is treated as show_info rather than rejected.
var functionNameToAction = map[string]models.ActionType{
	"navigate_to_page": models.ActionNavigate,
	"filter_movies":    models.ActionFilterMovies,
	"select_movie":     models.ActionSelectMovie,
	"find_cinemas":     models.ActionFindCinemas,
	"select_showtime":  models.ActionSelectShowtime,
	"select_seats":     models.ActionSelectSeats,
	"show_movie_info":  models.ActionShowInfo,
}

// allowedParams lists the declared parameter keys per action type.
// Unknown fields coming back from the model are dropped at this boundary
// so they never reach the executor.
var allowedParams = map[models.ActionType][]string{
	models.ActionNavigate:       {"page", "movieId", "cinemaId", "showtime"},
	models.ActionFilterMovies:   {"genre", "searchTerm"},
	models.ActionSelectMovie:    {"movieId", "movieTitle"},
	models.ActionFindCinemas:    {"movieId", "location", "maxDistance"},
	models.ActionSelectShowtime: {"movieId", "cinemaId", "cinemaName", "showtime"},
	models.ActionSelectSeats:    {"quantity", "tier", "seatIds"},
	models.ActionShowInfo:       {"movieId", "movieTitle"},
}

// NormalizeActionType resolves a remote function name to an action type,
// defaulting to show_info for anything unknown.
func NormalizeActionType(name string) models.ActionType {
	if t, ok := functionNameToAction[name]; ok {
		return t
	}
	return models.ActionShowInfo
}

// SanitizeAction builds a validated Action from a raw function call,
// keeping only the declared parameter keys for its type.
func SanitizeAction(name string, args map[string]any) models.Action {
	t := NormalizeActionType(name)
	params := make(map[string]any)
	for _, key := range allowedParams[t] {
		if v, ok := args[key]; ok && v != nil {
			params[key] = v
		}
	}
	return models.Action{Type: t, Params: params}
}

// actionDeclarations is the closed function-call interface handed to the
// model. It mirrors the action vocabulary one to one.
func actionDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "navigate_to_page",
			Description: "Navigate to a specific page in the cinema booking app",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"page": {
						Type:        genai.TypeString,
						Enum:        []string{"movies", "cinemas", "seats"},
						Description: "The page to navigate to",
					},
					"movieId":  {Type: genai.TypeNumber, Description: "Movie ID (required for cinemas and seats pages)"},
					"cinemaId": {Type: genai.TypeNumber, Description: "Cinema ID (required for seats page)"},
					"showtime": {Type: genai.TypeString, Description: "Selected showtime (for seats page)"},
				},
				Required: []string{"page"},
			},
		},
		{
			Name:        "filter_movies",
			Description: "Filter or search for movies by genre, title, or other criteria",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"genre":      {Type: genai.TypeString, Description: "Genre to filter by (e.g., 'Action', 'Sci-Fi', 'Animation')"},
					"searchTerm": {Type: genai.TypeString, Description: "Search term to find specific movies by title"},
				},
			},
		},
		{
			Name:        "select_movie",
			Description: "Select a specific movie and navigate to view available cinemas",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"movieId":    {Type: genai.TypeNumber, Description: "ID of the movie to select"},
					"movieTitle": {Type: genai.TypeString, Description: "Title of the movie (used to find the movie if ID not known)"},
				},
			},
		},
		{
			Name:        "find_cinemas",
			Description: "Find cinemas showing a movie, optionally filtered by location or distance",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"movieId":     {Type: genai.TypeNumber, Description: "ID of the movie"},
					"location":    {Type: genai.TypeString, Description: "Preferred location (e.g., 'Makati')"},
					"maxDistance": {Type: genai.TypeString, Description: "Maximum distance (e.g., '5 km')"},
				},
				Required: []string{"movieId"},
			},
		},
		{
			Name:        "select_showtime",
			Description: "Select a cinema and showtime, then navigate to seat selection",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"movieId":    {Type: genai.TypeNumber, Description: "Movie ID"},
					"cinemaId":   {Type: genai.TypeNumber, Description: "Cinema ID"},
					"cinemaName": {Type: genai.TypeString, Description: "Cinema name (used to find cinema if ID not known)"},
					"showtime":   {Type: genai.TypeString, Description: "Selected showtime (e.g., '7:30 PM')"},
				},
				Required: []string{"movieId"},
			},
		},
		{
			Name:        "select_seats",
			Description: "Automatically select seats based on user preferences",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"quantity": {Type: genai.TypeNumber, Description: "Number of seats to select"},
					"tier": {
						Type:        genai.TypeString,
						Enum:        []string{"regular", "premium", "vip"},
						Description: "Seat tier preference",
					},
					"seatIds": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Specific seat IDs to select (e.g., ['A5', 'A6'])",
					},
				},
			},
		},
		{
			Name:        "show_movie_info",
			Description: "Display detailed information about a specific movie",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"movieId":    {Type: genai.TypeNumber, Description: "Movie ID"},
					"movieTitle": {Type: genai.TypeString, Description: "Movie title"},
				},
			},
		},
	}
}
