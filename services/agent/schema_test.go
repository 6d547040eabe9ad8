// File: cinequest/services/agent/schema_test.go
package agent

import (
	"testing"

	"cinequest/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeActionType(t *testing.T) {
	tests := []struct {
		name string
		want models.ActionType
	}{
		{"navigate_to_page", models.ActionNavigate},
		{"filter_movies", models.ActionFilterMovies},
		{"select_movie", models.ActionSelectMovie},
		{"find_cinemas", models.ActionFindCinemas},
		{"select_showtime", models.ActionSelectShowtime},
		{"select_seats", models.ActionSelectSeats},
		{"show_movie_info", models.ActionShowInfo},
		{"delete_account", models.ActionShowInfo},
		{"", models.ActionShowInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeActionType(tt.name), "name %q", tt.name)
	}
}

func TestSanitizeActionDropsUndeclaredParams(t *testing.T) {
	action := SanitizeAction("select_movie", map[string]any{
		"movieId":    float64(2),
		"movieTitle": "Inside Out 2",
		"rating":     "PG",
		"internal":   map[string]any{"x": 1},
	})

	assert.Equal(t, models.ActionSelectMovie, action.Type)
	assert.Equal(t, map[string]any{
		"movieId":    float64(2),
		"movieTitle": "Inside Out 2",
	}, action.Params)
}

func TestSanitizeActionUnknownNameBecomesShowInfo(t *testing.T) {
	action := SanitizeAction("summon_popcorn", map[string]any{
		"movieId": float64(3),
		"flavor":  "salted",
	})

	assert.Equal(t, models.ActionShowInfo, action.Type)
	assert.Equal(t, map[string]any{"movieId": float64(3)}, action.Params)
}

func TestSanitizeActionDropsNilValues(t *testing.T) {
	action := SanitizeAction("filter_movies", map[string]any{
		"genre":      nil,
		"searchTerm": "speed",
	})

	assert.Equal(t, map[string]any{"searchTerm": "speed"}, action.Params)
}

func TestActionDeclarationsCoverTheVocabulary(t *testing.T) {
	decls := actionDeclarations()
	assert.Len(t, decls, len(functionNameToAction))
	for _, d := range decls {
		_, ok := functionNameToAction[d.Name]
		assert.True(t, ok, "declaration %q has no action mapping", d.Name)
	}
}
