// File: cinequest/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderLookups(t *testing.T) {
	p := NewStaticProvider()

	assert.Len(t, p.Movies(), 6)
	assert.Len(t, p.Cinemas(), 3)

	movie, ok := p.MovieByID(2)
	require.True(t, ok)
	assert.Equal(t, "Inside Out 2", movie.Title)

	_, ok = p.MovieByID(999)
	assert.False(t, ok)

	cinema, ok := p.CinemaByID(3)
	require.True(t, ok)
	assert.Equal(t, "Glorietta Cineplex", cinema.Name)

	_, ok = p.CinemaByID(0)
	assert.False(t, ok)
}

func TestFilterMovies(t *testing.T) {
	p := NewStaticProvider()

	tests := []struct {
		name       string
		genre      string
		searchTerm string
		wantTitles []string
	}{
		{
			name:       "by genre substring",
			genre:      "action",
			wantTitles: []string{"Shadow Protocol", "Speed Chase"},
		},
		{
			name:       "by search term",
			searchTerm: "inside",
			wantTitles: []string{"Inside Out 2"},
		},
		{
			name:       "genre and search combined",
			genre:      "action",
			searchTerm: "speed",
			wantTitles: []string{"Speed Chase"},
		},
		{
			name:       "no match",
			genre:      "documentary",
			wantTitles: []string{},
		},
		{
			name: "empty criteria returns everything",
			wantTitles: []string{
				"Cosmic Horizons", "Inside Out 2", "Shadow Protocol",
				"Echoes of Yesterday", "The Last Kingdom", "Speed Chase",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterMovies(p.Movies(), tt.genre, tt.searchTerm)

			titles := make([]string, 0, len(got))
			for _, m := range got {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}
