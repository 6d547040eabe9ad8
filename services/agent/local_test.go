// File: cinequest/services/agent/local_test.go
package agent

import (
	"context"
	"testing"

	"cinequest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userTurn(text string) []models.Message {
	return []models.Message{
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: text},
	}
}

func TestLocalResolverPatterns(t *testing.T) {
	tests := []struct {
		name       string
		utterance  string
		wantType   models.ActionType
		wantParams map[string]any
	}{
		{
			name:      "take me to selects a movie by title",
			utterance: "Take me to Inside Out 2",
			wantType:  models.ActionSelectMovie,
			wantParams: map[string]any{
				"movieTitle": "inside out 2",
			},
		},
		{
			name:      "show me genre movies filters",
			utterance: "Show me action movies",
			wantType:  models.ActionFilterMovies,
			wantParams: map[string]any{
				"genre": "action",
			},
		},
		{
			name:      "book with tier selects seats",
			utterance: "Book 2 VIP seats",
			wantType:  models.ActionSelectSeats,
			wantParams: map[string]any{
				"quantity": 2,
				"tier":     "vip",
			},
		},
		{
			name:      "book without tier omits the tier param",
			utterance: "book 3 seats please",
			wantType:  models.ActionSelectSeats,
			wantParams: map[string]any{
				"quantity": 3,
			},
		},
	}

	r := NewLocalResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, actions, err := r.Resolve(context.Background(), userTurn(tt.utterance), nil)

			require.NoError(t, err)
			require.Len(t, actions, 1)
			assert.NotEmpty(t, reply)
			assert.Equal(t, tt.wantType, actions[0].Type)
			assert.Equal(t, tt.wantParams, actions[0].Params)
		})
	}
}

func TestLocalResolverUnmatchedFallsBackToHelp(t *testing.T) {
	r := NewLocalResolver()

	reply, actions, err := r.Resolve(context.Background(), userTurn("what is the meaning of life"), nil)

	require.NoError(t, err)
	assert.Nil(t, actions)
	assert.Equal(t, localHelpText, reply)
}

func TestLocalResolverIsDeterministic(t *testing.T) {
	r := NewLocalResolver()
	transcript := userTurn("Show me action movies")

	reply1, actions1, err1 := r.Resolve(context.Background(), transcript, nil)
	reply2, actions2, err2 := r.Resolve(context.Background(), transcript, nil)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, reply1, reply2)
	assert.Equal(t, actions1, actions2)
}

func TestLocalResolverUsesLatestUserMessage(t *testing.T) {
	r := NewLocalResolver()
	transcript := []models.Message{
		{Role: "user", Content: "show me action movies"},
		{Role: "assistant", Content: "Filtered."},
		{Role: "user", Content: "take me to Speed Chase"},
	}

	_, actions, err := r.Resolve(context.Background(), transcript, nil)

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, models.ActionSelectMovie, actions[0].Type)
	assert.Equal(t, "speed chase", actions[0].Params["movieTitle"])
}
