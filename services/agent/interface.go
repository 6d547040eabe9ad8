package agent

import (
	"context"

	"cinequest/models"
)

// ContextUpdate is a partial, client-driven context sync applied when the
// user navigates manually. A route change moves the session epoch, which
// invalidates any resolution still in flight for an older turn.
type ContextUpdate struct {
	Route            *string   `json:"route,omitempty"`
	CurrentMovieID   *int      `json:"currentMovieId,omitempty"`
	ClearMovie       bool      `json:"clearMovie,omitempty"`
	CurrentCinemaID  *int      `json:"currentCinemaId,omitempty"`
	ClearCinema      bool      `json:"clearCinema,omitempty"`
	SelectedShowtime *string   `json:"selectedShowtime,omitempty"`
	SelectedSeats    *[]string `json:"selectedSeats,omitempty"`
}

// Service is the conversational assistant: it owns the transcript, the
// turn-taking cycle, and the application of resolved actions to the
// booking context.
type Service interface {
	CreateSession(ctx context.Context) (*models.Session, error)
	Session(ctx context.Context, sessionID string) (*models.Session, error)
	Chat(ctx context.Context, sessionID, text string) (*models.ChatResult, error)
	SyncContext(ctx context.Context, sessionID string, upd ContextUpdate) (*models.Session, error)
	Transcript(ctx context.Context, sessionID string) ([]models.Message, error)
	SetSelectedSeats(ctx context.Context, sessionID string, seats []string) error
}
