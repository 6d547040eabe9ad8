package models

import "time"

// SeatIntent is a pending seat-selection request recorded by the executor
// and consumed by the seat view when it mounts. SelectedSeats on the
// booking context is untouched until consumption.
type SeatIntent struct {
	Quantity int      `json:"quantity,omitempty"`
	Tier     string   `json:"tier,omitempty"`
	SeatIDs  []string `json:"seatIds,omitempty"`
}

// Session holds everything the assistant knows about one booking flow:
// the booking context, the append-only transcript, and the counters that
// guard turn ordering. Stored as a single blob, TTL-scoped, never
// persisted beyond the session.
type Session struct {
	ID      string         `json:"id"`
	Context BookingContext `json:"context"`

	// Messages is append-only; entries are never mutated after creation.
	Messages []Message `json:"messages"`

	// Turn counts accepted submissions. Epoch moves whenever the client
	// navigates on its own; a resolution that finishes under an older
	// epoch is discarded instead of applied (stale-response guard).
	Turn  int `json:"turn"`
	Epoch int `json:"epoch"`

	// PendingSeats carries a select_seats intent until the seat view
	// consumes it.
	PendingSeats *SeatIntent `json:"pendingSeats,omitempty"`

	// FilteredMovieIDs reflects the last filter_movies application; nil
	// means no filter (full catalog).
	FilteredMovieIDs []int `json:"filteredMovieIds,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppendUser appends a user turn to the transcript.
func (s *Session) AppendUser(text string) {
	s.Messages = append(s.Messages, Message{Role: "user", Content: text})
}

// AppendAssistant appends an assistant turn annotated with the actions
// taken and their results.
func (s *Session) AppendAssistant(text string, actions []Action, results []string) {
	s.Messages = append(s.Messages, Message{
		Role:          "assistant",
		Content:       text,
		Actions:       actions,
		ActionResults: results,
	})
}
