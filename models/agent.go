package models

// ActionType enumerates the closed action vocabulary the assistant may
// request. Anything outside this set is normalized to ActionShowInfo
// before it reaches the executor.
type ActionType string

const (
	ActionNavigate       ActionType = "navigate"
	ActionFilterMovies   ActionType = "filter_movies"
	ActionSelectMovie    ActionType = "select_movie"
	ActionFindCinemas    ActionType = "find_cinemas"
	ActionSelectShowtime ActionType = "select_showtime"
	ActionSelectSeats    ActionType = "select_seats"
	ActionShowInfo       ActionType = "show_info"
)

// Action is a single typed instruction produced by the intent resolver and
// consumed exactly once by the executor. Params is shaped by Type.
type Action struct {
	Type   ActionType     `json:"type"`
	Params map[string]any `json:"params"`
}

// Message is one turn in the conversation transcript. Assistant turns may
// be annotated with the actions that produced them and one result string
// per action, in the same order.
type Message struct {
	Role          string   `json:"role"` // "user" or "assistant"
	Content       string   `json:"content"`
	Actions       []Action `json:"actions,omitempty"`
	ActionResults []string `json:"actionResults,omitempty"`
}

// Notification is a fire-and-forget transient message surfaced to the
// client alongside a chat response.
type Notification struct {
	Kind string `json:"kind"` // "success" or "error"
	Text string `json:"text"`
}

// ChatResult is the outcome of one conversation turn.
type ChatResult struct {
	Reply         string        `json:"response"`
	Actions       []Action      `json:"actions"`
	ActionResults []string      `json:"actionResults,omitempty"`
	Route         string        `json:"route,omitempty"`
	Notification  *Notification `json:"notification,omitempty"`

	// Stale marks a turn whose resolution arrived after the client had
	// already navigated away; the client should drop it silently.
	Stale bool `json:"stale,omitempty"`
}
