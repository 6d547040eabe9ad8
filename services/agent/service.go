// File: cinequest/services/agent/service.go
package agent

import (
	"context"
	"errors"
	"sync"
	"time"

	"cinequest/catalog"
	"cinequest/models"
	"cinequest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const greetingText = `Hi! I'm your cinema assistant. I can help you find movies, locate cinemas, book tickets, or answer any questions. Try asking me something like "Show me action movies" or "Find Inside Out 2 near me"!`

// DefaultAgentService runs the conversation loop. Each session moves
// through idle -> awaiting_resolution -> applying_actions -> idle; the
// in-flight registry guarantees at most one cycle per session at a time.
type DefaultAgentService struct {
	Store    SessionStore
	Resolver Resolver
	Catalog  catalog.Provider
	Nav      Navigator
	Timeout  time.Duration

	mu       sync.Mutex
	inflight map[string]bool
}

func NewDefaultAgentService(store SessionStore, resolver Resolver, cat catalog.Provider, timeout time.Duration) *DefaultAgentService {
	return &DefaultAgentService{
		Store:    store,
		Resolver: resolver,
		Catalog:  cat,
		Timeout:  timeout,
		inflight: make(map[string]bool),
	}
}

func (s *DefaultAgentService) CreateSession(ctx context.Context) (*models.Session, error) {
	sess := &models.Session{
		ID: uuid.New().String(),
		Context: models.BookingContext{
			CurrentPage:      models.PageMovies,
			CurrentRoute:     "/",
			AvailableMovies:  s.Catalog.Movies(),
			AvailableCinemas: s.Catalog.Cinemas(),
		},
		Messages:  []models.Message{{Role: "assistant", Content: greetingText}},
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultAgentService) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultAgentService) Transcript(ctx context.Context, sessionID string) ([]models.Message, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Messages, nil
}

// Chat runs one conversation turn: append the user message, resolve,
// execute the resolved actions, append the annotated assistant message.
// A second submission while a turn is in flight is rejected without
// touching the transcript.
func (s *DefaultAgentService) Chat(ctx context.Context, sessionID, text string) (*models.ChatResult, error) {
	if !s.begin(sessionID) {
		return nil, ErrTurnInFlight
	}
	defer s.end(sessionID)

	logger := utils.GetLogger()

	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.AppendUser(text)
	sess.Turn++
	epoch := sess.Epoch
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}

	rctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reply, actions, rerr := s.Resolver.Resolve(rctx, sess.Messages, &sess.Context)
	if rerr != nil {
		return s.failTurn(ctx, sessionID, rerr)
	}

	// Stale-response guard: if the client navigated away while we were
	// resolving, the epoch has moved and the resolution must be
	// discarded, not applied to state it no longer corresponds to.
	// Actions run against the re-fetched session so that updates synced
	// mid-turn without a route change survive the final save.
	current, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.Epoch != epoch {
		logger.Warn("Discarding stale resolution",
			zap.String("session", sessionID),
			zap.Int("resolvedEpoch", epoch),
			zap.Int("currentEpoch", current.Epoch))
		return &models.ChatResult{Stale: true}, nil
	}

	executor := NewExecutor(s.Nav)
	results, oks := executor.Execute(current, actions)

	if reply == "" {
		reply = actionConfirmation(actions)
	}
	current.AppendAssistant(reply, actions, results)
	if err := s.Store.Save(ctx, current); err != nil {
		return nil, err
	}

	result := &models.ChatResult{
		Reply:         reply,
		Actions:       actions,
		ActionResults: results,
		Route:         current.Context.CurrentRoute,
	}
	if len(results) > 0 {
		kind := "success"
		if !oks[0] {
			kind = "error"
		}
		result.Notification = &models.Notification{Kind: kind, Text: results[0]}
	}
	return result, nil
}

// failTurn surfaces a resolver-level failure: no actions run, the
// transcript gets exactly one explanatory assistant message, the caller
// gets exactly one error notification, and the context is untouched.
// The session is re-fetched so the message lands on whatever state the
// client synced while the resolver was running.
func (s *DefaultAgentService) failTurn(ctx context.Context, sessionID string, rerr error) (*models.ChatResult, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	msg := resolverFailureText(rerr)
	sess.AppendAssistant(msg, nil, nil)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return &models.ChatResult{
		Reply:        msg,
		Notification: &models.Notification{Kind: "error", Text: msg},
	}, nil
}

func resolverFailureText(err error) string {
	var rerr *ResolverError
	if !errors.As(err, &rerr) {
		return "Something went wrong talking to the assistant. Please try again."
	}
	switch rerr.Code {
	case ErrCodeRateLimited:
		return "The assistant is getting too many requests right now. Please wait a moment and try again."
	case ErrCodeUnauthorized:
		return "The assistant service rejected our credentials. Please check the configuration."
	case ErrCodeMalformedResponse:
		return "I received a response I couldn't make sense of. Please try rephrasing."
	default:
		return "I couldn't reach the assistant service. Please try again in a moment."
	}
}

// SyncContext applies a client-driven partial update. Clearing the
// current movie deliberately leaves cinema and showtime as-is; the caller
// clears dependents when navigating backward.
func (s *DefaultAgentService) SyncContext(ctx context.Context, sessionID string, upd ContextUpdate) (*models.Session, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if upd.Route != nil {
		sess.Context.ApplyRoute(*upd.Route)
		sess.Epoch++
	}
	if upd.CurrentMovieID != nil {
		sess.Context.CurrentMovieID = upd.CurrentMovieID
	} else if upd.ClearMovie {
		sess.Context.CurrentMovieID = nil
	}
	if upd.CurrentCinemaID != nil {
		sess.Context.CurrentCinemaID = upd.CurrentCinemaID
	} else if upd.ClearCinema {
		sess.Context.CurrentCinemaID = nil
	}
	if upd.SelectedShowtime != nil {
		sess.Context.SelectedShowtime = *upd.SelectedShowtime
	}
	if upd.SelectedSeats != nil {
		sess.Context.SelectedSeats = *upd.SelectedSeats
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetSelectedSeats writes a consumed seat selection to the context and
// clears any pending intent. Called by the seat view after it applies a
// select_seats intent to the live seat map.
func (s *DefaultAgentService) SetSelectedSeats(ctx context.Context, sessionID string, seats []string) error {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Context.SelectedSeats = seats
	sess.PendingSeats = nil
	return s.Store.Save(ctx, sess)
}

func (s *DefaultAgentService) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[sessionID] {
		return false
	}
	s.inflight[sessionID] = true
	return true
}

func (s *DefaultAgentService) end(sessionID string) {
	s.mu.Lock()
	delete(s.inflight, sessionID)
	s.mu.Unlock()
}
