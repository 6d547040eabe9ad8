// File: cinequest/handlers/http_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"cinequest/catalog"
	"cinequest/handlers"
	"cinequest/models"
	"cinequest/routes"
	"cinequest/services/agent"
	"cinequest/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *memoryBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.NewBookingError(booking.ErrCodeNotFound, "booking %q not found", id)
	}
	return b, nil
}

func (r *memoryBookingRepo) UpdateStatus(id, status string) error {
	b, err := r.GetByID(id)
	if err != nil {
		return err
	}
	b.Status = status
	return nil
}

func (r *memoryBookingRepo) SetCheckoutRef(id, ref string) error {
	b, err := r.GetByID(id)
	if err != nil {
		return err
	}
	b.CheckoutRef = ref
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cat := catalog.NewStaticProvider()
	agentSvc := agent.NewDefaultAgentService(
		agent.NewInMemorySessionStore(),
		agent.NewLocalResolver(),
		cat,
		time.Second,
	)
	bookingSvc := &booking.DefaultBookingService{
		Catalog:       cat,
		Repo:          &memoryBookingRepo{bookings: make(map[string]*models.Booking)},
		Payments:      booking.NewLocalCheckoutProcessor("http://localhost:3000"),
		WebhookSecret: "whsec_test",
	}

	assistantHandler := handlers.NewAssistantHandler(agentSvc)
	catalogHandler := handlers.NewCatalogHandler(cat)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, agentSvc)

	hb := &handlers.HandlerBundle{
		CreateSessionHandler: assistantHandler.CreateSessionHandler,
		ChatHandler:          assistantHandler.ChatHandler,
		SyncContextHandler:   assistantHandler.SyncContextHandler,
		TranscriptHandler:    assistantHandler.TranscriptHandler,

		GetMoviesHandler:    catalogHandler.GetMoviesHandler,
		GetMovieByIDHandler: catalogHandler.GetMovieByIDHandler,
		GetCinemasHandler:   catalogHandler.GetCinemasHandler,

		GetSeatMapHandler:    bookingHandler.GetSeatMapHandler,
		SelectSeatsHandler:   bookingHandler.SelectSeatsHandler,
		CheckoutHandler:      bookingHandler.CheckoutHandler,
		StripeWebhookHandler: bookingHandler.StripeWebhookHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/assistant/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestChatEndpointFilterMovies(t *testing.T) {
	router := newTestRouter()
	sessionID := createSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/assistant/chat", gin.H{
		"sessionId": sessionID,
		"text":      "show me action movies",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result models.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Actions, 1)
	assert.Equal(t, models.ActionFilterMovies, result.Actions[0].Type)
	require.NotNil(t, result.Notification)
	assert.Equal(t, "success", result.Notification.Kind)
}

func TestChatEndpointUnknownSession(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/assistant/chat", gin.H{
		"sessionId": "ghost",
		"text":      "hello",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeatMapConsumesPendingIntent(t *testing.T) {
	router := newTestRouter()
	sessionID := createSession(t, router)

	// "book 2 vip" records a pending intent; nothing is selected yet.
	w := doJSON(t, router, http.MethodPost, "/api/assistant/chat", gin.H{
		"sessionId": sessionID,
		"text":      "book 2 vip seats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	path := fmt.Sprintf("/api/seats/1/1?time=%s&sessionId=%s",
		url.QueryEscape("7:30 PM"), sessionID)
	w = doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Seats         []models.Seat `json:"seats"`
		SelectedSeats []string      `json:"selectedSeats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Seats)
	require.Len(t, resp.SelectedSeats, 2)

	// A second load finds the intent consumed.
	w = doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.SelectedSeats)
}

func TestSeatMapRejectsUnknownShowtime(t *testing.T) {
	router := newTestRouter()

	path := "/api/seats/1/1?time=" + url.QueryEscape("11:11 PM")
	w := doJSON(t, router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestContextSyncEndpoint(t *testing.T) {
	router := newTestRouter()
	sessionID := createSession(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/assistant/context", gin.H{
		"sessionId": sessionID,
		"route":     "/cinemas/3",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Context models.BookingContext `json:"context"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.PageCinemas, resp.Context.CurrentPage)
	assert.Equal(t, "/cinemas/3", resp.Context.CurrentRoute)
}

func TestMoviesEndpointFiltering(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/movies?genre=action", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Movies []models.Movie `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Movies, 2)
	assert.Equal(t, "Shadow Protocol", resp.Movies[0].Title)
	assert.Equal(t, "Speed Chase", resp.Movies[1].Title)
}

func TestCheckoutEndpoint(t *testing.T) {
	router := newTestRouter()

	// Find two open seats first.
	path := "/api/seats/1/1?time=" + url.QueryEscape("7:30 PM")
	w := doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seatResp struct {
		Seats []models.Seat `json:"seats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seatResp))
	var picked []string
	for _, s := range seatResp.Seats {
		if s.Status == models.SeatAvailable {
			picked = append(picked, s.ID)
			if len(picked) == 2 {
				break
			}
		}
	}
	require.Len(t, picked, 2)

	w = doJSON(t, router, http.MethodPost, "/api/checkout", gin.H{
		"movieId":  1,
		"cinemaId": 1,
		"showtime": "7:30 PM",
		"seats":    picked,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.BookingID)
	assert.NotEmpty(t, resp.CheckoutURL)
	assert.Greater(t, resp.TotalAmount, int64(0))

	// The booking is retrievable and pending until the webhook confirms.
	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+resp.BookingID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "pending", b.Status)
}
