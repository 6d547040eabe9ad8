// File: cinequest/handlers/booking.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"cinequest/models"
	"cinequest/services/agent"
	"cinequest/services/booking"
	"cinequest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves seat maps, checkout, and the payment webhook.
// It also consumes pending seat intents the assistant recorded, so a
// "book 2 vip seats" utterance lands as a concrete selection the moment
// the seat view loads.
type BookingHandler struct {
	Svc   booking.Service
	Agent agent.Service
}

func NewBookingHandler(svc booking.Service, agentSvc agent.Service) *BookingHandler {
	return &BookingHandler{Svc: svc, Agent: agentSvc}
}

// GetSeatMapHandler handles GET /api/seats/:movieID/:cinemaID?time=&sessionId=.
func (h *BookingHandler) GetSeatMapHandler(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("movieID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid movie id", c.Param("movieID"))
		return
	}
	cinemaID, err := strconv.Atoi(c.Param("cinemaID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cinema id", c.Param("cinemaID"))
		return
	}
	showtime := c.Query("time")
	if showtime == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing showtime", "query parameter 'time' is required")
		return
	}

	seats, err := h.Svc.SeatMap(movieID, cinemaID, showtime)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	selected := h.consumePendingSeats(c, seats)
	if len(selected) > 0 {
		markSelected(seats, selected)
	}

	c.JSON(http.StatusOK, gin.H{
		"seats":         seats,
		"selectedSeats": selected,
	})
}

// consumePendingSeats resolves a pending seat intent, if the caller
// supplied a session and the assistant recorded one, into concrete seat
// ids against the freshly generated map. An unsatisfiable intent is
// dropped rather than surfaced as an error; the user simply picks by
// hand.
func (h *BookingHandler) consumePendingSeats(c *gin.Context, seats []models.Seat) []string {
	logger := utils.GetLogger()
	sessionID := c.Query("sessionId")
	if sessionID == "" || h.Agent == nil {
		return nil
	}
	sess, err := h.Agent.Session(c.Request.Context(), sessionID)
	if err != nil || sess.PendingSeats == nil {
		return nil
	}
	selected, err := booking.ApplySeatIntent(seats, *sess.PendingSeats)
	if err != nil {
		logger.Warn("Pending seat intent could not be applied",
			zap.String("sessionID", sessionID), zap.Error(err))
		selected = nil
	}
	if err := h.Agent.SetSelectedSeats(c.Request.Context(), sessionID, selected); err != nil {
		logger.Warn("Failed to record seat selection", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return selected
}

// SelectSeatsHandler handles POST /api/seats/select. It records a manual
// seat selection against the assistant session.
func (h *BookingHandler) SelectSeatsHandler(c *gin.Context) {
	var req struct {
		SessionID string   `json:"sessionId" binding:"required"`
		Seats     []string `json:"seats" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid seat selection", err.Error())
		return
	}
	if err := h.Agent.SetSelectedSeats(c.Request.Context(), req.SessionID, req.Seats); err != nil {
		if errors.Is(err, agent.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to record seat selection", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"selectedSeats": req.Seats})
}

// CheckoutHandler handles POST /api/checkout.
func (h *BookingHandler) CheckoutHandler(c *gin.Context) {
	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkout request", err.Error())
		return
	}
	resp, err := h.Svc.Checkout(input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StripeWebhookHandler handles POST /api/webhooks/stripe. Stripe signs
// the raw payload, so the body must be read before any binding.
func (h *BookingHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read webhook payload", err.Error())
		return
	}
	signature := c.GetHeader("Stripe-Signature")
	if err := h.Svc.ConfirmFromWebhook(payload, signature); err != nil {
		logger.Warn("Webhook rejected", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "webhook rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// respondBookingError maps booking error codes onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var berr *booking.BookingError
	if !errors.As(err, &berr) {
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
		return
	}
	status := http.StatusInternalServerError
	switch berr.Code {
	case booking.ErrCodeNotFound:
		status = http.StatusNotFound
	case booking.ErrCodeSeatUnavailable, booking.ErrCodeInvalidShowtime:
		status = http.StatusUnprocessableEntity
	case booking.ErrCodePaymentFailed:
		status = http.StatusBadGateway
	}
	utils.JSONError(c, status, berr.Message, berr.Code)
}

// markSelected flips the given seat ids to selected in the response map.
func markSelected(seats []models.Seat, ids []string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	for i := range seats {
		if _, ok := set[seats[i].ID]; ok {
			seats[i].Status = models.SeatSelected
		}
	}
}
