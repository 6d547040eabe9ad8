// File: cinequest/services/booking/service.go
package booking

import (
	"encoding/json"
	"errors"
	"time"

	"cinequest/catalog"
	"cinequest/database/repository"
	"cinequest/models"
	"cinequest/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

type DefaultBookingService struct {
	Catalog       catalog.Provider
	Repo          repository.BookingRepository
	Payments      PaymentProcessor
	WebhookSecret string
}

func (s *DefaultBookingService) SeatMap(movieID, cinemaID int, showtime string) ([]models.Seat, error) {
	if _, ok := s.Catalog.MovieByID(movieID); !ok {
		return nil, NewBookingError(ErrCodeNotFound, "movie #%d not found", movieID)
	}
	cinema, ok := s.Catalog.CinemaByID(cinemaID)
	if !ok {
		return nil, NewBookingError(ErrCodeNotFound, "cinema #%d not found", cinemaID)
	}
	if showtime != "" && !cinemaOffers(cinema, showtime) {
		return nil, NewBookingError(ErrCodeInvalidShowtime, "%s does not offer a %s showtime", cinema.Name, showtime)
	}
	return GenerateSeatMap(movieID, cinemaID, showtime), nil
}

// Checkout creates a pending booking, prices the selection against the
// live seat map, and hands off to the payment processor. The webhook
// confirms the booking later.
func (s *DefaultBookingService) Checkout(input models.CheckoutInput) (*models.CheckoutResponse, error) {
	logger := utils.GetLogger()

	seats, err := s.SeatMap(input.MovieID, input.CinemaID, input.Showtime)
	if err != nil {
		return nil, err
	}
	total, err := ComputeTotal(seats, input.Seats)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:          uuid.New().String(),
		MovieID:     input.MovieID,
		CinemaID:    input.CinemaID,
		Showtime:    input.Showtime,
		Seats:       input.Seats,
		TotalAmount: total,
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	ref, checkoutURL, err := s.Payments.CreateCheckoutSession(b)
	if err != nil {
		logger.Error("Checkout session creation failed", zap.String("booking", b.ID), zap.Error(err))
		return nil, err
	}
	if err := s.Repo.SetCheckoutRef(b.ID, ref); err != nil {
		return nil, err
	}

	logger.Info("Checkout session created",
		zap.String("booking", b.ID),
		zap.String("ref", ref),
		zap.Int64("total", total))

	return &models.CheckoutResponse{
		BookingID:   b.ID,
		CheckoutURL: checkoutURL,
		TotalAmount: total,
	}, nil
}

// ConfirmFromWebhook verifies the Stripe signature and flips the booking
// to confirmed on checkout.session.completed. Unknown event types are
// acknowledged and ignored.
func (s *DefaultBookingService) ConfirmFromWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.WebhookSecret)
	if err != nil {
		return NewBookingError(ErrCodePaymentFailed, "webhook signature verification failed: %v", err)
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return NewBookingError(ErrCodePaymentFailed, "failed to decode checkout session: %v", err)
	}
	bookingID := cs.Metadata["booking_id"]
	if bookingID == "" {
		return nil
	}

	if err := s.Repo.UpdateStatus(bookingID, "confirmed"); err != nil {
		return err
	}
	utils.GetLogger().Info("Booking confirmed", zap.String("booking", bookingID))
	return nil
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, NewBookingError(ErrCodeNotFound, "booking %q not found", id)
	}
	return b, err
}

func cinemaOffers(cinema models.Cinema, showtime string) bool {
	for _, t := range cinema.Showtimes {
		if t == showtime {
			return true
		}
	}
	return false
}
