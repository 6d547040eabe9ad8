package booking

import "cinequest/models"

// Service is the booking side of the system: seat maps, checkout, and
// webhook confirmation. The assistant core only hands selections across
// this boundary; it never owns payment state.
type Service interface {
	SeatMap(movieID, cinemaID int, showtime string) ([]models.Seat, error)
	Checkout(input models.CheckoutInput) (*models.CheckoutResponse, error)
	ConfirmFromWebhook(payload []byte, signature string) error
	GetBooking(id string) (*models.Booking, error)
}
