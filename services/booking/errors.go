package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, format string, args ...any) error {
	return &BookingError{Code: code, Message: fmt.Sprintf(format, args...)}
}

const (
	ErrCodeNotFound        = "not_found"
	ErrCodeSeatUnavailable = "seat_unavailable"
	ErrCodeInvalidShowtime = "invalid_showtime"
	ErrCodePaymentFailed   = "payment_failed"
)
