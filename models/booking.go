package models

import "time"

// SeatStatus is the state of one seat in a showtime's seat map.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatTaken     SeatStatus = "taken"
)

// Seat is one seat in a generated seat map. Price is in whole pesos.
type Seat struct {
	ID     string     `json:"id"` // e.g. "A5"
	Row    string     `json:"row"`
	Number int        `json:"number"`
	Tier   string     `json:"tier"` // regular, premium, vip
	Status SeatStatus `json:"status"`
	Price  int64      `json:"price"`
}

// Booking is created pending at checkout and confirmed by the payment
// webhook.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	MovieID     int       `bson:"movie_id" json:"movieId"`
	CinemaID    int       `bson:"cinema_id" json:"cinemaId"`
	Showtime    string    `bson:"showtime" json:"showtime"`
	Seats       []string  `bson:"seats" json:"seats"`
	TotalAmount int64     `bson:"total_amount" json:"totalAmount"`
	Status      string    `bson:"status" json:"status"` // pending, confirmed
	CheckoutRef string    `bson:"checkout_ref,omitempty" json:"checkoutRef,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// CheckoutInput carries a completed seat selection to the payment
// boundary. The assistant core's only obligation is to deliver these
// identifiers intact.
type CheckoutInput struct {
	MovieID  int      `json:"movieId" binding:"required"`
	CinemaID int      `json:"cinemaId" binding:"required"`
	Showtime string   `json:"showtime" binding:"required"`
	Seats    []string `json:"seats" binding:"required"`
}

// CheckoutResponse returns the confirmation reference and the payment
// redirect URL.
type CheckoutResponse struct {
	BookingID   string `json:"bookingId"`
	CheckoutURL string `json:"checkoutUrl"`
	TotalAmount int64  `json:"totalAmount"`
}
