// File: cinequest/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	CreateSessionHandler gin.HandlerFunc
	ChatHandler          gin.HandlerFunc
	SyncContextHandler   gin.HandlerFunc
	TranscriptHandler    gin.HandlerFunc

	// Catalog endpoints
	GetMoviesHandler    gin.HandlerFunc
	GetMovieByIDHandler gin.HandlerFunc
	GetCinemasHandler   gin.HandlerFunc

	// Booking endpoints
	GetSeatMapHandler    gin.HandlerFunc
	SelectSeatsHandler   gin.HandlerFunc
	CheckoutHandler      gin.HandlerFunc
	StripeWebhookHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
}
