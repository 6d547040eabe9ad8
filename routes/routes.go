// File: cinequest/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"cinequest/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes sets up the conversational assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/sessions", hb.CreateSessionHandler)
		api.POST("/chat", hb.ChatHandler)
		api.PUT("/context", hb.SyncContextHandler)
		api.GET("/transcript/:sessionID", hb.TranscriptHandler)
	}
}

// RegisterCatalogRoutes sets up movie and cinema browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/movies", hb.GetMoviesHandler)
		api.GET("/movies/:id", hb.GetMovieByIDHandler)
		api.GET("/cinemas/:movieID", hb.GetCinemasHandler)
	}
}

// RegisterBookingRoutes sets up seat maps, checkout, and the payment
// webhook.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/seats/:movieID/:cinemaID", hb.GetSeatMapHandler)
		api.POST("/seats/select", hb.SelectSeatsHandler)
		api.POST("/checkout", hb.CheckoutHandler)
		api.POST("/webhooks/stripe", hb.StripeWebhookHandler)
		api.GET("/bookings/:id", hb.GetBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CineQuest"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAssistantRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
