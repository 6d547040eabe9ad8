// File: cinequest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinequest/catalog"
	"cinequest/config"
	"cinequest/database"
	"cinequest/database/repository"
	"cinequest/handlers"
	"cinequest/middleware"
	"cinequest/routes"
	"cinequest/services/agent"
	"cinequest/services/booking"
	"cinequest/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// catalog and repositories.
	catalogProvider := catalog.NewStaticProvider()
	bookingRepo, err := repository.NewMongoBookingRepo()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
	}

	// The intent resolver: remote when a Gemini credential is present,
	// otherwise the deterministic keyword fallback.
	var resolver agent.Resolver
	if config.RemoteAgentConfigured() {
		geminiResolver, err := agent.NewGeminiResolver(
			context.Background(),
			config.AppConfig.GeminiAPIKey,
			config.AppConfig.GeminiModel,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini resolver: %v", err)
		}
		resolver = geminiResolver
		logger.Sugar().Info("main: using remote intent resolver")
	} else {
		resolver = agent.NewLocalResolver()
		logger.Sugar().Info("main: using local intent resolver")
	}

	// services.
	sessionStore := agent.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	agentService := agent.NewDefaultAgentService(
		sessionStore,
		resolver,
		catalogProvider,
		time.Duration(config.AppConfig.AgentTimeoutSeconds)*time.Second,
	)
	agentService.Nav = agent.LogNavigator{}

	var payments booking.PaymentProcessor
	if config.AppConfig.StripeKey != "" {
		payments = booking.NewStripeCheckoutProcessor(config.AppConfig.SiteURL)
	} else {
		payments = booking.NewLocalCheckoutProcessor(config.AppConfig.SiteURL)
	}
	bookingService := &booking.DefaultBookingService{
		Catalog:       catalogProvider,
		Repo:          bookingRepo,
		Payments:      payments,
		WebhookSecret: config.AppConfig.StripeWebhookSecret,
	}

	assistantHandler := handlers.NewAssistantHandler(agentService)
	catalogHandler := handlers.NewCatalogHandler(catalogProvider)
	bookingHandler := handlers.NewBookingHandler(bookingService, agentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Assistant endpoints.
		CreateSessionHandler: assistantHandler.CreateSessionHandler,
		ChatHandler:          assistantHandler.ChatHandler,
		SyncContextHandler:   assistantHandler.SyncContextHandler,
		TranscriptHandler:    assistantHandler.TranscriptHandler,

		// Catalog endpoints.
		GetMoviesHandler:    catalogHandler.GetMoviesHandler,
		GetMovieByIDHandler: catalogHandler.GetMovieByIDHandler,
		GetCinemasHandler:   catalogHandler.GetCinemasHandler,

		// Booking endpoints.
		GetSeatMapHandler:    bookingHandler.GetSeatMapHandler,
		SelectSeatsHandler:   bookingHandler.SelectSeatsHandler,
		CheckoutHandler:      bookingHandler.CheckoutHandler,
		StripeWebhookHandler: bookingHandler.StripeWebhookHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
