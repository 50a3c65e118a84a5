// File: astrodesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astrodesk/config"
	"astrodesk/cron"
	"astrodesk/database"
	adminRepoPkg "astrodesk/database/repository/admin"
	analyticsRepoPkg "astrodesk/database/repository/analytics"
	bookingRepoPkg "astrodesk/database/repository/booking"
	chatRepoPkg "astrodesk/database/repository/chat"
	queryRepoPkg "astrodesk/database/repository/query"
	"astrodesk/handlers"
	"astrodesk/middleware"
	"astrodesk/routes"
	"astrodesk/services/admin"
	"astrodesk/services/analytics"
	"astrodesk/services/booking"
	"astrodesk/services/chat"
	"astrodesk/services/query"
	"astrodesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	queryRepo := queryRepoPkg.NewMongoQueryRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	analyticsRepo := analyticsRepoPkg.NewMongoAnalyticsRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	slotLocker := utils.NewRedisSlotLocker(utils.GetLockClient(), 10*time.Second)
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Locker:    slotLocker,
		Analytics: analyticsRepo,
	}
	queryService := &query.DefaultQueryService{
		Repo:      queryRepo,
		Analytics: analyticsRepo,
	}
	chatService := &chat.DefaultChatService{
		Repo:          chatRepo,
		Completer:     newCompleter(),
		Analytics:     analyticsRepo,
		HistoryWindow: config.AppConfig.ChatHistoryWindow,
		Timeout:       time.Duration(config.AppConfig.ChatTimeoutSecs) * time.Second,
	}
	adminService := &admin.DefaultAdminService{Repo: adminRepo}
	analyticsService := &analytics.DefaultAnalyticsService{Repo: analyticsRepo}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	queryHandler := handlers.NewQueryHandler(queryService, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, logger)
	authHandler := handlers.NewAuthHandler(adminService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		GetTimeSlotsHandler:        bookingHandler.GetTimeSlotsHandler,
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingsHandler:         bookingHandler.GetBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		UpdateBookingNotesHandler:  bookingHandler.UpdateBookingNotesHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,

		// Query endpoints.
		CreateQueryHandler:       queryHandler.CreateQueryHandler,
		GetQueriesHandler:        queryHandler.GetQueriesHandler,
		UpdateQueryStatusHandler: queryHandler.UpdateQueryStatusHandler,
		UpdateQueryNotesHandler:  queryHandler.UpdateQueryNotesHandler,
		DeleteQueryHandler:       queryHandler.DeleteQueryHandler,

		// Chat endpoint.
		ChatMessageHandler: chatHandler.ChatMessageHandler,

		// Analytics endpoints.
		AnalyticsSummaryHandler: analyticsHandler.SummaryHandler,
		PageViewHandler:         analyticsHandler.PageViewHandler,

		// Auth endpoints.
		LoginHandler:     authHandler.LoginHandler,
		MeHandler:        authHandler.MeHandler,
		InitAdminHandler: authHandler.InitAdminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background retention sweep for idle chat sessions.
	if config.AppConfig.ChatRetentionEnabled {
		cron.InitRetentionWorker(chatRepo)
	}

	utils.StartHealthMonitor([]*redis.Client{utils.GetLockClient()}, database.MongoClient)

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

// newCompleter builds the configured chat provider client.
func newCompleter() chat.Completer {
	timeout := time.Duration(config.AppConfig.ChatTimeoutSecs) * time.Second
	switch config.AppConfig.ChatProvider {
	case "gemini":
		return chat.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	default:
		return chat.NewGroqClient(config.AppConfig.GroqAPIKey, config.AppConfig.GroqModel, timeout)
	}
}
