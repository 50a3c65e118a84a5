package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler so registration stays in one
// place.
type HandlerBundle struct {
	// Booking endpoints.
	GetTimeSlotsHandler        gin.HandlerFunc
	CreateBookingHandler       gin.HandlerFunc
	GetBookingsHandler         gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	UpdateBookingNotesHandler  gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Query endpoints.
	CreateQueryHandler       gin.HandlerFunc
	GetQueriesHandler        gin.HandlerFunc
	UpdateQueryStatusHandler gin.HandlerFunc
	UpdateQueryNotesHandler  gin.HandlerFunc
	DeleteQueryHandler       gin.HandlerFunc

	// Chat endpoint.
	ChatMessageHandler gin.HandlerFunc

	// Analytics endpoints.
	AnalyticsSummaryHandler gin.HandlerFunc
	PageViewHandler         gin.HandlerFunc

	// Auth endpoints.
	LoginHandler     gin.HandlerFunc
	MeHandler        gin.HandlerFunc
	InitAdminHandler gin.HandlerFunc
}
