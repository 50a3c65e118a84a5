package routes

import (
	"net/http"
	"strings"
	"time"

	"astrodesk/config"
	"astrodesk/handlers"
	"astrodesk/middleware"
	"astrodesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers slot availability and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/time-slots/:date", hb.GetTimeSlotsHandler)

	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)

		// Protected routes (require admin token)
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.GetBookingsHandler)
		api.PATCH("/:id", hb.UpdateBookingStatusHandler)
		api.PATCH("/:id/notes", hb.UpdateBookingNotesHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterQueryRoutes registers contact query endpoints.
func RegisterQueryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/queries")
	{
		api.POST("", hb.CreateQueryHandler)

		// Protected routes (require admin token)
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.GetQueriesHandler)
		api.PATCH("/:id", hb.UpdateQueryStatusHandler)
		api.PATCH("/:id/notes", hb.UpdateQueryNotesHandler)
		api.DELETE("/:id", hb.DeleteQueryHandler)
	}
}

// RegisterChatRoutes registers the AI chat endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.ChatMessageHandler)
}

// RegisterAnalyticsRoutes registers tracking and the admin dashboard summary.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/analytics/page-views", hb.PageViewHandler)
	r.GET("/api/analytics/summary", middleware.JWTAuthAdminMiddleware(), hb.AnalyticsSummaryHandler)
}

// RegisterAuthRoutes registers admin authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/login", hb.LoginHandler)
	r.GET("/api/auth/me", middleware.JWTAuthAdminMiddleware(), hb.MeHandler)
	r.POST("/api/init-admin", hb.InitAdminHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"*"}
	if config.AppConfig.CORSOrigins != "" && config.AppConfig.CORSOrigins != "*" {
		origins = origins[:0]
		for _, o := range strings.Split(config.AppConfig.CORSOrigins, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterQueryRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
