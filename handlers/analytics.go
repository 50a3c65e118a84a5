package handlers

import (
	"net/http"

	"astrodesk/services/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler exposes dashboard aggregation and page-view tracking.
type AnalyticsHandler struct {
	Service analytics.AnalyticsService
	Logger  *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc analytics.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc, Logger: logger}
}

// SummaryHandler returns dashboard totals and trends. Admin only.
// GET /api/analytics/summary
func (h *AnalyticsHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to build analytics summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PageViewHandler bumps the per-day counter for a page.
// GET /api/analytics/page-views?page=home
func (h *AnalyticsHandler) PageViewHandler(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page query parameter is required"})
		return
	}

	if err := h.Service.TrackPageView(c.Request.Context(), page); err != nil {
		h.Logger.Error("Failed to track page view", zap.String("page", page), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track page view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tracked"})
}
