package handlers

import (
	"errors"
	"net/http"

	queryRepo "astrodesk/database/repository/query"
	"astrodesk/models"
	"astrodesk/services/query"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QueryHandler exposes the contact query endpoints.
type QueryHandler struct {
	Service query.QueryService
	Logger  *zap.Logger
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(svc query.QueryService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{Service: svc, Logger: logger}
}

// CreateQueryHandler persists a contact message.
// POST /api/queries
func (h *QueryHandler) CreateQueryHandler(c *gin.Context) {
	var input models.QueryCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateQuery(c.Request.Context(), input)
	if err != nil {
		h.respondQueryError(c, err, "Failed to create query")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetQueriesHandler returns all queries, newest first. Admin only.
// GET /api/queries
func (h *QueryHandler) GetQueriesHandler(c *gin.Context) {
	queries, err := h.Service.ListQueries(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to fetch queries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch queries"})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// UpdateQueryStatusHandler transitions a query. Admin only.
// PATCH /api/queries/:id
func (h *QueryHandler) UpdateQueryStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondQueryError(c, err, "Failed to update query")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateQueryNotesHandler sets admin notes. Admin only.
// PATCH /api/queries/:id/notes
func (h *QueryHandler) UpdateQueryNotesHandler(c *gin.Context) {
	var input struct {
		AdminNotes string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateAdminNotes(c.Request.Context(), c.Param("id"), input.AdminNotes)
	if err != nil {
		h.respondQueryError(c, err, "Failed to update query notes")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteQueryHandler removes a query. Admin only.
// DELETE /api/queries/:id
func (h *QueryHandler) DeleteQueryHandler(c *gin.Context) {
	if err := h.Service.DeleteQuery(c.Request.Context(), c.Param("id")); err != nil {
		h.respondQueryError(c, err, "Failed to delete query")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QueryHandler) respondQueryError(c *gin.Context, err error, logMsg string) {
	var verr *query.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, queryRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Query not found"})
	default:
		h.Logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}
