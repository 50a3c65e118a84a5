package handlers

import (
	"errors"
	"net/http"

	"astrodesk/models"
	"astrodesk/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the AI chat endpoint.
type ChatHandler struct {
	Service chat.ChatService
	Logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

// ChatMessageHandler runs one chat exchange. Provider failures are logged but
// still answered with 200 and a fallback reply; chat must never hard-error at
// the visitor.
// POST /api/chat
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, providerErr, err := h.Service.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
			return
		}
		h.Logger.Error("Chat exchange failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat exchange failed"})
		return
	}
	if providerErr != nil {
		h.Logger.Warn("Chat provider degraded, served fallback reply",
			zap.String("sessionID", resp.SessionID),
			zap.Error(providerErr),
		)
	}

	c.JSON(http.StatusOK, resp)
}
