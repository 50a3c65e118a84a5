package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"astrodesk/models"
	"astrodesk/services/chat"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubChatService returns canned results for handler tests.
type stubChatService struct {
	resp        *models.ChatResponse
	providerErr error
	err         error
}

func (s *stubChatService) SendMessage(ctx context.Context, sessionID, text string) (*models.ChatResponse, error, error) {
	return s.resp, s.providerErr, s.err
}

func (s *stubChatService) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	return nil, errors.New("not implemented")
}

func newChatTestRouter(svc chat.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc, zap.NewNop())
	r.POST("/api/chat", h.ChatMessageHandler)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandlerReturnsReply(t *testing.T) {
	r := newChatTestRouter(&stubChatService{
		resp: &models.ChatResponse{SessionID: "s-1", Response: "The stars align."},
	})

	w := postChat(t, r, models.ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s-1", resp.SessionID)
	assert.Equal(t, "The stars align.", resp.Response)
}

func TestChatHandlerServesFallbackWithOKStatus(t *testing.T) {
	r := newChatTestRouter(&stubChatService{
		resp:        &models.ChatResponse{SessionID: "s-1", Response: chat.FallbackError},
		providerErr: errors.New("upstream 503"),
	})

	w := postChat(t, r, models.ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Response)
}

func TestChatHandlerRejectsEmptyMessage(t *testing.T) {
	r := newChatTestRouter(&stubChatService{err: chat.ErrEmptyMessage})

	w := postChat(t, r, models.ChatRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerReportsInternalFailure(t *testing.T) {
	r := newChatTestRouter(&stubChatService{err: errors.New("mongo down")})

	w := postChat(t, r, models.ChatRequest{Message: "Hello"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
