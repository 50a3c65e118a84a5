package chat

import (
	"context"
	"errors"
	"strings"

	chatRepo "astrodesk/database/repository/chat"
	"astrodesk/models"
	"astrodesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendMessage runs one chat exchange. The user turn is always persisted; the
// assistant turn only on provider success. Provider failures are reported via
// providerErr while resp still carries a friendly fallback reply, so callers
// can log the failure class without surfacing an error to the end user.
func (s *DefaultChatService) SendMessage(ctx context.Context, sessionID, text string) (*models.ChatResponse, error, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, ErrEmptyMessage
	}

	session, err := s.resolveSession(sessionID)
	if err != nil {
		return nil, nil, err
	}

	userTurn := models.ChatTurn{Role: models.ChatRoleUser, Content: text}
	if err := s.Repo.AppendTurn(session.ID, userTurn, s.now().UTC()); err != nil {
		return nil, nil, err
	}
	session.Messages = append(session.Messages, userTurn)

	callCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	reply, provErr := s.Completer.Complete(callCtx, SystemMessage, s.window(session.Messages))
	if provErr != nil {
		utils.GetLogger().Warn("chat provider call failed",
			zap.String("sessionID", session.ID),
			zap.Error(provErr),
		)
		return &models.ChatResponse{SessionID: session.ID, Response: fallbackFor(provErr)}, provErr, nil
	}

	assistantTurn := models.ChatTurn{Role: models.ChatRoleAssistant, Content: reply}
	if err := s.Repo.AppendTurn(session.ID, assistantTurn, s.now().UTC()); err != nil {
		return nil, nil, err
	}

	s.trackExchange()
	return &models.ChatResponse{SessionID: session.ID, Response: reply}, nil, nil
}

// resolveSession loads the session for a known id, or creates a fresh one when
// the id is absent or unknown.
func (s *DefaultChatService) resolveSession(sessionID string) (*models.ChatSession, error) {
	if sessionID != "" {
		session, err := s.Repo.GetByID(sessionID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, chatRepo.ErrNotFound) {
			return nil, err
		}
	}

	now := s.now().UTC()
	session := &models.ChatSession{
		ID:           uuid.New().String(),
		Messages:     []models.ChatTurn{},
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// window returns the trailing HistoryWindow turns of the transcript.
func (s *DefaultChatService) window(messages []models.ChatTurn) []models.ChatTurn {
	if s.HistoryWindow <= 0 || len(messages) <= s.HistoryWindow {
		return messages
	}
	return messages[len(messages)-s.HistoryWindow:]
}

func fallbackFor(err error) string {
	if errors.Is(err, ErrNoAPIKey) {
		return FallbackNoKey
	}
	return FallbackError
}

// trackExchange bumps the daily chats counter. Counter failures never fail the
// exchange itself.
func (s *DefaultChatService) trackExchange() {
	if s.Analytics == nil {
		return
	}
	if err := s.Analytics.IncrementDaily(models.AnalyticsTypeChats, s.now().UTC().Format("2006-01-02")); err != nil {
		utils.GetLogger().Warn("failed to track chat exchange", zap.Error(err))
	}
}

// GetSession fetches a session transcript by id.
func (s *DefaultChatService) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	return s.Repo.GetByID(id)
}
