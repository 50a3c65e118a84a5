package chat

import (
	"context"
	"time"

	analyticsRepo "astrodesk/database/repository/analytics"
	chatRepo "astrodesk/database/repository/chat"
	"astrodesk/models"
)

// Completer generates one assistant reply from the persona instruction and a
// windowed conversation history.
type Completer interface {
	Complete(ctx context.Context, system string, history []models.ChatTurn) (string, error)
}

// ChatService exposes the per-message chat exchange.
type ChatService interface {
	// SendMessage resolves (or lazily creates) the session, appends the user
	// turn, asks the provider for a reply and appends it on success. Provider
	// failures come back as a non-nil providerErr alongside a fallback reply;
	// the response itself is always usable.
	SendMessage(ctx context.Context, sessionID, text string) (resp *models.ChatResponse, providerErr error, err error)
	// GetSession fetches a session transcript by id.
	GetSession(ctx context.Context, id string) (*models.ChatSession, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo      chatRepo.ChatRepository
	Completer Completer
	Analytics analyticsRepo.AnalyticsRepository

	// HistoryWindow bounds how many trailing turns are sent to the provider.
	// Zero means the full transcript.
	HistoryWindow int
	// Timeout bounds the provider round trip.
	Timeout time.Duration

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
