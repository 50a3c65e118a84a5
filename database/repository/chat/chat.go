package chatRepo

import (
	"errors"
	"time"

	"astrodesk/models"
)

// ErrNotFound is returned when no chat session matches the given id.
var ErrNotFound = errors.New("chat session not found")

// ChatRepository defines methods for chat session data access. Transcripts are
// append-only; there is no update or reorder operation by design.
type ChatRepository interface {
	// GetByID retrieves a session by its unique ID.
	GetByID(id string) (*models.ChatSession, error)
	// Create inserts a new session record.
	Create(session *models.ChatSession) error
	// AppendTurn appends one turn to a session transcript and bumps its
	// last-active timestamp.
	AppendTurn(id string, turn models.ChatTurn, at time.Time) error
	// DeleteIdleSince removes sessions whose last activity predates cutoff.
	// Used by the retention worker only.
	DeleteIdleSince(cutoff time.Time) (int64, error)
}
