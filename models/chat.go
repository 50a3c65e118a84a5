package models

import "time"

// Chat turn roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatTurn is a single entry in a session transcript.
type ChatTurn struct {
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
}

// ChatSession is a durable, append-only conversation transcript.
// Messages are never reordered or removed while the session lives.
type ChatSession struct {
	ID           string     `bson:"id" json:"session_id"`
	Messages     []ChatTurn `bson:"messages" json:"messages"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	LastActiveAt time.Time  `bson:"last_active_at" json:"last_active_at"`
}

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is returned for every chat exchange, including provider
// failures (which carry a fallback reply instead of an error).
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}
