package chat

import "errors"

// ErrEmptyMessage signals a message that is empty after trimming whitespace.
var ErrEmptyMessage = errors.New("message must not be empty")

// ErrNoAPIKey signals that the configured provider has no credentials. It is
// treated as a provider failure: the user still gets a fallback reply.
var ErrNoAPIKey = errors.New("chat provider API key is not configured")
