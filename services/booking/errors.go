package booking

import (
	"errors"
	"fmt"
)

// ErrSlotConflict signals that the requested (date, time slot) pair is already
// held by a pending or confirmed booking.
var ErrSlotConflict = errors.New("time slot already booked")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
