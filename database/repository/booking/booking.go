package bookingRepo

import (
	"errors"

	"astrodesk/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus sets the status of a booking.
	UpdateStatus(id, status string) error
	// UpdateAdminNotes sets the admin notes of a booking.
	UpdateAdminNotes(id, notes string) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
	// BookedSlots returns the time slots held on a date by bookings whose
	// status keeps the slot reserved (pending or confirmed).
	BookedSlots(date string) ([]string, error)
	// SlotTaken reports whether a slot on a date is held by a pending or
	// confirmed booking.
	SlotTaken(date, timeSlot string) (bool, error)
}
