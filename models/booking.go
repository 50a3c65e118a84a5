package models

import "time"

// Booking statuses. A slot is held while its booking is pending or confirmed;
// cancelling (or deleting) the booking frees the slot.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Services offered by the business.
var BookingServices = []string{
	"psychic-reading",
	"astrology-consultation",
	"love-reading",
	"spiritual-healing",
}

// Booking is a reserved time slot for a reading on a given date.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	Service    string    `bson:"service" json:"service"`
	Date       string    `bson:"date" json:"date"` // YYYY-MM-DD, no time component
	TimeSlot   string    `bson:"time_slot" json:"time_slot"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes" json:"notes,omitempty"`
	AdminNotes string    `bson:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// BookingCreateInput is the public payload for POST /api/bookings.
type BookingCreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Notes    string `json:"notes"`
}

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidBookingService reports whether s is an offered service.
func ValidBookingService(s string) bool {
	for _, svc := range BookingServices {
		if svc == s {
			return true
		}
	}
	return false
}
