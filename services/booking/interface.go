package booking

import (
	"context"
	"time"

	analyticsRepo "astrodesk/database/repository/analytics"
	bookingRepo "astrodesk/database/repository/booking"
	"astrodesk/models"
	"astrodesk/utils"
)

// BookingService exposes slot availability and booking lifecycle operations.
type BookingService interface {
	// ListAvailableSlots returns the free and taken slots for a date, in
	// master-list order. Past dates yield an empty free list, not an error.
	ListAvailableSlots(ctx context.Context, date string) (available []string, booked []string, err error)
	// CreateBooking validates the input, reserves the slot under an exclusive
	// lock and persists the booking with status pending.
	CreateBooking(ctx context.Context, input models.BookingCreateInput) (*models.Booking, error)
	// GetBooking fetches a single booking by id.
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// ListBookings returns all bookings, newest first.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// UpdateStatus transitions a booking to the given status.
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	// UpdateAdminNotes sets the admin notes on a booking.
	UpdateAdminNotes(ctx context.Context, id, notes string) (*models.Booking, error)
	// DeleteBooking removes a booking entirely, freeing its slot.
	DeleteBooking(ctx context.Context, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Locker    utils.SlotLocker
	Analytics analyticsRepo.AnalyticsRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
