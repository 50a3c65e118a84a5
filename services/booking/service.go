package booking

import (
	"context"
	"strings"
	"time"

	"astrodesk/models"
	"astrodesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ListAvailableSlots returns the free and taken slots for a date in
// master-list order. A past date returns an empty free list rather than an
// error, so clients with skewed clocks degrade gracefully.
func (s *DefaultBookingService) ListAvailableSlots(ctx context.Context, date string) ([]string, []string, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, nil, newValidationError("date", "must be a YYYY-MM-DD calendar date")
	}

	booked, err := s.Repo.BookedSlots(date)
	if err != nil {
		return nil, nil, err
	}

	today := s.now().Format(dateLayout)
	if parsed.Format(dateLayout) < today {
		return []string{}, booked, nil
	}

	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	available := make([]string, 0, len(MasterSlots))
	for _, slot := range MasterSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available, booked, nil
}

// CreateBooking validates the input, takes the per-slot lock, re-checks the
// store and inserts the booking. The recheck-then-write runs entirely inside
// the lock so two concurrent requests for the same slot cannot both succeed;
// the partial unique index on (date, time_slot) backs this up at the storage
// layer.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingCreateInput) (*models.Booking, error) {
	if err := s.validateCreate(&input); err != nil {
		return nil, err
	}

	release, ok, err := s.Locker.Acquire(ctx, input.Date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Another request holds the lock for this exact slot right now.
		return nil, ErrSlotConflict
	}
	defer release()

	taken, err := s.Repo.SlotTaken(input.Date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotConflict
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Status:    models.BookingStatusPending,
		Notes:     input.Notes,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Create(booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	s.trackCreation()
	return booking, nil
}

func (s *DefaultBookingService) validateCreate(input *models.BookingCreateInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)

	if input.Name == "" {
		return newValidationError("name", "is required")
	}
	if input.Email == "" {
		return newValidationError("email", "is required")
	}
	if input.Phone == "" {
		return newValidationError("phone", "is required")
	}
	if !models.ValidBookingService(input.Service) {
		return newValidationError("service", "is not an offered service")
	}
	parsed, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return newValidationError("date", "must be a YYYY-MM-DD calendar date")
	}
	if parsed.Format(dateLayout) < s.now().Format(dateLayout) {
		return newValidationError("date", "must not be in the past")
	}
	if !validSlot(input.TimeSlot) {
		return newValidationError("time_slot", "is not a bookable time slot")
	}
	return nil
}

// trackCreation bumps the daily bookings counter. Counter failures never fail
// the booking itself.
func (s *DefaultBookingService) trackCreation() {
	if s.Analytics == nil {
		return
	}
	if err := s.Analytics.IncrementDaily(models.AnalyticsTypeBookings, s.now().UTC().Format(dateLayout)); err != nil {
		utils.GetLogger().Warn("failed to track booking creation", zap.Error(err))
	}
}

// GetBooking fetches a single booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListBookings returns all bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// UpdateStatus transitions a booking to the given status.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, newValidationError("status", "is not a recognized booking status")
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// UpdateAdminNotes sets the admin notes on a booking.
func (s *DefaultBookingService) UpdateAdminNotes(ctx context.Context, id, notes string) (*models.Booking, error) {
	if err := s.Repo.UpdateAdminNotes(id, notes); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// DeleteBooking removes a booking entirely, freeing its slot.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}
