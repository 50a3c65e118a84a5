package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "astrodesk/database/repository/booking"
	"astrodesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBookingRepo is an in-memory BookingRepository for tests.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *memBookingRepo) UpdateAdminNotes(id, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.AdminNotes = notes
	return nil
}

func (r *memBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) BookedSlots(date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var slots []string
	for _, b := range r.bookings {
		if b.Date == date && (b.Status == models.BookingStatusPending || b.Status == models.BookingStatusConfirmed) {
			slots = append(slots, b.TimeSlot)
		}
	}
	return slots, nil
}

func (r *memBookingRepo) SlotTaken(date, timeSlot string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Date == date && b.TimeSlot == timeSlot &&
			(b.Status == models.BookingStatusPending || b.Status == models.BookingStatusConfirmed) {
			return true, nil
		}
	}
	return false, nil
}

// memSlotLocker is a mutex-per-key SlotLocker for tests.
type memSlotLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemSlotLocker() *memSlotLocker {
	return &memSlotLocker{held: make(map[string]bool)}
}

func (l *memSlotLocker) Acquire(ctx context.Context, date, timeSlot string) (func(), bool, error) {
	key := date + ":" + timeSlot
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}
	return release, true, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
}

func newTestService(repo *memBookingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:   repo,
		Locker: newMemSlotLocker(),
		Now:    fixedNow,
	}
}

func validInput() models.BookingCreateInput {
	return models.BookingCreateInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+61 400 000 000",
		Service:  "love-reading",
		Date:     "2025-07-10",
		TimeSlot: "02:00 PM",
		Notes:    "first visit",
	}
}

func TestListAvailableSlotsReturnsMasterListForFreeDay(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	available, booked, err := svc.ListAvailableSlots(context.Background(), "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, MasterSlots, available)
	assert.Empty(t, booked)
}

func TestListAvailableSlotsExcludesLiveBookings(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	available, booked, err := svc.ListAvailableSlots(context.Background(), "2025-07-10")
	require.NoError(t, err)
	assert.NotContains(t, available, "02:00 PM")
	assert.Contains(t, booked, "02:00 PM")
	assert.Len(t, available, len(MasterSlots)-1)

	// Ordering follows the master list.
	idx := 0
	for _, slot := range MasterSlots {
		if slot == "02:00 PM" {
			continue
		}
		assert.Equal(t, slot, available[idx])
		idx++
	}
}

func TestListAvailableSlotsIsIdempotent(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)

	_, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	first, _, err := svc.ListAvailableSlots(context.Background(), "2025-07-10")
	require.NoError(t, err)
	second, _, err := svc.ListAvailableSlots(context.Background(), "2025-07-10")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListAvailableSlotsPastDateIsEmpty(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	available, _, err := svc.ListAvailableSlots(context.Background(), "2025-05-31")
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestListAvailableSlotsRejectsMalformedDate(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	_, _, err := svc.ListAvailableSlots(context.Background(), "tomorrow")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestCreateBookingRoundTrip(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)
	input := validInput()

	created, err := svc.CreateBooking(context.Background(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, fixedNow().UTC(), created.CreatedAt)

	fetched, err := svc.GetBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Name, fetched.Name)
	assert.Equal(t, input.Email, fetched.Email)
	assert.Equal(t, input.Phone, fetched.Phone)
	assert.Equal(t, input.Service, fetched.Service)
	assert.Equal(t, input.Date, fetched.Date)
	assert.Equal(t, input.TimeSlot, fetched.TimeSlot)
	assert.Equal(t, input.Notes, fetched.Notes)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	cases := []struct {
		name   string
		mutate func(*models.BookingCreateInput)
		field  string
	}{
		{"missing name", func(i *models.BookingCreateInput) { i.Name = "  " }, "name"},
		{"missing email", func(i *models.BookingCreateInput) { i.Email = "" }, "email"},
		{"missing phone", func(i *models.BookingCreateInput) { i.Phone = "" }, "phone"},
		{"unknown service", func(i *models.BookingCreateInput) { i.Service = "tarot" }, "service"},
		{"malformed date", func(i *models.BookingCreateInput) { i.Date = "10/07/2025" }, "date"},
		{"past date", func(i *models.BookingCreateInput) { i.Date = "2025-05-01" }, "date"},
		{"unknown slot", func(i *models.BookingCreateInput) { i.TimeSlot = "09:30 PM" }, "time_slot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := svc.CreateBooking(context.Background(), input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestCreateBookingConflictOnTakenSlot(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	_, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.CreateBooking(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestConcurrentCreateBookingOneWinner(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			input := validInput()
			input.Date = "2025-06-01"
			input.TimeSlot = "10:00 AM"
			_, err := svc.CreateBooking(context.Background(), input)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case err == ErrSlotConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	taken, err := repo.BookedSlots("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM"}, taken)
}

func TestCancellingBookingFreesSlot(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	created, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, models.BookingStatusCancelled)
	require.NoError(t, err)

	available, _, err := svc.ListAvailableSlots(context.Background(), "2025-07-10")
	require.NoError(t, err)
	assert.Contains(t, available, "02:00 PM")

	// The freed slot can be booked again.
	_, err = svc.CreateBooking(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestDeletingBookingFreesSlot(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	created, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), created.ID))

	// Re-booking the identical tuple succeeds after deletion.
	again, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	created, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "archived")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMutationsOnMissingBookingReturnNotFound(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	_, err := svc.UpdateStatus(context.Background(), "nope", models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)

	_, err = svc.UpdateAdminNotes(context.Background(), "nope", "notes")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)

	err = svc.DeleteBooking(context.Background(), "nope")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}
