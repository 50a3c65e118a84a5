package handlers

import (
	"errors"
	"net/http"

	bookingRepo "astrodesk/database/repository/booking"
	"astrodesk/models"
	"astrodesk/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the slot availability and booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetTimeSlotsHandler returns free and taken slots for a date.
// GET /api/time-slots/:date
func (h *BookingHandler) GetTimeSlotsHandler(c *gin.Context) {
	date := c.Param("date")

	available, booked, err := h.Service.ListAvailableSlots(c.Request.Context(), date)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.Logger.Error("Failed to list available slots", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            date,
		"available_slots": available,
		"booked_slots":    booked,
	})
}

// CreateBookingHandler reserves a slot and persists the booking.
// POST /api/bookings
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.respondBookingError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingsHandler returns all bookings, newest first. Admin only.
// GET /api/bookings
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler transitions a booking. Admin only.
// PATCH /api/bookings/:id
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondBookingError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateBookingNotesHandler sets admin notes. Admin only.
// PATCH /api/bookings/:id/notes
func (h *BookingHandler) UpdateBookingNotesHandler(c *gin.Context) {
	var input struct {
		AdminNotes string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateAdminNotes(c.Request.Context(), c.Param("id"), input.AdminNotes)
	if err != nil {
		h.respondBookingError(c, err, "Failed to update booking notes")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler removes a booking, freeing its slot. Admin only.
// DELETE /api/bookings/:id
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.respondBookingError(c, err, "Failed to delete booking")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error, logMsg string) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, booking.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "This time slot is already booked. Please choose another."})
	case errors.Is(err, bookingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	default:
		h.Logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}
