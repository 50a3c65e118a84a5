package analyticsRepo

import "astrodesk/models"

// AnalyticsRepository defines methods for event counters and dashboard reads.
type AnalyticsRepository interface {
	// IncrementDaily bumps the per-day counter for the given event type.
	IncrementDaily(counterType, date string) error
	// IncrementPageView bumps the per-day counter for a page.
	IncrementPageView(page, date string) error
	// TrendsSince returns counter rows of a type from the given date onward.
	TrendsSince(counterType, fromDate string) ([]models.AnalyticsCounter, error)
	// CountBookings counts bookings, optionally restricted to a status.
	CountBookings(status string) (int64, error)
	// CountQueries counts queries, optionally restricted to a status.
	CountQueries(status string) (int64, error)
}
