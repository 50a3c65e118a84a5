package analytics

import (
	"context"
	"time"

	analyticsRepo "astrodesk/database/repository/analytics"
	"astrodesk/models"
)

const dateLayout = "2006-01-02"

// AnalyticsService aggregates stored entities for the admin dashboard and
// tracks page views.
type AnalyticsService interface {
	// Summary returns dashboard totals plus last-7-day trend rows.
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
	// TrackPageView bumps the per-day counter for a page.
	TrackPageView(ctx context.Context, page string) error
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	Repo analyticsRepo.AnalyticsRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAnalyticsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Summary returns dashboard totals plus last-7-day trend rows.
func (s *DefaultAnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	totalBookings, err := s.Repo.CountBookings("")
	if err != nil {
		return nil, err
	}
	pendingBookings, err := s.Repo.CountBookings(models.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	confirmedBookings, err := s.Repo.CountBookings(models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	totalQueries, err := s.Repo.CountQueries("")
	if err != nil {
		return nil, err
	}
	newQueries, err := s.Repo.CountQueries(models.QueryStatusNew)
	if err != nil {
		return nil, err
	}

	sevenDaysAgo := s.now().UTC().AddDate(0, 0, -7).Format(dateLayout)

	bookingTrends, err := s.Repo.TrendsSince(models.AnalyticsTypeBookings, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	queryTrends, err := s.Repo.TrendsSince(models.AnalyticsTypeQueries, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	chatTrends, err := s.Repo.TrendsSince(models.AnalyticsTypeChats, sevenDaysAgo)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsSummary{
		TotalBookings:     totalBookings,
		PendingBookings:   pendingBookings,
		ConfirmedBookings: confirmedBookings,
		TotalQueries:      totalQueries,
		NewQueries:        newQueries,
		BookingTrends:     bookingTrends,
		QueryTrends:       queryTrends,
		ChatTrends:        chatTrends,
	}, nil
}

// TrackPageView bumps the per-day counter for a page.
func (s *DefaultAnalyticsService) TrackPageView(ctx context.Context, page string) error {
	return s.Repo.IncrementPageView(page, s.now().UTC().Format(dateLayout))
}
