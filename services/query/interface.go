package query

import (
	"context"
	"time"

	analyticsRepo "astrodesk/database/repository/analytics"
	queryRepo "astrodesk/database/repository/query"
	"astrodesk/models"
)

// QueryService exposes contact-query lifecycle operations.
type QueryService interface {
	// CreateQuery persists a new contact message with status new.
	CreateQuery(ctx context.Context, input models.QueryCreateInput) (*models.Query, error)
	// GetQuery fetches a single query by id.
	GetQuery(ctx context.Context, id string) (*models.Query, error)
	// ListQueries returns all queries, newest first.
	ListQueries(ctx context.Context) ([]models.Query, error)
	// UpdateStatus transitions a query to the given status.
	UpdateStatus(ctx context.Context, id, status string) (*models.Query, error)
	// UpdateAdminNotes sets the admin notes on a query.
	UpdateAdminNotes(ctx context.Context, id, notes string) (*models.Query, error)
	// DeleteQuery removes a query.
	DeleteQuery(ctx context.Context, id string) error
}

// DefaultQueryService is the production implementation.
type DefaultQueryService struct {
	Repo      queryRepo.QueryRepository
	Analytics analyticsRepo.AnalyticsRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultQueryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
