package query

import (
	"context"
	"fmt"
	"strings"

	"astrodesk/models"
	"astrodesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CreateQuery persists a new contact message with status new.
func (s *DefaultQueryService) CreateQuery(ctx context.Context, input models.QueryCreateInput) (*models.Query, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if input.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "is required"}
	}
	if input.Subject == "" {
		return nil, &ValidationError{Field: "subject", Message: "is required"}
	}
	if input.Message == "" {
		return nil, &ValidationError{Field: "message", Message: "is required"}
	}

	q := &models.Query{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     strings.TrimSpace(input.Phone),
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.QueryStatusNew,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}

	if s.Analytics != nil {
		if err := s.Analytics.IncrementDaily(models.AnalyticsTypeQueries, s.now().UTC().Format("2006-01-02")); err != nil {
			utils.GetLogger().Warn("failed to track query creation", zap.Error(err))
		}
	}
	return q, nil
}

// GetQuery fetches a single query by id.
func (s *DefaultQueryService) GetQuery(ctx context.Context, id string) (*models.Query, error) {
	return s.Repo.GetByID(id)
}

// ListQueries returns all queries, newest first.
func (s *DefaultQueryService) ListQueries(ctx context.Context) ([]models.Query, error) {
	return s.Repo.GetAll()
}

// UpdateStatus transitions a query to the given status.
func (s *DefaultQueryService) UpdateStatus(ctx context.Context, id, status string) (*models.Query, error) {
	if !models.ValidQueryStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "is not a recognized query status"}
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// UpdateAdminNotes sets the admin notes on a query.
func (s *DefaultQueryService) UpdateAdminNotes(ctx context.Context, id, notes string) (*models.Query, error) {
	if err := s.Repo.UpdateAdminNotes(id, notes); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// DeleteQuery removes a query.
func (s *DefaultQueryService) DeleteQuery(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}
