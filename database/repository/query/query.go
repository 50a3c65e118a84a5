package queryRepo

import (
	"errors"

	"astrodesk/models"
)

// ErrNotFound is returned when no query matches the given id.
var ErrNotFound = errors.New("query not found")

// QueryRepository defines methods for contact query data access.
type QueryRepository interface {
	// GetByID retrieves a query by its unique ID.
	GetByID(id string) (*models.Query, error)
	// GetAll retrieves all queries, newest first.
	GetAll() ([]models.Query, error)
	// Create inserts a new query record.
	Create(query *models.Query) error
	// UpdateStatus sets the status of a query.
	UpdateStatus(id, status string) error
	// UpdateAdminNotes sets the admin notes of a query.
	UpdateAdminNotes(id, notes string) error
	// Delete removes a query record by its ID.
	Delete(id string) error
}
