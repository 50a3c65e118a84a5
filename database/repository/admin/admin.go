package adminRepo

import (
	"errors"

	"astrodesk/models"
)

// ErrNotFound is returned when no admin account matches the given username.
var ErrNotFound = errors.New("admin not found")

// AdminRepository defines methods for admin account data access.
type AdminRepository interface {
	// GetByUsername retrieves an admin account by username.
	GetByUsername(username string) (*models.Admin, error)
	// Create inserts a new admin account.
	Create(admin *models.Admin) error
}
