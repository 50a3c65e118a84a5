package admin

import (
	"context"
	"errors"
	"time"

	adminRepo "astrodesk/database/repository/admin"
	"astrodesk/models"
	"astrodesk/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials signals a failed login. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenDuration = 24 * time.Hour

// Default seed account, replaced on first real deployment.
const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
)

// AdminService handles back-office authentication.
type AdminService interface {
	// Login checks the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Seed creates the default admin account if none exists. Returns true
	// when an account was created.
	Seed(ctx context.Context) (bool, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

// Login checks the credentials and returns a signed bearer token.
func (s *DefaultAdminService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.Repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(username, tokenDuration)
}

// Seed creates the default admin account if none exists.
func (s *DefaultAdminService) Seed(ctx context.Context) (bool, error) {
	_, err := s.Repo.GetByUsername(defaultUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, adminRepo.ErrNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	account := &models.Admin{
		ID:       uuid.New().String(),
		Username: defaultUsername,
		Password: string(hashed),
	}
	if err := s.Repo.Create(account); err != nil {
		return false, err
	}
	return true, nil
}
