package admin

import (
	"context"
	"sync"
	"testing"

	adminRepo "astrodesk/database/repository/admin"
	"astrodesk/models"
	"astrodesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAdminRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{accounts: make(map[string]*models.Admin)}
}

func (r *memAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[username]
	if !ok {
		return nil, adminRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAdminRepo) Create(a *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.Username] = &cp
	return nil
}

func TestSeedCreatesDefaultAdminOnce(t *testing.T) {
	repo := newMemAdminRepo()
	svc := &DefaultAdminService{Repo: repo}

	created, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	// Second call is a no-op.
	created, err = svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, created)

	account, err := repo.GetByUsername(defaultUsername)
	require.NoError(t, err)
	assert.NotEqual(t, defaultPassword, account.Password, "password must be stored hashed")
}

func TestLoginReturnsValidToken(t *testing.T) {
	repo := newMemAdminRepo()
	svc := &DefaultAdminService{Repo: repo}
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), defaultUsername, defaultPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := utils.ExtractSubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, defaultUsername, subject)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newMemAdminRepo()
	svc := &DefaultAdminService{Repo: repo}
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), defaultUsername, "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	svc := &DefaultAdminService{Repo: newMemAdminRepo()}

	_, err := svc.Login(context.Background(), "ghost", defaultPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
