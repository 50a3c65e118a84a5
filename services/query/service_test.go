package query

import (
	"context"
	"sync"
	"testing"
	"time"

	queryRepo "astrodesk/database/repository/query"
	"astrodesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memQueryRepo struct {
	mu      sync.Mutex
	queries map[string]*models.Query
}

func newMemQueryRepo() *memQueryRepo {
	return &memQueryRepo{queries: make(map[string]*models.Query)}
}

func (r *memQueryRepo) GetByID(id string) (*models.Query, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queries[id]
	if !ok {
		return nil, queryRepo.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *memQueryRepo) GetAll() ([]models.Query, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Query, 0, len(r.queries))
	for _, q := range r.queries {
		out = append(out, *q)
	}
	return out, nil
}

func (r *memQueryRepo) Create(q *models.Query) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *q
	r.queries[q.ID] = &cp
	return nil
}

func (r *memQueryRepo) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queries[id]
	if !ok {
		return queryRepo.ErrNotFound
	}
	q.Status = status
	return nil
}

func (r *memQueryRepo) UpdateAdminNotes(id, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queries[id]
	if !ok {
		return queryRepo.ErrNotFound
	}
	q.AdminNotes = notes
	return nil
}

func (r *memQueryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.queries[id]; !ok {
		return queryRepo.ErrNotFound
	}
	delete(r.queries, id)
	return nil
}

func newTestQueryService(repo *memQueryRepo) *DefaultQueryService {
	return &DefaultQueryService{
		Repo: repo,
		Now:  func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) },
	}
}

func validQueryInput() models.QueryCreateInput {
	return models.QueryCreateInput{
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "+61 400 111 222",
		Subject: "Reading availability",
		Message: "Do you offer weekend sessions?",
	}
}

func TestCreateQueryRoundTrip(t *testing.T) {
	svc := newTestQueryService(newMemQueryRepo())
	input := validQueryInput()

	created, err := svc.CreateQuery(context.Background(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.QueryStatusNew, created.Status)

	fetched, err := svc.GetQuery(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Name, fetched.Name)
	assert.Equal(t, input.Email, fetched.Email)
	assert.Equal(t, input.Subject, fetched.Subject)
	assert.Equal(t, input.Message, fetched.Message)
}

func TestCreateQueryValidation(t *testing.T) {
	svc := newTestQueryService(newMemQueryRepo())

	cases := []struct {
		name   string
		mutate func(*models.QueryCreateInput)
		field  string
	}{
		{"missing name", func(i *models.QueryCreateInput) { i.Name = " " }, "name"},
		{"missing email", func(i *models.QueryCreateInput) { i.Email = "" }, "email"},
		{"missing subject", func(i *models.QueryCreateInput) { i.Subject = "" }, "subject"},
		{"missing message", func(i *models.QueryCreateInput) { i.Message = "\t" }, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validQueryInput()
			tc.mutate(&input)
			_, err := svc.CreateQuery(context.Background(), input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestQueryStatusTransitions(t *testing.T) {
	svc := newTestQueryService(newMemQueryRepo())

	created, err := svc.CreateQuery(context.Background(), validQueryInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.QueryStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.QueryStatusReplied, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "spam")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestQueryMutationsOnMissingIDReturnNotFound(t *testing.T) {
	svc := newTestQueryService(newMemQueryRepo())

	_, err := svc.UpdateStatus(context.Background(), "nope", models.QueryStatusClosed)
	assert.ErrorIs(t, err, queryRepo.ErrNotFound)

	_, err = svc.UpdateAdminNotes(context.Background(), "nope", "notes")
	assert.ErrorIs(t, err, queryRepo.ErrNotFound)

	err = svc.DeleteQuery(context.Background(), "nope")
	assert.ErrorIs(t, err, queryRepo.ErrNotFound)
}
