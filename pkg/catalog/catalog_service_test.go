package catalog

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
)

type stubCatalogRepository struct {
	mu    sync.Mutex
	resp  []entities.Ingredient
	err   error
	calls int
}

func (r *stubCatalogRepository) FetchIngredients(context.Context) ([]entities.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.resp, r.err
}

func newTestService(repo *stubCatalogRepository) CatalogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewCatalogService(repo, log)
}

func TestFetchIsIdempotentAfterSuccess(t *testing.T) {
	repo := &stubCatalogRepository{resp: []entities.Ingredient{{ID: "B1"}}}
	s := newTestService(repo)

	require.NoError(t, s.Fetch(context.Background()))
	require.NoError(t, s.Fetch(context.Background()))

	assert.Equal(t, 1, repo.calls, "the catalog is fetched once per session")
	assert.Len(t, s.Ingredients(), 1)
}

func TestFetchFailureLeavesCacheEmpty(t *testing.T) {
	repo := &stubCatalogRepository{err: assert.AnError}
	s := newTestService(repo)

	require.Error(t, s.Fetch(context.Background()))

	assert.Empty(t, s.Ingredients())
	assert.NotEmpty(t, s.Error())
	assert.False(t, s.IsLoading())
}

func TestFetchRetriesAfterFailure(t *testing.T) {
	repo := &stubCatalogRepository{err: assert.AnError}
	s := newTestService(repo)

	require.Error(t, s.Fetch(context.Background()))

	repo.mu.Lock()
	repo.err = nil
	repo.resp = []entities.Ingredient{{ID: "B1"}}
	repo.mu.Unlock()

	require.NoError(t, s.Fetch(context.Background()))
	assert.Len(t, s.Ingredients(), 1)
	assert.Empty(t, s.Error())
}

func TestByID(t *testing.T) {
	repo := &stubCatalogRepository{resp: []entities.Ingredient{
		{ID: "B1", Name: "bun"},
		{ID: "S1", Name: "sauce"},
	}}
	s := newTestService(repo)
	require.NoError(t, s.Fetch(context.Background()))

	found, err := s.ByID("S1")
	require.NoError(t, err)
	assert.Equal(t, "sauce", found.Name)

	_, err = s.ByID("missing")
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
