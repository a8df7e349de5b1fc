package catalog

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
)

type (
	// CatalogService caches the purchasable ingredients for the session.
	// The catalog is fetched once; after the first success Fetch is a
	// no-op. A failed fetch leaves the cache empty and records the error,
	// it never takes the process down.
	CatalogService interface {
		Fetch(ctx context.Context) error
		Ingredients() []entities.Ingredient
		ByID(id string) (entities.Ingredient, error)
		IsLoading() bool
		Error() string
	}

	catalogService struct {
		catalogRepository CatalogRepository
		log               *logrus.Logger

		mu          sync.Mutex
		ingredients []entities.Ingredient
		loaded      bool
		inflight    int
		fetchError  string
	}
)

func NewCatalogService(catalogRepository CatalogRepository, log *logrus.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		log:               log,
	}
}

func (s *catalogService) Fetch(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.inflight++
	s.fetchError = ""
	s.mu.Unlock()

	ingredients, err := s.catalogRepository.FetchIngredients(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if err != nil {
		s.fetchError = err.Error()
		s.log.WithError(err).Warn("catalog fetch failed")
		return err
	}

	s.ingredients = ingredients
	s.loaded = true
	return nil
}

func (s *catalogService) Ingredients() []entities.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Ingredient, len(s.ingredients))
	copy(out, s.ingredients)
	return out
}

func (s *catalogService) ByID(id string) (entities.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ingredient := range s.ingredients {
		if ingredient.ID == id {
			return ingredient, nil
		}
	}
	return entities.Ingredient{}, domain.ErrIngredientNotFound
}

func (s *catalogService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

func (s *catalogService) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchError
}
