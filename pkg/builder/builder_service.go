package builder

import (
	"sync"

	"github.com/google/uuid"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
)

type (
	// BuilderService holds the burger under construction: at most one
	// bun plus an ordered list of fillings. The order of fillings is
	// exactly the order the user arranged and is what gets serialized
	// into a submitted order, so nothing here may reorder it silently.
	BuilderService interface {
		SetBun(ingredient entities.Ingredient)
		AddIngredient(ingredient entities.Ingredient)
		RemoveIngredient(index int)
		Reorder(from, to int)
		ReplaceIngredients(ingredients []entities.BuilderIngredient)
		Reset()
		Price() int
		Snapshot() domain.BuilderSnapshot
	}

	builderService struct {
		mu          sync.Mutex
		bun         *entities.Ingredient
		ingredients []entities.BuilderIngredient
	}
)

func NewBuilderService() BuilderService {
	return &builderService{}
}

// SetBun replaces the current bun unconditionally. The at-most-one
// invariant holds by overwrite, not append.
func (s *builderService) SetBun(ingredient entities.Ingredient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bun = &ingredient
}

// AddIngredient appends the ingredient with a freshly minted instance
// identity. The same catalog ingredient can be added many times; each
// occurrence gets its own identity so it stays individually removable.
func (s *builderService) AddIngredient(ingredient entities.Ingredient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ingredients = append(s.ingredients, entities.BuilderIngredient{
		InstanceID: uuid.NewString(),
		Ingredient: ingredient,
	})
}

// RemoveIngredient drops the element at index. An out-of-range index is
// a no-op: a stale index from a concurrent UI update must never panic.
func (s *builderService) RemoveIngredient(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.ingredients) {
		return
	}
	s.ingredients = append(s.ingredients[:index], s.ingredients[index+1:]...)
}

// Reorder moves the element at from to position to, shifting the
// elements in between. Equal or out-of-range indices are a no-op.
func (s *builderService) Reorder(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.ingredients)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return
	}

	moved := s.ingredients[from]
	rest := append(s.ingredients[:from], s.ingredients[from+1:]...)
	s.ingredients = append(rest[:to], append([]entities.BuilderIngredient{moved}, rest[to:]...)...)
}

// ReplaceIngredients swaps in a whole new sequence, used after
// drag-and-drop batch updates.
func (s *builderService) ReplaceIngredients(ingredients []entities.BuilderIngredient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ingredients = make([]entities.BuilderIngredient, len(ingredients))
	copy(s.ingredients, ingredients)
}

func (s *builderService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bun = nil
	s.ingredients = nil
}

// Price is recomputed from the current state on every call. The bun
// counts twice: it brackets the burger at both ends.
func (s *builderService) Price() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.price()
}

func (s *builderService) price() int {
	total := 0
	if s.bun != nil {
		total += s.bun.Price * 2
	}
	for _, ingredient := range s.ingredients {
		total += ingredient.Price
	}
	return total
}

// Snapshot returns a read-only copy of the builder; callers never see
// the mutable slices themselves.
func (s *builderService) Snapshot() domain.BuilderSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := domain.BuilderSnapshot{
		Ingredients: make([]entities.BuilderIngredient, len(s.ingredients)),
		Price:       s.price(),
	}
	copy(snapshot.Ingredients, s.ingredients)
	if s.bun != nil {
		bun := *s.bun
		snapshot.Bun = &bun
	}
	return snapshot
}
