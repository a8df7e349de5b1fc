package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenAngelllll/stellar-burgers/entities"
)

func bun() entities.Ingredient {
	return entities.Ingredient{ID: "B1", Name: "Krator bun", Type: entities.IngredientTypeBun, Price: 50}
}

func filling(id string, price int) entities.Ingredient {
	return entities.Ingredient{ID: id, Type: entities.IngredientTypeMain, Price: price}
}

func TestAddIngredientKeepsOrderAndMintsUniqueIDs(t *testing.T) {
	s := NewBuilderService()

	ids := []string{"S1", "S2", "S1", "S3", "S1"}
	for _, id := range ids {
		s.AddIngredient(filling(id, 10))
	}

	snapshot := s.Snapshot()
	require.Len(t, snapshot.Ingredients, len(ids))

	seen := map[string]bool{}
	for i, item := range snapshot.Ingredients {
		assert.Equal(t, ids[i], item.ID)
		assert.False(t, seen[item.InstanceID], "instance id reused: %s", item.InstanceID)
		seen[item.InstanceID] = true
	}
}

func TestSetBunOverwrites(t *testing.T) {
	s := NewBuilderService()

	s.SetBun(bun())
	s.SetBun(entities.Ingredient{ID: "B2", Type: entities.IngredientTypeBun, Price: 70})

	snapshot := s.Snapshot()
	require.NotNil(t, snapshot.Bun)
	assert.Equal(t, "B2", snapshot.Bun.ID)
}

func TestReorderThereAndBackRestoresSequence(t *testing.T) {
	s := NewBuilderService()
	for _, id := range []string{"S1", "S2", "S3", "S4"} {
		s.AddIngredient(filling(id, 10))
	}
	original := s.Snapshot().Ingredients

	s.Reorder(0, 3)
	s.Reorder(3, 0)

	assert.Equal(t, original, s.Snapshot().Ingredients)
}

func TestReorderMovesAndShifts(t *testing.T) {
	s := NewBuilderService()
	for _, id := range []string{"S1", "S2", "S3"} {
		s.AddIngredient(filling(id, 10))
	}

	s.Reorder(0, 2)

	got := s.Snapshot().Ingredients
	assert.Equal(t, "S2", got[0].ID)
	assert.Equal(t, "S3", got[1].ID)
	assert.Equal(t, "S1", got[2].ID)
}

func TestReorderNoOps(t *testing.T) {
	s := NewBuilderService()
	for _, id := range []string{"S1", "S2"} {
		s.AddIngredient(filling(id, 10))
	}
	original := s.Snapshot().Ingredients

	s.Reorder(1, 1)
	s.Reorder(-1, 0)
	s.Reorder(0, 5)
	s.Reorder(5, 0)

	assert.Equal(t, original, s.Snapshot().Ingredients)
}

func TestRemoveIngredientOutOfRangeIsNoOp(t *testing.T) {
	s := NewBuilderService()
	s.AddIngredient(filling("S1", 10))

	s.RemoveIngredient(1)
	s.RemoveIngredient(-1)

	assert.Len(t, s.Snapshot().Ingredients, 1)
}

func TestRemoveIngredientByIndex(t *testing.T) {
	s := NewBuilderService()
	for _, id := range []string{"S1", "S2", "S3"} {
		s.AddIngredient(filling(id, 10))
	}

	s.RemoveIngredient(1)

	got := s.Snapshot().Ingredients
	require.Len(t, got, 2)
	assert.Equal(t, "S1", got[0].ID)
	assert.Equal(t, "S3", got[1].ID)
}

func TestPrice(t *testing.T) {
	s := NewBuilderService()
	assert.Equal(t, 0, s.Price(), "empty builder")

	s.AddIngredient(filling("S1", 20))
	s.AddIngredient(filling("S2", 30))
	assert.Equal(t, 50, s.Price(), "no bun selected")

	s.SetBun(bun())
	assert.Equal(t, 2*50+20+30, s.Price(), "bun counts twice")
}

func TestReplaceIngredients(t *testing.T) {
	s := NewBuilderService()
	s.AddIngredient(filling("S1", 10))

	replacement := []entities.BuilderIngredient{
		{InstanceID: "a", Ingredient: filling("S2", 20)},
		{InstanceID: "b", Ingredient: filling("S3", 30)},
	}
	s.ReplaceIngredients(replacement)

	got := s.Snapshot().Ingredients
	require.Len(t, got, 2)
	assert.Equal(t, "S2", got[0].ID)
	assert.Equal(t, "S3", got[1].ID)
}

func TestResetReturnsToEmpty(t *testing.T) {
	s := NewBuilderService()
	s.SetBun(bun())
	s.AddIngredient(filling("S1", 10))

	s.Reset()

	snapshot := s.Snapshot()
	assert.Nil(t, snapshot.Bun)
	assert.Empty(t, snapshot.Ingredients)
	assert.Equal(t, 0, snapshot.Price)
}

func TestSnapshotIsIsolatedFromLaterMutation(t *testing.T) {
	s := NewBuilderService()
	s.AddIngredient(filling("S1", 10))

	snapshot := s.Snapshot()
	s.AddIngredient(filling("S2", 20))

	assert.Len(t, snapshot.Ingredients, 1)
}
