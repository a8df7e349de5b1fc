package domain

import (
	"errors"

	"github.com/FallenAngelllll/stellar-burgers/entities"
)

var (
	MessageSuccessUpdateBuilder = "builder updated successfully"
	MessageSuccessResetBuilder  = "builder reset successfully"
	MessageSuccessGetBuilder    = "builder retrieved successfully"
	MessageFailedUpdateBuilder  = "failed to update builder"

	ErrBunRequired = errors.New("a bun must be selected before ordering")
)

type (
	SetBunRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required"`
	}

	AddIngredientRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required"`
	}

	ReorderRequest struct {
		From int `json:"from" validate:"min=0"`
		To   int `json:"to" validate:"min=0"`
	}

	ReplaceIngredientsRequest struct {
		Ingredients []entities.BuilderIngredient `json:"ingredients" validate:"required"`
	}

	// BuilderSnapshot is the read projection handed out by the builder:
	// no caller ever sees the mutable state itself.
	BuilderSnapshot struct {
		Bun         *entities.Ingredient         `json:"bun"`
		Ingredients []entities.BuilderIngredient `json:"ingredients"`
		Price       int                          `json:"price"`
	}
)
