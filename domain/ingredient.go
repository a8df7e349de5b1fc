package domain

import "errors"

var (
	MessageSuccessGetIngredients = "ingredients retrieved successfully"
	MessageFailedGetIngredients  = "failed to retrieve ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
)
