package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/internal/api/presenters"
	"github.com/FallenAngelllll/stellar-burgers/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetIngredients(c *fiber.Ctx) error
		GetIngredientDetails(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetIngredients(c *fiber.Ctx) error {
	// Fetch is a no-op once the catalog is loaded.
	if err := h.catalogService.Fetch(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, h.catalogService.Ingredients(), fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *catalogHandler) GetIngredientDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	ingredient, err := h.catalogService.ByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) && h.catalogService.IsLoading() {
			// The catalog has not arrived yet: a pending state, not a 404.
			return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessGetIngredients)
		}
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ingredient": ingredient,
		"background": c.Query("background"),
	}, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}
