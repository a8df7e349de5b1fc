package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/internal/api/presenters"
	"github.com/FallenAngelllll/stellar-burgers/pkg/builder"
	"github.com/FallenAngelllll/stellar-burgers/pkg/catalog"
)

type (
	BuilderHandler interface {
		GetBuilder(c *fiber.Ctx) error
		SetBun(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
		Reorder(c *fiber.Ctx) error
		ReplaceIngredients(c *fiber.Ctx) error
		ResetBuilder(c *fiber.Ctx) error
	}

	builderHandler struct {
		builderService builder.BuilderService
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewBuilderHandler(builderService builder.BuilderService, catalogService catalog.CatalogService, validator *validator.Validate) BuilderHandler {
	return &builderHandler{
		builderService: builderService,
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *builderHandler) GetBuilder(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusOK, domain.MessageSuccessGetBuilder)
}

func (h *builderHandler) SetBun(c *fiber.Ctx) error {
	req := new(domain.SetBunRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	ingredient, err := h.catalogService.ByID(req.IngredientID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	h.builderService.SetBun(ingredient)
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusOK, domain.MessageSuccessUpdateBuilder)
}

func (h *builderHandler) AddIngredient(c *fiber.Ctx) error {
	req := new(domain.AddIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	ingredient, err := h.catalogService.ByID(req.IngredientID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	h.builderService.AddIngredient(ingredient)
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusCreated, domain.MessageSuccessUpdateBuilder)
}

func (h *builderHandler) RemoveIngredient(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	// Out-of-range indexes are ignored; the UI may hold a stale index.
	h.builderService.RemoveIngredient(index)
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusOK, domain.MessageSuccessUpdateBuilder)
}

func (h *builderHandler) Reorder(c *fiber.Ctx) error {
	req := new(domain.ReorderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	h.builderService.Reorder(req.From, req.To)
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusOK, domain.MessageSuccessUpdateBuilder)
}

func (h *builderHandler) ReplaceIngredients(c *fiber.Ctx) error {
	req := new(domain.ReplaceIngredientsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBuilder, err)
	}

	h.builderService.ReplaceIngredients(req.Ingredients)
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusOK, domain.MessageSuccessUpdateBuilder)
}

func (h *builderHandler) ResetBuilder(c *fiber.Ctx) error {
	h.builderService.Reset()
	return presenters.SuccessResponse(c, h.builderService.Snapshot(), fiber.StatusOK, domain.MessageSuccessResetBuilder)
}
