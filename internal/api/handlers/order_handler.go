package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/internal/api/presenters"
	"github.com/FallenAngelllll/stellar-burgers/pkg/order"
)

type (
	OrderHandler interface {
		SubmitOrder(c *fiber.Ctx) error
		GetOrderDetails(c *fiber.Ctx) error
		GetOrderHistory(c *fiber.Ctx) error
		ClearModalOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
	}
)

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

func (h *orderHandler) SubmitOrder(c *fiber.Ctx) error {
	created, err := h.orderService.Submit(c.Context())
	if err != nil {
		// Local precondition failures never reached the network; they are
		// hints, not server errors.
		if errors.Is(err, domain.ErrBunRequired) || errors.Is(err, domain.ErrOrderInFlight) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, domain.OrderDetailResponse{
		Title: domain.FormatOrderNumber(created.Order.Number),
		Order: created.Order,
	}, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

// GetOrderDetails resolves an order by number for display. Locally
// known orders (history, then feed, then the modal order) win; only
// when none of the three sources has the number does it ask the burger
// API. An unknown number renders an empty detail, not a failure.
func (h *orderHandler) GetOrderDetails(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidNumber, err)
	}
	background := c.Query("background")

	if found, ok := h.orderService.FindOrderByNumber(number); ok {
		return presenters.SuccessResponse(c, domain.OrderDetailResponse{
			Title:      domain.FormatOrderNumber(found.Number),
			Order:      found,
			Background: background,
		}, fiber.StatusOK, domain.MessageSuccessGetOrder)
	}

	fetched, err := h.orderService.GetByNumber(c.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageFailedGetOrder)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, domain.OrderDetailResponse{
		Title:      domain.FormatOrderNumber(fetched.Number),
		Order:      fetched,
		Background: background,
	}, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) GetOrderHistory(c *fiber.Ctx) error {
	orders, err := h.orderService.FetchHistory(c.Context())
	if err != nil {
		// The previous list survives a failed fetch; hand it back next to
		// the error so the caller can keep rendering it.
		return presenters.SuccessResponse(c, fiber.Map{
			"orders": h.orderService.History(),
			"error":  h.orderService.HistoryError(),
		}, fiber.StatusOK, domain.MessageFailedGetHistory)
	}

	return presenters.SuccessResponse(c, fiber.Map{"orders": orders}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

// ClearModalOrder is the explicit dismissal of the order overlay. It
// echoes the background location the overlay was opened above so the
// caller can return exactly there.
func (h *orderHandler) ClearModalOrder(c *fiber.Ctx) error {
	h.orderService.ClearModal()
	return presenters.SuccessResponse(c, fiber.Map{
		"background": c.Query("background", "/"),
	}, fiber.StatusOK, domain.MessageSuccessClearModal)
}
