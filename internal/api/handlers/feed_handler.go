package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/internal/api/presenters"
	"github.com/FallenAngelllll/stellar-burgers/pkg/feed"
)

type (
	FeedHandler interface {
		GetFeed(c *fiber.Ctx) error
	}

	feedHandler struct {
		feedService feed.FeedService
	}
)

func NewFeedHandler(feedService feed.FeedService) FeedHandler {
	return &feedHandler{feedService: feedService}
}

func (h *feedHandler) GetFeed(c *fiber.Ctx) error {
	refreshed, err := h.feedService.Refresh(c.Context())
	if err != nil {
		// A failed refresh keeps the previous aggregate; serve it as
		// stale data when there is one.
		if prior, ok := h.feedService.Feed(); ok {
			return presenters.SuccessResponse(c, fiber.Map{
				"feed":  prior,
				"stale": true,
				"error": h.feedService.Error(),
			}, fiber.StatusOK, domain.MessageFailedGetFeed)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetFeed, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"feed": refreshed}, fiber.StatusOK, domain.MessageSuccessGetFeed)
}
