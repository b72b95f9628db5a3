package handler

import (
	"linkup/internal/delivery/http/dto"
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/pkg/response"
	"linkup/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FeedHandler struct {
	uc usecase.FeedUsecase
}

func NewFeedHandler(uc usecase.FeedUsecase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

func (h *FeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/feed", h.GetFeed)
}

func (h *FeedHandler) GetFeed(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	feedType := c.Query("type", usecase.FeedTypeAll)

	res, err := h.uc.GetFeed(c.Context(), userID, usecase.FeedParams{
		Page:  page,
		Limit: limit,
		Type:  feedType,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewFeedResponse(res.Items, res.Pagination))
}
