package handler

import (
	"linkup/internal/delivery/http/dto"
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/pkg/response"
	"linkup/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PostHandler struct {
	uc usecase.PostUsecase
}

type createPostRequest struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"media_urls"`
	PostType  string   `json:"post_type"`
	SourceID  string   `json:"source_id"`
}

func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

func (h *PostHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/posts", h.CreatePost)
}

func (h *PostHandler) CreatePost(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sourceID, err := parseOptionalUUID(req.SourceID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid source_id", nil, err)
	}

	p, err := h.uc.CreatePost(c.Context(), userID, usecase.CreatePostInput{
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
		PostType:  req.PostType,
		SourceID:  sourceID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewCreatePostResponse(p))
}
