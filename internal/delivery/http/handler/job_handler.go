package handler

import (
	"linkup/internal/delivery/http/dto"
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/pkg/response"
	"linkup/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobHandler(uc usecase.JobSearchUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/search", h.SearchJobs)
}

func (h *JobHandler) SearchJobs(c fiber.Ctx) error {
	if _, err := currentUserID(c); err != nil {
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
	remoteWork, err := parseQueryBoolPtr(c, "remote_work")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.SearchJobs(c.Context(), usecase.JobSearchParams{
		Query:      c.Query("query"),
		Location:   c.Query("location"),
		JobType:    c.Query("job_type"),
		RemoteWork: remoteWork,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewJobSearchResponse(res.Jobs, res.Pagination))
}
