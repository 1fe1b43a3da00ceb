package handler

import (
	"strconv"

	"clmi/internal/delivery/http/dto"
	"clmi/internal/delivery/http/middleware"
	"clmi/internal/pkg/response"
	"clmi/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Get("/stats", h.HandleJobStats)
	r.Get("/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	perPage, err := parseQueryIntStrict(c, "per_page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		EmploymentType:  c.Query("employment_type"),
		ExperienceLevel: c.Query("experience_level"),
		Industry:        c.Query("industry"),
		Skill:           c.Query("skill"),
		SortBy:          c.Query("sort_by"),
		Page:            page,
		PerPage:         perPage,
	})
	if err != nil {
		return err
	}

	return response.OKMeta(c, res.Items, dto.ListMeta{PageState: res.Meta, Facets: res.Facets})
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	rec, err := h.uc.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.OK(c, rec)
}

func (h *JobsHandler) HandleJobStats(c fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return err
	}
	return response.OK(c, stats)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
