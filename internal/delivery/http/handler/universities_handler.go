package handler

import (
	"clmi/internal/delivery/http/dto"
	"clmi/internal/delivery/http/middleware"
	"clmi/internal/pkg/response"
	"clmi/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UniversitiesHandler struct {
	uc usecase.UniversityListUsecase
}

func NewUniversitiesHandler(uc usecase.UniversityListUsecase) *UniversitiesHandler {
	return &UniversitiesHandler{uc: uc}
}

func (h *UniversitiesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListUniversities)
}

func (h *UniversitiesHandler) HandleListUniversities(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	perPage, err := parseQueryIntStrict(c, "per_page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.uc.ListUniversities(c.Context(), usecase.UniversityListParams{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		SortBy:   c.Query("sort_by"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return err
	}

	return response.OKMeta(c, res.Items, dto.ListMeta{PageState: res.Meta, Facets: res.Facets})
}
