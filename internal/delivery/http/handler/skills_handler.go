package handler

import (
	"clmi/internal/delivery/http/dto"
	"clmi/internal/delivery/http/middleware"
	"clmi/internal/pkg/response"
	"clmi/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillsHandler struct {
	uc usecase.SkillListUsecase
}

func NewSkillsHandler(uc usecase.SkillListUsecase) *SkillsHandler {
	return &SkillsHandler{uc: uc}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListSkills)
}

func (h *SkillsHandler) HandleListSkills(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	perPage, err := parseQueryIntStrict(c, "per_page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.uc.ListSkills(c.Context(), usecase.SkillListParams{
		Search:  c.Query("search"),
		Type:    c.Query("type"),
		Demand:  c.Query("demand"),
		SortBy:  c.Query("sort_by"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	return response.OKMeta(c, res.Items, dto.ListMeta{PageState: res.Meta, Facets: res.Facets})
}
