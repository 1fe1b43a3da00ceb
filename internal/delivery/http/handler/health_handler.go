package handler

import (
	"clmi/internal/pkg/response"
	"clmi/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
	mode    string
	hub     *ws.Hub
}

func NewHealthHandler(appName, mode string, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{appName: appName, mode: mode, hub: hub}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Handle)
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	return response.OK(c, map[string]any{
		"status":         "ok",
		"app":            h.appName,
		"mode":           h.mode,
		"ws_subscribers": h.hub.SubscriberCount(),
	})
}
