package routes

import (
	"clmi/internal/delivery/http/handler"
	"clmi/internal/delivery/http/middleware"
	"clmi/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires handlers onto the fiber app. Route layout mirrors the
// upstream API so the dashboard can swap between direct and proxied
// access without path rewrites.
type Registry struct {
	Health       *handler.HealthHandler
	Jobs         *handler.JobsHandler
	Skills       *handler.SkillsHandler
	Universities *handler.UniversitiesHandler
	Auth         *handler.AuthHandler
	WS           *ws.Handler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")

	r.Jobs.RegisterRoutes(api.Group("/jobs"))
	r.Skills.RegisterRoutes(api.Group("/skills"))
	r.Universities.RegisterRoutes(api.Group("/universities"))
	r.Auth.RegisterRoutes(api.Group("/auth"))

	if r.AuthMw != nil {
		protected := api.Group("/profile", r.AuthMw.Middleware())
		protected.Get("/", r.Auth.Profile)
	}

	if r.WS != nil {
		app.Get("/ws/updates", r.WS.HandleUpdatesWS)
	}
}
