package app

import (
	"fmt"
	"strings"

	"clmi/internal/config"
	"clmi/internal/delivery/http/handler"
	"clmi/internal/delivery/http/middleware"
	"clmi/internal/delivery/http/routes"
	"clmi/internal/usecase"
	"clmi/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, mounts the HTTP surface, and starts
// the background machinery (websocket hub, snapshot refresh). The
// returned cleanup stops both and releases the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	go c.Hub.Run()

	if err := c.Scheduler.Start(cfg.Listing.RefreshSpec); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		c.Scheduler.Stop()
		return c.Close()
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	mode := string(usecase.ParseMode(c.Config.Listing.Mode))

	reg := &routes.Registry{
		Health:       handler.NewHealthHandler(c.Config.App.AppName, mode, c.Hub),
		Jobs:         handler.NewJobsHandler(c.Jobs),
		Skills:       handler.NewSkillsHandler(c.Skills),
		Universities: handler.NewUniversitiesHandler(c.Universities),
		Auth:         handler.NewAuthHandler(c.AuthSvc),
		WS:           ws.NewHandler(c.Hub, c.Logger),
		AuthMw:       middleware.NewAuthMiddleware(c.Tokens),
	}
	reg.Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
