package app

import (
	"fmt"
	"strings"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	corsCfg := cors.Config{AllowCredentials: true}
	if c.Config.App.FrontendURL != "" {
		corsCfg.AllowOrigins = []string{c.Config.App.FrontendURL}
	}
	f.Use(cors.New(corsCfg))

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	registry := &routes.Registry{
		Health: c.Health,
		Jobs:   c.Jobs,
		Users:  c.Users,
		Auth:   c.Auth,
		WS:     c.WSHandle,
	}
	registry.Register(f)
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
