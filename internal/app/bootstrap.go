package app

import (
	"fmt"
	"log"
	"strings"

	"skillmapper/internal/config"
	"skillmapper/internal/delivery/http/handler"
	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/delivery/http/routes"
	"skillmapper/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	authMw := middleware.NewAuthMiddleware(c.JWT)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		handler.NewAuthHandler(c.AuthUC, authMw),
		handler.NewUserHandler(c.UserUC),
		handler.NewStaticRoadmapHandler(c.StaticRoadmapUC, c.StaticProgressUC, authMw),
		handler.NewPersonalRoadmapHandler(c.PersonalRoadmapUC, c.PersonalProgressUC),
		ws.NewHandler(c.Hub, c.Logger),
		authMw,
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
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
