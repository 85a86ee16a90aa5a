package handler

import (
	"context"
	"time"

	"skillmapper/internal/database"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
	r.Get("/", h.Home)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	dbStatus := "up"
	code := fiber.StatusOK
	if h.db == nil {
		dbStatus = "down"
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Home(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("SkillMapper HomePage")
}
