package handler

import (
	"errors"
	"strconv"

	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/domain/progress"
	"skillmapper/internal/domain/roadmap"
	"skillmapper/internal/pkg/response"
	"skillmapper/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StaticRoadmapHandler struct {
	roadmaps *usecase.StaticRoadmapUsecase
	progress *usecase.StaticProgressUsecase
	authMw   *middleware.AuthMiddleware
}

type staticTopicToggleRequest struct {
	RoadmapID int    `json:"roadmapId"`
	PhaseID   int    `json:"phaseId"`
	TopicID   int    `json:"topicId"`
	Action    string `json:"action"`
}

type staticProjectToggleRequest struct {
	RoadmapID int    `json:"roadmapId"`
	PhaseID   int    `json:"phaseId"`
	ProjectID int    `json:"projectId"`
	Action    string `json:"action"`
}

func NewStaticRoadmapHandler(roadmaps *usecase.StaticRoadmapUsecase, prog *usecase.StaticProgressUsecase, authMw *middleware.AuthMiddleware) *StaticRoadmapHandler {
	return &StaticRoadmapHandler{roadmaps: roadmaps, progress: prog, authMw: authMw}
}

// RegisterRoutes wires the catalog endpoints publicly; only the
// per-user progress endpoints sit behind authentication.
func (h *StaticRoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/get-trending-roles", h.TrendingRoles)
	r.Get("/other-roles", h.OtherRoles)
	r.Get("/details/:roadmapId", h.Details)
	r.Get("/search", h.Search)
	r.Post("/seed-roadmap", h.Seed)
	r.Get("/progress/:roadmapId", h.Progress, h.authMw.Middleware())
	r.Patch("/progress/updateTopic", h.UpdateTopic, h.authMw.Middleware())
	r.Patch("/progress/updateProject", h.UpdateProject, h.authMw.Middleware())
}

func (h *StaticRoadmapHandler) TrendingRoles(c fiber.Ctx) error {
	raw, err := h.roadmaps.TrendingRoles(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(raw)
}

func (h *StaticRoadmapHandler) OtherRoles(c fiber.Ctx) error {
	raw, err := h.roadmaps.OtherRoles(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(raw)
}

func (h *StaticRoadmapHandler) Details(c fiber.Ctx) error {
	roadmapID, err := strconv.Atoi(c.Params("roadmapId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid roadmap id", nil, err)
	}

	docs, err := h.roadmaps.Details(c.Context(), roadmapID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(docs)
}

func (h *StaticRoadmapHandler) Search(c fiber.Ctx) error {
	docs, err := h.roadmaps.Search(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(docs)
}

func (h *StaticRoadmapHandler) Seed(c fiber.Ctx) error {
	var req struct {
		RoadmapID int `json:"roadmapId"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if req.RoadmapID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "roadmapId is required", nil, nil)
	}

	doc, err := h.roadmaps.Seed(c.Context(), req.RoadmapID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoadmapNotInCatalog):
			return middleware.NewAppError(fiber.StatusNotFound, "Roadmap not found", nil, err)
		case errors.Is(err, roadmap.ErrAlreadySeeded):
			return middleware.NewAppError(fiber.StatusConflict, "Roadmap already seeded", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Roadmap seeded successfully",
		"roadmap": doc,
	})
}

func (h *StaticRoadmapHandler) Progress(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	roadmapID, err := strconv.Atoi(c.Params("roadmapId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid roadmap id", nil, err)
	}

	record, err := h.progress.Get(c.Context(), userID, roadmapID)
	if err != nil {
		return mapProgressError(err)
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

func (h *StaticRoadmapHandler) UpdateTopic(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req staticTopicToggleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	record, err := h.progress.ToggleTopic(c.Context(), userID, req.RoadmapID, progress.TopicRef{
		PhaseID: req.PhaseID,
		TopicID: req.TopicID,
	}, req.Action)
	if err != nil {
		return mapProgressError(err)
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

func (h *StaticRoadmapHandler) UpdateProject(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req staticProjectToggleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	record, err := h.progress.ToggleProject(c.Context(), userID, req.RoadmapID, progress.ProjectRef{
		PhaseID:   req.PhaseID,
		ProjectID: req.ProjectID,
	}, req.Action)
	if err != nil {
		return mapProgressError(err)
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

func mapProgressError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidToggle):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid progress update", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
