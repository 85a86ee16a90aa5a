package handler

import (
	"errors"

	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/domain/progress"
	"skillmapper/internal/infrastructure/generation"
	"skillmapper/internal/pkg/response"
	"skillmapper/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonalRoadmapHandler struct {
	roadmaps *usecase.PersonalRoadmapUsecase
	progress *usecase.PersonalProgressUsecase
}

type personalTopicToggleRequest struct {
	PhaseID int    `json:"phaseId"`
	TopicID int    `json:"topicId"`
	Action  string `json:"action"`
}

type capstoneToggleRequest struct {
	TopicID int    `json:"topicId"`
	Action  string `json:"action"`
}

func NewPersonalRoadmapHandler(roadmaps *usecase.PersonalRoadmapUsecase, prog *usecase.PersonalProgressUsecase) *PersonalRoadmapHandler {
	return &PersonalRoadmapHandler{roadmaps: roadmaps, progress: prog}
}

func (h *PersonalRoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/get-roadmap", h.GetRoadmap)
	r.Get("/progress", h.Progress)
	r.Patch("/progress/updateTopic", h.UpdateTopic)
	r.Patch("/progress/updateProject", h.UpdateCapstoneTopic)
}

func (h *PersonalRoadmapHandler) GetRoadmap(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	doc, err := h.roadmaps.GenerateOrFetch(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileIncomplete):
			return middleware.NewAppError(fiber.StatusBadRequest, "Complete your profile first", nil, err)
		case errors.Is(err, generation.ErrBadOutput):
			return middleware.NewAppError(fiber.StatusBadGateway, "Roadmap generation failed", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(doc)
}

func (h *PersonalRoadmapHandler) Progress(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	record, err := h.progress.Get(c.Context(), userID)
	if err != nil {
		return mapProgressError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"completedTopics":   record.CompletedTopics,
		"completedProjects": record.CompletedCapstoneTopics,
	})
}

func (h *PersonalRoadmapHandler) UpdateTopic(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req personalTopicToggleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	record, err := h.progress.ToggleTopic(c.Context(), userID, progress.TopicRef{
		PhaseID: req.PhaseID,
		TopicID: req.TopicID,
	}, req.Action)
	if err != nil {
		return mapProgressError(err)
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

func (h *PersonalRoadmapHandler) UpdateCapstoneTopic(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req capstoneToggleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	record, err := h.progress.ToggleCapstoneTopic(c.Context(), userID, progress.CapstoneRef{
		TopicID: req.TopicID,
	}, req.Action)
	if err != nil {
		return mapProgressError(err)
	}

	return c.Status(fiber.StatusOK).JSON(record)
}
