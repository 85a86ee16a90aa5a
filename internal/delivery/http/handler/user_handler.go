package handler

import (
	"errors"

	"skillmapper/internal/delivery/http/dto"
	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/domain/user"
	"skillmapper/internal/pkg/response"
	useruc "skillmapper/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc *useruc.Service
}

type completeProfileRequest struct {
	TargetRole     string   `json:"targetRole"`
	SkillSet       []string `json:"skillSet"`
	TimeCanGive    string   `json:"timeCanGive"`
	Designation    string   `json:"designation"`
	Bio            string   `json:"bio"`
	GithubUsername string   `json:"githubUsername"`
	Avatar         string   `json:"avatar"`
}

type editProfileRequest struct {
	Designation      *string  `json:"designation"`
	Bio              *string  `json:"bio"`
	Avatar           *string  `json:"avatar"`
	GithubUsername   *string  `json:"githubUsername"`
	LinkedinUsername *string  `json:"linkedinUsername"`
	TwitterLink      *string  `json:"twitterLink"`
	SkillSet         []string `json:"skillSet"`
	TargetRole       *string  `json:"targetRole"`
}

type profileUpdateResponse struct {
	User    dto.UserResponse `json:"user"`
	Message string           `json:"message"`
}

func NewUserHandler(uc *useruc.Service) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/complete-profile", h.CompleteProfile)
	r.Patch("/edit-profile", h.EditProfile)
	r.Get("/get-profile", h.GetProfile)
}

func (h *UserHandler) CompleteProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req completeProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Incomplete data", nil, err)
	}

	usr, err := h.uc.CompleteProfile(c.Context(), userID, useruc.CompleteProfileInput{
		TargetRole:     req.TargetRole,
		Skills:         req.SkillSet,
		TimeCanGive:    req.TimeCanGive,
		Designation:    req.Designation,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		AvatarURL:      req.Avatar,
	})
	if err != nil {
		return mapProfileError(err)
	}

	return c.Status(fiber.StatusOK).JSON(profileUpdateResponse{
		User:    dto.NewUserResponse(usr),
		Message: "Profile Updated Successfully",
	})
}

func (h *UserHandler) EditProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req editProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	usr, err := h.uc.EditProfile(c.Context(), userID, useruc.EditProfileInput{
		Designation:      req.Designation,
		Bio:              req.Bio,
		AvatarURL:        req.Avatar,
		GithubUsername:   req.GithubUsername,
		LinkedinUsername: req.LinkedinUsername,
		TwitterLink:      req.TwitterLink,
		Skills:           req.SkillSet,
		Goal:             req.TargetRole,
	})
	if err != nil {
		return mapProfileError(err)
	}

	return c.Status(fiber.StatusOK).JSON(profileUpdateResponse{
		User:    dto.NewUserResponse(usr),
		Message: "Profile Updated Successfully",
	})
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	usr, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(usr))
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, useruc.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Incomplete data", nil, err)
	case errors.Is(err, useruc.ErrUnknownGoal):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown target role", nil, err)
	case errors.Is(err, useruc.ErrUnknownSkill):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
