package handler

import (
	"errors"

	"skillmapper/internal/delivery/http/dto"
	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/domain/user"
	"skillmapper/internal/pkg/response"
	"skillmapper/internal/usecase"
	ucauth "skillmapper/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc     usecase.AuthUsecase
	authMw *middleware.AuthMiddleware
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Message   string `json:"message"`
	AuthToken string `json:"authToken"`
}

func NewAuthHandler(uc usecase.AuthUsecase, authMw *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{uc: uc, authMw: authMw}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/getuser", h.GetUser, h.authMw.Middleware())
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	_, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(tokenResponse{
		Message:   "User Successfully Registered",
		AuthToken: token,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	_, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenResponse{
		Message:   "User Logged in Successfully",
		AuthToken: token,
	})
}

func (h *AuthHandler) GetUser(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	usr, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(usr))
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request Fill the details properly", nil, err)
	case errors.Is(err, ucauth.ErrUserExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "User already exists", nil, err)
	case errors.Is(err, ucauth.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "User does not exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusBadRequest, "Enter valid credentials", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
