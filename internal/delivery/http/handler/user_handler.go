package handler

import (
	"errors"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"
	ucauth "job-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	auth usecase.AuthUsecase
	cfg  config.AuthConfig
}

func NewUserHandler(auth usecase.AuthUsecase, cfg config.AuthConfig) *UserHandler {
	return &UserHandler{auth: auth, cfg: cfg}
}

func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, token, err := h.auth.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		return mapAuthError(err)
	}

	h.setTokenCookie(c, token)
	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": "User registered successfully!",
		"user":    dto.FromUser(usr),
	})
}

func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, token, err := h.auth.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	h.setTokenCookie(c, token)
	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": "User logged in successfully!",
		"user":    dto.FromUser(usr),
	})
}

func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "User logged out successfully!"})
}

func (h *UserHandler) HandleGetUser(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"user": dto.FromUser(usr)})
}

func (h *UserHandler) setTokenCookie(c fiber.Ctx, token string) {
	expireDays := h.cfg.CookieExpireDays
	if expireDays <= 0 {
		expireDays = 7
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(expireDays) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
}

func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please fill full form!", err)
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered!", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid Email Or Password.", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
}
