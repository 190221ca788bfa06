package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/invyfy/invyfy-api/internal/api/dto"
	"github.com/invyfy/invyfy-api/internal/auth"
	"github.com/invyfy/invyfy-api/internal/service"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

// AuthHandler exposes the /api/auth endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("Validation failed", errs)
	}

	user, token, _, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data": fiber.Map{
			"user":  user.Public(),
			"token": token,
		},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("Validation failed", errs)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"user":  user.Public(),
			"token": token,
		},
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("User not authenticated")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user": user,
		},
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful. Please remove token from client storage.",
	})
}
