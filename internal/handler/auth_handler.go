package handler

import (
	"go-salestrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles authentication for both roles
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide email and password"})
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}

// AdminLogin restricts authentication to the admin account
// POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide email and password"})
	}

	response, err := h.authService.AdminLogin(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}

// GetProfile returns the authenticated account merged with its shop
// GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	profile, err := h.authService.GetProfile(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// ForgotPasswordRequest represents the forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword generates a verification code and emails it
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide email"})
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Verification code has been generated and sent to your email"})
}

// VerifyEmailRequest represents the verify email request body
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyEmail checks the verification code without consuming it
// POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.Email == "" || req.Code == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide email and code"})
	}

	if err := h.authService.VerifyEmail(req.Email, req.Code); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Verification successfully"})
}

// ResetPasswordRequest represents the reset password request body
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// ResetPassword changes the password after re-validating the code, then
// consumes it
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.Email == "" || req.Password == "" || req.Code == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide email, password, and code"})
	}

	if len(req.Password) < 6 {
		return c.Status(400).JSON(fiber.Map{"message": "Password must be at least 6 characters"})
	}

	if err := h.authService.ResetPassword(req.Email, req.Password, req.Code); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}
