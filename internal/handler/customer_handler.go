package handler

import (
	"go-salestrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	authService service.AuthService
}

func NewCustomerHandler(authService service.AuthService) *CustomerHandler {
	return &CustomerHandler{authService: authService}
}

// GetProfile returns the customer's account merged with their shop
// GET /api/customer/profile
func (h *CustomerHandler) GetProfile(c *fiber.Ctx) error {
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

// UpdateProfile updates name and phone, with a phone-uniqueness check that
// excludes the caller
// PUT /api/customer/profile
func (h *CustomerHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	var req service.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	customer, err := h.authService.UpdateProfile(id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Profile updated successfully",
		"customer": customer,
	})
}
