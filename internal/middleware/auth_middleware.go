package middleware

import (
	"strings"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
	"go-salestrack/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token, loads the referenced account,
// rejects disabled customers, and sets identity info in the request context
func RequireAuth(accountRepo repository.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"message": "No token, authorization denied"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"message": "No token, authorization denied"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
		}

		// The account must still exist; a deleted account's token is dead
		account, err := accountRepo.FindByID(claims.AccountID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
		}

		if account.Role == model.RoleCustomer && account.IsDisabled() {
			return c.Status(403).JSON(fiber.Map{"message": "Account is disabled"})
		}

		// Set identity in context for downstream handlers
		c.Locals("account_id", account.ID.String())
		c.Locals("role", account.Role)

		return c.Next()
	}
}

// RequireAdmin restricts a route group to the admin role
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := c.Locals("role").(string); ok && role == model.RoleAdmin {
			return c.Next()
		}
		return c.Status(403).JSON(fiber.Map{"message": "Access denied. Admin only."})
	}
}

// RequireCustomer restricts a route group to the customer role
func RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := c.Locals("role").(string); ok && role == model.RoleCustomer {
			return c.Next()
		}
		return c.Status(403).JSON(fiber.Map{"message": "Access denied. Customer only."})
	}
}
