package handler

import (
	"errors"

	"go-salestrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var notFoundErrors = []error{
	service.ErrAccountNotFound,
	service.ErrEmailNotFound,
	service.ErrCustomerNotFound,
	service.ErrShopNotFound,
	service.ErrNoShop,
	service.ErrCategoryNotFound,
	service.ErrCategoryShopNotFound,
	service.ErrProductNotFound,
	service.ErrCategoryNotOwned,
	service.ErrCategoryNotInShop,
	service.ErrImageNotFound,
	service.ErrImageProductNotFound,
}

var badRequestErrors = []error{
	service.ErrValidation,
	service.ErrAdminExists,
	service.ErrEmailTaken,
	service.ErrPhoneTaken,
	service.ErrProfilePhoneTaken,
	service.ErrShopExists,
	service.ErrShopEmailExists,
	service.ErrShopPhoneExists,
	service.ErrShopEmailTaken,
	service.ErrShopPhoneTaken,
	service.ErrInvalidStatus,
	service.ErrInvalidCategoryStatus,
	service.ErrInvalidCode,
	service.ErrTooManyImages,
	service.ErrNoImages,
	service.ErrEmptyProductName,
	service.ErrInvalidSalePrice,
	service.ErrInvalidBuyPrice,
	service.ErrInvalidQuantity,
	service.ErrNothingToUpdate,
}

// respondError maps service errors to the API's status taxonomy. Conflicts
// are rendered as 400, matching the original contract. Unknown errors echo
// as 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrNotAdmin):
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, service.ErrAccountDisabled):
		return c.Status(403).JSON(fiber.Map{"message": err.Error()})
	case matchesAny(err, notFoundErrors):
		return c.Status(404).JSON(fiber.Map{"message": err.Error()})
	case matchesAny(err, badRequestErrors):
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"message": err.Error()})
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// accountID reads the authenticated account id set by the auth middleware
func accountID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("account_id").(string)
	if !ok {
		return uuid.Nil, errors.New("missing account in context")
	}
	return uuid.Parse(raw)
}
