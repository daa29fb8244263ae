package handler

import (
	"go-salestrack/internal/service"
	"go-salestrack/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShopHandler struct {
	shopService service.ShopService
}

func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// CreateShop creates the customer's shop with an optional logo upload
// POST /api/customer/shops (multipart)
func (h *ShopHandler) CreateShop(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	var req service.CreateShopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid form data"})
	}

	if req.ShopName == "" || req.ShopEmail == "" || req.Phone == "" || req.Address == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide shop_name, shop_email, phone, and address"})
	}

	// Store the file first; if the record insert fails an orphaned file is
	// preferable to a record pointing at nothing
	logoURL := ""
	if file, err := c.FormFile("logo"); err == nil && file != nil {
		logoURL, err = upload.SaveShopLogo(c, file)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
	}

	shop, err := h.shopService.CreateShop(customerID, &req, logoURL)
	if err != nil {
		upload.Remove(logoURL)
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Shop created successfully",
		"shop":    shop,
	})
}

// GetMyShops lists the caller's shops with product counts
// GET /api/customer/shops
func (h *ShopHandler) GetMyShops(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	shops, err := h.shopService.GetMyShops(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shops)
}

// GetShop fetches one shop with its products
// GET /api/customer/shops/:id
func (h *ShopHandler) GetShop(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid shop ID"})
	}

	shop, err := h.shopService.GetShop(customerID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// UpdateShop updates shop fields; a new logo replaces the old file
// PUT /api/customer/shops/:id (multipart)
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid shop ID"})
	}

	var req service.UpdateShopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid form data"})
	}

	newLogoURL := ""
	if file, err := c.FormFile("logo"); err == nil && file != nil {
		newLogoURL, err = upload.SaveShopLogo(c, file)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
	}

	shop, previousLogo, err := h.shopService.UpdateShop(customerID, id, &req, newLogoURL)
	if err != nil {
		upload.Remove(newLogoURL)
		return respondError(c, err)
	}

	// Record updated; the replaced file is now an orphan
	upload.Remove(previousLogo)

	return c.JSON(fiber.Map{
		"message": "Shop updated successfully",
		"shop":    shop,
	})
}

// DeleteShop soft-deletes the shop and its products
// DELETE /api/customer/shops/:id
func (h *ShopHandler) DeleteShop(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid shop ID"})
	}

	if err := h.shopService.DeleteShop(customerID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Shop and associated products deleted successfully"})
}
