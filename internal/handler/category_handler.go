package handler

import (
	"strconv"

	"go-salestrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a category in the caller's shop
// POST /api/customer/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	var req service.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Category name is required"})
	}

	category, err := h.categoryService.CreateCategory(customerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// GetCategories lists categories with product counts, paginated
// GET /api/customer/categories?shop_id=&category=&page=&limit=
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	query := &service.ListCategoriesQuery{
		ShopID: c.Query("shop_id"),
		Search: c.Query("category"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.categoryService.ListCategories(customerID, query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetCategoriesSimple returns id/name pairs for dropdowns
// GET /api/customer/categories/simple
func (h *CategoryHandler) GetCategoriesSimple(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	categories, err := h.categoryService.ListCategoriesSimple(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// GetCategory fetches one category with its products
// GET /api/customer/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	category, err := h.categoryService.GetCategory(customerID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// UpdateCategory updates name, position, or status
// PUT /api/customer/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	var req service.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	category, err := h.categoryService.UpdateCategory(customerID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory soft-deletes the category and unlinks its products
// DELETE /api/customer/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	if err := h.categoryService.DeleteCategory(customerID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Category deleted successfully. Products linked to this category have been unlinked.",
	})
}
