package handler

import (
	"strconv"

	"go-salestrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the unauthenticated storefront endpoints.
type PublicHandler struct {
	productService service.ProductService
}

func NewPublicHandler(productService service.ProductService) *PublicHandler {
	return &PublicHandler{productService: productService}
}

// GetProducts lists products across all shops without authentication
// GET /api/products?shop_id=&search=&page=&limit=
func (h *PublicHandler) GetProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	query := &service.ListProductsQuery{
		ShopID: c.Query("shop_id"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	// Nil customer scope means no ownership filter
	result, err := h.productService.ListProducts(nil, query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
