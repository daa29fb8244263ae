package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"go-salestrack/internal/service"
	"go-salestrack/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// imageFiles pulls the "images" uploads out of the multipart form, if any
func imageFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// CreateProduct creates a product with up to 4 images
// POST /api/customer/products (multipart)
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	name := strings.TrimSpace(c.FormValue("name"))
	saleRaw := c.FormValue("sale_price")
	buyRaw := c.FormValue("buy_price")
	quantityRaw := c.FormValue("quantity")
	if name == "" || saleRaw == "" || buyRaw == "" || quantityRaw == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide name, sale_price, buy_price, and quantity"})
	}

	salePrice, err := strconv.ParseFloat(saleRaw, 64)
	if err != nil || salePrice < 0 {
		return c.Status(400).JSON(fiber.Map{"message": service.ErrInvalidSalePrice.Error()})
	}
	buyPrice, err := strconv.ParseFloat(buyRaw, 64)
	if err != nil || buyPrice < 0 {
		return c.Status(400).JSON(fiber.Map{"message": service.ErrInvalidBuyPrice.Error()})
	}
	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil || quantity < 0 {
		return c.Status(400).JSON(fiber.Map{"message": service.ErrInvalidQuantity.Error()})
	}

	req := &service.CreateProductRequest{
		Name:      name,
		SalePrice: salePrice,
		BuyPrice:  buyPrice,
		Quantity:  quantity,
	}
	if raw := c.FormValue("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": service.ErrCategoryNotOwned.Error()})
		}
		req.CategoryID = &categoryID
	}

	imageURLs, err := upload.SaveProductImages(c, imageFiles(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	product, err := h.productService.CreateProduct(customerID, req, imageURLs)
	if err != nil {
		for _, url := range imageURLs {
			upload.Remove(url)
		}
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// GetProducts lists the caller's products, paginated
// GET /api/customer/products?shop_id=&search=&page=&limit=
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	query := &service.ListProductsQuery{
		ShopID: c.Query("shop_id"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.productService.ListProducts(&customerID, query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetProduct fetches one product with all its images
// GET /api/customer/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	product, err := h.productService.GetProduct(customerID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// UpdateProduct applies a partial update. Fields absent from the form are
// left untouched; uploading images replaces the whole image set.
// PUT /api/customer/products/:id (multipart)
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	req := &service.UpdateProductRequest{}
	form, formErr := c.MultipartForm()
	if formErr != nil || form == nil {
		// No multipart body means a JSON partial update
		if err := c.BodyParser(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
		}
	} else {
		// Field presence in the form decides what gets updated
		if values, ok := form.Value["name"]; ok && len(values) > 0 {
			name := strings.TrimSpace(values[0])
			req.Name = &name
		}
		if values, ok := form.Value["sale_price"]; ok && len(values) > 0 {
			salePrice, err := strconv.ParseFloat(values[0], 64)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"message": service.ErrInvalidSalePrice.Error()})
			}
			req.SalePrice = &salePrice
		}
		if values, ok := form.Value["buy_price"]; ok && len(values) > 0 {
			buyPrice, err := strconv.ParseFloat(values[0], 64)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"message": service.ErrInvalidBuyPrice.Error()})
			}
			req.BuyPrice = &buyPrice
		}
		if values, ok := form.Value["quantity"]; ok && len(values) > 0 {
			quantity, err := strconv.Atoi(values[0])
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"message": service.ErrInvalidQuantity.Error()})
			}
			req.Quantity = &quantity
		}
		if values, ok := form.Value["category_id"]; ok && len(values) > 0 {
			req.CategoryID = &values[0]
		}
	}

	var newImageURLs []string
	if files := imageFiles(c); len(files) > 0 {
		newImageURLs, err = upload.SaveProductImages(c, files)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
	}

	product, replacedURLs, err := h.productService.UpdateProduct(customerID, id, req, newImageURLs)
	if err != nil {
		for _, url := range newImageURLs {
			upload.Remove(url)
		}
		return respondError(c, err)
	}

	// Replaced image records are gone; drop their files too
	for _, url := range replacedURLs {
		upload.Remove(url)
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct soft-deletes the product
// DELETE /api/customer/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	if err := h.productService.DeleteProduct(customerID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// AddImages appends images to a product up to the 4-image ceiling
// POST /api/customer/products/:id/images (multipart)
func (h *ProductHandler) AddImages(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	files := imageFiles(c)
	if len(files) == 0 {
		return c.Status(400).JSON(fiber.Map{"message": service.ErrNoImages.Error()})
	}

	imageURLs, err := upload.SaveProductImages(c, files)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	images, err := h.productService.AddImages(customerID, id, imageURLs)
	if err != nil {
		for _, url := range imageURLs {
			upload.Remove(url)
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Images added successfully",
		"images":  images,
	})
}

// DeleteImage removes one image record and its file
// DELETE /api/customer/products/images/:imageId
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	customerID, err := accountID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Token is not valid"})
	}

	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid image ID"})
	}

	removedURL, err := h.productService.DeleteImage(customerID, imageID)
	if err != nil {
		return respondError(c, err)
	}
	upload.Remove(removedURL)

	return c.JSON(fiber.Map{"message": "Image deleted successfully"})
}
