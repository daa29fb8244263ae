package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-salestrack/internal/model"
	"go-salestrack/internal/service"
)

// stubProductService records the last create call and returns a fixed summary
type stubProductService struct {
	created *service.CreateProductRequest
}

func (s *stubProductService) CreateProduct(customerID uuid.UUID, req *service.CreateProductRequest, imageURLs []string) (*model.ProductSummary, error) {
	s.created = req
	return &model.ProductSummary{ID: uuid.New(), Name: req.Name, SalePrice: req.SalePrice, BuyPrice: req.BuyPrice, Quantity: req.Quantity}, nil
}

func (s *stubProductService) ListProducts(*uuid.UUID, *service.ListProductsQuery) (*service.ProductPage, error) {
	return &service.ProductPage{}, nil
}

func (s *stubProductService) GetProduct(uuid.UUID, uuid.UUID) (*service.ProductDetail, error) {
	return nil, service.ErrProductNotFound
}

func (s *stubProductService) UpdateProduct(uuid.UUID, uuid.UUID, *service.UpdateProductRequest, []string) (*model.ProductSummary, []string, error) {
	return nil, nil, service.ErrProductNotFound
}

func (s *stubProductService) DeleteProduct(uuid.UUID, uuid.UUID) error { return nil }

func (s *stubProductService) AddImages(uuid.UUID, uuid.UUID, []string) ([]model.ProductImage, error) {
	return nil, nil
}

func (s *stubProductService) DeleteImage(uuid.UUID, uuid.UUID) (string, error) { return "", nil }

func newProductTestApp(svc service.ProductService) *fiber.App {
	app := fiber.New()
	handler := NewProductHandler(svc)
	app.Post("/products", func(c *fiber.Ctx) error {
		c.Locals("account_id", uuid.New().String())
		c.Locals("role", model.RoleCustomer)
		return c.Next()
	}, handler.CreateProduct)
	return app
}

func productForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateProduct_RequiresAllFields(t *testing.T) {
	svc := &stubProductService{}
	app := newProductTestApp(svc)

	// Each numeric field must be present; absence is not the same as zero
	for _, fields := range []map[string]string{
		{"sale_price": "3.5", "buy_price": "1.2", "quantity": "10"},
		{"name": "Iced Tea", "buy_price": "1.2", "quantity": "10"},
		{"name": "Iced Tea", "sale_price": "3.5", "quantity": "10"},
		{"name": "Iced Tea", "sale_price": "3.5", "buy_price": "1.2"},
	} {
		body, contentType := productForm(t, fields)
		req := httptest.NewRequest("POST", "/products", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		payload, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(payload), "Please provide name, sale_price, buy_price, and quantity")
		assert.Nil(t, svc.created)
	}
}

func TestCreateProduct_RejectsBadNumbers(t *testing.T) {
	svc := &stubProductService{}
	app := newProductTestApp(svc)

	body, contentType := productForm(t, map[string]string{
		"name": "Iced Tea", "sale_price": "abc", "buy_price": "1.2", "quantity": "10",
	})
	req := httptest.NewRequest("POST", "/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	payload, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(payload), "Sale price must be a non-negative number")
}

func TestCreateProduct_ZeroValuesAreValid(t *testing.T) {
	svc := &stubProductService{}
	app := newProductTestApp(svc)

	// Explicit zeros pass the presence check
	body, contentType := productForm(t, map[string]string{
		"name": "Iced Tea", "sale_price": "0", "buy_price": "0", "quantity": "0",
	})
	req := httptest.NewRequest("POST", "/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	require.NotNil(t, svc.created)
	assert.Equal(t, "Iced Tea", svc.created.Name)
	assert.Zero(t, svc.created.SalePrice)
	assert.Zero(t, svc.created.Quantity)
}
