package handler

import (
	"go-salestrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// RegisterAdmin creates the sole admin account (one-time, public)
// POST /api/auth/register-admin
func (h *AdminHandler) RegisterAdmin(c *fiber.Ctx) error {
	var req service.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide all required fields"})
	}

	admin, err := h.adminService.RegisterAdmin(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Admin registered successfully",
		"admin":   admin,
	})
}

// CreateCustomer provisions a customer account
// POST /api/admin/customers
func (h *AdminHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide all required fields"})
	}

	customer, err := h.adminService.CreateCustomer(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// GetCustomers lists all customer accounts, secrets stripped
// GET /api/admin/customers
func (h *AdminHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.adminService.GetCustomers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// GetCustomer fetches a single customer account
// GET /api/admin/customers/:id
func (h *AdminHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid customer ID"})
	}

	customer, err := h.adminService.GetCustomer(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// UpdateCustomerStatus enables or disables a customer account
// PUT /api/admin/customers/:id/status
func (h *AdminHandler) UpdateCustomerStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid customer ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	customer, err := h.adminService.UpdateCustomerStatus(id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Customer status updated successfully",
		"customer": customer,
	})
}

// DeleteCustomer removes a customer account
// DELETE /api/admin/customers/:id
func (h *AdminHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid customer ID"})
	}

	if err := h.adminService.DeleteCustomer(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Customer deleted successfully"})
}
