package service

import (
	"errors"

	"github.com/google/uuid"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
	"go-salestrack/pkg/database"
)

var (
	ErrAdminExists      = errors.New("Admin already exists. Only one admin is allowed.")
	ErrEmailTaken       = errors.New("User with this email already exists")
	ErrPhoneTaken       = errors.New("User with this phone number already exists")
	ErrCustomerNotFound = errors.New("Customer not found")
	ErrInvalidStatus    = errors.New("Please provide valid status (active or disabled)")
)

type AdminService interface {
	RegisterAdmin(req *RegisterAdminRequest) (*model.AccountResponse, error)
	CreateCustomer(req *CreateCustomerRequest) (*model.AccountResponse, error)
	GetCustomers() ([]model.AccountResponse, error)
	GetCustomer(id uuid.UUID) (*model.AccountResponse, error)
	UpdateCustomerStatus(id uuid.UUID, status string) (*model.AccountResponse, error)
	DeleteCustomer(id uuid.UUID) error
}

type RegisterAdminRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Status    string `json:"status" validate:"omitempty,oneof=active disabled"`
}

type adminService struct {
	accountRepo repository.AccountRepository
}

func NewAdminService(accountRepo repository.AccountRepository) AdminService {
	return &adminService{accountRepo: accountRepo}
}

// RegisterAdmin creates the sole admin account. A partial unique index on
// role='admin' backs the pre-check, so a racing second insert still fails.
func (s *adminService) RegisterAdmin(req *RegisterAdminRequest) (*model.AccountResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.accountRepo.FindAdmin(); existing != nil {
		return nil, ErrAdminExists
	}
	if existing, _ := s.accountRepo.FindByEmail(normalizeEmail(req.Email)); existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, _ := s.accountRepo.FindByPhone(req.Phone); existing != nil {
		return nil, ErrPhoneTaken
	}

	admin := &model.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     normalizeEmail(req.Email),
		Phone:     req.Phone,
		Role:      model.RoleAdmin,
		Status:    model.StatusActive,
	}
	if err := admin.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.accountRepo.Create(admin); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAdminExists
		}
		return nil, err
	}

	response := admin.ToResponse()
	return &response, nil
}

func (s *adminService) CreateCustomer(req *CreateCustomerRequest) (*model.AccountResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.accountRepo.FindByEmail(normalizeEmail(req.Email)); existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, _ := s.accountRepo.FindByPhone(req.Phone); existing != nil {
		return nil, ErrPhoneTaken
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	customer := &model.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     normalizeEmail(req.Email),
		Phone:     req.Phone,
		Role:      model.RoleCustomer,
		Status:    status,
	}
	if err := customer.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.accountRepo.Create(customer); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	response := customer.ToResponse()
	return &response, nil
}

func (s *adminService) GetCustomers() ([]model.AccountResponse, error) {
	customers, err := s.accountRepo.FindCustomers()
	if err != nil {
		return nil, err
	}

	responses := make([]model.AccountResponse, len(customers))
	for i, customer := range customers {
		responses[i] = customer.ToResponse()
	}
	return responses, nil
}

func (s *adminService) GetCustomer(id uuid.UUID) (*model.AccountResponse, error) {
	customer, err := s.accountRepo.FindCustomerByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	response := customer.ToResponse()
	return &response, nil
}

func (s *adminService) UpdateCustomerStatus(id uuid.UUID, status string) (*model.AccountResponse, error) {
	if status != model.StatusActive && status != model.StatusDisabled {
		return nil, ErrInvalidStatus
	}

	if _, err := s.accountRepo.FindCustomerByID(id); err != nil {
		return nil, ErrCustomerNotFound
	}

	if err := s.accountRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	return s.GetCustomer(id)
}

func (s *adminService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.accountRepo.FindCustomerByID(id); err != nil {
		return ErrCustomerNotFound
	}
	return s.accountRepo.DeleteCustomer(id)
}
