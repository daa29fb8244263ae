package service

import (
	"errors"

	"github.com/google/uuid"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
	"go-salestrack/pkg/database"
)

var (
	ErrShopExists      = errors.New("Customer already has a shop")
	ErrShopEmailExists = errors.New("Shop with this email already exists")
	ErrShopPhoneExists = errors.New("Shop with this phone number already exists")
	ErrShopEmailTaken  = errors.New("Shop email already exists")
	ErrShopPhoneTaken  = errors.New("Shop phone number already exists")
	ErrShopNotFound    = errors.New("Shop not found")
)

type ShopService interface {
	CreateShop(customerID uuid.UUID, req *CreateShopRequest, logoURL string) (*model.Shop, error)
	GetMyShops(customerID uuid.UUID) ([]ShopWithCount, error)
	GetShop(customerID, id uuid.UUID) (*ShopDetail, error)
	UpdateShop(customerID, id uuid.UUID, req *UpdateShopRequest, newLogoURL string) (*model.Shop, string, error)
	DeleteShop(customerID, id uuid.UUID) error
}

type CreateShopRequest struct {
	ShopName  string `json:"shop_name" form:"shop_name" validate:"required"`
	ShopEmail string `json:"shop_email" form:"shop_email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone" validate:"required"`
	Address   string `json:"address" form:"address" validate:"required"`
}

// UpdateShopRequest carries optional fields; empty values are left unchanged
type UpdateShopRequest struct {
	ShopName  string `json:"shop_name" form:"shop_name"`
	ShopEmail string `json:"shop_email" form:"shop_email" validate:"omitempty,email"`
	Phone     string `json:"phone" form:"phone"`
	Address   string `json:"address" form:"address"`
}

// ShopWithCount annotates a shop with its live (non-deleted) product count
type ShopWithCount struct {
	model.Shop
	ProductCount int64 `json:"product_count"`
}

// ShopDetail embeds the shop's non-deleted products
type ShopDetail struct {
	model.Shop
	Products     []model.Product `json:"products"`
	ProductCount int             `json:"product_count"`
}

type shopService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
}

func NewShopService(shopRepo repository.ShopRepository, productRepo repository.ProductRepository) ShopService {
	return &shopService{shopRepo: shopRepo, productRepo: productRepo}
}

func (s *shopService) CreateShop(customerID uuid.UUID, req *CreateShopRequest, logoURL string) (*model.Shop, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Enforce one shop per customer
	if existing, _ := s.shopRepo.FindByCustomerID(customerID); existing != nil {
		return nil, ErrShopExists
	}
	if existing, _ := s.shopRepo.FindByEmail(normalizeEmail(req.ShopEmail)); existing != nil {
		return nil, ErrShopEmailExists
	}
	if existing, _ := s.shopRepo.FindByPhone(req.Phone); existing != nil {
		return nil, ErrShopPhoneExists
	}

	shop := &model.Shop{
		ShopName:   req.ShopName,
		Logo:       logoURL,
		ShopEmail:  normalizeEmail(req.ShopEmail),
		Phone:      req.Phone,
		Address:    req.Address,
		CustomerID: customerID,
	}

	if err := s.shopRepo.Create(shop); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrShopEmailExists
		}
		return nil, err
	}

	return shop, nil
}

func (s *shopService) GetMyShops(customerID uuid.UUID) ([]ShopWithCount, error) {
	shops, err := s.shopRepo.FindAllByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	result := make([]ShopWithCount, len(shops))
	for i, shop := range shops {
		count, err := s.productRepo.CountByShopID(shop.ID)
		if err != nil {
			return nil, err
		}
		result[i] = ShopWithCount{Shop: shop, ProductCount: count}
	}
	return result, nil
}

func (s *shopService) GetShop(customerID, id uuid.UUID) (*ShopDetail, error) {
	shop, err := s.shopRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, ErrShopNotFound
	}

	products, err := s.productRepo.FindByShopID(shop.ID)
	if err != nil {
		return nil, err
	}

	return &ShopDetail{
		Shop:         *shop,
		Products:     products,
		ProductCount: len(products),
	}, nil
}

// UpdateShop applies the partial update and returns the previous logo URL
// when a new logo replaced it, so the caller can remove the old file after
// the record is safely updated.
func (s *shopService) UpdateShop(customerID, id uuid.UUID, req *UpdateShopRequest, newLogoURL string) (*model.Shop, string, error) {
	shop, err := s.shopRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, "", ErrShopNotFound
	}

	if req.ShopName != "" {
		shop.ShopName = req.ShopName
	}
	if req.Address != "" {
		shop.Address = req.Address
	}
	if req.ShopEmail != "" {
		email := normalizeEmail(req.ShopEmail)
		if existing, _ := s.shopRepo.FindByEmailExcluding(email, shop.ID); existing != nil {
			return nil, "", ErrShopEmailTaken
		}
		shop.ShopEmail = email
	}
	if req.Phone != "" {
		if existing, _ := s.shopRepo.FindByPhoneExcluding(req.Phone, shop.ID); existing != nil {
			return nil, "", ErrShopPhoneTaken
		}
		shop.Phone = req.Phone
	}

	previousLogo := ""
	if newLogoURL != "" {
		previousLogo = shop.Logo
		shop.Logo = newLogoURL
	}

	if err := s.shopRepo.Update(shop); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, "", ErrShopEmailTaken
		}
		return nil, "", err
	}

	return shop, previousLogo, nil
}

// DeleteShop soft-deletes the shop and cascades a soft delete to its products
func (s *shopService) DeleteShop(customerID, id uuid.UUID) error {
	shop, err := s.shopRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return ErrShopNotFound
	}

	if err := s.shopRepo.Delete(shop.ID); err != nil {
		return err
	}
	return s.productRepo.DeleteByShopID(shop.ID)
}
