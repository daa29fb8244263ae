package service

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
)

var (
	ErrNoShop                = errors.New("No shop found for this user. Please create a shop first.")
	ErrCategoryNotFound      = errors.New("Category not found")
	ErrCategoryShopNotFound  = errors.New("Shop not found or access denied")
	ErrInvalidCategoryStatus = errors.New(`Status must be either "active" or "disable"`)
)

type CategoryService interface {
	CreateCategory(customerID uuid.UUID, req *CreateCategoryRequest) (*model.Category, error)
	ListCategories(customerID uuid.UUID, query *ListCategoriesQuery) (*CategoryPage, error)
	ListCategoriesSimple(customerID uuid.UUID) ([]model.CategoryRef, error)
	GetCategory(customerID, id uuid.UUID) (*CategoryDetail, error)
	UpdateCategory(customerID, id uuid.UUID, req *UpdateCategoryRequest) (*model.Category, error)
	DeleteCategory(customerID, id uuid.UUID) error
}

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Position *int   `json:"position"`
	Status   string `json:"status" validate:"omitempty,oneof=active disable"`
}

type UpdateCategoryRequest struct {
	Name     string  `json:"name"`
	Position *int    `json:"position"`
	Status   *string `json:"status"`
}

type ListCategoriesQuery struct {
	ShopID string // optional shop filter, must belong to the caller
	Search string // case-insensitive substring match on name
	Page   int
	Limit  int
}

// CategoryWithCount annotates a category with its live product count
type CategoryWithCount struct {
	model.Category
	ProductCount int64 `json:"product_count"`
}

// CategoryPage is the paginated listing envelope
type CategoryPage struct {
	Data       []CategoryWithCount `json:"data"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Total      int64               `json:"total"`
	TotalPages int                 `json:"totalPages"`
}

// CategoryDetail embeds the category's products
type CategoryDetail struct {
	model.Category
	Products     []model.Product `json:"products"`
	ProductCount int             `json:"product_count"`
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	shopRepo     repository.ShopRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		shopRepo:     shopRepo,
		productRepo:  productRepo,
	}
}

// CreateCategory resolves the caller's shop automatically; there is no
// shop_id in the request
func (s *categoryService) CreateCategory(customerID uuid.UUID, req *CreateCategoryRequest) (*model.Category, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.FindByCustomerID(customerID)
	if err != nil {
		return nil, ErrNoShop
	}

	category := &model.Category{
		Name:       req.Name,
		Status:     model.CategoryStatusActive,
		ShopID:     shop.ID,
		CustomerID: customerID,
	}
	if req.Position != nil {
		category.Position = *req.Position
	}
	if req.Status != "" {
		category.Status = req.Status
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	category.Shop = shop
	return category, nil
}

func (s *categoryService) ListCategories(customerID uuid.UUID, query *ListCategoriesQuery) (*CategoryPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repository.CategoryFilter{
		CustomerID: customerID,
		Search:     strings.TrimSpace(query.Search),
		Page:       page,
		Limit:      limit,
	}

	if query.ShopID != "" {
		shopID, err := uuid.Parse(query.ShopID)
		if err != nil {
			return nil, ErrCategoryShopNotFound
		}
		// The shop filter must reference a shop the caller owns
		if _, err := s.shopRepo.FindByIDAndCustomerID(shopID, customerID); err != nil {
			return nil, ErrCategoryShopNotFound
		}
		filter.ShopID = &shopID
	}

	categories, total, err := s.categoryRepo.List(filter)
	if err != nil {
		return nil, err
	}

	data := make([]CategoryWithCount, len(categories))
	for i, category := range categories {
		count, err := s.productRepo.CountByCategoryID(category.ID)
		if err != nil {
			return nil, err
		}
		data[i] = CategoryWithCount{Category: category, ProductCount: count}
	}

	return &CategoryPage{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *categoryService) ListCategoriesSimple(customerID uuid.UUID) ([]model.CategoryRef, error) {
	categories, err := s.categoryRepo.ListAll(customerID)
	if err != nil {
		return nil, err
	}

	refs := make([]model.CategoryRef, len(categories))
	for i, category := range categories {
		refs[i] = category.ToRef()
	}
	return refs, nil
}

func (s *categoryService) GetCategory(customerID, id uuid.UUID) (*CategoryDetail, error) {
	category, err := s.categoryRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	products, err := s.productRepo.FindByCategoryID(category.ID)
	if err != nil {
		return nil, err
	}

	return &CategoryDetail{
		Category:     *category,
		Products:     products,
		ProductCount: len(products),
	}, nil
}

func (s *categoryService) UpdateCategory(customerID, id uuid.UUID, req *UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Position != nil {
		category.Position = *req.Position
	}
	if req.Status != nil {
		if *req.Status != model.CategoryStatusActive && *req.Status != model.CategoryStatusDisable {
			return nil, ErrInvalidCategoryStatus
		}
		category.Status = *req.Status
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes the category and clears the reference on every
// product that pointed at it. Products themselves are kept.
func (s *categoryService) DeleteCategory(customerID, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return ErrCategoryNotFound
	}

	if err := s.categoryRepo.Delete(category.ID); err != nil {
		return err
	}
	return s.productRepo.ClearCategoryRefs(category.ID)
}
