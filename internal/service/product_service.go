package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
)

var (
	ErrProductNotFound      = errors.New("Product not found")
	ErrCategoryNotOwned     = errors.New("Category not found or does not belong to this user")
	ErrCategoryNotInShop    = errors.New("Category not found or does not belong to this shop")
	ErrImageNotFound        = errors.New("Image not found")
	ErrImageProductNotFound = errors.New("Product not found or access denied")
	ErrTooManyImages        = errors.New("Maximum 4 images allowed")
	ErrNoImages             = errors.New("No images provided")
	ErrEmptyProductName     = errors.New("Product name cannot be empty")
	ErrInvalidSalePrice     = errors.New("Sale price must be a non-negative number")
	ErrInvalidBuyPrice      = errors.New("Buy price must be a non-negative number")
	ErrInvalidQuantity      = errors.New("Quantity must be a non-negative number")
	ErrNothingToUpdate      = errors.New("No fields to update")
)

type ProductService interface {
	CreateProduct(customerID uuid.UUID, req *CreateProductRequest, imageURLs []string) (*model.ProductSummary, error)
	ListProducts(customerID *uuid.UUID, query *ListProductsQuery) (*ProductPage, error)
	GetProduct(customerID, id uuid.UUID) (*ProductDetail, error)
	UpdateProduct(customerID, id uuid.UUID, req *UpdateProductRequest, newImageURLs []string) (*model.ProductSummary, []string, error)
	DeleteProduct(customerID, id uuid.UUID) error
	AddImages(customerID, id uuid.UUID, imageURLs []string) ([]model.ProductImage, error)
	DeleteImage(customerID, imageID uuid.UUID) (string, error)
}

type CreateProductRequest struct {
	Name       string     `json:"name" form:"name" validate:"required"`
	SalePrice  float64    `json:"sale_price" form:"sale_price" validate:"gte=0"`
	BuyPrice   float64    `json:"buy_price" form:"buy_price" validate:"gte=0"`
	Quantity   int        `json:"quantity" form:"quantity" validate:"gte=0"`
	CategoryID *uuid.UUID `json:"category_id" form:"category_id"`
}

// UpdateProductRequest carries independently optional fields. CategoryID
// distinguishes three states: nil leaves the category untouched, empty string
// clears it, and a UUID re-links it (after ownership checks).
type UpdateProductRequest struct {
	Name       *string  `json:"name"`
	SalePrice  *float64 `json:"sale_price"`
	BuyPrice   *float64 `json:"buy_price"`
	Quantity   *int     `json:"quantity"`
	CategoryID *string  `json:"category_id"`
}

type ListProductsQuery struct {
	ShopID string
	Search string
	Page   int
	Limit  int
}

type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	Limit         int   `json:"limit"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

type ProductPage struct {
	Products   []model.ProductSummary `json:"products"`
	Pagination Pagination             `json:"pagination"`
}

// ProductDetail is the full record with its ordered images
type ProductDetail struct {
	model.Product
	Images []model.ProductImage `json:"images"`
}

type productService struct {
	productRepo  repository.ProductRepository
	imageRepo    repository.ProductImageRepository
	categoryRepo repository.CategoryRepository
	shopRepo     repository.ShopRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	imageRepo repository.ProductImageRepository,
	categoryRepo repository.CategoryRepository,
	shopRepo repository.ShopRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		categoryRepo: categoryRepo,
		shopRepo:     shopRepo,
	}
}

func (s *productService) CreateProduct(customerID uuid.UUID, req *CreateProductRequest, imageURLs []string) (*model.ProductSummary, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.FindByCustomerID(customerID)
	if err != nil {
		return nil, ErrNoShop
	}

	// A linked category must be a live category of the same customer
	var category *model.Category
	if req.CategoryID != nil {
		category, err = s.categoryRepo.FindByIDAndCustomerID(*req.CategoryID, customerID)
		if err != nil {
			return nil, ErrCategoryNotOwned
		}
	}

	if len(imageURLs) > model.MaxProductImages {
		return nil, fmt.Errorf("%w. Trying to upload %d images", ErrTooManyImages, len(imageURLs))
	}

	product := &model.Product{
		Name:       req.Name,
		SalePrice:  req.SalePrice,
		BuyPrice:   req.BuyPrice,
		Quantity:   req.Quantity,
		ShopID:     shop.ID,
		CustomerID: customerID,
		CategoryID: req.CategoryID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.Category = category

	var cover *string
	for i, url := range imageURLs {
		image := &model.ProductImage{
			ProductID:  product.ID,
			ImageURL:   url,
			ImageOrder: i, // Upload order decides display order
		}
		if err := s.imageRepo.Create(image); err != nil {
			return nil, err
		}
		if i == 0 {
			cover = &imageURLs[0]
		}
	}

	summary := product.ToSummary(cover)
	return &summary, nil
}

func (s *productService) ListProducts(customerID *uuid.UUID, query *ListProductsQuery) (*ProductPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repository.ProductFilter{
		CustomerID: customerID,
		Search:     strings.TrimSpace(query.Search),
		Page:       page,
		Limit:      limit,
	}
	if query.ShopID != "" {
		shopID, err := uuid.Parse(query.ShopID)
		if err != nil {
			return nil, ErrShopNotFound
		}
		filter.ShopID = &shopID
	}

	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.ProductSummary, len(products))
	for i := range products {
		cover, err := s.coverURL(products[i].ID)
		if err != nil {
			return nil, err
		}
		summaries[i] = products[i].ToSummary(cover)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return &ProductPage{
		Products: summaries,
		Pagination: Pagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalProducts: total,
			Limit:         limit,
			HasNextPage:   page < totalPages,
			HasPrevPage:   page > 1,
		},
	}, nil
}

func (s *productService) GetProduct(customerID, id uuid.UUID) (*ProductDetail, error) {
	product, err := s.productRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	images, err := s.imageRepo.FindByProductID(product.ID)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{Product: *product, Images: images}, nil
}

// UpdateProduct applies the partial update. When newImageURLs is non-empty
// the whole image set is replaced; the URLs of the replaced images are
// returned so the caller can remove the files once the records are gone.
func (s *productService) UpdateProduct(customerID, id uuid.UUID, req *UpdateProductRequest, newImageURLs []string) (*model.ProductSummary, []string, error) {
	existing, err := s.productRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, nil, ErrProductNotFound
	}

	fields := map[string]interface{}{}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, nil, ErrEmptyProductName
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.SalePrice != nil {
		if *req.SalePrice < 0 {
			return nil, nil, ErrInvalidSalePrice
		}
		fields["sale_price"] = *req.SalePrice
	}
	if req.BuyPrice != nil {
		if *req.BuyPrice < 0 {
			return nil, nil, ErrInvalidBuyPrice
		}
		fields["buy_price"] = *req.BuyPrice
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, nil, ErrInvalidQuantity
		}
		fields["quantity"] = *req.Quantity
	}

	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			fields["category_id"] = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, nil, ErrCategoryNotInShop
			}
			// Stricter than create: the category must also belong to the
			// product's shop
			category, err := s.categoryRepo.FindByIDAndCustomerID(categoryID, customerID)
			if err != nil || category.ShopID != existing.ShopID {
				return nil, nil, ErrCategoryNotInShop
			}
			fields["category_id"] = categoryID
		}
	}

	if len(newImageURLs) > model.MaxProductImages {
		return nil, nil, fmt.Errorf("%w. Trying to upload %d images", ErrTooManyImages, len(newImageURLs))
	}

	if len(fields) == 0 && len(newImageURLs) == 0 {
		return nil, nil, ErrNothingToUpdate
	}

	// Replace the whole image set when new images accompany the update
	var replacedURLs []string
	if len(newImageURLs) > 0 {
		oldImages, err := s.imageRepo.FindByProductID(existing.ID)
		if err != nil {
			return nil, nil, err
		}
		for _, image := range oldImages {
			replacedURLs = append(replacedURLs, image.ImageURL)
		}
		if err := s.imageRepo.DeleteByProductID(existing.ID); err != nil {
			return nil, nil, err
		}
		for i, url := range newImageURLs {
			image := &model.ProductImage{
				ProductID:  existing.ID,
				ImageURL:   url,
				ImageOrder: i,
			}
			if err := s.imageRepo.Create(image); err != nil {
				return nil, nil, err
			}
		}
	}

	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(existing.ID, fields); err != nil {
			return nil, nil, err
		}
	}

	updated, err := s.productRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, nil, ErrProductNotFound
	}
	cover, err := s.coverURL(updated.ID)
	if err != nil {
		return nil, nil, err
	}

	summary := updated.ToSummary(cover)
	return &summary, replacedURLs, nil
}

// DeleteProduct soft-deletes the product; its image rows are untouched
func (s *productService) DeleteProduct(customerID, id uuid.UUID) error {
	product, err := s.productRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(product.ID)
}

// AddImages appends images, enforcing the ceiling across existing plus new
func (s *productService) AddImages(customerID, id uuid.UUID, imageURLs []string) ([]model.ProductImage, error) {
	product, err := s.productRepo.FindByIDAndCustomerID(id, customerID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	current, err := s.imageRepo.CountByProductID(product.ID)
	if err != nil {
		return nil, err
	}
	if int(current)+len(imageURLs) > model.MaxProductImages {
		return nil, fmt.Errorf("%w. Currently have %d, trying to add %d", ErrTooManyImages, current, len(imageURLs))
	}
	if len(imageURLs) == 0 {
		return nil, ErrNoImages
	}

	for i, url := range imageURLs {
		image := &model.ProductImage{
			ProductID:  product.ID,
			ImageURL:   url,
			ImageOrder: int(current) + i,
		}
		if err := s.imageRepo.Create(image); err != nil {
			return nil, err
		}
	}

	return s.imageRepo.FindByProductID(product.ID)
}

// DeleteImage removes one image after checking its parent product belongs to
// the caller, returning the removed URL for file cleanup
func (s *productService) DeleteImage(customerID, imageID uuid.UUID) (string, error) {
	image, err := s.imageRepo.FindByID(imageID)
	if err != nil {
		return "", ErrImageNotFound
	}

	if _, err := s.productRepo.FindByIDAndCustomerID(image.ProductID, customerID); err != nil {
		return "", ErrImageProductNotFound
	}

	if err := s.imageRepo.Delete(image.ID); err != nil {
		return "", err
	}
	return image.ImageURL, nil
}

func (s *productService) coverURL(productID uuid.UUID) (*string, error) {
	cover, err := s.imageRepo.FindCover(productID)
	if err != nil {
		return nil, err
	}
	if cover == nil {
		return nil, nil
	}
	return &cover.ImageURL, nil
}
