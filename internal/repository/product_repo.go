package repository

import (
	"go-salestrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows a product listing. CustomerID is nil for the public
// listing, set for ownership-scoped ones.
type ProductFilter struct {
	CustomerID *uuid.UUID
	ShopID     *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

type ProductRepository interface {
	Create(product *model.Product) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Product, error)
	List(filter ProductFilter) ([]model.Product, int64, error)
	FindByShopID(shopID uuid.UUID) ([]model.Product, error)
	FindByCategoryID(categoryID uuid.UUID) ([]model.Product, error)
	CountByCategoryID(categoryID uuid.UUID) (int64, error)
	CountByShopID(shopID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
	DeleteByShopID(shopID uuid.UUID) error
	ClearCategoryRefs(categoryID uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// UpdateFields applies a partial update. A nil category_id value clears the
// category reference.
func (r *productRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Shop").Preload("Category").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) List(filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepo) FindByShopID(shopID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindByCategoryID(categoryID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Preload("Shop").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) CountByCategoryID(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *productRepo) CountByShopID(shopID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("shop_id = ?", shopID).Count(&count).Error
	return count, err
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// DeleteByShopID soft-deletes every product of a shop; used by the shop
// delete cascade. Issued as one statement so a crash cannot leave the cascade
// half-applied.
func (r *productRepo) DeleteByShopID(shopID uuid.UUID) error {
	return r.db.Where("shop_id = ?", shopID).Delete(&model.Product{}).Error
}

// ClearCategoryRefs unlinks every product from a category; used by the
// category delete cascade. Products themselves are untouched.
func (r *productRepo) ClearCategoryRefs(categoryID uuid.UUID) error {
	return r.db.Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}
