package repository

import (
	"go-salestrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryFilter narrows a category listing. ShopID is optional; Search is a
// case-insensitive substring match on the name.
type CategoryFilter struct {
	CustomerID uuid.UUID
	ShopID     *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

type CategoryRepository interface {
	Create(category *model.Category) error
	Update(category *model.Category) error
	FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Category, error)
	List(filter CategoryFilter) ([]model.Category, int64, error)
	ListAll(customerID uuid.UUID) ([]model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("Shop").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) List(filter CategoryFilter) ([]model.Category, int64, error) {
	query := r.db.Model(&model.Category{}).Where("customer_id = ?", filter.CustomerID)

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

	var categories []model.Category
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Preload("Shop").
		Order("position ASC, created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *categoryRepo) ListAll(customerID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Where("customer_id = ?", customerID).
		Order("position ASC, created_at DESC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "id = ?", id).Error
}
