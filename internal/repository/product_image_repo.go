package repository

import (
	"errors"

	"go-salestrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductImageRepository interface {
	Create(image *model.ProductImage) error
	FindByID(id uuid.UUID) (*model.ProductImage, error)
	FindByProductID(productID uuid.UUID) ([]model.ProductImage, error)
	FindCover(productID uuid.UUID) (*model.ProductImage, error)
	CountByProductID(productID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
	DeleteByProductID(productID uuid.UUID) error
}

type productImageRepo struct {
	db *gorm.DB
}

func NewProductImageRepo(db *gorm.DB) ProductImageRepository {
	return &productImageRepo{db}
}

func (r *productImageRepo) Create(image *model.ProductImage) error {
	return r.db.Create(image).Error
}

func (r *productImageRepo) FindByID(id uuid.UUID) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productImageRepo) FindByProductID(productID uuid.UUID) ([]model.ProductImage, error) {
	var images []model.ProductImage
	if err := r.db.Where("product_id = ?", productID).
		Order("image_order ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// FindCover returns the image with the lowest order, or nil when the product
// has none.
func (r *productImageRepo) FindCover(productID uuid.UUID) (*model.ProductImage, error) {
	var image model.ProductImage
	err := r.db.Where("product_id = ?", productID).
		Order("image_order ASC").
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productImageRepo) CountByProductID(productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *productImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ProductImage{}, "id = ?", id).Error
}

func (r *productImageRepo) DeleteByProductID(productID uuid.UUID) error {
	return r.db.Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error
}
