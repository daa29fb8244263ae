package repository

import (
	"go-salestrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository interface {
	Create(shop *model.Shop) error
	Update(shop *model.Shop) error
	FindByCustomerID(customerID uuid.UUID) (*model.Shop, error)
	FindAllByCustomerID(customerID uuid.UUID) ([]model.Shop, error)
	FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Shop, error)
	FindByEmail(email string) (*model.Shop, error)
	FindByPhone(phone string) (*model.Shop, error)
	FindByEmailExcluding(email string, excludeID uuid.UUID) (*model.Shop, error)
	FindByPhoneExcluding(phone string, excludeID uuid.UUID) (*model.Shop, error)
	Delete(id uuid.UUID) error
}

type shopRepo struct {
	db *gorm.DB
}

func NewShopRepo(db *gorm.DB) ShopRepository {
	return &shopRepo{db}
}

func (r *shopRepo) Create(shop *model.Shop) error {
	return r.db.Create(shop).Error
}

func (r *shopRepo) Update(shop *model.Shop) error {
	return r.db.Save(shop).Error
}

func (r *shopRepo) FindByCustomerID(customerID uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Where("customer_id = ?", customerID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindAllByCustomerID exists for the legacy multi-shop listing route; with the
// one-shop invariant it returns at most one row.
func (r *shopRepo) FindAllByCustomerID(customerID uuid.UUID) ([]model.Shop, error) {
	var shops []model.Shop
	if err := r.db.Preload("Customer").
		Where("customer_id = ?", customerID).
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *shopRepo) FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Preload("Customer").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) FindByEmail(email string) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Where("shop_email = ?", email).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) FindByPhone(phone string) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Where("phone = ?", phone).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) FindByEmailExcluding(email string, excludeID uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Where("shop_email = ? AND id <> ?", email, excludeID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) FindByPhoneExcluding(phone string, excludeID uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Where("phone = ? AND id <> ?", phone, excludeID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Shop{}, "id = ?", id).Error
}
