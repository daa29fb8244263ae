package repository

import (
	"go-salestrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(account *model.Account) error
	Update(account *model.Account) error
	FindByID(id uuid.UUID) (*model.Account, error)
	FindByEmail(email string) (*model.Account, error)
	FindByEmailAndRole(email, role string) (*model.Account, error)
	FindByPhone(phone string) (*model.Account, error)
	FindByPhoneExcluding(phone string, excludeID uuid.UUID) (*model.Account, error)
	FindAdmin() (*model.Account, error)
	FindCustomers() ([]model.Account, error)
	FindCustomerByID(id uuid.UUID) (*model.Account, error)
	UpdateStatus(id uuid.UUID, status string) error
	UpdatePassword(id uuid.UUID, hashedPassword string) error
	DeleteCustomer(id uuid.UUID) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db}
}

func (r *accountRepo) Create(account *model.Account) error {
	return r.db.Create(account).Error
}

func (r *accountRepo) Update(account *model.Account) error {
	return r.db.Save(account).Error
}

func (r *accountRepo) FindByID(id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByEmail(email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByEmailAndRole(email, role string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("email = ? AND role = ?", email, role).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByPhone(phone string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("phone = ?", phone).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByPhoneExcluding(phone string, excludeID uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("phone = ? AND id <> ?", phone, excludeID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindAdmin() (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("role = ?", model.RoleAdmin).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindCustomers() ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.Where("role = ?", model.RoleCustomer).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepo) FindCustomerByID(id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("id = ? AND role = ?", id, model.RoleCustomer).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&model.Account{}).
		Where("id = ? AND role = ?", id, model.RoleCustomer).
		Update("status", status).Error
}

func (r *accountRepo) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Account{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

func (r *accountRepo) DeleteCustomer(id uuid.UUID) error {
	return r.db.Where("role = ?", model.RoleCustomer).Delete(&model.Account{}, "id = ?", id).Error
}
