package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account roles
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Account statuses
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// Account represents an identity (admin or customer) in the system
type Account struct {
	BaseModel
	FirstName string `gorm:"type:varchar(255);not null" json:"first_name" validate:"required"`
	LastName  string `gorm:"type:varchar(255);not null" json:"last_name" validate:"required"`
	// Uniqueness for email and phone is enforced by partial indexes created
	// at migration time, scoped to deleted_at IS NULL. A tag-generated index
	// would also count soft-deleted rows and block re-registration.
	Email     string `gorm:"type:varchar(255);index;not null" json:"email" validate:"required,email"`
	Phone     string `gorm:"type:varchar(20);index;not null" json:"phone" validate:"required"`
	Role      string `gorm:"type:varchar(20);not null" json:"role"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Status    string `gorm:"type:varchar(20);default:'disabled'" json:"status"`
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

// IsAdmin reports whether the account has the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsDisabled reports whether the account is disabled
func (a *Account) IsDisabled() bool {
	return a.Status == StatusDisabled
}

// AccountResponse is used for API responses (without sensitive data)
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts Account to AccountResponse
func (a *Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
