package model

import "github.com/google/uuid"

// Shop belongs to exactly one customer; a customer owns at most one shop
type Shop struct {
	BaseModel
	ShopName   string    `gorm:"type:varchar(255);not null" json:"shop_name" validate:"required"`
	Logo       string    `gorm:"type:varchar(512);default:''" json:"logo"`
	// Email and phone uniqueness lives in partial indexes over live rows,
	// created at migration time; see Account for the rationale.
	ShopEmail  string    `gorm:"type:varchar(255);index;not null" json:"shop_email" validate:"required,email"`
	Phone      string    `gorm:"type:varchar(20);index;not null" json:"phone" validate:"required"`
	Address    string    `gorm:"type:text;not null" json:"address" validate:"required"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   *Account  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
