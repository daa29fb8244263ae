package model

import "github.com/google/uuid"

// Category statuses. Note: the disable value has no trailing "d"; it is part
// of the API contract.
const (
	CategoryStatusActive  = "active"
	CategoryStatusDisable = "disable"
)

// Category is a product grouping scoped to a single shop/customer
type Category struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Position   int       `gorm:"default:0" json:"position"`
	Status     string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	ShopID     uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`
	Shop       *Shop     `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
}

// CategoryRef is the compact category projection embedded in product payloads
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToRef converts a Category to its compact projection
func (c *Category) ToRef() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name}
}
