package model

import "github.com/google/uuid"

// Product belongs to a shop/customer and, optionally, a category owned by the
// same customer
type Product struct {
	BaseModel
	Name       string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SalePrice  float64    `gorm:"not null" json:"sale_price" validate:"gte=0"`
	BuyPrice   float64    `gorm:"not null" json:"buy_price" validate:"gte=0"`
	Quantity   int        `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	ShopID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"shop_id"`
	Shop       *Shop      `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"customer_id"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// ProductSummary is the listing projection: one row with its cover image and
// compact category
type ProductSummary struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	SalePrice float64      `json:"sale_price"`
	BuyPrice  float64      `json:"buy_price"`
	Quantity  int          `json:"quantity"`
	Image     *string      `json:"image"`
	Category  *CategoryRef `json:"category"`
}

// ToSummary builds the listing projection. coverImage may be nil when the
// product has no images.
func (p *Product) ToSummary(coverImage *string) ProductSummary {
	summary := ProductSummary{
		ID:        p.ID,
		Name:      p.Name,
		SalePrice: p.SalePrice,
		BuyPrice:  p.BuyPrice,
		Quantity:  p.Quantity,
		Image:     coverImage,
	}
	if p.Category != nil {
		ref := p.Category.ToRef()
		summary.Category = &ref
	}
	return summary
}
