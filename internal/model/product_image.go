package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxProductImages is the ceiling on images attached to a single product
const MaxProductImages = 4

// ProductImage is an uploaded image attached to a product. The image with the
// lowest order is the cover image. Images are hard-deleted, never soft-deleted.
type ProductImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	ImageURL   string    `gorm:"type:varchar(512);not null" json:"image_url"`
	ImageOrder int       `gorm:"default:0" json:"image_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (img *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	return
}
