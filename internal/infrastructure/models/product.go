package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SellerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  *string   `gorm:"type:text"`
	Category     string    `gorm:"type:varchar(100);not null;index"`
	BasePrice    float64   `gorm:"not null"`
	SellingPrice float64   `gorm:"not null"`
	ProfitMargin float64   `gorm:"not null;default:0"`
	Stock        int       `gorm:"not null;default:0"`
	// JSON-encoded list of image URLs.
	ImageURLs   string  `gorm:"type:text"`
	SKU         *string `gorm:"type:varchar(100)"`
	IsPublished bool    `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
