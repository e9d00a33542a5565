package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber     string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Subtotal        float64   `gorm:"not null"`
	Tax             float64   `gorm:"not null;default:0"`
	ShippingCost    float64   `gorm:"not null;default:0"`
	TotalAmount     float64   `gorm:"not null"`
	HeldAmount      float64   `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ShippingName    string    `gorm:"type:varchar(255);not null"`
	ShippingAddress string    `gorm:"type:varchar(512);not null"`
	ShippingCity    string    `gorm:"type:varchar(100);not null"`
	ShippingState   string    `gorm:"type:varchar(100)"`
	ShippingZip     string    `gorm:"type:varchar(20);not null"`
	ShippingCountry string    `gorm:"type:varchar(100);not null"`
	ShippingPhone   string    `gorm:"type:varchar(30);not null"`
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
	CreatedAt time.Time
}
