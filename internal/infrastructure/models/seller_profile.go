package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SellerProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName     string    `gorm:"type:varchar(255)"`
	BusinessType    string    `gorm:"type:varchar(100)"`
	AddressLine     *string   `gorm:"type:varchar(255)"`
	City            *string   `gorm:"type:varchar(100)"`
	State           *string   `gorm:"type:varchar(100)"`
	PostalCode      *string   `gorm:"type:varchar(20)"`
	Country         *string   `gorm:"type:varchar(100)"`
	TaxID           *string   `gorm:"type:varchar(100)"`
	Website         *string   `gorm:"type:varchar(255)"`
	Bio             *string   `gorm:"type:text"`
	LogoURL         *string   `gorm:"type:varchar(512)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'IN_PROGRESS';index"`
	RejectionReason *string   `gorm:"type:text"`
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
