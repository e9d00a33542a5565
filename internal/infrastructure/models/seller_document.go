package models

import (
	"time"

	"github.com/google/uuid"
)

type SellerDocument struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SubjectType     string    `gorm:"type:varchar(10);not null;index:idx_document_subject"`
	SubjectID       uuid.UUID `gorm:"type:uuid;not null;index:idx_document_subject"`
	Type            string    `gorm:"type:varchar(30);not null"`
	Number          string    `gorm:"type:varchar(100);not null"`
	URL             string    `gorm:"type:varchar(512)"`
	ExpiresAt       *time.Time
	Status          string  `gorm:"type:varchar(20);not null;default:'PENDING'"`
	RejectionReason *string `gorm:"type:text"`
	VerifiedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
