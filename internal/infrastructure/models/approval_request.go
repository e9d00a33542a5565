package models

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalRequest struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SellerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ResolvedBy *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt *time.Time
	Notes      *string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
