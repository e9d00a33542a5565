package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
)

// SellerProfileRepository defines seller profile data operations
type SellerProfileRepository interface {
	Create(ctx context.Context, profile *entities.SellerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SellerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error)
	Update(ctx context.Context, profile *entities.SellerProfile) error
	// UpdateStatus moves a profile to status, recording the review metadata.
	// reason is only persisted for rejections; reviewedAt may be zero for
	// submission transitions.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SellerStatus, reason null.String, reviewedAt time.Time) error
	ListByStatus(ctx context.Context, status entities.SellerStatus) ([]*entities.SellerProfile, error)
}
