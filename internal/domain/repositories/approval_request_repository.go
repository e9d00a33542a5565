package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
)

// ApprovalRequestRepository defines admin approval queue operations
type ApprovalRequestRepository interface {
	Create(ctx context.Context, request *entities.ApprovalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ApprovalRequest, error)
	GetPendingBySellerID(ctx context.Context, sellerID uuid.UUID) (*entities.ApprovalRequest, error)
	ListPending(ctx context.Context) ([]*entities.PendingApproval, error)
	// Resolve writes the decision. Implementations must only touch rows that
	// are still PENDING so a lost-update race surfaces as ErrNotFound.
	Resolve(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, resolvedBy uuid.UUID, notes null.String, resolvedAt time.Time) error
	CountStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}
