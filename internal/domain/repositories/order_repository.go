package repositories

import (
	"context"

	"github.com/google/uuid"
	"tradeport.backend/internal/domain/entities"
	"tradeport.backend/pkg/utils"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	// Create persists the order together with its line items.
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error
}
