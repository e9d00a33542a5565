package repositories

import (
	"context"

	"github.com/google/uuid"
	"tradeport.backend/internal/domain/entities"
	"tradeport.backend/pkg/utils"
)

// ProductRepository defines catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// ListPublic returns published products belonging to APPROVED sellers.
	ListPublic(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Product, int64, error)
	// DecrementStock atomically reduces stock by qty, failing with
	// ErrInsufficientStock when fewer than qty units remain.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
