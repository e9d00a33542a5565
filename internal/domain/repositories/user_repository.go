package repositories

import (
	"context"

	"github.com/google/uuid"
	"tradeport.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, role entities.UserRole, search string) ([]*entities.User, error)
}
