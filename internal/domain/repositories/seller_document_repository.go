package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
)

// SellerDocumentRepository defines verification document data operations
type SellerDocumentRepository interface {
	Create(ctx context.Context, doc *entities.SellerDocument) error
	// Upsert replaces the document of the same subject and type, or creates
	// it when absent.
	Upsert(ctx context.Context, doc *entities.SellerDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SellerDocument, error)
	ListBySubject(ctx context.Context, subjectType entities.DocumentSubject, subjectID uuid.UUID) ([]*entities.SellerDocument, error)
	// ResolvePending moves every PENDING document of the subject to status,
	// stamping verifiedAt on approvals and reason on rejections.
	ResolvePending(ctx context.Context, subjectType entities.DocumentSubject, subjectID uuid.UUID, status entities.DocumentStatus, reason null.String, verifiedAt time.Time) error
}
