package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/internal/infrastructure/models"
	"tradeport.backend/pkg/utils"
)

// sellerDocumentRepo implements repositories.SellerDocumentRepository
type sellerDocumentRepo struct {
	db *gorm.DB
}

// NewSellerDocumentRepository creates a new seller document repository
func NewSellerDocumentRepository(db *gorm.DB) repositories.SellerDocumentRepository {
	return &sellerDocumentRepo{db: db}
}

func (r *sellerDocumentRepo) Create(ctx context.Context, doc *entities.SellerDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = utils.GenerateUUIDv7()
	}
	if doc.Status == "" {
		doc.Status = entities.DocumentStatusPending
	}
	m := r.toModel(doc)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.CreatedAt = m.CreatedAt
	doc.UpdatedAt = m.UpdatedAt
	return nil
}

// Upsert replaces the existing document of the same subject and type so a
// re-upload never leaves two competing records behind.
func (r *sellerDocumentRepo) Upsert(ctx context.Context, doc *entities.SellerDocument) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var existing models.SellerDocument
	err := db.Where("subject_type = ? AND subject_id = ? AND type = ?",
		string(doc.SubjectType), doc.SubjectID, string(doc.Type)).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.Create(ctx, doc)
		}
		return err
	}

	doc.ID = existing.ID
	doc.Status = entities.DocumentStatusPending
	result := db.Model(&models.SellerDocument{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"number":           doc.Number,
		"url":              doc.URL,
		"expires_at":       doc.ExpiresAt.Ptr(),
		"status":           string(entities.DocumentStatusPending),
		"rejection_reason": nil,
		"verified_at":      nil,
	})
	return result.Error
}

func (r *sellerDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.SellerDocument, error) {
	var m models.SellerDocument
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *sellerDocumentRepo) ListBySubject(ctx context.Context, subjectType entities.DocumentSubject, subjectID uuid.UUID) ([]*entities.SellerDocument, error) {
	var ms []models.SellerDocument
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", string(subjectType), subjectID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*entities.SellerDocument, 0, len(ms))
	for i := range ms {
		docs = append(docs, r.toEntity(&ms[i]))
	}
	return docs, nil
}

func (r *sellerDocumentRepo) ResolvePending(ctx context.Context, subjectType entities.DocumentSubject, subjectID uuid.UUID, status entities.DocumentStatus, reason null.String, verifiedAt time.Time) error {
	fields := map[string]interface{}{
		"status": string(status),
	}
	if status == entities.DocumentStatusApproved {
		fields["verified_at"] = verifiedAt
	}
	if status == entities.DocumentStatusRejected {
		fields["rejection_reason"] = reason.Ptr()
	}
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.SellerDocument{}).
		Where("subject_type = ? AND subject_id = ? AND status = ?",
			string(subjectType), subjectID, string(entities.DocumentStatusPending)).
		Updates(fields).Error
}

func (r *sellerDocumentRepo) toModel(d *entities.SellerDocument) *models.SellerDocument {
	return &models.SellerDocument{
		ID:              d.ID,
		SubjectType:     string(d.SubjectType),
		SubjectID:       d.SubjectID,
		Type:            string(d.Type),
		Number:          d.Number,
		URL:             d.URL,
		ExpiresAt:       d.ExpiresAt.Ptr(),
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason.Ptr(),
		VerifiedAt:      d.VerifiedAt.Ptr(),
	}
}

func (r *sellerDocumentRepo) toEntity(m *models.SellerDocument) *entities.SellerDocument {
	return &entities.SellerDocument{
		ID:              m.ID,
		SubjectType:     entities.DocumentSubject(m.SubjectType),
		SubjectID:       m.SubjectID,
		Type:            entities.DocumentType(m.Type),
		Number:          m.Number,
		URL:             m.URL,
		ExpiresAt:       null.TimeFromPtr(m.ExpiresAt),
		Status:          entities.DocumentStatus(m.Status),
		RejectionReason: null.StringFromPtr(m.RejectionReason),
		VerifiedAt:      null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
