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

// approvalRequestRepo implements repositories.ApprovalRequestRepository
type approvalRequestRepo struct {
	db *gorm.DB
}

// NewApprovalRequestRepository creates a new approval request repository
func NewApprovalRequestRepository(db *gorm.DB) repositories.ApprovalRequestRepository {
	return &approvalRequestRepo{db: db}
}

func (r *approvalRequestRepo) Create(ctx context.Context, request *entities.ApprovalRequest) error {
	if request.ID == uuid.Nil {
		request.ID = utils.GenerateUUIDv7()
	}
	if request.Status == "" {
		request.Status = entities.ApprovalStatusPending
	}
	m := r.toModel(request)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	request.CreatedAt = m.CreatedAt
	request.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *approvalRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.ApprovalRequest, error) {
	var m models.ApprovalRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *approvalRequestRepo) GetPendingBySellerID(ctx context.Context, sellerID uuid.UUID) (*entities.ApprovalRequest, error) {
	var m models.ApprovalRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("seller_id = ? AND status = ?", sellerID, string(entities.ApprovalStatusPending)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListPending returns the admin review queue, oldest first, with each
// request joined to its seller profile, account, and documents.
func (r *approvalRequestRepo) ListPending(ctx context.Context) ([]*entities.PendingApproval, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var ms []models.ApprovalRequest
	err := db.Where("status = ?", string(entities.ApprovalStatusPending)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	profiles := &sellerProfileRepo{db: r.db}
	users := &userRepo{db: r.db}
	docs := &sellerDocumentRepo{db: r.db}

	pending := make([]*entities.PendingApproval, 0, len(ms))
	for i := range ms {
		request := r.toEntity(&ms[i])

		seller, err := profiles.GetByID(ctx, request.SellerID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}

		user, err := users.GetByID(ctx, seller.UserID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}

		documents, err := docs.ListBySubject(ctx, entities.DocumentSubjectSeller, seller.ID)
		if err != nil {
			return nil, err
		}

		pending = append(pending, &entities.PendingApproval{
			Request:   request,
			Seller:    seller,
			User:      user,
			Documents: documents,
		})
	}
	return pending, nil
}

// Resolve writes the decision onto a request that is still PENDING. A race
// where two admins resolve the same request leaves the loser with zero rows
// affected, reported as ErrNotFound for the caller to translate.
func (r *approvalRequestRepo) Resolve(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, resolvedBy uuid.UUID, notes null.String, resolvedAt time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ApprovalRequest{}).
		Where("id = ? AND status = ?", id, string(entities.ApprovalStatusPending)).
		Updates(map[string]interface{}{
			"status":      string(status),
			"resolved_by": resolvedBy,
			"resolved_at": resolvedAt,
			"notes":       notes.Ptr(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *approvalRequestRepo) CountStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ApprovalRequest{}).
		Where("status = ? AND created_at < ?", string(entities.ApprovalStatusPending), olderThan).
		Count(&count).Error
	return count, err
}

func (r *approvalRequestRepo) toModel(a *entities.ApprovalRequest) *models.ApprovalRequest {
	m := &models.ApprovalRequest{
		ID:         a.ID,
		SellerID:   a.SellerID,
		Status:     string(a.Status),
		ResolvedAt: a.ResolvedAt.Ptr(),
		Notes:      a.Notes.Ptr(),
	}
	if a.ResolvedBy.Valid {
		id := a.ResolvedBy.UUID
		m.ResolvedBy = &id
	}
	return m
}

func (r *approvalRequestRepo) toEntity(m *models.ApprovalRequest) *entities.ApprovalRequest {
	a := &entities.ApprovalRequest{
		ID:         m.ID,
		SellerID:   m.SellerID,
		Status:     entities.ApprovalStatus(m.Status),
		ResolvedAt: null.TimeFromPtr(m.ResolvedAt),
		Notes:      null.StringFromPtr(m.Notes),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.ResolvedBy != nil {
		a.ResolvedBy = uuid.NullUUID{UUID: *m.ResolvedBy, Valid: true}
	}
	return a
}
