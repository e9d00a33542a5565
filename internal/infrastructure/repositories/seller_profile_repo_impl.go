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

// sellerProfileRepo implements repositories.SellerProfileRepository
type sellerProfileRepo struct {
	db *gorm.DB
}

// NewSellerProfileRepository creates a new seller profile repository
func NewSellerProfileRepository(db *gorm.DB) repositories.SellerProfileRepository {
	return &sellerProfileRepo{db: db}
}

func (r *sellerProfileRepo) Create(ctx context.Context, profile *entities.SellerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	if profile.Status == "" {
		profile.Status = entities.SellerStatusInProgress
	}
	m := r.toModel(profile)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *sellerProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.SellerProfile, error) {
	var m models.SellerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *sellerProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error) {
	var m models.SellerProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *sellerProfileRepo) Update(ctx context.Context, profile *entities.SellerProfile) error {
	m := r.toModel(profile)
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.SellerProfile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"company_name":  m.CompanyName,
		"business_type": m.BusinessType,
		"address_line":  m.AddressLine,
		"city":          m.City,
		"state":         m.State,
		"postal_code":   m.PostalCode,
		"country":       m.Country,
		"tax_id":        m.TaxID,
		"website":       m.Website,
		"bio":           m.Bio,
		"logo_url":      m.LogoURL,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *sellerProfileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SellerStatus, reason null.String, reviewedAt time.Time) error {
	fields := map[string]interface{}{
		"status":           string(status),
		"rejection_reason": reason.Ptr(),
	}
	if status == entities.SellerStatusPendingReview {
		fields["submitted_at"] = time.Now().UTC()
	}
	if !reviewedAt.IsZero() {
		fields["reviewed_at"] = reviewedAt
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.SellerProfile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *sellerProfileRepo) ListByStatus(ctx context.Context, status entities.SellerStatus) ([]*entities.SellerProfile, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.SellerProfile{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var ms []models.SellerProfile
	if err := query.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entities.SellerProfile, 0, len(ms))
	for i := range ms {
		profiles = append(profiles, r.toEntity(&ms[i]))
	}
	return profiles, nil
}

func (r *sellerProfileRepo) toModel(p *entities.SellerProfile) *models.SellerProfile {
	return &models.SellerProfile{
		ID:              p.ID,
		UserID:          p.UserID,
		CompanyName:     p.CompanyName,
		BusinessType:    p.BusinessType,
		AddressLine:     p.AddressLine.Ptr(),
		City:            p.City.Ptr(),
		State:           p.State.Ptr(),
		PostalCode:      p.PostalCode.Ptr(),
		Country:         p.Country.Ptr(),
		TaxID:           p.TaxID.Ptr(),
		Website:         p.Website.Ptr(),
		Bio:             p.Bio.Ptr(),
		LogoURL:         p.LogoURL.Ptr(),
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason.Ptr(),
		SubmittedAt:     p.SubmittedAt.Ptr(),
		ReviewedAt:      p.ReviewedAt.Ptr(),
	}
}

func (r *sellerProfileRepo) toEntity(m *models.SellerProfile) *entities.SellerProfile {
	return &entities.SellerProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		CompanyName:     m.CompanyName,
		BusinessType:    m.BusinessType,
		AddressLine:     null.StringFromPtr(m.AddressLine),
		City:            null.StringFromPtr(m.City),
		State:           null.StringFromPtr(m.State),
		PostalCode:      null.StringFromPtr(m.PostalCode),
		Country:         null.StringFromPtr(m.Country),
		TaxID:           null.StringFromPtr(m.TaxID),
		Website:         null.StringFromPtr(m.Website),
		Bio:             null.StringFromPtr(m.Bio),
		LogoURL:         null.StringFromPtr(m.LogoURL),
		Status:          entities.SellerStatus(m.Status),
		RejectionReason: null.StringFromPtr(m.RejectionReason),
		SubmittedAt:     null.TimeFromPtr(m.SubmittedAt),
		ReviewedAt:      null.TimeFromPtr(m.ReviewedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
