package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/internal/infrastructure/models"
	"tradeport.backend/pkg/utils"
)

// productRepo implements repositories.ProductRepository
type productRepo struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = utils.GenerateUUIDv7()
	}
	m, err := r.toModel(product)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

func (r *productRepo) Update(ctx context.Context, product *entities.Product) error {
	m, err := r.toModel(product)
	if err != nil {
		return err
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"title":         m.Title,
		"description":   m.Description,
		"category":      m.Category,
		"base_price":    m.BasePrice,
		"selling_price": m.SellingPrice,
		"profit_margin": m.ProfitMargin,
		"stock":         m.Stock,
		"image_urls":    m.ImageURLs,
		"sku":           m.SKU,
		"is_published":  m.IsPublished,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *productRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListPublic returns published products whose seller profile is APPROVED.
// A seller losing approval drops their listings out of the public catalog
// without touching the product rows.
func (r *productRepo) ListPublic(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Joins("JOIN seller_profiles ON seller_profiles.id = products.seller_id").
		Where("products.is_published = ?", true).
		Where("seller_profiles.status = ?", string(entities.SellerStatusApproved))

	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("products.title LIKE ?", term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination.Limit > 0 {
		query = query.Offset(pagination.CalculateOffset()).Limit(pagination.Limit)
	}

	var ms []models.Product
	if err := query.Order("products.created_at DESC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	products, err := r.toEntities(ms)
	return products, total, err
}

func (r *productRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Where("seller_id = ?", sellerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination.Limit > 0 {
		query = query.Offset(pagination.CalculateOffset()).Limit(pagination.Limit)
	}

	var ms []models.Product
	if err := query.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	products, err := r.toEntities(ms)
	return products, total, err
}

// DecrementStock reduces stock by qty in a single guarded UPDATE. The guard
// keeps stock from going negative under concurrent checkouts; zero rows
// affected means not enough units remained.
func (r *productRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) toModel(p *entities.Product) (*models.Product, error) {
	imageURLs := ""
	if len(p.ImageURLs) > 0 {
		encoded, err := json.Marshal(p.ImageURLs)
		if err != nil {
			return nil, err
		}
		imageURLs = string(encoded)
	}
	return &models.Product{
		ID:           p.ID,
		SellerID:     p.SellerID,
		Title:        p.Title,
		Description:  p.Description.Ptr(),
		Category:     p.Category,
		BasePrice:    p.BasePrice,
		SellingPrice: p.SellingPrice,
		ProfitMargin: p.ProfitMargin,
		Stock:        p.Stock,
		ImageURLs:    imageURLs,
		SKU:          p.SKU.Ptr(),
		IsPublished:  p.IsPublished,
	}, nil
}

func (r *productRepo) toEntity(m *models.Product) (*entities.Product, error) {
	var imageURLs []string
	if m.ImageURLs != "" {
		if err := json.Unmarshal([]byte(m.ImageURLs), &imageURLs); err != nil {
			return nil, err
		}
	}
	return &entities.Product{
		ID:           m.ID,
		SellerID:     m.SellerID,
		Title:        m.Title,
		Description:  null.StringFromPtr(m.Description),
		Category:     m.Category,
		BasePrice:    m.BasePrice,
		SellingPrice: m.SellingPrice,
		ProfitMargin: m.ProfitMargin,
		Stock:        m.Stock,
		ImageURLs:    imageURLs,
		SKU:          null.StringFromPtr(m.SKU),
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func (r *productRepo) toEntities(ms []models.Product) ([]*entities.Product, error) {
	products := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		p, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
