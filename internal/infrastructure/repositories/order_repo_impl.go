package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/internal/infrastructure/models"
	"tradeport.backend/pkg/utils"
)

// orderRepo implements repositories.OrderRepository
type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &orderRepo{db: db}
}

// Create persists the order and its line items in one insert; gorm cascades
// the Items association.
func (r *orderRepo) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = utils.GenerateUUIDv7()
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = utils.GenerateUUIDv7()
		}
		item.OrderID = order.ID
	}
	m := r.toModel(order)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Items").First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *orderRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).Where("buyer_id = ?", buyerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination.Limit > 0 {
		query = query.Offset(pagination.CalculateOffset()).Limit(pagination.Limit)
	}

	var ms []models.Order
	if err := query.Preload("Items").Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, r.toEntity(&ms[i]))
	}
	return orders, total, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *orderRepo) toModel(o *entities.Order) *models.Order {
	items := make([]models.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, models.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return &models.Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		OrderNumber:     o.OrderNumber,
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		HeldAmount:      o.HeldAmount,
		Status:          string(o.Status),
		ShippingName:    o.ShippingName,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingState:   o.ShippingState,
		ShippingZip:     o.ShippingZip,
		ShippingCountry: o.ShippingCountry,
		ShippingPhone:   o.ShippingPhone,
		Items:           items,
	}
}

func (r *orderRepo) toEntity(m *models.Order) *entities.Order {
	items := make([]*entities.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, &entities.OrderItem{
			ID:        m.Items[i].ID,
			OrderID:   m.Items[i].OrderID,
			ProductID: m.Items[i].ProductID,
			Quantity:  m.Items[i].Quantity,
			UnitPrice: m.Items[i].UnitPrice,
		})
	}
	return &entities.Order{
		ID:              m.ID,
		BuyerID:         m.BuyerID,
		OrderNumber:     m.OrderNumber,
		Subtotal:        m.Subtotal,
		Tax:             m.Tax,
		ShippingCost:    m.ShippingCost,
		TotalAmount:     m.TotalAmount,
		HeldAmount:      m.HeldAmount,
		Status:          entities.OrderStatus(m.Status),
		ShippingName:    m.ShippingName,
		ShippingAddress: m.ShippingAddress,
		ShippingCity:    m.ShippingCity,
		ShippingState:   m.ShippingState,
		ShippingZip:     m.ShippingZip,
		ShippingCountry: m.ShippingCountry,
		ShippingPhone:   m.ShippingPhone,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
