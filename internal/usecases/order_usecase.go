package usecases

import (
	"context"
	"math"

	"github.com/google/uuid"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/pkg/metrics"
	"tradeport.backend/pkg/utils"
)

// OrderUsecase handles buyer checkout and order history
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	uow         repositories.UnitOfWork
	taxPercent  float64
	shipping    float64
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	uow repositories.UnitOfWork,
	taxPercent, shippingFlat float64,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		uow:         uow,
		taxPercent:  taxPercent,
		shipping:    shippingFlat,
	}
}

// CreateOrder places an order. Prices come from the current catalog rows,
// never the request. Stock decrements and the order insert share one
// transaction: any line item without sufficient stock aborts the whole
// order. HeldAmount mirrors the total, the escrow label on funds awaiting
// delivery.
func (u *OrderUsecase) CreateOrder(ctx context.Context, buyerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	orderNumber, err := utils.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	var order *entities.Order
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		var (
			subtotal float64
			items    []*entities.OrderItem
		)
		for _, line := range input.Items {
			product, err := u.productRepo.GetByID(txCtx, line.ProductID)
			if err != nil {
				return err
			}
			if !product.IsPublished {
				return domainerrors.NotFound("product is not available")
			}
			if err := u.productRepo.DecrementStock(txCtx, product.ID, line.Quantity); err != nil {
				return err
			}
			subtotal += product.SellingPrice * float64(line.Quantity)
			items = append(items, &entities.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.SellingPrice,
			})
		}

		subtotal = roundCents(subtotal)
		tax := roundCents(subtotal * u.taxPercent / 100)
		total := roundCents(subtotal + tax + u.shipping)

		order = &entities.Order{
			BuyerID:         buyerID,
			OrderNumber:     orderNumber,
			Subtotal:        subtotal,
			Tax:             tax,
			ShippingCost:    u.shipping,
			TotalAmount:     total,
			HeldAmount:      total,
			Status:          entities.OrderStatusPending,
			ShippingName:    input.ShippingName,
			ShippingAddress: input.ShippingAddress,
			ShippingCity:    input.ShippingCity,
			ShippingState:   input.ShippingState,
			ShippingZip:     input.ShippingZip,
			ShippingCountry: input.ShippingCountry,
			ShippingPhone:   input.ShippingPhone,
			Items:           items,
		}
		return u.orderRepo.Create(txCtx, order)
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

// GetOrder returns one of the buyer's own orders
func (u *OrderUsecase) GetOrder(ctx context.Context, buyerID, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, domainerrors.ErrNotFound
	}
	return order, nil
}

// ListOrders returns the buyer's order history
func (u *OrderUsecase) ListOrders(ctx context.Context, buyerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	return u.orderRepo.ListByBuyer(ctx, buyerID, pagination)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
