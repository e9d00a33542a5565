package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents order lifecycle status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order represents a buyer order. HeldAmount mirrors TotalAmount until
// delivery: funds are notionally escrowed, no payment processor is attached.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	BuyerID         uuid.UUID    `json:"buyerId"`
	OrderNumber     string       `json:"orderNumber"`
	Subtotal        float64      `json:"subtotal"`
	Tax             float64      `json:"tax"`
	ShippingCost    float64      `json:"shippingCost"`
	TotalAmount     float64      `json:"totalAmount"`
	HeldAmount      float64      `json:"heldAmount"`
	Status          OrderStatus  `json:"status"`
	ShippingName    string       `json:"shippingName"`
	ShippingAddress string       `json:"shippingAddress"`
	ShippingCity    string       `json:"shippingCity"`
	ShippingState   string       `json:"shippingState,omitempty"`
	ShippingZip     string       `json:"shippingZip"`
	ShippingCountry string       `json:"shippingCountry"`
	ShippingPhone   string       `json:"shippingPhone"`
	Items           []*OrderItem `json:"items"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// OrderItem represents a line item referencing a product
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// OrderItemInput is one requested line item
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	ShippingName    string           `json:"shippingName" binding:"required"`
	ShippingAddress string           `json:"shippingAddress" binding:"required"`
	ShippingCity    string           `json:"shippingCity" binding:"required"`
	ShippingState   string           `json:"shippingState,omitempty"`
	ShippingZip     string           `json:"shippingZip" binding:"required"`
	ShippingCountry string           `json:"shippingCountry" binding:"required"`
	ShippingPhone   string           `json:"shippingPhone" binding:"required"`
}
