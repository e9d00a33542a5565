package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product represents a catalog listing owned by an approved seller
type Product struct {
	ID           uuid.UUID   `json:"id"`
	SellerID     uuid.UUID   `json:"sellerId"` // SellerProfile ID
	Title        string      `json:"title"`
	Description  null.String `json:"description,omitempty"`
	Category     string      `json:"category"`
	BasePrice    float64     `json:"basePrice"`
	SellingPrice float64     `json:"sellingPrice"`
	ProfitMargin float64     `json:"profitMargin"` // percent of base price
	Stock        int         `json:"stock"`
	ImageURLs    []string    `json:"imageUrls,omitempty"`
	SKU          null.String `json:"sku,omitempty"`
	IsPublished  bool        `json:"isPublished"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    null.Time   `json:"-"`
}

// CreateProductInput represents input for creating a product listing
type CreateProductInput struct {
	Title        string   `json:"title" binding:"required,min=2,max=255"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category" binding:"required"`
	BasePrice    float64  `json:"basePrice" binding:"required,gt=0"`
	ProfitMargin float64  `json:"profitMargin" binding:"gte=0"`
	Stock        int      `json:"stock" binding:"gte=0"`
	ImageURLs    []string `json:"imageUrls,omitempty" binding:"omitempty,dive,url"`
	SKU          string   `json:"sku,omitempty"`
	IsPublished  bool     `json:"isPublished"`
}

// UpdateProductInput represents input for updating a product listing
type UpdateProductInput struct {
	Title        *string   `json:"title,omitempty" binding:"omitempty,min=2,max=255"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	BasePrice    *float64  `json:"basePrice,omitempty" binding:"omitempty,gt=0"`
	ProfitMargin *float64  `json:"profitMargin,omitempty" binding:"omitempty,gte=0"`
	Stock        *int      `json:"stock,omitempty" binding:"omitempty,gte=0"`
	ImageURLs    *[]string `json:"imageUrls,omitempty"`
	IsPublished  *bool     `json:"isPublished,omitempty"`
}

// ProductFilter holds catalog browse filters
type ProductFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// ComputeSellingPrice derives the selling price from the base price and the
// profit margin percentage, rounded to cents. The server owns this math; a
// client-submitted selling price is never trusted.
func ComputeSellingPrice(basePrice, marginPercent float64) float64 {
	price := basePrice + basePrice*marginPercent/100
	return math.Round(price*100) / 100
}
