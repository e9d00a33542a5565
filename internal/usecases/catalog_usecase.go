package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/pkg/utils"
)

// CatalogUsecase handles product listings
type CatalogUsecase struct {
	productRepo repositories.ProductRepository
	sellerRepo  repositories.SellerProfileRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(productRepo repositories.ProductRepository, sellerRepo repositories.SellerProfileRepository) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
	}
}

// approvedSeller loads the caller's seller profile and requires APPROVED
// status. Every catalog write funnels through this guard.
func (u *CatalogUsecase) approvedSeller(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error) {
	profile, err := u.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.Status.CanListProducts() {
		return nil, domainerrors.ErrSellerNotApproved
	}
	return profile, nil
}

// CreateProduct creates a listing for an approved seller. The selling price
// is always derived server-side from base price and margin.
func (u *CatalogUsecase) CreateProduct(ctx context.Context, userID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	profile, err := u.approvedSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		SellerID:     profile.ID,
		Title:        input.Title,
		Description:  null.NewString(input.Description, input.Description != ""),
		Category:     input.Category,
		BasePrice:    input.BasePrice,
		ProfitMargin: input.ProfitMargin,
		SellingPrice: entities.ComputeSellingPrice(input.BasePrice, input.ProfitMargin),
		Stock:        input.Stock,
		ImageURLs:    input.ImageURLs,
		SKU:          null.NewString(input.SKU, input.SKU != ""),
		IsPublished:  input.IsPublished,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update to the seller's own listing
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	profile, err := u.approvedSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != profile.ID {
		return nil, domainerrors.Forbidden("product belongs to another seller")
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = null.NewString(*input.Description, *input.Description != "")
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.BasePrice != nil {
		product.BasePrice = *input.BasePrice
	}
	if input.ProfitMargin != nil {
		product.ProfitMargin = *input.ProfitMargin
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURLs != nil {
		product.ImageURLs = *input.ImageURLs
	}
	if input.IsPublished != nil {
		product.IsPublished = *input.IsPublished
	}
	product.SellingPrice = entities.ComputeSellingPrice(product.BasePrice, product.ProfitMargin)

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes the seller's own listing
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	profile, err := u.approvedSeller(ctx, userID)
	if err != nil {
		return err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SellerID != profile.ID {
		return domainerrors.Forbidden("product belongs to another seller")
	}

	return u.productRepo.SoftDelete(ctx, productID)
}

// BrowseProducts returns the public catalog
func (u *CatalogUsecase) BrowseProducts(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	return u.productRepo.ListPublic(ctx, filter, pagination)
}

// GetProduct returns a single listing
func (u *CatalogUsecase) GetProduct(ctx context.Context, productID uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, productID)
}

// MyProducts returns the caller's own listings, published or not
func (u *CatalogUsecase) MyProducts(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	profile, err := u.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return u.productRepo.ListBySeller(ctx, profile.ID, pagination)
}
