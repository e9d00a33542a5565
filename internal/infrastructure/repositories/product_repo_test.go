package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/pkg/utils"
)

func seedProduct(t *testing.T, repo interface {
	Create(ctx context.Context, p *entities.Product) error
}, sellerID uuid.UUID, title string, stock int, published bool) *entities.Product {
	t.Helper()
	p := &entities.Product{
		SellerID:     sellerID,
		Title:        title,
		Category:     "electronics",
		BasePrice:    100,
		ProfitMargin: 10,
		SellingPrice: 110,
		Stock:        stock,
		ImageURLs:    []string{"https://img.example.com/a.png"},
		IsPublished:  published,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductRepoCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	repo := NewProductRepository(db)

	p := seedProduct(t, repo, uuid.New(), "Widget", 5, true)

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Title)
	assert.Equal(t, []string{"https://img.example.com/a.png"}, got.ImageURLs)
	assert.Equal(t, 110.0, got.SellingPrice)
}

func TestProductRepoDecrementStock(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, repo, uuid.New(), "Limited", 3, true)

	require.NoError(t, repo.DecrementStock(ctx, p.ID, 2))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	// Not enough units left; stock must not move.
	err = repo.DecrementStock(ctx, p.ID, 2)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	require.NoError(t, repo.DecrementStock(ctx, p.ID, 1))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func TestProductRepoListPublicRequiresApprovedSeller(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	createSellerProfileTable(t, db)
	productRepo := NewProductRepository(db)
	sellerRepo := NewSellerProfileRepository(db)
	ctx := context.Background()

	approved := &entities.SellerProfile{UserID: uuid.New(), CompanyName: "Approved Co", Status: entities.SellerStatusApproved}
	require.NoError(t, sellerRepo.Create(ctx, approved))
	pending := &entities.SellerProfile{UserID: uuid.New(), CompanyName: "Pending Co", Status: entities.SellerStatusPendingReview}
	require.NoError(t, sellerRepo.Create(ctx, pending))

	seedProduct(t, productRepo, approved.ID, "Visible", 5, true)
	seedProduct(t, productRepo, approved.ID, "Draft", 5, false)
	seedProduct(t, productRepo, pending.ID, "Hidden", 5, true)

	items, total, err := productRepo.ListPublic(ctx, entities.ProductFilter{}, utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Visible", items[0].Title)
}

func TestProductRepoListPublicFilters(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	createSellerProfileTable(t, db)
	productRepo := NewProductRepository(db)
	sellerRepo := NewSellerProfileRepository(db)
	ctx := context.Background()

	seller := &entities.SellerProfile{UserID: uuid.New(), CompanyName: "Co", Status: entities.SellerStatusApproved}
	require.NoError(t, sellerRepo.Create(ctx, seller))

	laptop := seedProduct(t, productRepo, seller.ID, "Laptop Pro", 5, true)
	laptop.Category = "computers"
	require.NoError(t, productRepo.Update(ctx, laptop))
	seedProduct(t, productRepo, seller.ID, "Desk Lamp", 5, true)

	items, total, err := productRepo.ListPublic(ctx, entities.ProductFilter{Category: "computers"}, utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop Pro", items[0].Title)

	items, _, err = productRepo.ListPublic(ctx, entities.ProductFilter{Search: "Lamp"}, utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Desk Lamp", items[0].Title)
}

func TestProductRepoSoftDelete(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, repo, uuid.New(), "Doomed", 1, true)
	require.NoError(t, repo.SoftDelete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.ErrorIs(t, repo.SoftDelete(ctx, p.ID), domainerrors.ErrNotFound)
}
