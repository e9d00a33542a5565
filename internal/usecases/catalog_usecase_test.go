package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/usecases"
	"tradeport.backend/pkg/utils"
)

func approvedProfile(userID uuid.UUID) *entities.SellerProfile {
	return &entities.SellerProfile{
		ID:          uuid.New(),
		UserID:      userID,
		CompanyName: "Acme Trading",
		Status:      entities.SellerStatusApproved,
	}
}

func TestCreateProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uc := usecases.NewCatalogUsecase(productRepo, sellerRepo)

	userID := uuid.New()
	profile := approvedProfile(userID)
	sellerRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	productRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	product, err := uc.CreateProduct(context.Background(), userID, &entities.CreateProductInput{
		Title:        "Mechanical Keyboard",
		Category:     "electronics",
		BasePrice:    80,
		ProfitMargin: 25,
		Stock:        10,
		IsPublished:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, product.SellerID)
	assert.Equal(t, 100.0, product.SellingPrice)
}

func TestCreateProductRequiresApprovedSeller(t *testing.T) {
	productRepo := new(MockProductRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uc := usecases.NewCatalogUsecase(productRepo, sellerRepo)

	for _, status := range []entities.SellerStatus{
		entities.SellerStatusInProgress,
		entities.SellerStatusPendingReview,
		entities.SellerStatusRejected,
	} {
		userID := uuid.New()
		profile := approvedProfile(userID)
		profile.Status = status
		sellerRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)

		_, err := uc.CreateProduct(context.Background(), userID, &entities.CreateProductInput{
			Title: "Keyboard", Category: "electronics", BasePrice: 80,
		})
		assert.ErrorIs(t, err, domainerrors.ErrSellerNotApproved, "status %s", status)
	}
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProductRecomputesSellingPrice(t *testing.T) {
	productRepo := new(MockProductRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uc := usecases.NewCatalogUsecase(productRepo, sellerRepo)

	userID := uuid.New()
	profile := approvedProfile(userID)
	product := &entities.Product{
		ID:           uuid.New(),
		SellerID:     profile.ID,
		Title:        "Keyboard",
		BasePrice:    80,
		ProfitMargin: 25,
		SellingPrice: 100,
	}
	sellerRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	productRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newMargin := 50.0
	updated, err := uc.UpdateProduct(context.Background(), userID, product.ID, &entities.UpdateProductInput{
		ProfitMargin: &newMargin,
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.SellingPrice)
}

func TestUpdateProductOwnership(t *testing.T) {
	productRepo := new(MockProductRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uc := usecases.NewCatalogUsecase(productRepo, sellerRepo)

	userID := uuid.New()
	profile := approvedProfile(userID)
	other := &entities.Product{ID: uuid.New(), SellerID: uuid.New(), Title: "Not yours"}
	sellerRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	productRepo.On("GetByID", mock.Anything, other.ID).Return(other, nil)

	title := "Hijacked"
	_, err := uc.UpdateProduct(context.Background(), userID, other.ID, &entities.UpdateProductInput{Title: &title})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = uc.DeleteProduct(context.Background(), userID, other.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	productRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestMyProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uc := usecases.NewCatalogUsecase(productRepo, sellerRepo)

	userID := uuid.New()
	profile := approvedProfile(userID)
	profile.Status = entities.SellerStatusPendingReview // listing own products is not gated
	pagination := utils.PaginationParams{Page: 1, Limit: 20}
	sellerRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	productRepo.On("ListBySeller", mock.Anything, profile.ID, pagination).
		Return([]*entities.Product{{Title: "Draft listing"}}, int64(1), nil)

	products, total, err := uc.MyProducts(context.Background(), userID, pagination)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, products, 1)
}
