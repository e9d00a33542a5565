package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
)

func TestSellerProfileRepoCreateAndGetByUserID(t *testing.T) {
	db := newTestDB(t)
	createSellerProfileTable(t, db)
	repo := NewSellerProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	profile := &entities.SellerProfile{UserID: userID}
	require.NoError(t, repo.Create(ctx, profile))
	assert.Equal(t, entities.SellerStatusInProgress, profile.Status)

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	_, err = repo.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSellerProfileRepoUpdate(t *testing.T) {
	db := newTestDB(t)
	createSellerProfileTable(t, db)
	repo := NewSellerProfileRepository(db)
	ctx := context.Background()

	profile := &entities.SellerProfile{UserID: uuid.New()}
	require.NoError(t, repo.Create(ctx, profile))

	profile.CompanyName = "Acme Trading"
	profile.BusinessType = "LLC"
	profile.LogoURL = null.StringFrom("https://cdn.example.com/logo.png")
	profile.City = null.StringFrom("Lisbon")
	require.NoError(t, repo.Update(ctx, profile))

	got, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading", got.CompanyName)
	assert.Equal(t, "https://cdn.example.com/logo.png", got.LogoURL.String)
	assert.Equal(t, "Lisbon", got.City.String)
}

func TestSellerProfileRepoUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createSellerProfileTable(t, db)
	repo := NewSellerProfileRepository(db)
	ctx := context.Background()

	profile := &entities.SellerProfile{UserID: uuid.New(), CompanyName: "Acme"}
	require.NoError(t, repo.Create(ctx, profile))

	// Submission stamps submitted_at.
	require.NoError(t, repo.UpdateStatus(ctx, profile.ID, entities.SellerStatusPendingReview, null.String{}, time.Time{}))
	got, err := repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SellerStatusPendingReview, got.Status)
	assert.True(t, got.SubmittedAt.Valid)
	assert.False(t, got.ReviewedAt.Valid)

	// Rejection records the reason and review time.
	now := time.Now().UTC()
	require.NoError(t, repo.UpdateStatus(ctx, profile.ID, entities.SellerStatusRejected, null.StringFrom("documents unreadable"), now))
	got, err = repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SellerStatusRejected, got.Status)
	assert.Equal(t, "documents unreadable", got.RejectionReason.String)
	assert.True(t, got.ReviewedAt.Valid)

	// Resubmission clears the reason.
	require.NoError(t, repo.UpdateStatus(ctx, profile.ID, entities.SellerStatusInProgress, null.String{}, time.Time{}))
	got, err = repo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.False(t, got.RejectionReason.Valid)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.SellerStatusApproved, null.String{}, now), domainerrors.ErrNotFound)
}

func TestSellerProfileRepoListByStatus(t *testing.T) {
	db := newTestDB(t)
	createSellerProfileTable(t, db)
	repo := NewSellerProfileRepository(db)
	ctx := context.Background()

	a := &entities.SellerProfile{UserID: uuid.New(), Status: entities.SellerStatusApproved}
	b := &entities.SellerProfile{UserID: uuid.New(), Status: entities.SellerStatusPendingReview}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	approved, err := repo.ListByStatus(ctx, entities.SellerStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, a.ID, approved[0].ID)

	all, err := repo.ListByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
