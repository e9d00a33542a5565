package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		Email:        "buyer@example.com",
		Name:         "Buyer One",
		Phone:        "9876543210",
		PasswordHash: "hash",
		Role:         entities.UserRoleBuyer,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", got.Email)
	assert.Equal(t, entities.UserRoleBuyer, got.Role)
	assert.False(t, got.IsBlocked)

	byEmail, err := repo.GetByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepoGetMissing(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepoSetBlocked(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "s@example.com", Name: "S", Phone: "1234567890", PasswordHash: "h", Role: entities.UserRoleSeller}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetBlocked(ctx, user.ID, true))
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)

	require.NoError(t, repo.SetBlocked(ctx, user.ID, false))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBlocked)

	assert.ErrorIs(t, repo.SetBlocked(ctx, uuid.New(), true), domainerrors.ErrNotFound)
}

func TestUserRepoList(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, u := range []*entities.User{
		{Email: "a@example.com", Name: "Alpha", Phone: "1111111111", PasswordHash: "h", Role: entities.UserRoleBuyer},
		{Email: "b@example.com", Name: "Beta", Phone: "2222222222", PasswordHash: "h", Role: entities.UserRoleSeller},
		{Email: "g@example.com", Name: "Gamma", Phone: "3333333333", PasswordHash: "h", Role: entities.UserRoleSeller},
	} {
		require.NoError(t, repo.Create(ctx, u))
	}

	sellers, err := repo.List(ctx, entities.UserRoleSeller, "")
	require.NoError(t, err)
	assert.Len(t, sellers, 2)

	found, err := repo.List(ctx, "", "Alpha")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a@example.com", found[0].Email)
}
