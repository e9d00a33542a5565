package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/usecases"
	"tradeport.backend/pkg/crypto"
	"tradeport.backend/pkg/jwt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func newAuthUsecase(userRepo *MockUserRepository, sellerRepo *MockSellerProfileRepository, uow *MockUnitOfWork) *usecases.AuthUsecase {
	return usecases.NewAuthUsecase(userRepo, sellerRepo, uow, newTestJWTService(), nil, time.Hour)
}

func registerInput(role entities.UserRole) *entities.RegisterInput {
	return &entities.RegisterInput{
		Email:    "New.User@Example.com",
		Name:     "New User",
		Phone:    "+1 (202) 555-0134",
		Password: "Str0ng!pass",
		Role:     role,
	}
}

func TestRegisterBuyer(t *testing.T) {
	userRepo := new(MockUserRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uow := new(MockUnitOfWork)
	uc := newAuthUsecase(userRepo, sellerRepo, uow)

	userRepo.On("GetByEmail", mock.Anything, "new.user@example.com").Return(nil, domainerrors.ErrNotFound)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Register(context.Background(), registerInput(entities.UserRoleBuyer))
	require.NoError(t, err)

	// Email is normalized, password never stored in clear.
	assert.Equal(t, "new.user@example.com", resp.User.Email)
	assert.Equal(t, entities.UserRoleBuyer, resp.User.Role)
	assert.NotEqual(t, "Str0ng!pass", resp.User.PasswordHash)
	assert.True(t, crypto.CheckPassword("Str0ng!pass", resp.User.PasswordHash))
	sellerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// Registration signs the account in, so a token pair comes back with it.
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	claims, err := newTestJWTService().ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", claims.Email)
	assert.Equal(t, "BUYER", claims.Role)
}

func TestRegisterSellerCreatesProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	sellerRepo := new(MockSellerProfileRepository)
	uow := new(MockUnitOfWork)
	uc := newAuthUsecase(userRepo, sellerRepo, uow)

	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.User).ID = uuid.New()
	}).Return(nil)
	sellerRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.SellerProfile) bool {
		return p.Status == entities.SellerStatusInProgress
	})).Return(nil)

	resp, err := uc.Register(context.Background(), registerInput(entities.UserRoleSeller))
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleSeller, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	sellerRepo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(&entities.User{Email: "new.user@example.com"}, nil)

	_, err := uc.Register(context.Background(), registerInput(entities.UserRoleBuyer))
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeConflict, appErr.Code)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	uc := newAuthUsecase(new(MockUserRepository), new(MockSellerProfileRepository), new(MockUnitOfWork))

	input := registerInput(entities.UserRoleBuyer)
	input.Phone = "12345"
	_, err := uc.Register(context.Background(), input)
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "phone")

	input = registerInput(entities.UserRoleBuyer)
	input.Password = "password"
	_, err = uc.Register(context.Background(), input)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "password")
}

func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	hash, err := crypto.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "buyer@example.com", PasswordHash: hash, Role: entities.UserRoleBuyer}
	userRepo.On("GetByEmail", mock.Anything, "buyer@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: "Buyer@Example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.SessionID)

	claims, err := newTestJWTService().ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "BUYER", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	hash, err := crypto.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(&entities.User{PasswordHash: hash}, nil)

	_, err = uc.Login(context.Background(), &entities.LoginInput{Email: "buyer@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)

	// An unknown email reads the same as a wrong password.
	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLoginBlockedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	hash, err := crypto.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(&entities.User{PasswordHash: hash, IsBlocked: true}, nil)

	_, err = uc.Login(context.Background(), &entities.LoginInput{Email: "blocked@example.com", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountBlocked)
}

func TestUpdateProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, Email: "buyer@example.com", Name: "Old Name", Phone: "+12025550134"}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Name == "New Name" && u.Phone == "+12025550199"
	})).Return(nil)

	user, err := uc.UpdateProfile(context.Background(), userID, &entities.UpdateProfileInput{
		Name:  "New Name",
		Phone: "+12025550199",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	// Email stays as-is; only name and phone are editable.
	assert.Equal(t, "buyer@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfileKeepsOmittedFields(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, Name: "Old Name", Phone: "+12025550134"}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Name == "New Name" && u.Phone == "+12025550134"
	})).Return(nil)

	user, err := uc.UpdateProfile(context.Background(), userID, &entities.UpdateProfileInput{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "+12025550134", user.Phone)
}

func TestUpdateProfileRejectsShortPhone(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, Phone: "+12025550134"}, nil)

	_, err := uc.UpdateProfile(context.Background(), userID, &entities.UpdateProfileInput{Phone: "12345"})
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "phone")
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	user := &entities.User{ID: uuid.New(), Email: "buyer@example.com", Role: entities.UserRoleBuyer}
	pair, err := newTestJWTService().GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	fresh, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
}

func TestRefreshTokenBlockedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, new(MockSellerProfileRepository), new(MockUnitOfWork))

	user := &entities.User{ID: uuid.New(), Email: "buyer@example.com", Role: entities.UserRoleBuyer, IsBlocked: true}
	pair, err := newTestJWTService().GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	_, err = uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrAccountBlocked)
}
