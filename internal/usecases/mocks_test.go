package usecases_test

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"
	"tradeport.backend/internal/domain/entities"
	"tradeport.backend/pkg/utils"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func (m *MockUserRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	args := m.Called(ctx, id, blocked)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, role entities.UserRole, search string) ([]*entities.User, error) {
	args := m.Called(ctx, role, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock SellerProfileRepository
type MockSellerProfileRepository struct {
	mock.Mock
}

func (m *MockSellerProfileRepository) Create(ctx context.Context, profile *entities.SellerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockSellerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SellerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerProfile), args.Error(1)
}

func (m *MockSellerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerProfile), args.Error(1)
}

func (m *MockSellerProfileRepository) Update(ctx context.Context, profile *entities.SellerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockSellerProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SellerStatus, reason null.String, reviewedAt time.Time) error {
	args := m.Called(ctx, id, status, reason, reviewedAt)
	return args.Error(0)
}

func (m *MockSellerProfileRepository) ListByStatus(ctx context.Context, status entities.SellerStatus) ([]*entities.SellerProfile, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SellerProfile), args.Error(1)
}

// Mock SellerDocumentRepository
type MockSellerDocumentRepository struct {
	mock.Mock
}

func (m *MockSellerDocumentRepository) Create(ctx context.Context, doc *entities.SellerDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockSellerDocumentRepository) Upsert(ctx context.Context, doc *entities.SellerDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockSellerDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SellerDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerDocument), args.Error(1)
}

func (m *MockSellerDocumentRepository) ListBySubject(ctx context.Context, subjectType entities.DocumentSubject, subjectID uuid.UUID) ([]*entities.SellerDocument, error) {
	args := m.Called(ctx, subjectType, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SellerDocument), args.Error(1)
}

func (m *MockSellerDocumentRepository) ResolvePending(ctx context.Context, subjectType entities.DocumentSubject, subjectID uuid.UUID, status entities.DocumentStatus, reason null.String, verifiedAt time.Time) error {
	args := m.Called(ctx, subjectType, subjectID, status, reason, verifiedAt)
	return args.Error(0)
}

// Mock ApprovalRequestRepository
type MockApprovalRequestRepository struct {
	mock.Mock
}

func (m *MockApprovalRequestRepository) Create(ctx context.Context, request *entities.ApprovalRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockApprovalRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ApprovalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ApprovalRequest), args.Error(1)
}

func (m *MockApprovalRequestRepository) GetPendingBySellerID(ctx context.Context, sellerID uuid.UUID) (*entities.ApprovalRequest, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ApprovalRequest), args.Error(1)
}

func (m *MockApprovalRequestRepository) ListPending(ctx context.Context) ([]*entities.PendingApproval, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PendingApproval), args.Error(1)
}

func (m *MockApprovalRequestRepository) Resolve(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, resolvedBy uuid.UUID, notes null.String, resolvedAt time.Time) error {
	args := m.Called(ctx, id, status, resolvedBy, notes, resolvedAt)
	return args.Error(0)
}

func (m *MockApprovalRequestRepository) CountStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ListPublic(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, sellerID, pagination)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, buyerID, pagination)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// fakeObjectStore records uploads without touching S3
type fakeObjectStore struct {
	uploads []string
	err     error
}

func (f *fakeObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, key)
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error { return f.err }

func (f *fakeObjectStore) URL(key string) string { return "https://cdn.example.com/" + key }
