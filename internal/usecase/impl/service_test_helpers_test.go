package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepo) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(accountID uuid.UUID) (string, error) {
	args := m.Called(accountID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

type authServiceFixture struct {
	service     usecase.AuthUsecase
	accountRepo *mockAccountRepo
	hasher      *mockPasswordHasher
	tokenSvc    *mockTokenService
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	t.Helper()

	accountRepo := &mockAccountRepo{}
	hasher := &mockPasswordHasher{}
	tokenSvc := &mockTokenService{}

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	t.Cleanup(func() {
		accountRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	return &authServiceFixture{
		service:     svc,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}

type productServiceFixture struct {
	service     usecase.ProductUsecase
	productRepo *mockProductRepo
}

func createTestProductService(t *testing.T) *productServiceFixture {
	t.Helper()

	productRepo := &mockProductRepo{}

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	t.Cleanup(func() {
		productRepo.AssertExpectations(t)
	})

	return &productServiceFixture{
		service:     svc,
		productRepo: productRepo,
	}
}
