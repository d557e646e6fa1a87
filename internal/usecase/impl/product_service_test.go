package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	domainerrors "github.com/gerysx/spb-ecommerce/internal/domain/errors"
	"github.com/gerysx/spb-ecommerce/internal/domain/repository"
	mockRepo "github.com/gerysx/spb-ecommerce/internal/mocks/repository"
	"github.com/gerysx/spb-ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	t         *testing.T
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProductService(txManager, logger)

	return productServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx productServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestProductService_Create_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		SKU:   "SKU-100",
		Name:  "Keyboard",
		Price: decimal.RequireFromString("10.50"),
		Stock: 5,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().ExistsBySKU(ctx, "SKU-100").Return(false, nil)
		mockProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	})

	out, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "SKU-100", out.SKU)
	assert.True(t, out.Active, "products default to active")
	assert.Equal(t, 5, out.Stock)
}

func TestProductService_Create_SKUConflict(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		SKU:   "SKU-100",
		Name:  "Keyboard",
		Price: decimal.RequireFromString("10.50"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().ExistsBySKU(ctx, "SKU-100").Return(true, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrSKUAlreadyInUse))
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	out, err := fx.service.GetByID(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Update_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{
		ID:     productID,
		SKU:    "SKU-100",
		Name:   "Keyboard",
		Price:  decimal.RequireFromString("10.50"),
		Stock:  5,
		Active: true,
	}
	input := &usecase.ProductInput{
		SKU:   "SKU-100",
		Name:  "Mechanical Keyboard",
		Price: decimal.RequireFromString("12.00"),
		Stock: 8,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(stored, nil)
		mockProductRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	out, err := fx.service.Update(ctx, productID, input)

	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, 8, out.Stock)
	assert.True(t, out.Active, "active is preserved when not supplied")
}

func TestProductService_Update_SKUConflict(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{
		ID:     productID,
		SKU:    "SKU-100",
		Active: true,
	}
	input := &usecase.ProductInput{
		SKU:   "SKU-200",
		Name:  "Keyboard",
		Price: decimal.RequireFromString("10.50"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(stored, nil)
		mockProductRepo.EXPECT().ExistsBySKUExcluding(ctx, "SKU-200", productID).Return(true, nil)
	})

	out, err := fx.service.Update(ctx, productID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrSKUAlreadyInUse))
}

func TestProductService_Deactivate_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, SKU: "SKU-100", Active: true}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(stored, nil)
		mockProductRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	err := fx.service.Deactivate(ctx, productID)

	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestProductService_Deactivate_Idempotent(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, SKU: "SKU-100", Active: false}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		// Already inactive: no write happens.
		mockProductRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(stored, nil)
	})

	err := fx.service.Deactivate(ctx, productID)

	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestProductService_Search_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	active := true
	input := &usecase.ProductSearchInput{
		PageRequest: usecase.PageRequest{Page: 1, Size: 2},
		Name:        "key",
		Active:      &active,
	}
	stored := []*entity.Product{
		{ID: uuid.New(), Name: "Keyboard", Active: true},
		{ID: uuid.New(), Name: "Keypad", Active: true},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockProductRepo.EXPECT().Search(ctx, repository.ProductQuery{
			NameContains: "key",
			Active:       &active,
			Offset:       2,
			Limit:        2,
		}).Return(stored, 5, nil)
	})

	page, err := fx.service.Search(ctx, input)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
}
