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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t         *testing.T
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOrderService(txManager, logger)

	return orderServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx orderServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

// orderCreateMocks bundles the repositories used by order creation.
type orderCreateMocks struct {
	customerRepo *mockRepo.MockCustomerRepository
	addressRepo  *mockRepo.MockAddressRepository
	productRepo  *mockRepo.MockProductRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func setupOrderCreateMocks(t *testing.T, factory *mockRepo.MockRepositoryFactory) orderCreateMocks {
	m := orderCreateMocks{
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		addressRepo:  mockRepo.NewMockAddressRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
	}
	factory.EXPECT().NewCustomerRepository().Return(m.customerRepo)
	factory.EXPECT().NewAddressRepository().Return(m.addressRepo)
	factory.EXPECT().NewProductRepository().Return(m.productRepo)
	factory.EXPECT().NewOrderRepository().Return(m.orderRepo)

	return m
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	product1 := &entity.Product{
		ID:     uuid.New(),
		SKU:    "SKU-1",
		Name:   "Keyboard",
		Price:  decimal.RequireFromString("10.50"),
		Stock:  5,
		Active: true,
	}
	product2 := &entity.Product{
		ID:     uuid.New(),
		SKU:    "SKU-2",
		Name:   "Mouse",
		Price:  decimal.RequireFromString("3.00"),
		Stock:  10,
		Active: true,
	}

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items: []usecase.OrderItemInput{
			{ProductID: product1.ID, Quantity: 2},
			{ProductID: product2.ID, Quantity: 3},
		},
	}

	var persisted *entity.Order

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
		m.productRepo.EXPECT().FindByIDForUpdate(ctx, product1.ID).Return(product1, nil)
		m.productRepo.EXPECT().FindByIDForUpdate(ctx, product2.ID).Return(product2, nil)
		m.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				persisted = order
			}).
			Return(nil)
		m.productRepo.EXPECT().Update(ctx, product1).Return(nil)
		m.productRepo.EXPECT().Update(ctx, product2).Return(nil)
	})

	out, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.Equal(t, entity.OrderStatusCreated.String(), out.Status)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("30.00")), "total was %s", out.Total)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].UnitPrice.Equal(product1.Price))
	assert.True(t, out.Items[0].LineTotal.Equal(decimal.RequireFromString("21.00")))

	// Stock was decremented under the lock, in the same transaction.
	assert.Equal(t, 3, product1.Stock)
	assert.Equal(t, 7, product2.Stock)
}

func TestOrderService_Create_SnapshotsPriceAtCreation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	product := &entity.Product{
		ID:     uuid.New(),
		Name:   "Monitor",
		Price:  decimal.RequireFromString("199.99"),
		Stock:  2,
		Active: true,
	}

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items:             []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	}

	var persisted *entity.Order

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
		m.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
		m.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				persisted = order
			}).
			Return(nil)
		m.productRepo.EXPECT().Update(ctx, product).Return(nil)
	})

	_, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.Len(t, persisted.Items, 1)
	assert.True(t, persisted.Items[0].UnitPrice.Equal(decimal.RequireFromString("199.99")))

	// A later catalog price change must not affect the stored line.
	product.Price = decimal.RequireFromString("149.99")
	assert.True(t, persisted.Items[0].UnitPrice.Equal(decimal.RequireFromString("199.99")))
}

// Repeated lines for the same product are checked cumulatively against stock.
func TestOrderService_Create_DuplicateLinesCheckedCumulatively(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	product := &entity.Product{
		ID:     uuid.New(),
		Name:   "Webcam",
		Price:  decimal.RequireFromString("25.00"),
		Stock:  5,
		Active: true,
	}

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items: []usecase.OrderItemInput{
			{ProductID: product.ID, Quantity: 3},
			{ProductID: product.ID, Quantity: 4},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
		// The product is locked once even though it appears on two lines.
		m.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 7, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)
}

// On insufficient stock no order row is written and stock is untouched.
func TestOrderService_Create_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	product := &entity.Product{
		ID:     uuid.New(),
		Name:   "Headset",
		Price:  decimal.RequireFromString("49.90"),
		Stock:  1,
		Active: true,
	}

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items:             []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
		m.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, product.ID, stockErr.ProductID)
	assert.Equal(t, "Headset", stockErr.ProductName)
	assert.Equal(t, 1, product.Stock)
}

func TestOrderService_Create_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	product := &entity.Product{
		ID:     uuid.New(),
		SKU:    "SKU-OLD",
		Name:   "Discontinued",
		Price:  decimal.RequireFromString("5.00"),
		Stock:  100,
		Active: false,
	}

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items:             []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
		m.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInactiveProduct))
}

// The shipping address exists but belongs to a different customer.
func TestOrderService_Create_AddressNotOwned(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	otherCustomerID := uuid.New()

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items:             []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: otherCustomerID}, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotOwnedByCustomer))
}

func TestOrderService_Create_AddressNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		Items:             []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestOrderService_Create_CustomerNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: uuid.New(),
		Items:             []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(nil, repository.ErrCustomerNotFound)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestOrderService_Create_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	input := &usecase.OrderCreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		m := setupOrderCreateMocks(t, factory)

		m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderItemsEmpty))
}

func TestOrderService_ChangeStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	header := &entity.Order{ID: orderID, Status: entity.OrderStatusCreated}
	detail := &entity.Order{ID: orderID, Status: entity.OrderStatusPaid}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(header, nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusPaid).Return(nil)
		mockOrderRepo.EXPECT().FindWithDetailsByID(ctx, orderID).Return(detail, nil)
	})

	out, err := fx.service.ChangeStatus(ctx, orderID, "PAID")

	require.NoError(t, err)
	assert.Equal(t, "PAID", out.Status)
}

// A terminal order rejects further transitions and nothing is written.
func TestOrderService_ChangeStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	header := &entity.Order{ID: orderID, Status: entity.OrderStatusShipped}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(header, nil)
	})

	out, err := fx.service.ChangeStatus(ctx, orderID, "CREATED")

	assert.Error(t, err)
	assert.Nil(t, out)

	var transitionErr *domainerrors.InvalidTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, entity.OrderStatusShipped, transitionErr.From)
	assert.Equal(t, entity.OrderStatusCreated, transitionErr.To)
}

// Unknown status strings fail validation before any transaction starts.
func TestOrderService_ChangeStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	out, err := fx.service.ChangeStatus(ctx, uuid.New(), "DELIVERED")

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_ChangeStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	out, err := fx.service.ChangeStatus(ctx, orderID, "PAID")

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetByID_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	detail := &entity.Order{
		ID:     orderID,
		Status: entity.OrderStatusCreated,
		Total:  decimal.RequireFromString("30.00"),
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("15.00")},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().FindWithDetailsByID(ctx, orderID).Return(detail, nil)
	})

	out, err := fx.service.GetByID(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, out.ID)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].LineTotal.Equal(decimal.RequireFromString("30.00")))
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().FindWithDetailsByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	out, err := fx.service.GetByID(ctx, orderID)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Search_WithStatusFilter(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.OrderSearchInput{
		PageRequest: usecase.PageRequest{Page: 0, Size: 20},
		CustomerID:  &customerID,
		Status:      "PAID",
	}
	stored := []*entity.Order{
		{ID: uuid.New(), CustomerID: customerID, Status: entity.OrderStatusPaid},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockOrderRepo.EXPECT().Search(ctx, mock.AnythingOfType("repository.OrderQuery")).
			Run(func(ctx context.Context, query repository.OrderQuery) {
				require.NotNil(t, query.Status)
				assert.Equal(t, entity.OrderStatusPaid, *query.Status)
				assert.Equal(t, &customerID, query.CustomerID)
				assert.Equal(t, 20, query.Limit)
			}).
			Return(stored, 1, nil)
	})

	page, err := fx.service.Search(ctx, input)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.TotalItems)
}

func TestOrderService_Search_UnknownStatusFilter(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.OrderSearchInput{Status: "REFUNDED"}

	page, err := fx.service.Search(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}
