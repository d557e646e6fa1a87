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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	t         *testing.T
	service   usecase.CustomerUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCustomerService(txManager, logger)

	return customerServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

// onExecute runs the transactional closure against a factory configured by
// setup and makes Execute return whatever the closure returned.
func (fx customerServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCustomerService_Create_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Phone:    "600111222",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, "maria@example.com").Return(false, nil)
		mockCustomerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
	})

	out, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "María López", out.FullName)
	assert.Equal(t, "maria@example.com", out.Email)
	assert.Empty(t, out.Addresses)
}

func TestCustomerService_Create_FirstInlineAddressBecomesDefault(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []usecase.AddressInput{
			{Line1: "Calle Mayor 1", City: "Madrid", PostalCode: "28001", Country: "ES"},
			{Line1: "Calle Luna 2", City: "Sevilla", PostalCode: "41001", Country: "ES"},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, "maria@example.com").Return(false, nil)
		mockCustomerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
	})

	out, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.Len(t, out.Addresses, 2)
	assert.True(t, out.Addresses[0].Default)
	assert.False(t, out.Addresses[1].Default)
}

func TestCustomerService_Create_FlaggedInlineAddressWins(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []usecase.AddressInput{
			{Line1: "Calle Mayor 1", City: "Madrid", PostalCode: "28001", Country: "ES"},
			{Line1: "Calle Luna 2", City: "Sevilla", PostalCode: "41001", Country: "ES", Default: boolPtr(true)},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, "maria@example.com").Return(false, nil)
		mockCustomerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
	})

	out, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.Len(t, out.Addresses, 2)
	assert.False(t, out.Addresses[0].Default)
	assert.True(t, out.Addresses[1].Default)
}

func TestCustomerService_Create_EmailConflict(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "taken@example.com",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil)
	})

	out, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
}

func TestCustomerService_GetByID_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stored := &entity.Customer{
		ID:       customerID,
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []*entity.Address{
			{ID: uuid.New(), CustomerID: customerID, Line1: "Calle Mayor 1", Default: true},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(stored, nil)
	})

	out, err := fx.service.GetByID(ctx, customerID)

	require.NoError(t, err)
	assert.Equal(t, customerID, out.ID)
	require.Len(t, out.Addresses, 1)
	assert.True(t, out.Addresses[0].Default)
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(nil, repository.ErrCustomerNotFound)
	})

	out, err := fx.service.GetByID(ctx, customerID)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_AddAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.AddressInput{
		Line1:      "Calle Mayor 1",
		City:       "Madrid",
		PostalCode: "28001",
		Country:    "ES",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		mockAddressRepo.EXPECT().FindDefaultByCustomerID(ctx, customerID).Return(nil, repository.ErrAddressNotFound)
		mockAddressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	out, err := fx.service.AddAddress(ctx, customerID, input)

	require.NoError(t, err)
	assert.True(t, out.Default)
}

func TestCustomerService_AddAddress_SecondIsNotDefault(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	existingDefault := &entity.Address{ID: uuid.New(), CustomerID: customerID, Default: true}
	input := &usecase.AddressInput{
		Line1:      "Calle Luna 2",
		City:       "Sevilla",
		PostalCode: "41001",
		Country:    "ES",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		mockAddressRepo.EXPECT().FindDefaultByCustomerID(ctx, customerID).Return(existingDefault, nil)
		mockAddressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	out, err := fx.service.AddAddress(ctx, customerID, input)

	require.NoError(t, err)
	assert.False(t, out.Default)
}

func TestCustomerService_AddAddress_RejectsExplicitDefault(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.AddressInput{
		Line1:      "Calle Luna 2",
		City:       "Sevilla",
		PostalCode: "41001",
		Country:    "ES",
		Default:    boolPtr(true),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
	})

	out, err := fx.service.AddAddress(ctx, customerID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDefaultAddressChangeNotAllowed))
}

func TestCustomerService_SetDefaultAddress_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	target := &entity.Address{ID: addressID, CustomerID: customerID, Default: false}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByIDAndCustomerID(ctx, addressID, customerID).Return(target, nil)
		mockAddressRepo.EXPECT().ClearDefaultForCustomerExcept(ctx, customerID, addressID).Return(1, nil)
		mockAddressRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	err := fx.service.SetDefaultAddress(ctx, customerID, addressID)

	require.NoError(t, err)
	assert.True(t, target.Default)
}

func TestCustomerService_SetDefaultAddress_Idempotent(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	target := &entity.Address{ID: addressID, CustomerID: customerID, Default: true}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		// Already default: other flags are still cleared, no row rewrite.
		mockAddressRepo.EXPECT().FindByIDAndCustomerID(ctx, addressID, customerID).Return(target, nil)
		mockAddressRepo.EXPECT().ClearDefaultForCustomerExcept(ctx, customerID, addressID).Return(0, nil)
	})

	err := fx.service.SetDefaultAddress(ctx, customerID, addressID)

	require.NoError(t, err)
	assert.True(t, target.Default)
}

func TestCustomerService_SetDefaultAddress_OtherCustomersAddress(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		// The scoped lookup hides rows that belong to someone else.
		mockAddressRepo.EXPECT().FindByIDAndCustomerID(ctx, addressID, customerID).Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.SetDefaultAddress(ctx, customerID, addressID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestCustomerService_Delete_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		mockAddressRepo.EXPECT().DeleteByCustomerIDExcept(ctx, customerID, []uuid.UUID(nil)).Return(nil)
		mockCustomerRepo.EXPECT().Delete(ctx, customerID).Return(nil)
	})

	err := fx.service.Delete(ctx, customerID)

	require.NoError(t, err)
}

func TestCustomerService_Search_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CustomerSearchInput{
		PageRequest: usecase.PageRequest{Page: 0, Size: 10},
		Email:       "example.com",
	}
	stored := []*entity.Customer{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().Search(ctx, repository.CustomerQuery{
			EmailContains: "example.com",
			Offset:        0,
			Limit:         10,
		}).Return(stored, 12, nil)
	})

	page, err := fx.service.Search(ctx, input)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(12), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
}

func TestCustomerService_ListAddresses_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stored := []*entity.Address{
		{ID: uuid.New(), CustomerID: customerID, Default: true},
		{ID: uuid.New(), CustomerID: customerID},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Customer{ID: customerID}, nil)
		mockAddressRepo.EXPECT().FindByCustomerID(ctx, customerID).Return(stored, nil)
	})

	out, err := fx.service.ListAddresses(ctx, customerID)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Default)
	assert.False(t, out[1].Default)
}
