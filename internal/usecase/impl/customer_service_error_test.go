package impl

import (
	"context"
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

func TestCustomerService_Update_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stored := &entity.Customer{ID: customerID, FullName: "María López", Email: "maria@example.com"}
	input := &usecase.CustomerInput{FullName: "María López García", Email: "maria@example.com"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(stored, nil)
		mockCustomerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(stored, nil)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	require.NoError(t, err)
	assert.Equal(t, "María López García", out.FullName)
}

func TestCustomerService_Update_EmailConflict(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stored := &entity.Customer{ID: customerID, Email: "maria@example.com"}
	input := &usecase.CustomerInput{FullName: "María López", Email: "taken@example.com"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(stored, nil)
		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.CustomerInput{FullName: "María López", Email: "maria@example.com"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(nil, repository.ErrCustomerNotFound)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

// Flipping the default flag through the replacement list is rejected and
// nothing is written.
func TestCustomerService_Update_RejectsDefaultFlagFlip(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addr1ID := uuid.New()
	addr2ID := uuid.New()
	stored := &entity.Customer{ID: customerID, Email: "maria@example.com"}
	addr1 := &entity.Address{ID: addr1ID, CustomerID: customerID, Default: true}

	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []usecase.AddressInput{
			{ID: &addr1ID, Line1: "Calle Mayor 1", City: "Madrid", PostalCode: "28001", Country: "ES", Default: boolPtr(false)},
			{ID: &addr2ID, Line1: "Calle Luna 2", City: "Sevilla", PostalCode: "41001", Country: "ES", Default: boolPtr(true)},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(stored, nil)
		mockAddressRepo.EXPECT().FindDefaultByCustomerID(ctx, customerID).Return(addr1, nil)
		// The first list entry already flips the stored flag, so the rebuild
		// stops before any write.
		mockAddressRepo.EXPECT().FindByIDAndCustomerID(ctx, addr1ID, customerID).Return(addr1, nil)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDefaultAddressChangeNotAllowed))
}

func TestCustomerService_Update_RejectsNewAddressClaimingDefault(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stored := &entity.Customer{ID: customerID, Email: "maria@example.com"}
	existingDefault := &entity.Address{ID: uuid.New(), CustomerID: customerID, Default: true}

	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []usecase.AddressInput{
			{Line1: "Calle Nueva 3", City: "Valencia", PostalCode: "46001", Country: "ES", Default: boolPtr(true)},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(stored, nil)
		mockAddressRepo.EXPECT().FindDefaultByCustomerID(ctx, customerID).Return(existingDefault, nil)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDefaultAddressChangeNotAllowed))
}

// Removing the previously-default address from the replacement list promotes
// the first remaining address.
func TestCustomerService_Update_PromotesFirstRemainingWhenDefaultRemoved(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addr1ID := uuid.New()
	addr2ID := uuid.New()
	stored := &entity.Customer{ID: customerID, Email: "maria@example.com"}
	addr1 := &entity.Address{ID: addr1ID, CustomerID: customerID, Default: true}
	addr2 := &entity.Address{ID: addr2ID, CustomerID: customerID, Default: false}

	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []usecase.AddressInput{
			{ID: &addr2ID, Line1: "Calle Luna 2", City: "Sevilla", PostalCode: "41001", Country: "ES"},
		},
	}

	reloaded := &entity.Customer{
		ID:        customerID,
		Email:     "maria@example.com",
		FullName:  "María López",
		Addresses: []*entity.Address{addr2},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(stored, nil)
		mockAddressRepo.EXPECT().FindDefaultByCustomerID(ctx, customerID).Return(addr1, nil)
		mockAddressRepo.EXPECT().FindByIDAndCustomerID(ctx, addr2ID, customerID).Return(addr2, nil)
		mockAddressRepo.EXPECT().DeleteByCustomerIDExcept(ctx, customerID, []uuid.UUID{addr2ID}).Return(nil)
		mockAddressRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
		mockCustomerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(reloaded, nil)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	require.NoError(t, err)
	assert.True(t, addr2.Default)
	require.Len(t, out.Addresses, 1)
	assert.True(t, out.Addresses[0].Default)
}

func TestCustomerService_Update_UnknownAddressInReplacement(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	strangerAddrID := uuid.New()
	stored := &entity.Customer{ID: customerID, Email: "maria@example.com"}
	currentDefault := &entity.Address{ID: uuid.New(), CustomerID: customerID, Default: true}

	input := &usecase.CustomerInput{
		FullName: "María López",
		Email:    "maria@example.com",
		Addresses: []usecase.AddressInput{
			{ID: &strangerAddrID, Line1: "Calle Ajena 9", City: "Bilbao", PostalCode: "48001", Country: "ES"},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
		factory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(stored, nil)
		mockAddressRepo.EXPECT().FindDefaultByCustomerID(ctx, customerID).Return(currentDefault, nil)
		mockAddressRepo.EXPECT().FindByIDAndCustomerID(ctx, strangerAddrID, customerID).Return(nil, repository.ErrAddressNotFound)
	})

	out, err := fx.service.Update(ctx, customerID, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().FindByIDForUpdate(ctx, customerID).Return(nil, repository.ErrCustomerNotFound)
	})

	err := fx.service.Delete(ctx, customerID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}
