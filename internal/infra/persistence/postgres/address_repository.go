package postgres

import (
	"context"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	domainerrors "github.com/gerysx/spb-ecommerce/internal/domain/errors"
	"github.com/gerysx/spb-ecommerce/internal/domain/repository"
	"github.com/gerysx/spb-ecommerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface using GORM.
// The partial unique index ux_addresses_default_per_customer backs up the
// one-default-per-customer rule at the storage level.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address for a customer.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A second default slipped past the application guard.
			return domainerrors.ErrConflict.WrapMessage("customer already has a default address")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by id regardless of owner.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).First(&addressM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindByCustomerID retrieves every address of a customer, default first.
func (repo *addressRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var addressMs []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_default DESC, created_at ASC").
		Find(&addressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses by customer")
	}

	addresses := make([]*entity.Address, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindDefaultByCustomerID retrieves the customer's current default address.
func (repo *addressRepository) FindDefaultByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND is_default", customerID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// FindByIDAndCustomerID retrieves one address scoped to its owner. An address
// belonging to another customer is indistinguishable from a missing one.
func (repo *addressRepository) FindByIDAndCustomerID(ctx context.Context, id, customerID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address for customer")
	}

	return toAddressDomain(&addressM), nil
}

// ClearDefaultForCustomerExcept unsets the default flag on every address of
// the customer other than exceptID in one bulk update.
func (repo *addressRepository) ClearDefaultForCustomerExcept(ctx context.Context, customerID, exceptID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ? AND id <> ? AND is_default", customerID, exceptID).
		Update("is_default", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear default addresses")
	}

	return result.RowsAffected, nil
}

// Update persists changes to an existing address, including the default flag.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ? AND customer_id = ?", address.ID, address.CustomerID).
		Updates(map[string]any{
			"line1":       address.Line1,
			"line2":       address.Line2,
			"city":        address.City,
			"postal_code": address.PostalCode,
			"country":     address.Country,
			"is_default":  address.Default,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("customer already has a default address")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteByCustomerIDExcept removes every address of the customer whose id is
// not in keepIDs. An empty keepIDs deletes all of them.
func (repo *addressRepository) DeleteByCustomerIDExcept(ctx context.Context, customerID uuid.UUID, keepIDs []uuid.UUID) error {
	tx := repo.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if len(keepIDs) > 0 {
		tx = tx.Where("id NOT IN ?", keepIDs)
	}

	if err := tx.Delete(&model.AddressModel{}).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "address is still referenced by an order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete addresses")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Default:    data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel for persistence.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.Default,
	}
}
