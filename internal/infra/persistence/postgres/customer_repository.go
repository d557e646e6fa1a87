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
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a repository.CustomerRepository interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a new customer entity together with its inline addresses.
// GORM's Create with associations inserts into customers and addresses in one pass.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Propagate the generated IDs and timestamps back to the entity.
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt
	for i, addrM := range customerM.Addresses {
		customer.Addresses[i].ID = addrM.ID
		customer.Addresses[i].CustomerID = addrM.CustomerID
		customer.Addresses[i].CreatedAt = addrM.CreatedAt
		customer.Addresses[i].UpdatedAt = addrM.UpdatedAt
	}

	return nil
}

// FindByID retrieves a single customer by its unique ID, preloading its addresses.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		First(&customerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByIDForUpdate retrieves a customer while taking an exclusive row lock
// on the customer header. The addresses are loaded by a follow-up query; the
// header lock alone is what serializes concurrent address rewrites.
func (repo *customerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		First(&customerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}
		if isLockContention(err) {
			return nil, domainerrors.ErrLockContention
		}

		return nil, errors.Wrap(err, "failed to lock customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByEmail retrieves a single customer by its unique email address.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		First(&customerM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// ExistsByEmail reports whether any customer carries the email.
func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check customer email existence")
	}

	return count > 0, nil
}

// Update persists the customer header fields. Addresses are managed
// separately through the AddressRepository inside the same transaction.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"full_name": customer.FullName,
			"email":     customer.Email,
			"phone":     customer.Phone,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes the customer row. Callers delete the child addresses first
// inside the same transaction.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "customer is still referenced")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Search returns one page of customers matching the query plus the total match count.
func (repo *customerRepository) Search(ctx context.Context, query repository.CustomerQuery) ([]*entity.Customer, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.CustomerModel{})
	if query.EmailContains != "" {
		tx = tx.Where("email ILIKE ?", "%"+query.EmailContains+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerMs []*model.CustomerModel
	err := tx.
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		Order("created_at DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&customerMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for _, customerM := range customerMs {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	addresses := make([]*entity.Address, 0, len(data.Addresses))
	for i := range data.Addresses {
		addresses = append(addresses, toAddressDomain(&data.Addresses[i]))
	}

	return &entity.Customer{
		ID:        data.ID,
		FullName:  data.FullName,
		Email:     data.Email,
		Phone:     data.Phone,
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel for persistence.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	addresses := make([]model.AddressModel, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, *fromAddressDomain(addr))
	}

	return &model.CustomerModel{
		ID:        data.ID,
		FullName:  data.FullName,
		Email:     data.Email,
		Phone:     data.Phone,
		Addresses: addresses,
	}
}
