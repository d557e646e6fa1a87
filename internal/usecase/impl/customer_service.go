// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	domainerrors "github.com/gerysx/spb-ecommerce/internal/domain/errors"
	"github.com/gerysx/spb-ecommerce/internal/domain/repository"
	"github.com/gerysx/spb-ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface. It is the single
// writer of the default-address flag: every mutation path below leaves the
// customer with exactly one default address (or none, when no address exists).
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create registers a new customer, optionally with inline addresses.
func (srv *customerService) Create(ctx context.Context, input *usecase.CustomerInput) (*usecase.CustomerOutput, error) {
	srv.logger.Info("Creating customer", "email", input.Email, "addressCount", len(input.Addresses))

	var created *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		// 1. The email must be unused.
		exists, err := customerRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrEmailAlreadyInUse, input.Email)
		}

		customer := &entity.Customer{
			FullName: input.FullName,
			Email:    input.Email,
			Phone:    input.Phone,
		}

		// 2. Decide which inline address becomes the default: the first one
		// flagged in the input wins, otherwise the first address. A customer
		// with addresses always ends up with exactly one default.
		firstDefaultIndex := -1
		for i, addrInput := range input.Addresses {
			if addrInput.Default != nil && *addrInput.Default {
				firstDefaultIndex = i

				break
			}
		}

		for i, addrInput := range input.Addresses {
			addr := newAddressFromInput(&addrInput)
			if firstDefaultIndex == -1 {
				addr.Default = i == 0
			} else {
				addr.Default = i == firstDefaultIndex
			}
			customer.Addresses = append(customer.Addresses, addr)
		}

		// 3. Persist the aggregate; child addresses are created with it.
		if err := customerRepo.Create(ctx, customer); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyInUse, input.Email)
			}

			return errors.Wrap(err, "failed to create customer")
		}
		created = customer

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}
	srv.logger.Info("Customer created", "customerID", created.ID)

	return usecase.NewCustomerOutput(created), nil
}

// GetByID returns one customer with its addresses.
func (srv *customerService) GetByID(ctx context.Context, customerID uuid.UUID) (*usecase.CustomerOutput, error) {
	srv.logger.Debug("Getting customer", "customerID", customerID)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCustomerRepository().FindByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, customerID.String())
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	return usecase.NewCustomerOutput(customer), nil
}

// Update replaces the customer's header fields and, when a non-nil address
// list is supplied, the whole address collection. Which address is default
// never changes here; the only sanctioned adjustment is promoting the first
// remaining address when the replacement removed the previous default.
func (srv *customerService) Update(ctx context.Context, customerID uuid.UUID, input *usecase.CustomerInput) (*usecase.CustomerOutput, error) {
	srv.logger.Info("Updating customer", "customerID", customerID)

	var updated *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		addressRepo := repoFactory.NewAddressRepository()

		// 1. Lock the customer row; all concurrent mutations of this
		// customer's addresses serialize here.
		customer, err := customerRepo.FindByIDForUpdate(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, customerID.String())
			}

			return errors.Wrap(err, "failed to lock customer")
		}

		// 2. Header fields; a changed email must stay unique.
		if input.Email != customer.Email {
			exists, err := customerRepo.ExistsByEmail(ctx, input.Email)
			if err != nil {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
			if exists {
				return errors.Wrap(domainerrors.ErrEmailAlreadyInUse, input.Email)
			}
		}
		customer.FullName = input.FullName
		customer.Email = input.Email
		customer.Phone = input.Phone

		if input.Addresses != nil {
			if err := srv.replaceAddresses(ctx, addressRepo, customer, input.Addresses); err != nil {
				return err
			}
		}

		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to update customer")
		}

		// 3. Re-read so the output reflects the persisted collection.
		reloaded, err := customerRepo.FindByID(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to reload customer")
		}
		updated = reloaded

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}
	srv.logger.Info("Customer updated", "customerID", customerID)

	return usecase.NewCustomerOutput(updated), nil
}

// replaceAddresses rebuilds the address collection from a full replacement
// list while preserving the stored default flag of every surviving address.
func (srv *customerService) replaceAddresses(
	ctx context.Context,
	addressRepo repository.AddressRepository,
	customer *entity.Customer,
	inputs []usecase.AddressInput,
) error {
	currentDefault, err := addressRepo.FindDefaultByCustomerID(ctx, customer.ID)
	if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
		return errors.Wrap(err, "failed to find current default address")
	}
	if currentDefault != nil {
		srv.logger.Debug("Current default address", "customerID", customer.ID, "addressID", currentDefault.ID)
	}

	rebuilt := make([]*entity.Address, 0, len(inputs))
	keepIDs := make([]uuid.UUID, 0, len(inputs))

	for _, addrInput := range inputs {
		if addrInput.ID == nil {
			// A brand-new address may not claim the default slot.
			if addrInput.Default != nil && *addrInput.Default {
				return errors.Wrap(domainerrors.ErrDefaultAddressChangeNotAllowed,
					"new address submitted with isDefault=true")
			}

			addr := newAddressFromInput(&addrInput)
			addr.CustomerID = customer.ID
			addr.Default = false
			rebuilt = append(rebuilt, addr)

			continue
		}

		existing, err := addressRepo.FindByIDAndCustomerID(ctx, *addrInput.ID, customer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, addrInput.ID.String())
			}

			return errors.Wrap(err, "failed to find address")
		}

		// An existing address may not flip its default flag through this path.
		if addrInput.Default != nil && *addrInput.Default != existing.Default {
			return errors.Wrap(domainerrors.ErrDefaultAddressChangeNotAllowed,
				"default flag differs from stored state")
		}

		existing.Line1 = addrInput.Line1
		existing.Line2 = addrInput.Line2
		existing.City = addrInput.City
		existing.PostalCode = addrInput.PostalCode
		existing.Country = addrInput.Country

		rebuilt = append(rebuilt, existing)
		keepIDs = append(keepIDs, existing.ID)
	}

	// Heal: the replacement may have dropped the previously-default address.
	// This is the only path allowed to reassign the flag automatically.
	hasDefault := false
	for _, addr := range rebuilt {
		if addr.Default {
			hasDefault = true

			break
		}
	}
	if !hasDefault && len(rebuilt) > 0 {
		srv.logger.Info("No default address after rebuild, promoting first", "customerID", customer.ID)
		rebuilt[0].Default = true
	}

	// Addresses missing from the replacement list are deleted.
	if err := addressRepo.DeleteByCustomerIDExcept(ctx, customer.ID, keepIDs); err != nil {
		return errors.Wrap(err, "failed to delete removed addresses")
	}

	for _, addr := range rebuilt {
		if addr.ID == uuid.Nil {
			if err := addressRepo.Create(ctx, addr); err != nil {
				return errors.Wrap(err, "failed to create address")
			}

			continue
		}
		if err := addressRepo.Update(ctx, addr); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
	}

	customer.Addresses = rebuilt

	return nil
}

// Delete removes the customer together with its addresses. Addresses are
// deleted first, inside the same transaction.
func (srv *customerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	srv.logger.Info("Deleting customer", "customerID", customerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		if _, err := customerRepo.FindByIDForUpdate(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, customerID.String())
			}

			return errors.Wrap(err, "failed to lock customer")
		}

		if err := repoFactory.NewAddressRepository().DeleteByCustomerIDExcept(ctx, customerID, nil); err != nil {
			return errors.Wrap(err, "failed to delete customer addresses")
		}

		if err := customerRepo.Delete(ctx, customerID); err != nil {
			return errors.Wrap(err, "failed to delete customer")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}
	srv.logger.Info("Customer deleted", "customerID", customerID)

	return nil
}

// Search returns a page of customers filtered by email substring.
func (srv *customerService) Search(ctx context.Context, input *usecase.CustomerSearchInput) (*usecase.Page[usecase.CustomerOutput], error) {
	page := input.Normalize()

	var (
		customers []*entity.Customer
		total     int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewCustomerRepository().Search(ctx, repository.CustomerQuery{
			EmailContains: input.Email,
			Offset:        page.Offset(),
			Limit:         page.Size,
		})
		if err != nil {
			return errors.Wrap(err, "failed to search customers")
		}
		customers, total = found, count

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	outputs := make([]usecase.CustomerOutput, 0, len(customers))
	for _, customer := range customers {
		outputs = append(outputs, *usecase.NewCustomerOutput(customer))
	}

	return usecase.NewPage(outputs, page, total), nil
}

// AddAddress appends one address to the customer. The first address of a
// customer becomes the default automatically; requesting isDefault=true
// through this endpoint is rejected.
func (srv *customerService) AddAddress(ctx context.Context, customerID uuid.UUID, input *usecase.AddressInput) (*usecase.AddressOutput, error) {
	srv.logger.Info("Adding address", "customerID", customerID)

	var created *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		addressRepo := repoFactory.NewAddressRepository()

		// 1. The customer must exist.
		if _, err := customerRepo.FindByID(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, customerID.String())
			}

			return errors.Wrap(err, "failed to find customer")
		}

		// 2. Reassigning the default belongs to the set-default operation.
		if input.Default != nil && *input.Default {
			srv.logger.Warn("Blocked isDefault=true on add-address", "customerID", customerID)

			return errors.Wrap(domainerrors.ErrDefaultAddressChangeNotAllowed,
				"use the set-default operation instead")
		}

		// 3. Query the stored state, not the in-memory aggregate: the new
		// address is default iff the customer has none yet.
		existsDefault := true
		if _, err := addressRepo.FindDefaultByCustomerID(ctx, customerID); err != nil {
			if !errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(err, "failed to find default address")
			}
			existsDefault = false
		}

		addr := newAddressFromInput(input)
		addr.CustomerID = customerID
		addr.Default = !existsDefault

		if err := addressRepo.Create(ctx, addr); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		created = addr

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add address")
	}
	srv.logger.Info("Address created", "customerID", customerID, "addressID", created.ID, "default", created.Default)

	out := usecase.NewAddressOutput(created)

	return &out, nil
}

// SetDefaultAddress makes the target address the customer's default. The
// lookup is scoped to the customer, so another customer's address id yields
// not-found rather than leaking its existence. Idempotent.
func (srv *customerService) SetDefaultAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	srv.logger.Info("Setting default address", "customerID", customerID, "addressID", addressID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		target, err := addressRepo.FindByIDAndCustomerID(ctx, addressID, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, addressID.String())
			}

			return errors.Wrap(err, "failed to find address")
		}

		// Clear every other flag first so the invariant cannot observe two
		// defaults, then mark the target if it is not already the default.
		if _, err := addressRepo.ClearDefaultForCustomerExcept(ctx, customerID, addressID); err != nil {
			return errors.Wrap(err, "failed to clear previous default")
		}

		if !target.Default {
			target.Default = true
			if err := addressRepo.Update(ctx, target); err != nil {
				return errors.Wrap(err, "failed to mark default address")
			}
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to set default address")
	}
	srv.logger.Info("Default address set", "customerID", customerID, "addressID", addressID)

	return nil
}

// ListAddresses returns all addresses of the customer, default first.
func (srv *customerService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]usecase.AddressOutput, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewCustomerRepository().FindByID(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, customerID.String())
			}

			return errors.Wrap(err, "failed to find customer")
		}

		found, err := repoFactory.NewAddressRepository().FindByCustomerID(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		addresses = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	outputs := make([]usecase.AddressOutput, 0, len(addresses))
	for _, addr := range addresses {
		outputs = append(outputs, usecase.NewAddressOutput(addr))
	}

	return outputs, nil
}

// newAddressFromInput maps postal fields only; CustomerID and Default are
// always decided by the caller.
func newAddressFromInput(input *usecase.AddressInput) *entity.Address {
	addr := &entity.Address{
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}
	if input.ID != nil {
		addr.ID = *input.ID
	}

	return addr
}
