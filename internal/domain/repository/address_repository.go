package repository

import (
	"context"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	"github.com/gerysx/spb-ecommerce/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found, including
// scoped lookups where the address exists but belongs to another customer.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database
// operations. Every lookup is scoped to one customer so the default-address
// invariant can be maintained per customer.
type AddressRepository interface {
	// Create persists a new address for a customer.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by id regardless of owner. Callers that
	// must not leak other customers' rows use FindByIDAndCustomerID instead.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByCustomerID retrieves all addresses of a customer, default first.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultByCustomerID retrieves the customer's current default
	// address. Returns ErrAddressNotFound if the customer has no default.
	FindDefaultByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Address, error)

	// FindByIDAndCustomerID retrieves one address scoped to its owner.
	// Returns ErrAddressNotFound when the id does not exist or belongs to a
	// different customer.
	FindByIDAndCustomerID(ctx context.Context, id, customerID uuid.UUID) (*entity.Address, error)

	// ClearDefaultForCustomerExcept unsets the default flag on every address
	// of the customer other than exceptID, in a single bulk update. Returns
	// the number of rows cleared.
	ClearDefaultForCustomerExcept(ctx context.Context, customerID, exceptID uuid.UUID) (int64, error)

	// Update persists changes to an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// DeleteByCustomerIDExcept removes every address of the customer whose
	// id is not in keepIDs. An empty keepIDs deletes all of them.
	DeleteByCustomerIDExcept(ctx context.Context, customerID uuid.UUID, keepIDs []uuid.UUID) error
}
