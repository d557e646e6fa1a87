// Package usecase defines the application-level contracts: use case
// interfaces plus their input and output data shapes.
package usecase

import (
	"context"
	"time"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput is the wire shape of one address in customer payloads.
// ID is present only when updating an existing address. The default flag is
// exposed as "isDefault"; whether it may be set depends on the operation
// (never on add-address or customer update, see CustomerUsecase).
type AddressInput struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Line1      string     `json:"line1" validate:"required,max=160"`
	Line2      string     `json:"line2,omitempty" validate:"max=160"`
	City       string     `json:"city" validate:"required,max=80"`
	PostalCode string     `json:"postalCode" validate:"required,max=20"`
	Country    string     `json:"country" validate:"required,max=80"`
	Default    *bool      `json:"isDefault,omitempty"`
}

// AddressOutput is the external projection of an address.
type AddressOutput struct {
	ID         uuid.UUID `json:"id"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Default    bool      `json:"isDefault"`
}

// CustomerInput is the payload for creating or updating a customer. On
// update, Addresses is a full replacement list: addresses missing from it
// are deleted.
type CustomerInput struct {
	FullName  string         `json:"fullName" validate:"required,max=120"`
	Email     string         `json:"email" validate:"required,email,max=160"`
	Phone     string         `json:"phone,omitempty" validate:"omitempty,numeric,len=9"`
	Addresses []AddressInput `json:"addresses" validate:"dive"`
}

// CustomerOutput is the external projection of a customer with its addresses.
type CustomerOutput struct {
	ID        uuid.UUID       `json:"id"`
	FullName  string          `json:"fullName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Addresses []AddressOutput `json:"addresses"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CustomerSearchInput carries the optional filters of a customer search.
type CustomerSearchInput struct {
	PageRequest
	Email string `query:"email"`
}

// CustomerUsecase drives customer CRUD and owns the default-address
// invariant: a customer with at least one address has exactly one default.
type CustomerUsecase interface {
	// Create registers a new customer. Inline addresses are allowed; the
	// first one flagged default wins, otherwise the first address becomes
	// the default.
	Create(ctx context.Context, input *CustomerInput) (*CustomerOutput, error)

	// GetByID returns the customer with its addresses.
	GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerOutput, error)

	// Update replaces the customer's header fields and, when Addresses is
	// non-nil, the whole address collection. This path never changes which
	// address is default: flag flips and new addresses claiming default are
	// rejected. If the replacement removes the previously-default address,
	// the first remaining address is promoted.
	Update(ctx context.Context, customerID uuid.UUID, input *CustomerInput) (*CustomerOutput, error)

	// Delete removes the customer and all of its addresses.
	Delete(ctx context.Context, customerID uuid.UUID) error

	// Search returns a page of customers filtered by email substring.
	Search(ctx context.Context, input *CustomerSearchInput) (*Page[CustomerOutput], error)

	// AddAddress appends one address to the customer. Requesting
	// isDefault=true here is rejected; the first address of a customer is
	// promoted to default automatically.
	AddAddress(ctx context.Context, customerID uuid.UUID, input *AddressInput) (*AddressOutput, error)

	// SetDefaultAddress makes the given address the customer's default,
	// clearing the flag on every other address. Idempotent.
	SetDefaultAddress(ctx context.Context, customerID, addressID uuid.UUID) error

	// ListAddresses returns all addresses of the customer, default first.
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]AddressOutput, error)
}

// NewAddressOutput maps a domain address to its external projection.
func NewAddressOutput(addr *entity.Address) AddressOutput {
	return AddressOutput{
		ID:         addr.ID,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
		Default:    addr.Default,
	}
}

// NewCustomerOutput maps a domain customer to its external projection.
func NewCustomerOutput(customer *entity.Customer) *CustomerOutput {
	addresses := make([]AddressOutput, 0, len(customer.Addresses))
	for _, addr := range customer.Addresses {
		addresses = append(addresses, NewAddressOutput(addr))
	}

	return &CustomerOutput{
		ID:        customer.ID,
		FullName:  customer.FullName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Addresses: addresses,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
