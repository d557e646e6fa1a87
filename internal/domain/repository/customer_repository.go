// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	"github.com/gerysx/spb-ecommerce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateEmail is returned when the unique email constraint is violated at write time.
	ErrDuplicateEmail = errors.New("email already in use")
)

// CustomerQuery carries the optional, conjunctive filters of a customer
// search. A zero field imposes no constraint.
type CustomerQuery struct {
	EmailContains string
	Offset        int
	Limit         int
}

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// Create persists a new customer together with its child addresses.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer with its addresses loaded.
	// Returns ErrCustomerNotFound if no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByIDForUpdate retrieves a customer holding an exclusive row lock
	// for the duration of the surrounding transaction. Used by every
	// mutation that rewrites the address collection.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a customer by its unique email.
	// Returns ErrCustomerNotFound if no row exists.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ExistsByEmail reports whether a customer with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists changes to the customer header fields.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes the customer row. Child addresses must already be
	// deleted by the caller inside the same transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search returns a page of customers matching the query plus the total
	// match count.
	Search(ctx context.Context, query CustomerQuery) ([]*entity.Customer, int64, error)
}
