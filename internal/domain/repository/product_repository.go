package repository

import (
	"context"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	"github.com/gerysx/spb-ecommerce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when the unique SKU constraint is violated at write time.
	ErrDuplicateSKU = errors.New("sku already in use")
)

// ProductQuery carries the optional, conjunctive filters of a catalog
// search. A nil/zero field imposes no constraint.
type ProductQuery struct {
	NameContains string
	Active       *bool
	Offset       int
	Limit        int
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new catalog product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by id.
	// Returns ErrProductNotFound if no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product holding an exclusive row lock
	// for the duration of the surrounding transaction. Stock checks and
	// decrements must happen under this lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ExistsBySKU reports whether a product with the SKU exists.
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// ExistsBySKUExcluding reports whether another product (id != excludeID)
	// already carries the SKU. Used for uniqueness checks on update.
	ExistsBySKUExcluding(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error)

	// Update persists changes to an existing product, including stock.
	Update(ctx context.Context, product *entity.Product) error

	// Search returns a page of products matching the query plus the total
	// match count.
	Search(ctx context.Context, query ProductQuery) ([]*entity.Product, int64, error)
}
