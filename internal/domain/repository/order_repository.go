package repository

import (
	"context"
	"time"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	"github.com/gerysx/spb-ecommerce/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderQuery carries the optional, conjunctive filters of an order search.
// A nil field imposes no constraint; the date range is inclusive on both ends.
type OrderQuery struct {
	CustomerID *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time
	Status     *entity.OrderStatus
	Offset     int
	Limit      int
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByIDForUpdate retrieves the order header holding an exclusive row
	// lock, serializing concurrent status changes on the same order.
	// Returns ErrOrderNotFound if no row exists.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindWithDetailsByID retrieves the full detail graph in one fetch:
	// items, each item's product, the customer and the shipping address.
	// Returns ErrOrderNotFound if no row exists.
	FindWithDetailsByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus persists a new status on the order header.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Search returns a page of orders (detail graph loaded) matching the
	// query plus the total match count, newest first.
	Search(ctx context.Context, query OrderQuery) ([]*entity.Order, int64, error)
}
