package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the aggregate of a purchase: a header plus its line items.
// The shipping address must belong to the same customer as the order.
// Orders are created in StatusCreated and are never deleted.
type Order struct {
	ID                uuid.UUID   // The unique identifier of the order.
	CustomerID        uuid.UUID   // The buyer.
	ShippingAddressID uuid.UUID   // One of the buyer's addresses.
	Customer          *Customer   // Loaded on detail fetches.
	ShippingAddress   *Address    // Loaded on detail fetches.
	OrderDate         time.Time   // Creation timestamp, immutable.
	Status            OrderStatus // Current lifecycle state.
	Total             decimal.Decimal
	Items             []*OrderItem // Ordered line items; owned by the order.
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the product
// price at order-creation time and is never recomputed from the catalog.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Product   *Product // Loaded on detail fetches.
	Quantity  int      // Ordered units, always positive.
	UnitPrice decimal.Decimal
}

// LineTotal returns UnitPrice multiplied by Quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
