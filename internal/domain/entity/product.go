package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Products are never hard-deleted: deactivation
// (Active=false) keeps historical order lines pointing at a real row.
type Product struct {
	ID          uuid.UUID       // The unique identifier of the product.
	SKU         string          // Stock keeping unit, globally unique.
	Name        string          // Display name.
	Description string          // Optional long description.
	Price       decimal.Decimal // Current unit price, 2 fractional digits.
	Stock       int             // Sellable units on hand, never negative.
	Active      bool            // Whether the product can be ordered.
	CreatedAt   time.Time       // Timestamp of when this product was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}
