package errors

import (
	"fmt"
	"net/http"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"

	"github.com/google/uuid"
)

// InsufficientStockError is raised when an order line requests more units
// than the product has on hand. It is kept distinguishable from generic
// business-rule errors so callers can react (e.g. suggest a lower quantity),
// and it names the offending product.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return fmt.Sprintf("Insufficient stock for product %q", e.ProductName)
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return fmt.Sprintf("productId=%s requested=%d available=%d", e.ProductID, e.Requested, e.Available)
}

// InvalidTransitionError is raised when a status change is not in the order
// lifecycle transition table. It names both states so the caller can see
// exactly which pair was rejected.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

// HTTPCode returns the HTTP status code
func (e *InvalidTransitionError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InvalidTransitionError) ErrorCode() string {
	return "INVALID_STATUS_TRANSITION"
}

// Message returns the user-friendly error message
func (e *InvalidTransitionError) Message() string {
	return fmt.Sprintf("Order status cannot change from %s to %s", e.From, e.To)
}

// Details returns detailed error information
func (e *InvalidTransitionError) Details() string {
	return fmt.Sprintf("from=%s to=%s", e.From, e.To)
}
