// Package errors defines the application error contract and the typed error
// taxonomy of the order-management core: not-found, validation, business-rule,
// conflict and insufficient-stock outcomes.
package errors

import (
	"net/http"

	"github.com/gerysx/spb-ecommerce/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not-found errors. Address lookups scoped by customer return
	// ErrAddressNotFound even when the address exists for someone else,
	// so the API never leaks another customer's rows.
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found for this customer",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Uniqueness conflicts detected at write time.
	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"The email is already registered to another customer",
		"",
	)

	ErrSKUAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"SKU_ALREADY_IN_USE",
		"The SKU is already assigned to another product",
		"",
	)

	// Business-rule violations: structurally valid input rejected by the core.
	ErrDefaultAddressChangeNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"DEFAULT_ADDRESS_CHANGE_NOT_ALLOWED",
		"Changing the default address is not allowed through this operation",
		"",
	)

	ErrAddressNotOwnedByCustomer = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_NOT_OWNED_BY_CUSTOMER",
		"The shipping address does not belong to the specified customer",
		"",
	)

	ErrOrderItemsEmpty = NewBaseError(
		http.StatusBadRequest,
		"ORDER_ITEMS_EMPTY",
		"An order must contain at least one item",
		"",
	)

	ErrInactiveProduct = NewBaseError(
		http.StatusBadRequest,
		"INACTIVE_PRODUCT",
		"The product is not active for sale",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"The order status value is not recognized",
		"",
	)

	// Lock-wait or serialization failures; retryable by the caller.
	ErrLockContention = NewBaseError(
		http.StatusConflict,
		"LOCK_CONTENTION",
		"The resource is being modified concurrently, retry the operation",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
