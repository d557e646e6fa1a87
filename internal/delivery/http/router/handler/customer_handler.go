// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gerysx/spb-ecommerce/internal/delivery/http/response"
	"github.com/gerysx/spb-ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the customer registration request.
func (h *CustomerHandler) Create(c echo.Context) error {
	var input *usecase.CustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Customer created successfully")
}

// GetByID returns one customer with its addresses.
func (h *CustomerHandler) GetByID(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	output, err := h.uc.GetByID(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update replaces the customer's header fields and address collection.
func (h *CustomerHandler) Update(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	var input *usecase.CustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customer updated successfully")
}

// Delete removes the customer and all of its addresses.
func (h *CustomerHandler) Delete(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	if err := h.uc.Delete(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Search returns a page of customers filtered by email substring.
func (h *CustomerHandler) Search(c echo.Context) error {
	var input usecase.CustomerSearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	output, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddAddress appends one address to the customer.
func (h *CustomerHandler) AddAddress(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	var input *usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddAddress(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Address added successfully")
}

// ListAddresses returns all addresses of the customer, default first.
func (h *CustomerHandler) ListAddresses(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	output, err := h.uc.ListAddresses(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// SetDefaultAddress makes the given address the customer's default.
func (h *CustomerHandler) SetDefaultAddress(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}
	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address id")
	}

	if err := h.uc.SetDefaultAddress(c.Request().Context(), customerID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default address updated successfully")
}
