package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gerysx/spb-ecommerce/internal/delivery/http/response"
	"github.com/gerysx/spb-ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateOnlyLayout is accepted for the order date range filters next to RFC3339.
const dateOnlyLayout = "2006-01-02"

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create places a new order.
func (h *OrderHandler) Create(c echo.Context) error {
	var input *usecase.OrderCreateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created successfully")
}

// GetByID returns the full order detail graph.
func (h *OrderHandler) GetByID(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	output, err := h.uc.GetByID(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ChangeStatus drives the order through its lifecycle state machine.
func (h *OrderHandler) ChangeStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	var input *usecase.OrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ChangeStatus(c.Request().Context(), orderID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order status updated successfully")
}

// Search returns a page of orders matching the filters, newest first.
// The uuid and date filters are parsed by hand: Echo's query binder does not
// cover uuid.UUID or time.Time.
func (h *OrderHandler) Search(c echo.Context) error {
	var input usecase.OrderSearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if v := c.QueryParam("customerId"); v != "" {
		customerID, err := uuid.Parse(v)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid customer id filter")
		}
		input.CustomerID = &customerID
	}

	fromDate, err := parseDateParam(c.QueryParam("fromDate"), false)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid fromDate filter")
	}
	input.FromDate = fromDate

	toDate, err := parseDateParam(c.QueryParam("toDate"), true)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid toDate filter")
	}
	input.ToDate = toDate

	output, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// parseDateParam accepts RFC3339 or a bare date. A bare date used as the
// range end is pushed to the last instant of that day so the range stays
// inclusive.
func parseDateParam(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse date parameter")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}
