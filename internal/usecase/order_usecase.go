package usecase

import (
	"context"
	"time"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// OrderCreateInput is the payload for creating an order.
type OrderCreateInput struct {
	CustomerID        uuid.UUID        `json:"customerId" validate:"required"`
	ShippingAddressID uuid.UUID        `json:"shippingAddressId" validate:"required"`
	Items             []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderStatusInput carries the requested status for a transition.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemSummaryOutput is one line of the creation summary.
type OrderItemSummaryOutput struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderSummaryOutput is the projection returned by order creation. It is
// deliberately smaller than OrderOutput: ids, per-line totals and the header
// total only.
type OrderSummaryOutput struct {
	ID                uuid.UUID                `json:"id"`
	CustomerID        uuid.UUID                `json:"customerId"`
	ShippingAddressID uuid.UUID                `json:"shippingAddressId"`
	OrderDate         time.Time                `json:"orderDate"`
	Status            string                   `json:"status"`
	Total             decimal.Decimal          `json:"total"`
	Items             []OrderItemSummaryOutput `json:"items"`
}

// OrderItemOutput is one line of the full detail projection.
type OrderItemOutput struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Product   *ProductOutput  `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderOutput is the full detail projection of an order: header, customer,
// shipping address and all items with their products.
type OrderOutput struct {
	ID              uuid.UUID         `json:"id"`
	Customer        *CustomerOutput   `json:"customer,omitempty"`
	ShippingAddress *AddressOutput    `json:"shippingAddress,omitempty"`
	OrderDate       time.Time         `json:"orderDate"`
	Status          string            `json:"status"`
	Total           decimal.Decimal   `json:"total"`
	Items           []OrderItemOutput `json:"items"`
}

// OrderSearchInput carries the optional, conjunctive filters of an order
// search. The date range is inclusive on both ends.
type OrderSearchInput struct {
	PageRequest
	CustomerID *uuid.UUID `query:"customerId"`
	FromDate   *time.Time `query:"fromDate"`
	ToDate     *time.Time `query:"toDate"`
	Status     string     `query:"status"`
}

// OrderUsecase drives order creation and the status lifecycle.
type OrderUsecase interface {
	// Create validates the request against live inventory, snapshots unit
	// prices, persists the order and decrements stock atomically in one
	// transaction. Stock rows are locked before validation so concurrent
	// orders cannot oversell.
	Create(ctx context.Context, input *OrderCreateInput) (*OrderSummaryOutput, error)

	// ChangeStatus drives the order state machine under an exclusive row
	// lock. Unknown status strings are a validation error; pairs outside
	// the transition table are a conflict.
	ChangeStatus(ctx context.Context, orderID uuid.UUID, status string) (*OrderOutput, error)

	// GetByID returns the full detail projection.
	GetByID(ctx context.Context, orderID uuid.UUID) (*OrderOutput, error)

	// Search returns a page of orders matching the filters, newest first.
	Search(ctx context.Context, input *OrderSearchInput) (*Page[OrderOutput], error)
}

// NewOrderSummaryOutput maps a freshly created order to its creation summary.
func NewOrderSummaryOutput(order *entity.Order) *OrderSummaryOutput {
	items := make([]OrderItemSummaryOutput, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemSummaryOutput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}

	return &OrderSummaryOutput{
		ID:                order.ID,
		CustomerID:        order.CustomerID,
		ShippingAddressID: order.ShippingAddressID,
		OrderDate:         order.OrderDate,
		Status:            order.Status.String(),
		Total:             order.Total,
		Items:             items,
	}
}

// NewOrderOutput maps an order detail graph to the full projection.
func NewOrderOutput(order *entity.Order) *OrderOutput {
	items := make([]OrderItemOutput, 0, len(order.Items))
	for _, item := range order.Items {
		out := OrderItemOutput{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		}
		if item.Product != nil {
			out.Product = NewProductOutput(item.Product)
		}
		items = append(items, out)
	}

	out := &OrderOutput{
		ID:        order.ID,
		OrderDate: order.OrderDate,
		Status:    order.Status.String(),
		Total:     order.Total,
		Items:     items,
	}
	if order.Customer != nil {
		out.Customer = NewCustomerOutput(order.Customer)
	}
	if order.ShippingAddress != nil {
		addr := NewAddressOutput(order.ShippingAddress)
		out.ShippingAddress = &addr
	}

	return out
}
