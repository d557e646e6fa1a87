package entity

import "github.com/gerysx/spb-ecommerce/internal/errors"

// OrderStatus is the lifecycle state of an order, serialized by name.
type OrderStatus string

const (
	// OrderStatusCreated is the initial state of every order.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusPaid means payment was captured for the order.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusShipped is terminal: the order left the warehouse.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusCancelled is terminal: the order was aborted.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ErrUnknownOrderStatus is returned by ParseOrderStatus for values outside
// the closed four-value enum.
var ErrUnknownOrderStatus = errors.New("unknown order status")

// orderTransitions is the closed transition table. SHIPPED and CANCELLED
// have no outgoing transitions.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {},
	OrderStatusCancelled: {},
}

// ParseOrderStatus converts a wire value into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderTransitions[status]; !ok {
		return "", errors.Wrapf(ErrUnknownOrderStatus, "%q", s)
	}

	return status, nil
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the status accepts no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

func (s OrderStatus) String() string {
	return string(s)
}
