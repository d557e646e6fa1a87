package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every ordered pair of states is pinned down so the transition table cannot
// drift silently.
func TestOrderStatus_CanTransitionTo_AllPairs(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusCreated, OrderStatusPaid}:      true,
		{OrderStatusCreated, OrderStatusCancelled}: true,
		{OrderStatusPaid, OrderStatusShipped}:      true,
		{OrderStatusPaid, OrderStatusCancelled}:    true,
	}

	statuses := []OrderStatus{OrderStatusCreated, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]OrderStatus{from, to}]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusCreated.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.True(t, OrderStatusShipped.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{name: "created", input: "CREATED", want: OrderStatusCreated},
		{name: "paid", input: "PAID", want: OrderStatusPaid},
		{name: "shipped", input: "SHIPPED", want: OrderStatusShipped},
		{name: "cancelled", input: "CANCELLED", want: OrderStatusCancelled},
		{name: "unknown value", input: "DELIVERED", wantErr: true},
		{name: "lowercase is rejected", input: "paid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownOrderStatus))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
