package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("10.50"),
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("31.50")))
}

func TestCustomer_DefaultAddress(t *testing.T) {
	customerID := uuid.New()
	defaultAddr := &Address{ID: uuid.New(), CustomerID: customerID, Default: true}
	customer := &Customer{
		ID: customerID,
		Addresses: []*Address{
			{ID: uuid.New(), CustomerID: customerID},
			defaultAddr,
		},
	}

	assert.Equal(t, defaultAddr, customer.DefaultAddress())
}

func TestCustomer_DefaultAddress_NoAddresses(t *testing.T) {
	customer := &Customer{ID: uuid.New()}

	assert.Nil(t, customer.DefaultAddress())
}
