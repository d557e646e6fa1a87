// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the aggregate root for a buyer. It owns its Addresses:
// deleting the customer deletes every address it holds.
type Customer struct {
	ID        uuid.UUID  // The unique identifier of the customer.
	FullName  string     // Display name, e.g. "María López".
	Email     string     // Contact email, globally unique.
	Phone     string     // Optional national phone number.
	Addresses []*Address // Child addresses; at most one carries Default=true.
	CreatedAt time.Time  // Timestamp of when this customer was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// DefaultAddress returns the address currently flagged as default, or nil
// when the customer has no addresses yet.
func (c *Customer) DefaultAddress() *Address {
	for _, addr := range c.Addresses {
		if addr.Default {
			return addr
		}
	}

	return nil
}
