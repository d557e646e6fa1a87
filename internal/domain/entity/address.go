package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address owned by exactly one Customer.
//
// Invariant: a customer with at least one address has exactly one address
// with Default=true. The flag is system-decided on creation and only ever
// reassigned through the dedicated set-default operation; it serializes
// externally as "isDefault".
type Address struct {
	ID         uuid.UUID // The unique identifier of the address.
	CustomerID uuid.UUID // The owning customer; never changes after creation.
	Line1      string    // First street line, required.
	Line2      string    // Optional second street line.
	City       string
	PostalCode string
	Country    string    // ISO-3166 alpha-2 code or common name.
	Default    bool      // Whether this is the customer's default address.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
