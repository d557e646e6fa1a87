// Package delivery defines the serving contract every transport implements.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP today). The fx
// runner collects every Delivery in the "deliveries" group and serves them
// concurrently.
type Delivery interface {
	// Serve blocks until the underlying server stops.
	Serve(ctx context.Context) error
}
