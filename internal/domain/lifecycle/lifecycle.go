// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (DB ping, HTTP drain).
const DefaultTimeout = 10 * time.Second
