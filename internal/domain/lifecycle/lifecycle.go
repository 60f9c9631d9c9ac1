// Package lifecycle holds shared shutdown settings for the delivery servers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery server.
const DefaultTimeout = 10 * time.Second
