// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP API, Pub/Sub push worker)
// started by the fx runtime and stopped through its lifecycle hooks.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
