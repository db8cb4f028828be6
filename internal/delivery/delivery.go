// Package delivery holds the inbound adapters (HTTP servers and schedulers)
// that drive the use cases.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx app.
type Delivery interface {
	// Serve blocks until the adapter stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
