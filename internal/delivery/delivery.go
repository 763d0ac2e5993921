// Package delivery defines the entry points that expose use cases to the outside world.
package delivery

import "context"

// Delivery is a long-running transport started by the application.
// Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
