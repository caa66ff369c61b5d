// Package delivery defines the contract every transport implementation
// satisfies, keeping main decoupled from the concrete server.
package delivery

import "context"

// Delivery is a long-running transport (e.g. an HTTP server). Serve blocks
// until the transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
