// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a transport entry point (HTTP server, worker, etc.) that serves
// until its context is cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
