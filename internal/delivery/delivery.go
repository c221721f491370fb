// Package delivery defines the contract every transport (HTTP, worker, ...) fulfills.
package delivery

import "context"

// Delivery is a long-running transport serving requests until the context ends
// or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
