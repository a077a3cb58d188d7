// Package delivery defines the contract served entry points implement.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker) driven by the fx runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
