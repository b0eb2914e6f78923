// Package delivery holds the inbound adapters: the shopper API and the notifier worker.
package delivery

import "context"

// Delivery is a long-running server started by a cmd binary.
type Delivery interface {
	Serve(ctx context.Context) error
}
