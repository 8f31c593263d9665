// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by main and
// stopped through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
