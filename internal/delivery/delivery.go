// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today) started by the
// application and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
