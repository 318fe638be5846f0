// Package delivery holds the transports that expose the service.
package delivery

import "context"

// Delivery is a transport served until the application shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
