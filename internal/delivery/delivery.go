// Package delivery holds the servers that expose marketsync to the outside.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
