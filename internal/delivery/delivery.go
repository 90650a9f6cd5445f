// Package delivery defines the entry points started by the application.
package delivery

import "context"

// Delivery is a long-running entry point such as the HTTP server or the scheduler.
type Delivery interface {
	Serve(ctx context.Context) error
}
