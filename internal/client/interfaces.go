package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx is cancelled
	// or the application fails.
	Run(ctx context.Context) error
}
