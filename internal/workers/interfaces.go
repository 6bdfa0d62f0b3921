// Package workers provides the background worker plumbing of the client.
// It defines the Worker interface and a Workers aggregate that starts every
// registered worker in a unified way.
package workers

// Worker is the interface implemented by any background job of the client.
// Run starts the worker's execution; implementations either block for the
// duration of their work or spawn goroutines internally and return.
type Worker interface {
	Run()
}
