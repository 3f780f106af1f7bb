// Package workers runs the background workers of the catalog server.
//
// It defines the Worker interface, a Workers aggregate that runs several
// workers until their context is canceled, and the database health probe
// that drives the gRPC health status.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is canceled.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// StatusReporter receives the outcome of every health probe.
type StatusReporter interface {
	SetServing(serving bool)
}
