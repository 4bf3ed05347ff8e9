package port

import "context"

// CapabilityLoader makes the external payment capability available at most
// once per process.
type CapabilityLoader interface {
	// EnsureLoaded arranges for the capability resource to be fetched and
	// invokes onDone exactly once per call: with nil once the capability is
	// ready, or with the load error. When the capability is already
	// present, onDone runs synchronously and nothing is fetched. A failed
	// load is never retried; later calls observe the same error.
	EnsureLoaded(ctx context.Context, onDone func(error))

	// Loaded reports whether the capability is present
	Loaded() bool
}
