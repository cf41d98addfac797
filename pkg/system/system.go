// Package system exposes host level defaults shared by the services.
package system

import "runtime"

// DefaultConcurrency returns the worker count used when a caller leaves
// concurrency unset. One worker per CPU core.
func DefaultConcurrency() int {
	return runtime.NumCPU()
}

// MaxConcurrency returns the upper bound accepted for configured worker
// counts. Batch chunks are CPU bound, so running far past the core count
// only adds scheduling overhead.
func MaxConcurrency() int {
	return 4 * runtime.NumCPU()
}
