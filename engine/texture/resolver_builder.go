package texture

import "time"

// ResolverBuilderOption is a functional option for configuring a Resolver.
type ResolverBuilderOption func(*resolver)

// WithWorkers sets the maximum number of concurrent resolutions.
//
// Parameters:
//   - workers: worker count, values below 1 are ignored
//
// Returns:
//   - ResolverBuilderOption: option function to apply
func WithWorkers(workers int) ResolverBuilderOption {
	return func(r *resolver) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithQueueSize sets the capacity of the pending task queue.
//
// Parameters:
//   - size: queue capacity, values below 1 are ignored
//
// Returns:
//   - ResolverBuilderOption: option function to apply
func WithQueueSize(size int) ResolverBuilderOption {
	return func(r *resolver) {
		if size > 0 {
			r.queueSize = size
		}
	}
}

// WithIdleTimeout sets how long an idle worker lingers before exiting.
//
// Parameters:
//   - timeout: idle timeout, non-positive values are ignored
//
// Returns:
//   - ResolverBuilderOption: option function to apply
func WithIdleTimeout(timeout time.Duration) ResolverBuilderOption {
	return func(r *resolver) {
		if timeout > 0 {
			r.idleTimeout = timeout
		}
	}
}
