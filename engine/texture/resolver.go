package texture

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Future is the pending result of an asynchronous texture resolution.
// A completed Future holds one Cache reference on its texture, which the consumer
// takes over by calling Result or Poll, or gives back by calling Discard.
type Future interface {
	// Name returns the texture identifier being resolved.
	//
	// Returns:
	//   - string: the texture name
	Name() string

	// Done returns a channel closed when the resolution completes.
	//
	// Returns:
	//   - <-chan struct{}: completion channel
	Done() <-chan struct{}

	// Result blocks until completion and returns the texture or error.
	//
	// Returns:
	//   - Texture: the resolved texture
	//   - error: *AssetMissingError on failure, ErrDiscarded after Discard
	Result() (Texture, error)

	// Poll returns the result without blocking.
	//
	// Returns:
	//   - Texture: the resolved texture, nil if not ready or failed
	//   - error: the failure, if any
	//   - bool: true once the resolution has completed
	Poll() (Texture, error, bool)

	// Discard abandons the result. If the texture has resolved (now or later) its
	// Cache reference is released exactly once. Safe to call repeatedly.
	Discard()
}

// Resolver resolves textures through a Cache on a background worker pool.
type Resolver interface {
	// Resolve starts resolving name and returns immediately.
	//
	// Parameters:
	//   - name: the texture identifier
	//
	// Returns:
	//   - Future: handle on the pending result
	Resolve(name string) Future

	// Pending returns the number of resolutions that have not completed yet.
	//
	// Returns:
	//   - int: in-flight resolution count
	Pending() int

	// Cache returns the cache resolutions acquire from.
	//
	// Returns:
	//   - Cache: the backing cache
	Cache() Cache
}

// resolver is the implementation of the Resolver interface.
type resolver struct {
	cache       Cache
	workers     int
	queueSize   int
	idleTimeout time.Duration

	pool    worker.DynamicWorkerPool
	pending atomic.Int64
	nextID  atomic.Int64
}

var _ Resolver = &resolver{}

// NewResolver creates a Resolver backed by a dynamic worker pool. Panics if cache is nil.
//
// Parameters:
//   - cache: the texture cache to acquire from
//   - options: functional options to configure the pool
//
// Returns:
//   - Resolver: the new resolver
func NewResolver(cache Cache, options ...ResolverBuilderOption) Resolver {
	if cache == nil {
		panic("texture: NewResolver requires a non-nil Cache")
	}
	r := &resolver{
		cache:       cache,
		workers:     2,
		queueSize:   64,
		idleTimeout: time.Second,
	}
	for _, option := range options {
		option(r)
	}
	r.pool = worker.NewDynamicWorkerPool(r.workers, r.queueSize, r.idleTimeout)
	return r
}

func (r *resolver) Resolve(name string) Future {
	f := &future{name: name, cache: r.cache, done: make(chan struct{})}
	r.pending.Add(1)
	id := int(r.nextID.Add(1))
	r.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer r.pending.Add(-1)
			tex, err := r.cache.Acquire(name)
			f.complete(tex, err)
			return tex, err
		},
	})
	return f
}

func (r *resolver) Pending() int {
	return int(r.pending.Load())
}

func (r *resolver) Cache() Cache {
	return r.cache
}

// future is the implementation of the Future interface.
type future struct {
	name  string
	cache Cache
	done  chan struct{}

	mu        sync.Mutex
	tex       Texture
	err       error
	completed bool
	discarded bool
	released  bool
}

var _ Future = &future{}

// NewResolvedFuture returns an already completed Future. A non-nil tex must
// carry a reference acquired from cache.
//
// Parameters:
//   - name: the texture identifier
//   - cache: the cache tex was acquired from
//   - tex: the resolved texture, nil on failure
//   - err: the resolution error
//
// Returns:
//   - Future: the completed future
func NewResolvedFuture(name string, cache Cache, tex Texture, err error) Future {
	f := &future{name: name, cache: cache, done: make(chan struct{})}
	f.complete(tex, err)
	return f
}

func (f *future) complete(tex Texture, err error) {
	f.mu.Lock()
	f.tex, f.err, f.completed = tex, err, true
	if f.discarded {
		f.releaseLocked()
	}
	f.mu.Unlock()
	close(f.done)
}

// releaseLocked gives the texture reference back to the cache once. f.mu must be held.
func (f *future) releaseLocked() {
	if f.released || f.err != nil || f.tex == nil || f.cache == nil {
		return
	}
	f.released = true
	f.cache.Release(f.name)
}

func (f *future) Name() string {
	return f.name
}

func (f *future) Done() <-chan struct{} {
	return f.done
}

func (f *future) Result() (Texture, error) {
	<-f.done
	return f.result()
}

func (f *future) Poll() (Texture, error, bool) {
	select {
	case <-f.done:
		tex, err := f.result()
		return tex, err, true
	default:
		return nil, nil, false
	}
}

func (f *future) result() (Texture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.discarded {
		return nil, ErrDiscarded
	}
	return f.tex, f.err
}

func (f *future) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.discarded {
		return
	}
	f.discarded = true
	if f.completed {
		f.releaseLocked()
	}
}
