package texture

import (
	"sync"
)

// Cache is a reference-counted texture store in front of a Provider.
// The first Acquire of a name resolves it; later Acquires share the result.
// The entry is dropped when the last reference is released. Safe for concurrent use.
type Cache interface {
	// Acquire returns the texture for name and takes one reference on it.
	// Concurrent Acquires of a name that is still resolving wait for that resolution.
	//
	// Parameters:
	//   - name: the texture identifier
	//
	// Returns:
	//   - Texture: the shared texture
	//   - error: *AssetMissingError if the provider cannot resolve name
	Acquire(name string) (Texture, error)

	// Release drops one reference on name. The texture is evicted when no references remain.
	//
	// Parameters:
	//   - name: the texture identifier
	//
	// Returns:
	//   - bool: false if name held no references
	Release(name string) bool

	// RefCount returns the number of outstanding references on name.
	//
	// Parameters:
	//   - name: the texture identifier
	//
	// Returns:
	//   - int: reference count, 0 if not cached
	RefCount(name string) int

	// Len returns the number of cached textures.
	//
	// Returns:
	//   - int: cached entry count
	Len() int

	// Provider returns the provider the cache resolves through.
	//
	// Returns:
	//   - Provider: the backing provider
	Provider() Provider
}

type cacheEntry struct {
	tex   Texture
	err   error
	refs  int
	ready chan struct{}
}

// cache is the implementation of the Cache interface.
type cache struct {
	mu       sync.Mutex
	provider Provider
	entries  map[string]*cacheEntry
}

var _ Cache = &cache{}

// NewCache creates a Cache resolving through provider. Panics if provider is nil.
//
// Parameters:
//   - provider: the asset provider
//
// Returns:
//   - Cache: the new cache
func NewCache(provider Provider) Cache {
	if provider == nil {
		panic("texture: NewCache requires a non-nil Provider")
	}
	return &cache{
		provider: provider,
		entries:  make(map[string]*cacheEntry),
	}
}

func (c *cache) Acquire(name string) (Texture, error) {
	c.mu.Lock()
	if e, ok := c.entries[name]; ok {
		e.refs++
		c.mu.Unlock()
		<-e.ready
		if e.err != nil {
			return nil, e.err
		}
		return e.tex, nil
	}
	e := &cacheEntry{refs: 1, ready: make(chan struct{})}
	c.entries[name] = e
	c.mu.Unlock()

	tex, err := c.provider.Resolve(name)
	if err == nil && tex == nil {
		err = &AssetMissingError{Name: name}
	}

	c.mu.Lock()
	if err != nil {
		e.err = missing(name, err)
		if c.entries[name] == e {
			delete(c.entries, name)
		}
	} else {
		e.tex = tex
	}
	c.mu.Unlock()
	close(e.ready)

	if e.err != nil {
		return nil, e.err
	}
	return tex, nil
}

func (c *cache) Release(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	if !ok || e.refs == 0 {
		return false
	}
	e.refs--
	if e.refs == 0 {
		delete(c.entries, name)
	}
	return true
}

func (c *cache) RefCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok {
		return e.refs
	}
	return 0
}

func (c *cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *cache) Provider() Provider {
	return c.provider
}
