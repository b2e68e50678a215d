package texture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultExtensions are the file extensions a FileProvider tries, in order.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp"}

// Provider resolves named texture identifiers to decoded textures.
// Implementations must be safe for concurrent use when paired with a Resolver.
type Provider interface {
	// Resolve returns the texture registered under name.
	//
	// Parameters:
	//   - name: the texture identifier (e.g. "earth-clouds")
	//
	// Returns:
	//   - Texture: the resolved texture
	//   - error: *AssetMissingError if the name cannot be resolved
	Resolve(name string) (Texture, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(name string) (Texture, error)

// Resolve calls f(name).
func (f ProviderFunc) Resolve(name string) (Texture, error) {
	return f(name)
}

// fileProvider resolves names to image files inside a directory.
type fileProvider struct {
	fsys       fs.FS
	extensions []string
	aliases    map[string]string
	options    []TextureBuilderOption
}

var _ Provider = &fileProvider{}

// NewFileProvider creates a Provider reading images from dir. A name resolves to
// the first existing file named name+ext for ext in the configured extensions,
// unless an alias maps the name to an explicit file.
//
// Parameters:
//   - dir: the directory holding the texture files
//   - options: functional options to configure the provider
//
// Returns:
//   - Provider: the file-backed provider
func NewFileProvider(dir string, options ...FileProviderOption) Provider {
	return NewFSProvider(os.DirFS(dir), options...)
}

// NewFSProvider is NewFileProvider over an arbitrary fs.FS (e.g. an embed.FS).
//
// Parameters:
//   - fsys: the file system holding the texture files
//   - options: functional options to configure the provider
//
// Returns:
//   - Provider: the fs-backed provider
func NewFSProvider(fsys fs.FS, options ...FileProviderOption) Provider {
	p := &fileProvider{
		fsys:       fsys,
		extensions: DefaultExtensions,
		aliases:    make(map[string]string),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *fileProvider) Resolve(name string) (Texture, error) {
	candidates := make([]string, 0, len(p.extensions)+1)
	if file, ok := p.aliases[name]; ok {
		candidates = append(candidates, file)
	} else {
		for _, ext := range p.extensions {
			candidates = append(candidates, name+ext)
		}
	}

	for _, file := range candidates {
		f, err := p.fsys.Open(filepath.ToSlash(file))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &AssetMissingError{Name: name, Err: err}
		}
		tex, err := Decode(name, f, p.options...)
		f.Close()
		if err != nil {
			return nil, &AssetMissingError{Name: name, Err: err}
		}
		return tex, nil
	}
	return nil, &AssetMissingError{Name: name, Err: fmt.Errorf("no file among %v: %w", candidates, fs.ErrNotExist)}
}

// staticProvider serves textures held in memory.
type staticProvider struct {
	mu       sync.RWMutex
	textures map[string]Texture
}

// StaticProvider is a Provider over an in-memory set of textures that can be
// changed at runtime.
type StaticProvider interface {
	Provider

	// Add registers tex under its name, replacing any previous texture.
	//
	// Parameters:
	//   - tex: the texture to register
	Add(tex Texture)

	// Remove unregisters the texture named name.
	//
	// Parameters:
	//   - name: the texture identifier
	Remove(name string)

	// Names returns the registered texture names.
	//
	// Returns:
	//   - []string: registered names in no particular order
	Names() []string
}

var _ StaticProvider = &staticProvider{}

// NewStaticProvider creates a StaticProvider seeded with textures.
//
// Parameters:
//   - textures: the initial textures, keyed by their Name
//
// Returns:
//   - StaticProvider: the in-memory provider
func NewStaticProvider(textures ...Texture) StaticProvider {
	p := &staticProvider{textures: make(map[string]Texture, len(textures))}
	for _, tex := range textures {
		p.Add(tex)
	}
	return p
}

func (p *staticProvider) Resolve(name string) (Texture, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tex, ok := p.textures[name]
	if !ok {
		return nil, &AssetMissingError{Name: name}
	}
	return tex, nil
}

func (p *staticProvider) Add(tex Texture) {
	if tex == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.textures[tex.Name()] = tex
}

func (p *staticProvider) Remove(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.textures, name)
}

func (p *staticProvider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.textures))
	for name := range p.textures {
		names = append(names, name)
	}
	return names
}
