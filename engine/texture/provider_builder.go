package texture

// FileProviderOption is a functional option for configuring a file-backed Provider.
type FileProviderOption func(*fileProvider)

// WithExtensions replaces the list of file extensions tried for each name.
//
// Parameters:
//   - extensions: extensions including the leading dot, tried in order
//
// Returns:
//   - FileProviderOption: option function to apply
func WithExtensions(extensions ...string) FileProviderOption {
	return func(p *fileProvider) {
		if len(extensions) > 0 {
			p.extensions = extensions
		}
	}
}

// WithAlias maps a texture name to an explicit file path relative to the provider root.
//
// Parameters:
//   - name: the texture identifier
//   - file: the file to read for that identifier
//
// Returns:
//   - FileProviderOption: option function to apply
func WithAlias(name, file string) FileProviderOption {
	return func(p *fileProvider) {
		p.aliases[name] = file
	}
}

// WithTextureOptions sets options applied to every texture the provider decodes,
// such as WithSampler.
//
// Parameters:
//   - options: texture options applied after decoding
//
// Returns:
//   - FileProviderOption: option function to apply
func WithTextureOptions(options ...TextureBuilderOption) FileProviderOption {
	return func(p *fileProvider) {
		p.options = append(p.options, options...)
	}
}
