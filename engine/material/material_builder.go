package material

import "github.com/Carmen-Shannon/oxy-globe/engine/texture"

// MaterialBuilderOption is a functional option for configuring a material during construction.
type MaterialBuilderOption func(*material)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBlend overrides the blend mode of a channel. Must precede WithTexture/WithColor
// for those values to pick it up.
//
// Parameters:
//   - c: the channel
//   - mode: the blend mode
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithBlend(c Channel, mode BlendMode) MaterialBuilderOption {
	return func(m *material) {
		if c.Valid() {
			m.blends[c] = mode
		}
	}
}

// WithTexture sets a channel to a texture reference.
//
// Parameters:
//   - c: the channel
//   - tex: the texture
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithTexture(c Channel, tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.SetTexture(c, tex)
	}
}

// WithColor sets a channel to a constant color.
//
// Parameters:
//   - c: the channel
//   - color: RGBA color in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithColor(c Channel, color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetColor(c, color)
	}
}
