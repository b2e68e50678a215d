// Package material describes the multi-channel surface of the globe: a fixed
// record of optional per-channel values with a default for every unset channel.
package material

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/Carmen-Shannon/oxy-globe/engine/texture"
)

// ErrUnknownChannel is returned when a channel outside the known set is addressed.
var ErrUnknownChannel = errors.New("material: unknown channel")

// Value is the content of one material channel: a texture reference or a constant color.
type Value struct {
	// Texture is the referenced texture, nil for a constant.
	Texture texture.Texture
	// Color is the constant RGBA color used when Texture is nil.
	Color [4]float32
	// Blend is how the channel composites.
	Blend BlendMode
}

// IsTexture reports whether the value references a texture.
func (v Value) IsTexture() bool {
	return v.Texture != nil
}

// slot is a channel value plus whether it has been set.
type slot struct {
	value Value
	set   bool
}

// material is the implementation of the Material interface.
type material struct {
	mu     sync.RWMutex
	name   string
	blends [channelCount]BlendMode
	slots  [channelCount]slot
}

// Material defines a globe surface with one optional value per Channel.
// A Material references textures but does not own them; whoever set a texture
// is responsible for returning it to the texture cache.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Channel retrieves the value stored in channel c.
	//
	// Parameters:
	//   - c: the channel
	//
	// Returns:
	//   - Value: the stored value, zero if unset
	//   - bool: true if the channel is set
	Channel(c Channel) (Value, bool)

	// IsSet reports whether channel c holds a value.
	//
	// Parameters:
	//   - c: the channel
	//
	// Returns:
	//   - bool: true if set
	IsSet(c Channel) bool

	// SetTexture stores a texture reference in channel c. A nil texture resets the channel.
	//
	// Parameters:
	//   - c: the channel
	//   - tex: the texture to reference
	//
	// Returns:
	//   - texture.Texture: the texture previously referenced by c, nil if none
	//   - error: ErrUnknownChannel for an invalid channel
	SetTexture(c Channel, tex texture.Texture) (texture.Texture, error)

	// SetColor stores a constant color in channel c.
	//
	// Parameters:
	//   - c: the channel
	//   - color: RGBA color in [0, 1]
	//
	// Returns:
	//   - texture.Texture: the texture previously referenced by c, nil if none
	//   - error: ErrUnknownChannel for an invalid channel
	SetColor(c Channel, color [4]float32) (texture.Texture, error)

	// Reset returns channel c to its default.
	//
	// Parameters:
	//   - c: the channel
	//
	// Returns:
	//   - texture.Texture: the texture previously referenced by c, nil if none
	Reset(c Channel) texture.Texture

	// Blend returns the blend mode of channel c.
	//
	// Parameters:
	//   - c: the channel
	//
	// Returns:
	//   - BlendMode: the configured blend mode
	Blend(c Channel) BlendMode

	// StagingData returns the pixels channel c samples: its texture, a 1x1 texture of
	// its constant color, or the channel fallback when unset.
	//
	// Parameters:
	//   - c: the channel
	//
	// Returns:
	//   - common.TextureStagingData: the data to bind
	StagingData(c Channel) common.TextureStagingData

	// TextureRefs returns the texture referenced by each texture-backed channel.
	//
	// Returns:
	//   - map[Channel]texture.Texture: channel to texture
	TextureRefs() map[Channel]texture.Texture

	// SetCount returns the number of set channels.
	//
	// Returns:
	//   - int: count of set channels
	SetCount() int
}

var _ Material = &material{}

// NewMaterial creates a new Material with every channel unset.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{name: "globe"}
	for _, c := range Channels() {
		m.blends[c] = DefaultBlend(c)
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Channel(c Channel) (Value, bool) {
	if !c.Valid() {
		return Value{}, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.slots[c]
	return s.value, s.set
}

func (m *material) IsSet(c Channel) bool {
	_, ok := m.Channel(c)
	return ok
}

func (m *material) SetTexture(c Channel, tex texture.Texture) (texture.Texture, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("set texture on %v: %w", c, ErrUnknownChannel)
	}
	if tex == nil {
		return m.Reset(c), nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.slots[c].value.Texture
	m.slots[c] = slot{value: Value{Texture: tex, Color: [4]float32{1, 1, 1, 1}, Blend: m.blends[c]}, set: true}
	return prev, nil
}

func (m *material) SetColor(c Channel, color [4]float32) (texture.Texture, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("set color on %v: %w", c, ErrUnknownChannel)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.slots[c].value.Texture
	m.slots[c] = slot{value: Value{Color: color, Blend: m.blends[c]}, set: true}
	return prev, nil
}

func (m *material) Reset(c Channel) texture.Texture {
	if !c.Valid() {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.slots[c].value.Texture
	m.slots[c] = slot{}
	return prev
}

func (m *material) Blend(c Channel) BlendMode {
	if !c.Valid() {
		return BlendOpaque
	}
	return m.blends[c]
}

func (m *material) StagingData(c Channel) common.TextureStagingData {
	v, ok := m.Channel(c)
	switch {
	case !ok:
		return Fallback(c)
	case v.Texture != nil:
		return v.Texture.StagingData()
	}
	px := make([]byte, 4)
	for i, f := range v.Color {
		px[i] = byte(common.Clamp(f, 0, 1)*255 + 0.5)
	}
	return common.TextureStagingData{Pixels: px, Width: 1, Height: 1}
}

func (m *material) TextureRefs() map[Channel]texture.Texture {
	m.mu.RLock()
	defer m.mu.RUnlock()
	refs := make(map[Channel]texture.Texture)
	for c, s := range m.slots {
		if s.set && s.value.Texture != nil {
			refs[Channel(c)] = s.value.Texture
		}
	}
	return refs
}

func (m *material) SetCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, s := range m.slots {
		if s.set {
			n++
		}
	}
	return n
}
