package material

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-globe/common"
)

// Channel identifies one surface channel of a globe material.
type Channel int

const (
	// ChannelDiffuse is the daytime surface color.
	ChannelDiffuse Channel = iota
	// ChannelSpecular masks where oceans reflect the sun.
	ChannelSpecular
	// ChannelNormal perturbs surface normals for terrain relief.
	ChannelNormal
	// ChannelEmission holds night-side city lights, blended additively.
	ChannelEmission
	// ChannelTransparency holds the cloud layer, drawn as an alpha blended pass.
	ChannelTransparency

	channelCount
)

// Channels returns every channel in slot order.
//
// Returns:
//   - []Channel: the five material channels
func Channels() []Channel {
	return []Channel{ChannelDiffuse, ChannelSpecular, ChannelNormal, ChannelEmission, ChannelTransparency}
}

// Valid reports whether c names a known channel.
func (c Channel) Valid() bool {
	return c >= 0 && c < channelCount
}

func (c Channel) String() string {
	switch c {
	case ChannelDiffuse:
		return "diffuse"
	case ChannelSpecular:
		return "specular"
	case ChannelNormal:
		return "normal"
	case ChannelEmission:
		return "emission"
	case ChannelTransparency:
		return "transparency"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel returns the channel whose String form is s.
//
// Parameters:
//   - s: the channel name, e.g. "emission"
//
// Returns:
//   - Channel: the parsed channel
//   - error: wraps ErrUnknownChannel if s names no channel
func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("parse channel %q: %w", s, ErrUnknownChannel)
}

// BlendMode describes how a channel's contribution is composited.
type BlendMode int

const (
	// BlendOpaque replaces the destination.
	BlendOpaque BlendMode = iota
	// BlendAdditive adds to the destination (night lights).
	BlendAdditive
	// BlendAlpha composites over the destination by source alpha (clouds).
	BlendAlpha
)

func (b BlendMode) String() string {
	switch b {
	case BlendOpaque:
		return "opaque"
	case BlendAdditive:
		return "additive"
	case BlendAlpha:
		return "alpha"
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}

// DefaultBlend returns the blend mode a channel uses unless overridden.
//
// Parameters:
//   - c: the channel
//
// Returns:
//   - BlendMode: additive for emission, alpha for transparency, opaque otherwise
func DefaultBlend(c Channel) BlendMode {
	switch c {
	case ChannelEmission:
		return BlendAdditive
	case ChannelTransparency:
		return BlendAlpha
	}
	return BlendOpaque
}

// fallbackColors are the constants an unset channel samples. Each one contributes
// nothing: white diffuse leaves lighting untouched, black specular and emission add
// nothing, flat normal leaves the geometric normal, clear transparency hides clouds.
var fallbackColors = [channelCount][4]byte{
	ChannelDiffuse:      {255, 255, 255, 255},
	ChannelSpecular:     {0, 0, 0, 255},
	ChannelNormal:       {128, 128, 255, 255},
	ChannelEmission:     {0, 0, 0, 255},
	ChannelTransparency: {0, 0, 0, 0},
}

// Fallback returns the 1x1 placeholder texture an unset channel binds.
//
// Parameters:
//   - c: the channel
//
// Returns:
//   - common.TextureStagingData: a single pixel staging texture
func Fallback(c Channel) common.TextureStagingData {
	px := [4]byte{}
	if c.Valid() {
		px = fallbackColors[c]
	}
	return common.TextureStagingData{Pixels: px[:], Width: 1, Height: 1}
}
