// Package light holds the light sources attached to globe scene nodes.
package light

import "fmt"

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every fragment uniformly regardless of orientation.
	// Keeps the night side of the globe faintly visible.
	LightTypeAmbient LightType = iota

	// LightTypeOmni emits in all directions from its node's position and
	// attenuates with distance up to a configurable range.
	LightTypeOmni

	// LightTypeDirectional has no position, only direction. Used for the sun,
	// whose distance makes its rays parallel across the globe.
	LightTypeDirectional
)

func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeOmni:
		return "omni"
	case LightTypeDirectional:
		return "directional"
	}
	return fmt.Sprintf("LightType(%d)", int(t))
}

// ParseLightType maps "ambient", "omni" or "directional" to a LightType.
//
// Parameters:
//   - s: the light type name
//
// Returns:
//   - LightType: the parsed type
//   - error: error if s is not a known type
func ParseLightType(s string) (LightType, error) {
	for _, t := range []LightType{LightTypeAmbient, LightTypeOmni, LightTypeDirectional} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown light type %q", s)
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	name       string
	lightType  LightType
	direction  [3]float32
	color      [3]float32
	intensity  float32
	lightRange float32
	enabled    bool
}

// Light defines the interface for a light source attached to a scene node.
//
// Position comes from the owning node; a Light only carries what the node
// transform cannot express. Type-specific properties return their stored value
// even when not applicable (e.g. Range for an ambient light).
type Light interface {
	// Name retrieves the light identifier.
	//
	// Returns:
	//   - string: the light name
	Name() string

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (ambient, omni, or directional)
	Type() LightType

	// Direction returns the normalized direction the light travels.
	// Only meaningful for directional lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Range returns the maximum attenuation distance for omni lights.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// Enabled returns whether this light contributes to shading.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// Contribution returns the peak channel energy the light adds: intensity times
	// its brightest color component, zero when disabled.
	//
	// Returns:
	//   - float32: the peak contribution
	Contribution() float32

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with white color, intensity 1
// and any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (ambient, omni, or directional)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		name:       lightType.String(),
		lightType:  lightType,
		direction:  [3]float32{0, -1, 0},
		color:      [3]float32{1, 1, 1},
		intensity:  1.0,
		lightRange: 100.0,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Saturates reports whether the summed peak contribution of lights exceeds 1.0,
// which would clip a fully lit, fully white surface.
//
// Parameters:
//   - lights: the lights illuminating one surface
//
// Returns:
//   - bool: true if the total exceeds 1.0
//   - float32: the total contribution
func Saturates(lights ...Light) (bool, float32) {
	var total float32
	for _, l := range lights {
		if l != nil {
			total += l.Contribution()
		}
	}
	return total > 1.0, total
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) Contribution() float32 {
	if !l.enabled {
		return 0
	}
	return l.intensity * max(l.color[0], l.color[1], l.color[2])
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
