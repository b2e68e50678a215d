package controller

import (
	"log"

	"github.com/Carmen-Shannon/oxy-globe/engine/light"
	"github.com/Carmen-Shannon/oxy-globe/engine/material"
)

// SceneControllerBuilderOption is a functional option for configuring a SceneController.
type SceneControllerBuilderOption func(*sceneController)

// WithLogger sets the logger used for warnings and lifecycle messages.
// A nil logger is ignored.
//
// Parameters:
//   - logger: the logger to write to
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithLogger(logger *log.Logger) SceneControllerBuilderOption {
	return func(c *sceneController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRadius sets the globe radius. Validated by Initialize.
//
// Parameters:
//   - radius: radius in world units
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithRadius(radius float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.radius = radius
	}
}

// WithSegments sets the number of longitudinal slices. Validated by Initialize.
//
// Parameters:
//   - segments: slice count
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithSegments(segments int) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.segments = segments
	}
}

// WithRings sets the number of latitudinal bands. Zero keeps the segments/2 default.
//
// Parameters:
//   - rings: band count
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithRings(rings int) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.rings = rings
	}
}

// WithTextures replaces the channel to texture identifier mapping. Channels left
// out of the map are not requested and stay at their default.
//
// Parameters:
//   - textures: texture identifier per channel
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithTextures(textures map[material.Channel]string) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.textures = make(map[material.Channel]string, len(textures))
		for ch, name := range textures {
			if ch.Valid() {
				c.textures[ch] = name
			}
		}
	}
}

// WithTexture sets the texture identifier of a single channel. An empty name
// leaves the channel unrequested.
//
// Parameters:
//   - ch: the material channel
//   - name: the texture identifier
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithTexture(ch material.Channel, name string) SceneControllerBuilderOption {
	return func(c *sceneController) {
		if !ch.Valid() {
			return
		}
		if name == "" {
			delete(c.textures, ch)
			return
		}
		c.textures[ch] = name
	}
}

// WithAsyncTextures resolves textures on a worker pool. The globe renders with
// default channels until OnFrameTick applies the arrived textures.
// Values <= 0 keep synchronous resolution.
//
// Parameters:
//   - workers: number of resolver workers
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithAsyncTextures(workers int) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.workers = workers
	}
}

// WithRotationAxis sets the axis DidLoad spins the globe around.
//
// Parameters:
//   - x, y, z: axis components, need not be normalized
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithRotationAxis(x, y, z float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.axis = [3]float32{x, y, z}
	}
}

// WithRotationPeriod sets the seconds per revolution DidLoad uses.
//
// Parameters:
//   - period: seconds per revolution
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithRotationPeriod(period float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.period = period
	}
}

// WithCameraDistance sets the camera distance from the globe center.
// Values <= 0 select four times the radius.
//
// Parameters:
//   - distance: distance in world units
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithCameraDistance(distance float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.cameraDistance = distance
	}
}

// WithCameraFov sets the vertical field of view in radians. Non-positive values are ignored.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithCameraFov(fov float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		if fov > 0 {
			c.cameraFov = fov
		}
	}
}

// WithAmbientIntensity sets the intensity of the ambient fill light.
//
// Parameters:
//   - intensity: the ambient intensity
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithAmbientIntensity(intensity float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.ambientIntensity = intensity
	}
}

// WithSunIntensity sets the intensity of the sun light.
//
// Parameters:
//   - intensity: the sun intensity
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithSunIntensity(intensity float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.sunIntensity = intensity
	}
}

// WithSunType selects a directional or omni sun. Ambient is ignored.
//
// Parameters:
//   - lightType: light.LightTypeDirectional or light.LightTypeOmni
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithSunType(lightType light.LightType) SceneControllerBuilderOption {
	return func(c *sceneController) {
		if lightType == light.LightTypeDirectional || lightType == light.LightTypeOmni {
			c.sunType = lightType
		}
	}
}

// WithSunDirection sets the direction sunlight travels.
//
// Parameters:
//   - x, y, z: direction components, need not be normalized
//
// Returns:
//   - SceneControllerBuilderOption: option function to apply
func WithSunDirection(x, y, z float32) SceneControllerBuilderOption {
	return func(c *sceneController) {
		c.sunDirection = [3]float32{x, y, z}
	}
}
