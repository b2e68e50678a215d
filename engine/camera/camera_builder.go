package camera

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*camera)

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFov(fov float32) CameraBuilderOption {
	return func(c *camera) {
		c.fov = fov
	}
}

// WithAspect sets the starting aspect ratio. Non-positive values keep the square default.
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *camera) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithClip sets the near and far clip distances. Scale them with the globe
// radius so the whole sphere stays between them.
//
// Parameters:
//   - near: near clip distance
//   - far: far clip distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithClip(near, far float32) CameraBuilderOption {
	return func(c *camera) {
		c.near = near
		c.far = far
	}
}

// WithOrbit attaches the orbit the camera looks from.
func WithOrbit(o Orbit) CameraBuilderOption {
	return func(c *camera) {
		c.orbit = o
	}
}
