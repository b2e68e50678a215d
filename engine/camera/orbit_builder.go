package camera

// OrbitOption is a functional option for configuring an Orbit.
type OrbitOption func(*orbit)

// WithDistance sets how far from the focus the eye starts.
//
// Parameters:
//   - d: starting distance, clamped to the distance bounds
//
// Returns:
//   - OrbitOption: option function to apply
func WithDistance(d float32) OrbitOption {
	return func(o *orbit) {
		o.distance = d
	}
}

// WithLongitude sets the starting eye longitude in radians.
//
// Parameters:
//   - lon: longitude, 0 on the +Z side
//
// Returns:
//   - OrbitOption: option function to apply
func WithLongitude(lon float32) OrbitOption {
	return func(o *orbit) {
		o.longitude = lon
	}
}

// WithLatitude sets the starting eye latitude in radians.
//
// Parameters:
//   - lat: latitude, positive toward +Y
//
// Returns:
//   - OrbitOption: option function to apply
func WithLatitude(lat float32) OrbitOption {
	return func(o *orbit) {
		o.latitude = lat
	}
}

// WithFocus sets the point the eye orbits, the globe centre by default.
func WithFocus(x, y, z float32) OrbitOption {
	return func(o *orbit) {
		o.focus = [3]float32{x, y, z}
	}
}

// WithDistanceBounds limits how close and how far the eye may zoom.
// An inverted pair is ignored.
//
// Parameters:
//   - near: minimum distance from the focus
//   - far: maximum distance from the focus
//
// Returns:
//   - OrbitOption: option function to apply
func WithDistanceBounds(near, far float32) OrbitOption {
	return func(o *orbit) {
		if near <= far {
			o.minDistance = near
			o.maxDistance = far
		}
	}
}

// WithLatitudeLimit caps the latitude at ±limit so the eye never crosses a pole.
// Negative limits are ignored.
func WithLatitudeLimit(limit float32) OrbitOption {
	return func(o *orbit) {
		if limit >= 0 {
			o.latLimit = limit
		}
	}
}

// WithKeyStep sets the angle in radians moved per Step unit.
func WithKeyStep(step float32) OrbitOption {
	return func(o *orbit) {
		o.keyStep = step
	}
}

// WithDragSensitivity sets the angle in radians turned per dragged pixel.
func WithDragSensitivity(sensitivity float32) OrbitOption {
	return func(o *orbit) {
		o.dragSensitivity = sensitivity
	}
}

// WithZoomStep sets the distance in world units covered per Zoom step.
func WithZoomStep(step float32) OrbitOption {
	return func(o *orbit) {
		o.zoomStep = step
	}
}
