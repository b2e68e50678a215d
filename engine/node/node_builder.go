package node

import (
	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/geometry"
	"github.com/Carmen-Shannon/oxy-globe/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeBuilderOption is a functional option for configuring a Node during construction.
type NodeBuilderOption func(*node)

// WithName sets the node's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - NodeBuilderOption: functional option to set the name
func WithName(name string) NodeBuilderOption {
	return func(n *node) {
		n.name = name
	}
}

// WithEnabled sets whether the node takes part in the frame.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - NodeBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) NodeBuilderOption {
	return func(n *node) {
		n.enabled.Store(enabled)
	}
}

// WithPosition sets the initial local translation.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - NodeBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial local orientation.
//
// Parameters:
//   - q: the orientation
//
// Returns:
//   - NodeBuilderOption: functional option to set the rotation
func WithRotation(q mgl32.Quat) NodeBuilderOption {
	return func(n *node) {
		n.SetRotation(q)
	}
}

// WithScale sets the initial local scale.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - NodeBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) NodeBuilderOption {
	return func(n *node) {
		n.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithGeometry attaches geometry to the node.
//
// Parameters:
//   - g: the geometry
//
// Returns:
//   - NodeBuilderOption: functional option to set the geometry
func WithGeometry(g geometry.Geometry) NodeBuilderOption {
	return func(n *node) {
		n.geom = g
	}
}

// WithLight attaches a light to the node.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - NodeBuilderOption: functional option to set the light
func WithLight(l light.Light) NodeBuilderOption {
	return func(n *node) {
		n.light = l
	}
}

// WithCamera attaches a camera to the node.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - NodeBuilderOption: functional option to set the camera
func WithCamera(c camera.Camera) NodeBuilderOption {
	return func(n *node) {
		n.cam = c
	}
}
