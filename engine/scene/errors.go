package scene

import "errors"

var (
	// ErrNodeNotFound is returned when an ID does not name a node in the scene.
	ErrNodeNotFound = errors.New("scene: node not found")
	// ErrNodeAttached is returned when adding a node that already belongs to a scene.
	ErrNodeAttached = errors.New("scene: node already attached")
	// ErrCycle is returned when a reparent would make a node its own ancestor.
	ErrCycle = errors.New("scene: reparent would create a cycle")
	// ErrRootRemoval is returned when removing or reparenting the root node.
	ErrRootRemoval = errors.New("scene: root node cannot be removed or reparented")
	// ErrNotCamera is returned when activating a node that carries no camera.
	ErrNotCamera = errors.New("scene: node has no camera")
)
