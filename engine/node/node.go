// Package node defines the scene-graph node: a transform plus optional geometry,
// light, camera and keyed animations. Tree links live in the scene package.
package node

import (
	"slices"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-globe/engine/animation"
	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/geometry"
	"github.com/Carmen-Shannon/oxy-globe/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// ID identifies a node within one scene.
type ID uint64

// Nil is the ID of a node that has not been added to a scene.
const Nil ID = 0

type node struct {
	id      ID
	name    string
	enabled atomic.Bool

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	geom       geometry.Geometry
	light      light.Light
	cam        camera.Camera
	animations map[string]animation.Animation
}

// Node defines the interface for a scene entity. A node owns its geometry,
// light, camera and animations: removing the node from its scene drops them all.
type Node interface {
	// ID returns the node's identifier within its scene.
	//
	// Returns:
	//   - ID: the node ID, Nil if not attached
	ID() ID

	// SetID assigns the node's identifier. Called by the scene on insertion.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id ID)

	// Name returns the node's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this node and its subtree take part in the frame.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the node takes part in the frame.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Position returns the local translation.
	//
	// Returns:
	//   - mgl32.Vec3: translation relative to the parent
	Position() mgl32.Vec3

	// SetPosition sets the local translation.
	//
	// Parameters:
	//   - x, y, z: translation components
	SetPosition(x, y, z float32)

	// Rotation returns the local orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion
	Rotation() mgl32.Quat

	// SetRotation sets the local orientation.
	//
	// Parameters:
	//   - q: orientation, normalized on store
	SetRotation(q mgl32.Quat)

	// Scale returns the local scale.
	//
	// Returns:
	//   - mgl32.Vec3: per-axis scale
	Scale() mgl32.Vec3

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - sx, sy, sz: scale components
	SetScale(sx, sy, sz float32)

	// LocalMatrix composes translation, rotation and scale into a column-major matrix.
	//
	// Returns:
	//   - mgl32.Mat4: T * R * S
	LocalMatrix() mgl32.Mat4

	// Geometry returns the attached geometry, or nil.
	//
	// Returns:
	//   - geometry.Geometry: the geometry or nil
	Geometry() geometry.Geometry

	// SetGeometry attaches geometry to the node.
	//
	// Parameters:
	//   - g: the geometry, nil to detach
	SetGeometry(g geometry.Geometry)

	// Light returns the attached light, or nil.
	//
	// Returns:
	//   - light.Light: the light or nil
	Light() light.Light

	// SetLight attaches a light to the node.
	//
	// Parameters:
	//   - l: the light, nil to detach
	SetLight(l light.Light)

	// Camera returns the attached camera, or nil.
	//
	// Returns:
	//   - camera.Camera: the camera or nil
	Camera() camera.Camera

	// SetCamera attaches a camera to the node.
	//
	// Parameters:
	//   - c: the camera, nil to detach
	SetCamera(c camera.Camera)

	// Animation returns the animation installed under key, or nil.
	//
	// Parameters:
	//   - key: the animation slot key
	//
	// Returns:
	//   - animation.Animation: the animation or nil
	Animation(key string) animation.Animation

	// Animations returns the installed animations ordered by key.
	//
	// Returns:
	//   - []animation.Animation: the animations
	Animations() []animation.Animation

	// AddAnimation installs a, replacing any animation with the same key.
	//
	// Parameters:
	//   - a: the animation
	//
	// Returns:
	//   - animation.Animation: the replaced animation, nil if the slot was empty
	AddAnimation(a animation.Animation) animation.Animation

	// RemoveAnimation removes the animation installed under key.
	//
	// Parameters:
	//   - key: the animation slot key
	//
	// Returns:
	//   - bool: true if an animation was removed
	RemoveAnimation(key string) bool

	// ClearAnimations removes every animation.
	//
	// Returns:
	//   - int: the number removed
	ClearAnimations() int

	// Update advances every animation by dt seconds and applies it to the transform.
	// Finished animations stay installed and hold their final pose.
	//
	// Parameters:
	//   - dt: elapsed seconds
	Update(dt float64)
}

var _ Node = &node{}
var _ animation.Rotatable = &node{}

// NewNode creates a detached node with an identity transform.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(options ...NodeBuilderOption) Node {
	n := &node{
		rotation:   mgl32.QuatIdent(),
		scale:      mgl32.Vec3{1, 1, 1},
		animations: make(map[string]animation.Animation),
	}
	n.enabled.Store(true)
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *node) ID() ID {
	return n.id
}

func (n *node) SetID(id ID) {
	n.id = id
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Enabled() bool {
	return n.enabled.Load()
}

func (n *node) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

func (n *node) Position() mgl32.Vec3 {
	return n.position
}

func (n *node) SetPosition(x, y, z float32) {
	n.position = mgl32.Vec3{x, y, z}
}

func (n *node) Rotation() mgl32.Quat {
	return n.rotation
}

func (n *node) SetRotation(q mgl32.Quat) {
	if q.Len() == 0 {
		q = mgl32.QuatIdent()
	}
	n.rotation = q.Normalize()
}

func (n *node) Scale() mgl32.Vec3 {
	return n.scale
}

func (n *node) SetScale(sx, sy, sz float32) {
	n.scale = mgl32.Vec3{sx, sy, sz}
}

func (n *node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.position[0], n.position[1], n.position[2])
	s := mgl32.Scale3D(n.scale[0], n.scale[1], n.scale[2])
	return t.Mul4(n.rotation.Mat4()).Mul4(s)
}

func (n *node) Geometry() geometry.Geometry {
	return n.geom
}

func (n *node) SetGeometry(g geometry.Geometry) {
	n.geom = g
}

func (n *node) Light() light.Light {
	return n.light
}

func (n *node) SetLight(l light.Light) {
	n.light = l
}

func (n *node) Camera() camera.Camera {
	return n.cam
}

func (n *node) SetCamera(c camera.Camera) {
	n.cam = c
}

func (n *node) Animation(key string) animation.Animation {
	return n.animations[key]
}

func (n *node) Animations() []animation.Animation {
	keys := make([]string, 0, len(n.animations))
	for k := range n.animations {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]animation.Animation, 0, len(keys))
	for _, k := range keys {
		out = append(out, n.animations[k])
	}
	return out
}

func (n *node) AddAnimation(a animation.Animation) animation.Animation {
	if a == nil {
		return nil
	}
	prev := n.animations[a.Key()]
	n.animations[a.Key()] = a
	a.Apply(n)
	return prev
}

func (n *node) RemoveAnimation(key string) bool {
	if _, ok := n.animations[key]; !ok {
		return false
	}
	delete(n.animations, key)
	return true
}

func (n *node) ClearAnimations() int {
	count := len(n.animations)
	clear(n.animations)
	return count
}

func (n *node) Update(dt float64) {
	for _, a := range n.Animations() {
		a.Advance(dt)
		a.Apply(n)
	}
}
