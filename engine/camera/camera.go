// Package camera provides the perspective camera viewing the globe and the
// orbit that places it around the globe centre.
package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera projects the scene through a perspective lens from the eye of an
// attached Orbit. Its matrices are column-major with a [0, 1] depth range and
// are only refreshed by Update or a lens setter.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the lens aspect ratio, width over height.
	Aspect() float32

	// Near returns the near clip distance.
	Near() float32

	// Far returns the far clip distance.
	Far() float32

	// View returns the world to eye transform.
	View() mgl32.Mat4

	// Projection returns the eye to clip transform.
	Projection() mgl32.Mat4

	// ViewProjection returns Projection * View.
	ViewProjection() mgl32.Mat4

	// Frustum returns the six view planes, used to check the globe fits the view.
	//
	// Returns:
	//   - common.Frustum: normalized planes extracted from ViewProjection
	Frustum() common.Frustum

	// Orbit returns the attached orbit, or nil.
	Orbit() Orbit

	// Update re-reads the orbit eye and focus into the view matrix.
	// Call it after moving the orbit. Without an orbit it does nothing.
	Update()

	// SetFov changes the vertical field of view.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect changes the aspect ratio after a resize. Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: width over height
	SetAspect(aspect float32)

	// SetClip changes the clip distances.
	//
	// Parameters:
	//   - near: near clip distance
	//   - far: far clip distance
	SetClip(near, far float32)

	// SetOrbit attaches the orbit the camera looks from, replacing any previous one.
	SetOrbit(o Orbit)
}

var _ Camera = &camera{}

// north is the camera up vector; the orbit never reaches a pole, so it never
// lines up with the view direction.
var north = [3]float32{0, 1, 0}

type camera struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	view           mgl32.Mat4
	projection     mgl32.Mat4
	viewProjection mgl32.Mat4

	orbit Orbit
}

// NewCamera creates a 45 degree camera with a square aspect. Without an orbit
// from WithOrbit or SetOrbit the view stays at identity.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &camera{
		mu:             &sync.Mutex{},
		fov:            45.0 * (math.Pi / 180.0),
		aspect:         1.0,
		near:           0.1,
		far:            100.0,
		view:           mgl32.Ident4(),
		projection:     mgl32.Ident4(),
		viewProjection: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.refresh()
	return c
}

func (c *camera) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *camera) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *camera) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *camera) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *camera) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *camera) Projection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *camera) ViewProjection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjection
}

func (c *camera) Frustum() common.Frustum {
	vp := c.ViewProjection()
	return common.ExtractFrustumFromMatrix(vp[:])
}

func (c *camera) Orbit() Orbit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbit
}

func (c *camera) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orbit != nil {
		c.refresh()
	}
}

func (c *camera) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.refresh()
}

func (c *camera) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.refresh()
}

func (c *camera) SetClip(near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near, c.far = near, far
	c.refresh()
}

func (c *camera) SetOrbit(o Orbit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orbit = o
	c.refresh()
}

// refresh rebuilds the projection, and the view when an orbit is attached.
// Caller must hold the mutex.
func (c *camera) refresh() {
	common.Perspective(c.projection[:], c.fov, c.aspect, c.near, c.far)
	if c.orbit != nil {
		ex, ey, ez := c.orbit.Eye()
		fx, fy, fz := c.orbit.Focus()
		common.LookAt(c.view[:], ex, ey, ez, fx, fy, fz, north[0], north[1], north[2])
	}
	c.viewProjection = c.projection.Mul4(c.view)
}
