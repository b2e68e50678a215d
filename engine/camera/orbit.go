package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
)

// Orbit places the eye on a sphere around a focus point, addressed the way a
// point on the globe is: a distance plus a longitude and latitude measured at
// the focus. Longitude 0 puts the eye on the +Z side, longitude grows toward +X
// and positive latitude is north (+Y).
//
// Every mutation recomputes the eye; distance and latitude are clamped to the
// orbit's limits and longitude is wrapped into [0, 2π).
type Orbit interface {
	// Eye returns the world position of the eye.
	Eye() (x, y, z float32)

	// Focus returns the point the eye looks at.
	Focus() (x, y, z float32)

	// SetFocus moves the look-at point. The eye follows at the same distance,
	// longitude and latitude.
	SetFocus(x, y, z float32)

	// Distance returns how far the eye sits from the focus.
	Distance() float32

	// SetDistance moves the eye along its current bearing.
	//
	// Parameters:
	//   - d: distance from the focus, clamped to DistanceBounds
	SetDistance(d float32)

	// DistanceBounds returns the closest and farthest the eye may sit.
	//
	// Returns:
	//   - near: minimum distance from the focus
	//   - far: maximum distance from the focus
	DistanceBounds() (near, far float32)

	// Longitude returns the eye longitude in radians, in [0, 2π).
	Longitude() float32

	// SetLongitude moves the eye east or west around the focus.
	SetLongitude(lon float32)

	// Latitude returns the eye latitude in radians.
	Latitude() float32

	// SetLatitude moves the eye north or south, clamped short of the poles.
	SetLatitude(lat float32)

	// Zoom moves the eye toward the focus by steps zoom steps. Negative steps back away.
	Zoom(steps float32)

	// Drag turns the globe under the eye by a pointer movement in pixels.
	// Dragging right brings the western hemisphere into view, dragging down
	// raises the eye northward.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels
	Drag(dx, dy float32)

	// Step moves the eye by whole key steps. Positive east steps increase the
	// longitude, positive north steps increase the latitude.
	Step(east, north float32)

	// Home returns the eye to the placement the orbit was built with.
	Home()
}

var _ Orbit = &orbit{}

// placement is the part of an orbit that Home restores.
type placement struct {
	focus     [3]float32
	distance  float32
	longitude float32
	latitude  float32
}

type orbit struct {
	mu *sync.Mutex

	placement
	home placement
	eye  [3]float32

	minDistance float32
	maxDistance float32
	latLimit    float32

	keyStep         float32
	dragSensitivity float32
	zoomStep        float32
}

// NewOrbit creates an orbit four units out on the +Z side of the origin.
// The placement left by the options becomes the Home placement.
//
// Parameters:
//   - options: functional options to configure the orbit
//
// Returns:
//   - Orbit: the newly created orbit
func NewOrbit(options ...OrbitOption) Orbit {
	o := &orbit{
		mu:        &sync.Mutex{},
		placement: placement{distance: 4},

		minDistance: 1.5,
		maxDistance: 40,
		latLimit:    math.Pi/2 - 0.05,

		keyStep:         0.03,
		dragSensitivity: 0.005,
		zoomStep:        0.25,
	}
	for _, option := range options {
		option(o)
	}
	o.constrain()
	o.home = o.placement
	o.place()
	return o
}

// constrain applies the distance and latitude limits and wraps the longitude.
// Caller must hold the mutex.
func (o *orbit) constrain() {
	o.distance = common.Clamp(o.distance, o.minDistance, o.maxDistance)
	o.latitude = common.Clamp(o.latitude, -o.latLimit, o.latLimit)
	o.longitude = float32(common.WrapAngle(float64(o.longitude)))
}

// place recomputes the eye from the current placement. Caller must hold the mutex.
func (o *orbit) place() {
	sinLat, cosLat := math.Sincos(float64(o.latitude))
	sinLon, cosLon := math.Sincos(float64(o.longitude))
	d := float64(o.distance)

	o.eye = [3]float32{
		o.focus[0] + float32(d*cosLat*sinLon),
		o.focus[1] + float32(d*sinLat),
		o.focus[2] + float32(d*cosLat*cosLon),
	}
}

// move runs fn on the placement under the mutex, then re-applies limits and the eye.
func (o *orbit) move(fn func(p *placement)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(&o.placement)
	o.constrain()
	o.place()
}

func (o *orbit) Eye() (x, y, z float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.eye[0], o.eye[1], o.eye[2]
}

func (o *orbit) Focus() (x, y, z float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.focus[0], o.focus[1], o.focus[2]
}

func (o *orbit) SetFocus(x, y, z float32) {
	o.move(func(p *placement) { p.focus = [3]float32{x, y, z} })
}

func (o *orbit) Distance() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.distance
}

func (o *orbit) SetDistance(d float32) {
	o.move(func(p *placement) { p.distance = d })
}

func (o *orbit) DistanceBounds() (near, far float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.minDistance, o.maxDistance
}

func (o *orbit) Longitude() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.longitude
}

func (o *orbit) SetLongitude(lon float32) {
	o.move(func(p *placement) { p.longitude = lon })
}

func (o *orbit) Latitude() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latitude
}

func (o *orbit) SetLatitude(lat float32) {
	o.move(func(p *placement) { p.latitude = lat })
}

func (o *orbit) Zoom(steps float32) {
	o.move(func(p *placement) { p.distance -= steps * o.zoomStep })
}

func (o *orbit) Drag(dx, dy float32) {
	o.move(func(p *placement) {
		p.longitude -= dx * o.dragSensitivity
		p.latitude += dy * o.dragSensitivity
	})
}

func (o *orbit) Step(east, north float32) {
	o.move(func(p *placement) {
		p.longitude += east * o.keyStep
		p.latitude += north * o.keyStep
	})
}

func (o *orbit) Home() {
	o.move(func(p *placement) { *p = o.home })
}
