// Package controller builds and drives the rotating globe scene. A SceneController
// owns the scene tree for one hosting surface: it constructs the textured sphere,
// lights it, places the camera, spins the globe and answers the surface's frame,
// resize and input callbacks.
package controller

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/Carmen-Shannon/oxy-globe/engine/animation"
	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/geometry"
	"github.com/Carmen-Shannon/oxy-globe/engine/light"
	"github.com/Carmen-Shannon/oxy-globe/engine/material"
	"github.com/Carmen-Shannon/oxy-globe/engine/node"
	"github.com/Carmen-Shannon/oxy-globe/engine/scene"
	"github.com/Carmen-Shannon/oxy-globe/engine/texture"
)

// Node names the controller gives the nodes it attaches. AttachLighting and
// AttachCamera replace nodes carrying these names.
const (
	GlobeNodeName   = "earth"
	AmbientNodeName = "ambient-light"
	SunNodeName     = "sun-light"
	CameraNodeName  = "camera"
)

// Default texture identifiers requested from the asset provider.
const (
	TextureDiffuse  = "earth-diffuse"
	TextureSpecular = "earth-specular"
	TextureNormal   = "earth-normal"
	TextureLights   = "earth-lights"
	TextureClouds   = "earth-clouds"
)

// DefaultTextures maps every material channel to its default texture identifier.
//
// Returns:
//   - map[material.Channel]string: a fresh map the caller may modify
func DefaultTextures() map[material.Channel]string {
	return map[material.Channel]string{
		material.ChannelDiffuse:      TextureDiffuse,
		material.ChannelSpecular:     TextureSpecular,
		material.ChannelNormal:       TextureNormal,
		material.ChannelEmission:     TextureLights,
		material.ChannelTransparency: TextureClouds,
	}
}

// pendingSwap is a texture requested for a channel that has not been applied yet.
type pendingSwap struct {
	channel    material.Channel
	name       string
	generation uint64
	future     texture.Future
}

// sceneController is the implementation of the SceneController interface.
type sceneController struct {
	mu     *sync.Mutex
	logger *log.Logger

	cache    texture.Cache
	resolver texture.Resolver
	workers  int

	radius   float32
	segments int
	rings    int
	textures map[material.Channel]string

	axis   [3]float32
	period float32

	cameraDistance float32
	cameraFov      float32

	ambientIntensity float32
	sunIntensity     float32
	sunType          light.LightType
	sunDirection     [3]float32

	scene      scene.Scene
	globe      node.Node
	mat        material.Material
	cameraNode node.Node

	held       map[material.Channel]string
	pending    []*pendingSwap
	missing    map[string]error
	generation uint64

	width  int
	height int
	paused bool
	frames uint64
}

// SceneController builds the globe scene and responds to hosting surface events.
// All methods are safe to call from the frame thread and the input thread.
type SceneController interface {
	// Initialize builds a new scene holding one textured sphere node. Every configured
	// texture is resolved through the cache; one that cannot be resolved is logged,
	// recorded in MissingTextures and leaves its channel at the default. A previous
	// scene owned by the controller is torn down first.
	//
	// Returns:
	//   - scene.Scene: the new scene
	//   - error: wraps *geometry.InvalidGeometryParameterError when the sphere parameters are invalid; no scene is created
	Initialize() (scene.Scene, error)

	// AttachLighting adds a low ambient fill light and a sun light to s, replacing
	// lights attached by an earlier call. A warning is logged when the two together
	// could saturate a white surface.
	//
	// Parameters:
	//   - s: the scene to light
	AttachLighting(s scene.Scene)

	// AttachCamera adds an orbit camera aimed at the origin to s and makes it the
	// active camera, replacing a camera attached by an earlier call. A warning is
	// logged when the globe does not fit inside the view frustum.
	//
	// Parameters:
	//   - s: the scene to view
	AttachCamera(s scene.Scene)

	// StartRotation installs an endless rotation on n, replacing any earlier rotation.
	//
	// Parameters:
	//   - n: the node to spin
	//   - axis: rotation axis, need not be normalized
	//   - period: seconds per revolution
	//
	// Returns:
	//   - error: *animation.InvalidAnimationParameterError for a non-positive period or a zero axis
	StartRotation(n node.Node, axis [3]float32, period float32) error

	// Teardown drops every node of s. When s is the controller's scene, material
	// texture references are released to the cache and in-flight texture requests
	// are discarded. Safe to call repeatedly and after a failed construction.
	//
	// Parameters:
	//   - s: the scene to tear down, nil is ignored
	Teardown(s scene.Scene)

	// SwapTexture replaces the texture of one channel of the globe material. With
	// async textures the swap is applied by a later OnFrameTick.
	//
	// Parameters:
	//   - c: the channel to replace
	//   - name: the texture identifier
	//
	// Returns:
	//   - error: *SurfaceUnavailableError without a scene, *texture.AssetMissingError when a synchronous resolve fails
	SwapTexture(c material.Channel, name string) error

	// DidLoad builds the whole demonstration scene: Initialize, AttachLighting,
	// AttachCamera and StartRotation with the configured axis and period.
	//
	// Returns:
	//   - error: the first construction error
	DidLoad() error

	// OnFrameTick applies arrived textures and advances the scene by deltaTime seconds.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	OnFrameTick(deltaTime float32)

	// OnResize updates the camera aspect ratio. Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width, height: the new drawable size in pixels
	OnResize(width, height int)

	// OnPointerDrag orbits the camera by a pointer movement.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels
	OnPointerDrag(dx, dy float32)

	// OnScroll zooms the camera; positive delta moves closer.
	//
	// Parameters:
	//   - delta: scroll amount
	OnScroll(delta float32)

	// OnKeyDown handles keyboard shortcuts: space toggles the rotation, R resets
	// the camera and the arrow keys orbit.
	//
	// Parameters:
	//   - keyCode: the key code
	OnKeyDown(keyCode uint32)

	// Scene returns the scene currently owned by the controller.
	//
	// Returns:
	//   - scene.Scene: the scene, nil before DidLoad or after Shutdown
	Scene() scene.Scene

	// Globe returns the sphere node of the current scene.
	//
	// Returns:
	//   - node.Node: the globe node or nil
	Globe() node.Node

	// Material returns the material of the current globe.
	//
	// Returns:
	//   - material.Material: the globe material or nil
	Material() material.Material

	// SetPaused freezes or resumes the rotation clock.
	//
	// Parameters:
	//   - paused: true to freeze
	SetPaused(paused bool)

	// Paused reports whether the rotation clock is frozen.
	//
	// Returns:
	//   - bool: true when paused
	Paused() bool

	// ResetCamera restores the orbit the camera was attached with.
	ResetCamera()

	// MissingTextures lists the texture identifiers of the current scene that failed to resolve.
	//
	// Returns:
	//   - []string: sorted identifiers
	MissingTextures() []string

	// Stats returns a snapshot of the current scene.
	//
	// Returns:
	//   - Stats: the snapshot
	Stats() Stats

	// Shutdown tears down the controller's scene.
	Shutdown()
}

var _ SceneController = &sceneController{}

// NewSceneController creates a SceneController resolving textures from cache.
// Panics if cache is nil.
//
// Parameters:
//   - cache: the shared texture cache
//   - options: functional options to configure the controller
//
// Returns:
//   - SceneController: the new controller
func NewSceneController(cache texture.Cache, options ...SceneControllerBuilderOption) SceneController {
	if cache == nil {
		panic("controller: NewSceneController requires a non-nil texture.Cache")
	}
	c := &sceneController{
		mu:               &sync.Mutex{},
		logger:           log.Default(),
		cache:            cache,
		radius:           1,
		segments:         48,
		textures:         DefaultTextures(),
		axis:             [3]float32{0, 1, 0},
		period:           20,
		cameraFov:        45.0 * (math.Pi / 180.0),
		ambientIntensity: 0.2,
		sunIntensity:     0.8,
		sunType:          light.LightTypeDirectional,
		sunDirection:     [3]float32{-1, -0.3, -0.6},
		held:             make(map[material.Channel]string),
		missing:          make(map[string]error),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.workers > 0 {
		c.resolver = texture.NewResolver(cache, texture.WithWorkers(c.workers))
	}
	return c
}

func (c *sceneController) Initialize() (scene.Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initializeLocked()
}

func (c *sceneController) initializeLocked() (scene.Scene, error) {
	mat := material.NewMaterial(material.WithName(GlobeNodeName))
	opts := []geometry.SphereBuilderOption{
		geometry.WithName(GlobeNodeName),
		geometry.WithRadius(c.radius),
		geometry.WithSegments(c.segments),
		geometry.WithMaterials(mat),
	}
	if c.rings > 0 {
		opts = append(opts, geometry.WithRings(c.rings))
	}
	geo, err := geometry.NewSphere(opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize globe: %w", err)
	}

	if c.scene != nil {
		c.teardownLocked(c.scene)
	}
	c.generation++

	s := scene.NewScene("globe")
	globe := node.NewNode(node.WithName(GlobeNodeName), node.WithGeometry(geo))
	if _, err := s.Add(globe, node.Nil); err != nil {
		return nil, fmt.Errorf("initialize globe: %w", err)
	}
	c.scene, c.globe, c.mat = s, globe, mat
	c.held = make(map[material.Channel]string)
	c.missing = make(map[string]error)
	c.frames = 0

	for _, ch := range material.Channels() {
		if name := c.textures[ch]; name != "" {
			_ = c.requestLocked(ch, name)
		}
	}

	c.logger.Printf("[Controller] Scene initialized: radius %.2f, %d segments, %d rings, %d channels set, %d pending, %d missing",
		geo.Radius(), geo.Segments(), geo.Rings(), mat.SetCount(), len(c.pending), len(c.missing))
	return s, nil
}

// requestLocked resolves name for channel ch, synchronously or through the resolver.
// An earlier unapplied request for the same channel is discarded.
func (c *sceneController) requestLocked(ch material.Channel, name string) error {
	kept := c.pending[:0]
	for _, p := range c.pending {
		if p.channel == ch {
			p.future.Discard()
			continue
		}
		kept = append(kept, p)
	}
	c.pending = kept

	p := &pendingSwap{channel: ch, name: name, generation: c.generation}
	if c.resolver != nil {
		p.future = c.resolver.Resolve(name)
		c.pending = append(c.pending, p)
		return nil
	}
	tex, err := c.cache.Acquire(name)
	return c.applyLocked(p, tex, err)
}

// applyLocked installs a resolved texture into the globe material. A successful
// resolve carries one cache reference, which the material keeps or which is released.
func (c *sceneController) applyLocked(p *pendingSwap, tex texture.Texture, err error) error {
	if p.generation != c.generation || c.mat == nil {
		if err == nil && tex != nil {
			c.cache.Release(p.name)
		}
		return &SurfaceUnavailableError{Texture: p.name, Channel: p.channel}
	}
	if err != nil {
		c.missing[p.name] = err
		c.logger.Printf("[Controller] Warning: %s channel left at default: %v", p.channel, err)
		return err
	}
	if _, err := c.mat.SetTexture(p.channel, tex); err != nil {
		c.cache.Release(p.name)
		return err
	}
	if old, ok := c.held[p.channel]; ok {
		c.cache.Release(old)
	}
	c.held[p.channel] = p.name
	delete(c.missing, p.name)
	return nil
}

// pollLocked applies every completed request without blocking.
func (c *sceneController) pollLocked() {
	if len(c.pending) == 0 {
		return
	}
	kept := c.pending[:0]
	for _, p := range c.pending {
		tex, err, done := p.future.Poll()
		if !done {
			kept = append(kept, p)
			continue
		}
		if errors.Is(err, texture.ErrDiscarded) {
			continue
		}
		// Failures are logged by applyLocked; late arrivals are dropped silently.
		_ = c.applyLocked(p, tex, err)
	}
	clear(c.pending[len(kept):])
	c.pending = kept
}

func (c *sceneController) AttachLighting(s scene.Scene) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attachLightingLocked(s)
}

func (c *sceneController) attachLightingLocked(s scene.Scene) {
	if s == nil {
		return
	}
	removeNamed(s, func(n node.Node) bool {
		return n.Light() != nil && (n.Name() == AmbientNodeName || n.Name() == SunNodeName)
	})

	ambient := light.NewLight(light.LightTypeAmbient,
		light.WithName("ambient"),
		light.WithIntensity(c.ambientIntensity),
	)
	dir := c.sunDirection
	sunDistance := c.radius * 100
	sun := light.NewLight(c.sunType,
		light.WithName("sun"),
		light.WithIntensity(c.sunIntensity),
		light.WithDirection(dir[0], dir[1], dir[2]),
		light.WithRange(sunDistance*2),
	)
	// The sun sits on the far side of its travel direction.
	d := sun.Direction()
	sunNode := node.NewNode(
		node.WithName(SunNodeName),
		node.WithLight(sun),
		node.WithPosition(-d[0]*sunDistance, -d[1]*sunDistance, -d[2]*sunDistance),
	)
	ambientNode := node.NewNode(node.WithName(AmbientNodeName), node.WithLight(ambient))

	for _, n := range []node.Node{ambientNode, sunNode} {
		if _, err := s.Add(n, node.Nil); err != nil {
			c.logger.Printf("[Controller] Failed to attach %s: %v", n.Name(), err)
		}
	}

	if saturated, total := light.Saturates(ambient, sun); saturated {
		c.logger.Printf("[Controller] Warning: ambient + sun contribution %.2f exceeds 1.0, lit surfaces will clip", total)
	}
}

func (c *sceneController) AttachCamera(s scene.Scene) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attachCameraLocked(s)
}

func (c *sceneController) attachCameraLocked(s scene.Scene) {
	if s == nil {
		return
	}
	removeNamed(s, func(n node.Node) bool {
		return n.Camera() != nil && n.Name() == CameraNodeName
	})

	r := c.radius
	dist := c.cameraDistance
	if dist <= 0 {
		dist = 4 * r
	}
	minDist := min(r*1.1, dist)
	maxDist := max(dist*4, r*20)

	orbit := camera.NewOrbit(
		camera.WithDistance(dist),
		camera.WithDistanceBounds(minDist, maxDist),
		camera.WithZoomStep(r*0.25),
	)
	cam := camera.NewCamera(
		camera.WithFov(c.cameraFov),
		camera.WithAspect(c.aspect()),
		camera.WithClip(r*0.01, maxDist+2*r),
		camera.WithOrbit(orbit),
	)
	camNode := node.NewNode(node.WithName(CameraNodeName), node.WithCamera(cam))
	syncCamera(camNode)

	id, err := s.Add(camNode, node.Nil)
	if err == nil {
		err = s.SetActiveCamera(id)
	}
	if err != nil {
		c.logger.Printf("[Controller] Failed to attach camera: %v", err)
		return
	}
	if s == c.scene {
		c.cameraNode = camNode
	}

	f := cam.Frustum()
	if !f.ContainsSphere([3]float32{0, 0, 0}, r) {
		c.logger.Printf("[Controller] Warning: globe of radius %.2f does not fit the view at distance %.2f (aspect %.2f)",
			r, dist, cam.Aspect())
	}
}

func (c *sceneController) StartRotation(n node.Node, axis [3]float32, period float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startRotationLocked(n, axis, period)
}

func (c *sceneController) startRotationLocked(n node.Node, axis [3]float32, period float32) error {
	if n == nil {
		return fmt.Errorf("start rotation: %w", scene.ErrNodeNotFound)
	}
	rot, err := animation.NewRotation(axis, period)
	if err != nil {
		return err
	}
	if prev := n.AddAnimation(rot); prev != nil {
		c.logger.Printf("[Controller] Replaced rotation on %s, period now %.2fs", n.Name(), period)
	}
	return nil
}

func (c *sceneController) Teardown(s scene.Scene) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked(s)
}

func (c *sceneController) teardownLocked(s scene.Scene) {
	if s == nil {
		return
	}
	if s == c.scene {
		for _, p := range c.pending {
			p.future.Discard()
		}
		c.pending = nil
		for ch, name := range c.held {
			c.mat.Reset(ch)
			c.cache.Release(name)
		}
		c.held = make(map[material.Channel]string)
		c.scene, c.globe, c.mat, c.cameraNode = nil, nil, nil, nil
		c.generation++
	}
	if removed := s.Clear(); len(removed) > 0 {
		c.logger.Printf("[Controller] Scene %q torn down, %d nodes released", s.Name(), len(removed))
	}
}

func (c *sceneController) SwapTexture(ch material.Channel, name string) error {
	if !ch.Valid() {
		return fmt.Errorf("swap texture %q: %w", name, material.ErrUnknownChannel)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scene == nil {
		return &SurfaceUnavailableError{Texture: name, Channel: ch}
	}
	c.textures[ch] = name
	return c.requestLocked(ch, name)
}

func (c *sceneController) DidLoad() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.initializeLocked()
	if err != nil {
		return err
	}
	c.attachLightingLocked(s)
	c.attachCameraLocked(s)
	return c.startRotationLocked(c.globe, c.axis, c.period)
}

func (c *sceneController) OnFrameTick(deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scene == nil {
		return
	}
	c.pollLocked()

	dt := float64(deltaTime)
	if c.paused || dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	c.scene.Update(dt)
	syncCamera(c.cameraNode)
	c.frames++
}

func (c *sceneController) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
	if c.cameraNode != nil {
		c.cameraNode.Camera().SetAspect(c.aspect())
	}
}

func (c *sceneController) OnPointerDrag(dx, dy float32) {
	c.withOrbit(func(o camera.Orbit) {
		o.Drag(dx, dy)
	})
}

func (c *sceneController) OnScroll(delta float32) {
	c.withOrbit(func(o camera.Orbit) {
		o.Zoom(delta)
	})
}

func (c *sceneController) OnKeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeySpace:
		c.mu.Lock()
		c.paused = !c.paused
		c.mu.Unlock()
	case common.KeyR:
		c.ResetCamera()
	case common.KeyLeft:
		c.stepOrbit(-1, 0)
	case common.KeyRight:
		c.stepOrbit(1, 0)
	case common.KeyUp:
		c.stepOrbit(0, 1)
	case common.KeyDown:
		c.stepOrbit(0, -1)
	}
}

func (c *sceneController) ResetCamera() {
	c.withOrbit(camera.Orbit.Home)
}

func (c *sceneController) stepOrbit(east, north float32) {
	c.withOrbit(func(o camera.Orbit) {
		o.Step(east, north)
	})
}

// withOrbit runs fn on the orbit of the attached camera and
// refreshes the camera node. It does nothing without a camera.
func (c *sceneController) withOrbit(fn func(camera.Orbit)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cameraNode == nil {
		return
	}
	cam := c.cameraNode.Camera()
	o := cam.Orbit()
	if o == nil {
		return
	}
	fn(o)
	cam.Update()
	syncCamera(c.cameraNode)
}

func (c *sceneController) Scene() scene.Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene
}

func (c *sceneController) Globe() node.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globe
}

func (c *sceneController) Material() material.Material {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mat
}

func (c *sceneController) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = paused
}

func (c *sceneController) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *sceneController) MissingTextures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.missing))
	for name := range c.missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *sceneController) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := Stats{
		PendingTextures: len(c.pending),
		MissingTextures: len(c.missing),
		Frames:          c.frames,
		Paused:          c.paused,
	}
	if c.scene != nil {
		st.Nodes = c.scene.Count()
		st.Lights = len(c.scene.Lights())
	}
	if c.mat != nil {
		st.Channels = c.mat.SetCount()
	}
	if c.globe != nil {
		if g := c.globe.Geometry(); g != nil {
			st.MeshBytes = len(g.VertexData()) + len(g.IndexData())
		}
		if rot, ok := c.globe.Animation(animation.RotationKey).(animation.Rotation); ok {
			st.Angle = rot.Angle()
		}
	}
	return st
}

func (c *sceneController) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked(c.scene)
}

// aspect returns the last resized width over height, 1 before the first resize.
func (c *sceneController) aspect() float32 {
	if c.width <= 0 || c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// syncCamera moves a camera node to the eye of its orbit.
func syncCamera(n node.Node) {
	if n == nil || n.Camera() == nil {
		return
	}
	o := n.Camera().Orbit()
	if o == nil {
		return
	}
	x, y, z := o.Eye()
	n.SetPosition(x, y, z)
}

// removeNamed removes every node of s matching match, with its subtree.
func removeNamed(s scene.Scene, match func(node.Node) bool) {
	for _, n := range s.Nodes() {
		if n.ID() != scene.RootID && match(n) {
			_, _ = s.Remove(n.ID())
		}
	}
}
