// Package geometry tessellates the globe sphere. A Geometry is immutable once built:
// its parameters, vertices, indices and material slots never change.
package geometry

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-globe/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinSegments is the smallest number of longitudinal slices that encloses a volume.
	MinSegments = 3
	// MinRings is the smallest number of latitudinal bands.
	MinRings = 2
	// MaxSegments bounds segments and rings so vertex indices fit in uint32 comfortably.
	MaxSegments = 4096
)

// geometry is the implementation of the Geometry interface.
type geometry struct {
	name      string
	radius    float32
	segments  int
	rings     int
	ringsSet  bool
	materials []material.Material
	vertices  []Vertex
	indices   []uint32
}

// Geometry defines an immutable UV sphere with ordered material slots.
type Geometry interface {
	// Name retrieves the geometry identifier.
	//
	// Returns:
	//   - string: the geometry name
	Name() string

	// Radius returns the sphere radius.
	//
	// Returns:
	//   - float32: radius in world units
	Radius() float32

	// Segments returns the number of longitudinal slices.
	//
	// Returns:
	//   - int: slice count
	Segments() int

	// Rings returns the number of latitudinal bands.
	//
	// Returns:
	//   - int: band count
	Rings() int

	// Vertices returns the tessellated vertices. The seam column is duplicated so
	// that U runs from 0 to 1 without wrapping inside a triangle.
	//
	// Returns:
	//   - []Vertex: (rings+1)*(segments+1) vertices, shared, must not be modified
	Vertices() []Vertex

	// Indices returns triangle indices with counter-clockwise winding seen from outside.
	//
	// Returns:
	//   - []uint32: 6*segments*(rings-1) indices, shared, must not be modified
	Indices() []uint32

	// VertexData returns the vertices packed for GPU upload.
	//
	// Returns:
	//   - []byte: VertexSize bytes per vertex
	VertexData() []byte

	// IndexData returns the indices packed for GPU upload.
	//
	// Returns:
	//   - []byte: 4 bytes per index, little-endian
	IndexData() []byte

	// IndexCount returns the number of indices.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Materials returns the ordered material slots.
	//
	// Returns:
	//   - []material.Material: a copy of the slot list
	Materials() []material.Material

	// Material returns the material in slot i, nil when out of range.
	//
	// Parameters:
	//   - i: the slot index
	//
	// Returns:
	//   - material.Material: the material or nil
	Material(i int) material.Material

	// BoundingRadius returns the radius of the bounding sphere around the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Geometry = &geometry{}

// NewSphere validates the sphere parameters and tessellates the sphere.
// Defaults are radius 1, 48 segments and max(2, segments/2) rings. When no material
// is supplied a single default material occupies slot 0.
//
// Parameters:
//   - options: variadic list of SphereBuilderOption functions to configure the sphere
//
// Returns:
//   - Geometry: the sphere
//   - error: *InvalidGeometryParameterError if radius <= 0, segments < 3 or rings < 2
func NewSphere(options ...SphereBuilderOption) (Geometry, error) {
	g := &geometry{
		name:     "sphere",
		radius:   1,
		segments: 48,
	}
	for _, opt := range options {
		opt(g)
	}
	if !g.ringsSet {
		g.rings = max(MinRings, g.segments/2)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	if len(g.materials) == 0 {
		g.materials = []material.Material{material.NewMaterial()}
	}
	g.tessellate()
	return g, nil
}

func (g *geometry) validate() error {
	r := float64(g.radius)
	switch {
	case math.IsNaN(r) || math.IsInf(r, 0):
		return &InvalidGeometryParameterError{Param: "radius", Value: r, Reason: "must be finite"}
	case g.radius <= 0:
		return &InvalidGeometryParameterError{Param: "radius", Value: r, Reason: "must be greater than 0"}
	case g.segments < MinSegments:
		return &InvalidGeometryParameterError{Param: "segments", Value: float64(g.segments), Reason: "must be at least 3"}
	case g.segments > MaxSegments:
		return &InvalidGeometryParameterError{Param: "segments", Value: float64(g.segments), Reason: "must be at most 4096"}
	case g.rings < MinRings:
		return &InvalidGeometryParameterError{Param: "rings", Value: float64(g.rings), Reason: "must be at least 2"}
	case g.rings > MaxSegments:
		return &InvalidGeometryParameterError{Param: "rings", Value: float64(g.rings), Reason: "must be at most 4096"}
	}
	return nil
}

// tessellate builds a UV sphere with +Y as the polar axis. Longitude increases
// counter-clockwise seen from +Y, so equirectangular maps read east-west correctly.
func (g *geometry) tessellate() {
	cols := g.segments + 1
	g.vertices = make([]Vertex, 0, (g.rings+1)*cols)
	for i := 0; i <= g.rings; i++ {
		v := float32(i) / float32(g.rings)
		theta := float64(v) * math.Pi
		sinT, cosT := math.Sincos(theta)
		for j := 0; j <= g.segments; j++ {
			u := float32(j) / float32(g.segments)
			phi := float64(u) * 2 * math.Pi
			sinP, cosP := math.Sincos(phi)

			n := mgl32.Vec3{float32(-cosP * sinT), float32(cosT), float32(sinP * sinT)}
			n = n.Normalize()
			tan := mgl32.Vec3{float32(sinP), 0, float32(cosP)}.Normalize()
			pos := n.Mul(g.radius)

			g.vertices = append(g.vertices, Vertex{
				Position: pos,
				Normal:   n,
				TexCoord: [2]float32{u, v},
				Tangent:  [4]float32{tan[0], tan[1], tan[2], 1},
			})
		}
	}

	g.indices = make([]uint32, 0, 6*g.segments*(g.rings-1))
	for i := 0; i < g.rings; i++ {
		for j := 0; j < g.segments; j++ {
			cur := uint32(i*cols + j)
			next := cur + uint32(cols)
			// The pole rows collapse one triangle of each quad to a point.
			if i != 0 {
				g.indices = append(g.indices, cur+1, cur, next+1)
			}
			if i != g.rings-1 {
				g.indices = append(g.indices, cur, next, next+1)
			}
		}
	}
}

func (g *geometry) Name() string {
	return g.name
}

func (g *geometry) Radius() float32 {
	return g.radius
}

func (g *geometry) Segments() int {
	return g.segments
}

func (g *geometry) Rings() int {
	return g.rings
}

func (g *geometry) Vertices() []Vertex {
	return g.vertices
}

func (g *geometry) Indices() []uint32 {
	return g.indices
}

func (g *geometry) VertexData() []byte {
	buf := make([]byte, len(g.vertices)*VertexSize)
	for i := range g.vertices {
		g.vertices[i].put(buf[i*VertexSize:])
	}
	return buf
}

func (g *geometry) IndexData() []byte {
	buf := make([]byte, len(g.indices)*4)
	for i, idx := range g.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func (g *geometry) IndexCount() int {
	return len(g.indices)
}

func (g *geometry) Materials() []material.Material {
	out := make([]material.Material, len(g.materials))
	copy(out, g.materials)
	return out
}

func (g *geometry) Material(i int) material.Material {
	if i < 0 || i >= len(g.materials) {
		return nil
	}
	return g.materials[i]
}

func (g *geometry) BoundingRadius() float32 {
	return g.radius
}
