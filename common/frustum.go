package common

import (
	"math"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Frustum represents the six planes of a view frustum.
// Planes are oriented so that the positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a column-major
// view-projection matrix using the Gribb/Hartmann method. The near plane uses
// the [0, 1] depth convention produced by Perspective.
//
// Parameters:
//   - viewProj: 16 float32 values representing the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj []float32) Frustum {
	// row i of the matrix is (m[i], m[4+i], m[8+i], m[12+i])
	row := func(i int) [4]float32 {
		return [4]float32{viewProj[i], viewProj[4+i], viewProj[8+i], viewProj[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	f.setPlane(FrustumLeft, r3, r0, 1)
	f.setPlane(FrustumRight, r3, r0, -1)
	f.setPlane(FrustumBottom, r3, r1, 1)
	f.setPlane(FrustumTop, r3, r1, -1)
	f.setPlane(FrustumNear, [4]float32{}, r2, 1)
	f.setPlane(FrustumFar, r3, r2, -1)
	return f
}

// ContainsSphere reports whether a sphere lies entirely inside the frustum.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: true if no part of the sphere crosses a frustum plane
func (f *Frustum) ContainsSphere(center [3]float32, radius float32) bool {
	for _, p := range f.Planes {
		d := p.Normal[0]*center[0] + p.Normal[1]*center[1] + p.Normal[2]*center[2] + p.Distance
		if d < radius {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether any part of a sphere lies inside the frustum.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: true if the sphere is at least partially visible
func (f *Frustum) IntersectsSphere(center [3]float32, radius float32) bool {
	for _, p := range f.Planes {
		d := p.Normal[0]*center[0] + p.Normal[1]*center[1] + p.Normal[2]*center[2] + p.Distance
		if d < -radius {
			return false
		}
	}
	return true
}

// setPlane stores base + sign*r as plane index and normalizes it.
func (f *Frustum) setPlane(index int, base, r [4]float32, sign float32) {
	p := &f.Planes[index]
	p.Normal = [3]float32{base[0] + sign*r[0], base[1] + sign*r[1], base[2] + sign*r[2]}
	p.Distance = base[3] + sign*r[3]

	length := float32(math.Sqrt(float64(
		p.Normal[0]*p.Normal[0] + p.Normal[1]*p.Normal[1] + p.Normal[2]*p.Normal[2],
	)))
	if length > 0 {
		inv := 1.0 / length
		p.Normal[0] *= inv
		p.Normal[1] *= inv
		p.Normal[2] *= inv
		p.Distance *= inv
	}
}
