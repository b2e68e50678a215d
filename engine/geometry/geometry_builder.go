package geometry

import "github.com/Carmen-Shannon/oxy-globe/engine/material"

// SphereBuilderOption is a functional option for configuring a sphere during construction.
type SphereBuilderOption func(*geometry)

// WithName sets the geometry identifier.
//
// Parameters:
//   - name: the identifier for the geometry
//
// Returns:
//   - SphereBuilderOption: option function to apply
func WithName(name string) SphereBuilderOption {
	return func(g *geometry) {
		g.name = name
	}
}

// WithRadius sets the sphere radius. Validated by NewSphere.
//
// Parameters:
//   - radius: the radius in world units
//
// Returns:
//   - SphereBuilderOption: option function to apply
func WithRadius(radius float32) SphereBuilderOption {
	return func(g *geometry) {
		g.radius = radius
	}
}

// WithSegments sets the number of longitudinal slices. Validated by NewSphere.
//
// Parameters:
//   - segments: the slice count
//
// Returns:
//   - SphereBuilderOption: option function to apply
func WithSegments(segments int) SphereBuilderOption {
	return func(g *geometry) {
		g.segments = segments
	}
}

// WithRings sets the number of latitudinal bands, overriding the segments/2 default.
//
// Parameters:
//   - rings: the band count
//
// Returns:
//   - SphereBuilderOption: option function to apply
func WithRings(rings int) SphereBuilderOption {
	return func(g *geometry) {
		g.rings = rings
		g.ringsSet = true
	}
}

// WithMaterials sets the ordered material slots. Nil entries are skipped.
//
// Parameters:
//   - materials: materials in slot order
//
// Returns:
//   - SphereBuilderOption: option function to apply
func WithMaterials(materials ...material.Material) SphereBuilderOption {
	return func(g *geometry) {
		for _, m := range materials {
			if m != nil {
				g.materials = append(g.materials, m)
			}
		}
	}
}
