package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-globe/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereValidation(t *testing.T) {
	cases := []struct {
		name  string
		opts  []SphereBuilderOption
		param string
	}{
		{"zero radius", []SphereBuilderOption{WithRadius(0)}, "radius"},
		{"negative radius", []SphereBuilderOption{WithRadius(-1)}, "radius"},
		{"nan radius", []SphereBuilderOption{WithRadius(float32(math.NaN()))}, "radius"},
		{"two segments", []SphereBuilderOption{WithSegments(2)}, "segments"},
		{"one ring", []SphereBuilderOption{WithRings(1)}, "rings"},
		{"too many segments", []SphereBuilderOption{WithSegments(MaxSegments + 1)}, "segments"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewSphere(tc.opts...)
			if g != nil {
				t.Fatal("NewSphere: geometry should be nil on error")
			}
			var ip *InvalidGeometryParameterError
			if !errors.As(err, &ip) {
				t.Fatalf("NewSphere: got %v, want *InvalidGeometryParameterError", err)
			}
			if ip.Param != tc.param {
				t.Fatalf("NewSphere: Param = %s, want %s", ip.Param, tc.param)
			}
		})
	}
}

func TestNewSphereMinimumSegments(t *testing.T) {
	g, err := NewSphere(WithSegments(3))
	if err != nil {
		t.Fatalf("NewSphere(segments=3): %v", err)
	}
	if g.Rings() != 2 {
		t.Fatalf("Rings: got %d, want default 2", g.Rings())
	}
}

func TestNewSphereDefaults(t *testing.T) {
	g, err := NewSphere()
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	if g.Radius() != 1 || g.Segments() != 48 || g.Rings() != 24 {
		t.Fatalf("defaults: got r=%v seg=%d rings=%d", g.Radius(), g.Segments(), g.Rings())
	}
	if len(g.Materials()) != 1 || g.Material(0) == nil || g.Material(1) != nil {
		t.Fatal("Materials: want one default slot")
	}
}

func TestSphereCounts(t *testing.T) {
	g, err := NewSphere(WithRadius(2), WithSegments(32), WithRings(16))
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	if got, want := len(g.Vertices()), 17*33; got != want {
		t.Fatalf("Vertices: got %d, want %d", got, want)
	}
	if got, want := g.IndexCount(), 6*32*15; got != want {
		t.Fatalf("IndexCount: got %d, want %d", got, want)
	}
	if got := len(g.VertexData()); got != len(g.Vertices())*VertexSize {
		t.Fatalf("VertexData: got %d bytes", got)
	}
	if got := len(g.IndexData()); got != g.IndexCount()*4 {
		t.Fatalf("IndexData: got %d bytes", got)
	}
	for _, idx := range g.Indices() {
		if int(idx) >= len(g.Vertices()) {
			t.Fatalf("Indices: %d out of range", idx)
		}
	}
}

func TestSphereVertexAttributes(t *testing.T) {
	g, _ := NewSphere(WithRadius(3), WithSegments(12))
	for i, v := range g.Vertices() {
		p := mgl32.Vec3(v.Position)
		n := mgl32.Vec3(v.Normal)
		if math.Abs(float64(p.Len()-3)) > 1e-4 {
			t.Fatalf("vertex %d: |p| = %v, want 3", i, p.Len())
		}
		if math.Abs(float64(n.Len()-1)) > 1e-5 {
			t.Fatalf("vertex %d: |n| = %v, want 1", i, n.Len())
		}
		tan := mgl32.Vec3{v.Tangent[0], v.Tangent[1], v.Tangent[2]}
		if d := tan.Dot(n); math.Abs(float64(d)) > 1e-5 {
			t.Fatalf("vertex %d: tangent not orthogonal to normal, dot = %v", i, d)
		}
		if v.TexCoord[0] < 0 || v.TexCoord[0] > 1 || v.TexCoord[1] < 0 || v.TexCoord[1] > 1 {
			t.Fatalf("vertex %d: uv %v out of range", i, v.TexCoord)
		}
	}
	if top := g.Vertices()[0]; top.Position[1] < 2.999 {
		t.Fatalf("first ring should be the north pole, got %v", top.Position)
	}
}

func TestSphereWindingOutward(t *testing.T) {
	g, _ := NewSphere(WithSegments(16))
	vs, idx := g.Vertices(), g.Indices()
	for i := 0; i < len(idx); i += 3 {
		a := mgl32.Vec3(vs[idx[i]].Position)
		b := mgl32.Vec3(vs[idx[i+1]].Position)
		c := mgl32.Vec3(vs[idx[i+2]].Position)
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() < 1e-8 {
			t.Fatalf("triangle %d is degenerate", i/3)
		}
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if normal.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
}

func TestSphereLongitudeRunsEast(t *testing.T) {
	g, _ := NewSphere(WithSegments(4), WithRings(2))
	// Equator row: u = 0 at -X, u = 0.25 at +Z.
	eq := g.Vertices()[1*5:]
	if eq[0].Position[0] > -0.999 {
		t.Fatalf("u=0 should sit at -X, got %v", eq[0].Position)
	}
	if eq[1].Position[2] < 0.999 {
		t.Fatalf("u=0.25 should sit at +Z, got %v", eq[1].Position)
	}
}

func TestVertexMarshal(t *testing.T) {
	v := Vertex{Position: [3]float32{1, 2, 3}, Tangent: [4]float32{0, 0, 0, 1}}
	if v.Size() != VertexSize {
		t.Fatalf("Size: got %d, want %d", v.Size(), VertexSize)
	}
	buf := v.Marshal()
	if len(buf) != VertexSize {
		t.Fatalf("Marshal: got %d bytes", len(buf))
	}
	if got := math.Float32frombits(uint32(buf[4]) | uint32(buf[5])<<8 | uint32(buf[6])<<16 | uint32(buf[7])<<24); got != 2 {
		t.Fatalf("Marshal: position.y = %v, want 2", got)
	}
}

func TestWithMaterials(t *testing.T) {
	day := material.NewMaterial(material.WithName("day"))
	clouds := material.NewMaterial(material.WithName("clouds"))
	g, err := NewSphere(WithMaterials(day, nil, clouds), WithName("earth"))
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	if g.Name() != "earth" {
		t.Fatalf("Name: got %s", g.Name())
	}
	ms := g.Materials()
	if len(ms) != 2 || ms[0] != day || ms[1] != clouds {
		t.Fatalf("Materials: got %d slots", len(ms))
	}
	ms[0] = nil
	if g.Material(0) != day {
		t.Fatal("Materials: returned slice must be a copy")
	}
}
