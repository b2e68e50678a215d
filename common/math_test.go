package common

import (
	"math"
	"testing"
)

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestLookAtOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 0, 0, 4, 0, 0, 0, 0, 1, 0)
	// The origin sits 4 units in front of the eye, on the -Z view axis.
	if !approx(view[14], -4, 1e-6) {
		t.Fatalf("LookAt: origin view depth = %v, want -4", view[14])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	near, far := float32(0.1), float32(100)
	Perspective(proj[:], math.Pi/4, 1, near, far)

	depth := func(z float32) float32 {
		clipZ := proj[10]*z + proj[14]
		clipW := proj[11] * z
		return clipZ / clipW
	}
	if d := depth(-near); !approx(d, 0, 1e-5) {
		t.Errorf("Perspective: near depth = %v, want 0", d)
	}
	if d := depth(-far); !approx(d, 1, 1e-5) {
		t.Errorf("Perspective: far depth = %v, want 1", d)
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{3 * TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{TwoPi + 1, 1},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WrapAngle(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3): got %v, want 3", got)
	}
	if got := Clamp(float32(-1), 0, 3); got != 0 {
		t.Errorf("Clamp(-1, 0, 3): got %v, want 0", got)
	}
}
