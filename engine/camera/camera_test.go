package camera

import (
	"math"
	"testing"
)

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestOrbitStartsOnPlusZ(t *testing.T) {
	o := NewOrbit(WithDistance(4))
	x, y, z := o.Eye()
	if !near(x, 0, 1e-6) || !near(y, 0, 1e-6) || !near(z, 4, 1e-6) {
		t.Fatalf("Eye: got (%v, %v, %v), want (0, 0, 4)", x, y, z)
	}
}

func TestOrbitLongitudeTurnsTowardPlusX(t *testing.T) {
	o := NewOrbit(WithDistance(2), WithLongitude(math.Pi/2))
	x, _, z := o.Eye()
	if !near(x, 2, 1e-5) || !near(z, 0, 1e-5) {
		t.Fatalf("Eye at longitude π/2: got x=%v z=%v, want x=2 z=0", x, z)
	}
	o.SetLatitude(0.4)
	_, y, _ := o.Eye()
	if want := float32(2 * math.Sin(0.4)); !near(y, want, 1e-5) {
		t.Fatalf("Eye at latitude 0.4: y = %v, want %v", y, want)
	}
}

func TestOrbitZoomClampsDistance(t *testing.T) {
	o := NewOrbit(WithDistance(4), WithDistanceBounds(2, 8), WithZoomStep(1))
	o.Zoom(10)
	if o.Distance() != 2 {
		t.Fatalf("Zoom in: distance = %v, want 2", o.Distance())
	}
	o.Zoom(-100)
	if o.Distance() != 8 {
		t.Fatalf("Zoom out: distance = %v, want 8", o.Distance())
	}
	o.SetDistance(1)
	if lo, _ := o.DistanceBounds(); o.Distance() != lo {
		t.Fatalf("SetDistance: distance = %v, want %v", o.Distance(), lo)
	}
}

func TestOrbitInvertedBoundsIgnored(t *testing.T) {
	o := NewOrbit(WithDistanceBounds(9, 3), WithLatitudeLimit(-1))
	if lo, hi := o.DistanceBounds(); lo != 1.5 || hi != 40 {
		t.Fatalf("DistanceBounds: got %v..%v, want defaults", lo, hi)
	}
	o.SetLatitude(10)
	if !near(o.Latitude(), math.Pi/2-0.05, 1e-6) {
		t.Fatalf("Latitude: got %v, want default limit", o.Latitude())
	}
}

func TestOrbitDragClampsLatitude(t *testing.T) {
	o := NewOrbit(WithLatitudeLimit(1), WithDragSensitivity(0.01))
	o.Drag(0, 1000)
	if o.Latitude() != 1 {
		t.Fatalf("Drag: latitude = %v, want 1", o.Latitude())
	}
	o.Drag(0, -5000)
	if o.Latitude() != -1 {
		t.Fatalf("Drag: latitude = %v, want -1", o.Latitude())
	}
	o.Drag(-100, 0)
	if !near(o.Longitude(), 1, 1e-5) {
		t.Fatalf("Drag: longitude = %v, want 1", o.Longitude())
	}
}

func TestOrbitStepWrapsLongitude(t *testing.T) {
	o := NewOrbit(WithKeyStep(0.5))
	o.Step(-1, 0)
	if lon := o.Longitude(); lon < 0 || lon >= 2*math.Pi {
		t.Fatalf("Step west: longitude = %v, want in [0, 2π)", lon)
	}
	o.Step(1, 0)
	if lon := o.Longitude(); !near(lon, 0, 1e-5) && !near(lon, 2*math.Pi, 1e-5) {
		t.Fatalf("Step east: longitude = %v, want 0", lon)
	}
	o.Step(0, -1)
	if !near(o.Latitude(), -0.5, 1e-6) {
		t.Fatalf("Step south: latitude = %v, want -0.5", o.Latitude())
	}
}

func TestOrbitHome(t *testing.T) {
	o := NewOrbit(WithDistance(5), WithLongitude(0.5))
	x0, y0, z0 := o.Eye()
	o.Step(-1, 1)
	o.Zoom(3)
	o.SetFocus(1, 1, 1)
	if fx, _, _ := o.Focus(); fx != 1 {
		t.Fatalf("SetFocus: focus x = %v, want 1", fx)
	}
	o.Home()
	x, y, z := o.Eye()
	if x != x0 || y != y0 || z != z0 {
		t.Fatalf("Home: got (%v, %v, %v), want (%v, %v, %v)", x, y, z, x0, y0, z0)
	}
	if fx, fy, fz := o.Focus(); fx != 0 || fy != 0 || fz != 0 {
		t.Fatalf("Home: focus = (%v, %v, %v), want origin", fx, fy, fz)
	}
}

func TestOrbitFollowsFocus(t *testing.T) {
	o := NewOrbit(WithDistance(3), WithFocus(0, 2, 0))
	_, y, z := o.Eye()
	if !near(y, 2, 1e-6) || !near(z, 3, 1e-6) {
		t.Fatalf("Eye: got y=%v z=%v, want y=2 z=3", y, z)
	}
}

func TestCameraFrustumContainsGlobe(t *testing.T) {
	cam := NewCamera(WithOrbit(NewOrbit(WithDistance(4))), WithAspect(16.0/9.0))
	if f := cam.Frustum(); !f.ContainsSphere([3]float32{0, 0, 0}, 1) {
		t.Fatal("Frustum: unit globe at distance 4 should be fully visible")
	}
	cam.Orbit().SetDistance(1.5)
	cam.SetFov(0.2)
	cam.Update()
	if f := cam.Frustum(); f.ContainsSphere([3]float32{0, 0, 0}, 1) {
		t.Fatal("Frustum: globe should overflow a narrow close view")
	}
}

func TestCameraViewPlacesGlobeInFront(t *testing.T) {
	cam := NewCamera(WithOrbit(NewOrbit(WithDistance(4))))
	if got := cam.View().Col(3).Z(); !near(got, -4, 1e-5) {
		t.Fatalf("View: globe centre depth = %v, want -4", got)
	}
	if vp, want := cam.ViewProjection(), cam.Projection().Mul4(cam.View()); !vp.ApproxEqual(want) {
		t.Fatal("ViewProjection: want Projection * View")
	}
}

func TestCameraWithoutOrbit(t *testing.T) {
	cam := NewCamera()
	cam.Update()
	if cam.Orbit() != nil {
		t.Fatal("Orbit: want nil")
	}
	if v := cam.View(); v != [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1} {
		t.Fatalf("View: got %v, want identity", v)
	}
}

func TestCameraSetAspectIgnoresInvalid(t *testing.T) {
	cam := NewCamera()
	cam.SetAspect(2)
	cam.SetAspect(0)
	cam.SetAspect(-1)
	if cam.Aspect() != 2 {
		t.Fatalf("SetAspect: got %v, want 2", cam.Aspect())
	}
	cam.SetClip(0.5, 50)
	if cam.Near() != 0.5 || cam.Far() != 50 {
		t.Fatalf("SetClip: got %v..%v", cam.Near(), cam.Far())
	}
}
