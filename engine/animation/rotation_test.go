package animation

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type recorder struct {
	q mgl32.Quat
	n int
}

func (r *recorder) SetRotation(q mgl32.Quat) {
	r.q = q
	r.n++
}

// sameOrientation compares orientations up to the quaternion double cover.
func sameOrientation(a, b mgl32.Quat, eps float64) bool {
	return math.Abs(math.Abs(float64(a.Dot(b)))-1) <= eps
}

func TestNewRotationValidation(t *testing.T) {
	cases := []struct {
		name   string
		axis   [3]float32
		period float32
		param  string
	}{
		{"zero period", [3]float32{0, 1, 0}, 0, "period"},
		{"negative period", [3]float32{0, 1, 0}, -3, "period"},
		{"nan period", [3]float32{0, 1, 0}, float32(math.NaN()), "period"},
		{"zero axis", [3]float32{}, 10, "axis"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRotation(tc.axis, tc.period)
			var ip *InvalidAnimationParameterError
			if r != nil || !errors.As(err, &ip) || ip.Param != tc.param {
				t.Fatalf("NewRotation: got (%v, %v), want %s error", r, err, tc.param)
			}
		})
	}
}

func TestRotationDefaults(t *testing.T) {
	r, err := NewRotation([3]float32{0, 2, 0}, 20)
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	if r.Key() != RotationKey || r.Repeat() != RepeatForever || r.Period() != 20 {
		t.Fatalf("defaults: key=%s repeat=%d period=%v", r.Key(), r.Repeat(), r.Period())
	}
	if r.Axis() != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("Axis: got %v, want normalized (0, 1, 0)", r.Axis())
	}
}

func TestRotationAngleIsPure(t *testing.T) {
	if got := RotationAngle(0, 5, 20); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("RotationAngle(0, 5, 20): got %v, want π/2", got)
	}
	if got := RotationAngle(1, 60, 20); math.Abs(got-1) > 1e-9 {
		t.Fatalf("RotationAngle(1, 3 periods): got %v, want 1", got)
	}
	if got := RotationAngle(-math.Pi/2, 0, 20); math.Abs(got-3*math.Pi/2) > 1e-12 {
		t.Fatalf("RotationAngle(-π/2): got %v, want 3π/2", got)
	}
}

func TestRotationReturnsAfterWholePeriods(t *testing.T) {
	r, _ := NewRotation([3]float32{0.3, 1, 0.1}, 7, WithBaseAngle(0.4))
	start := r.Orientation()
	const dt = 1.0 / 60
	for periods := 1; periods <= 5; periods++ {
		steps := int(math.Round(7 / dt))
		for range steps {
			r.Advance(dt)
		}
		if !sameOrientation(r.Orientation(), start, 1e-5) {
			t.Fatalf("after %d periods orientation %v, want %v", periods, r.Orientation(), start)
		}
		if r.Elapsed() < 0 || r.Elapsed() >= 7 {
			t.Fatalf("Elapsed: %v outside [0, period)", r.Elapsed())
		}
	}
	if r.Done() {
		t.Fatal("Done: infinite rotation never finishes")
	}
}

func TestRotationLargeStep(t *testing.T) {
	r, _ := NewRotation([3]float32{0, 1, 0}, 10)
	r.Advance(1e6 + 2.5)
	if math.Abs(r.Angle()-math.Pi/2) > 1e-6 {
		t.Fatalf("Angle: got %v, want π/2", r.Angle())
	}
	r.Advance(-5)
	if math.Abs(r.Elapsed()-2.5) > 1e-6 {
		t.Fatalf("Advance(negative): elapsed = %v, want unchanged", r.Elapsed())
	}
}

func TestRotationApply(t *testing.T) {
	r, _ := NewRotation([3]float32{0, 1, 0}, 4)
	r.Advance(1)
	rec := &recorder{}
	r.Apply(rec)
	want := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	if rec.n != 1 || !sameOrientation(rec.q, want, 1e-6) {
		t.Fatalf("Apply: got %v, want %v", rec.q, want)
	}
	r.Apply(nil)
}

func TestRotationBaseOrientation(t *testing.T) {
	tilt := mgl32.QuatRotate(mgl32.DegToRad(23.4), mgl32.Vec3{0, 0, 1})
	r, _ := NewRotation([3]float32{0, 1, 0}, 10, WithBaseOrientation(tilt))
	if !sameOrientation(r.Orientation(), tilt, 1e-6) {
		t.Fatalf("Orientation at t=0: got %v, want tilt", r.Orientation())
	}
}

func TestRotationRepeatOnce(t *testing.T) {
	r, _ := NewRotation([3]float32{1, 0, 0}, 2, WithRepeat(RepeatOnce), WithKey("wobble"), WithBaseAngle(0.3))
	if r.Key() != "wobble" {
		t.Fatalf("WithKey: got %s", r.Key())
	}
	r.Advance(1)
	if r.Done() {
		t.Fatal("Done: half a cycle in")
	}
	r.Advance(1.5)
	if !r.Done() {
		t.Fatal("Done: one full cycle elapsed")
	}
	if math.Abs(r.Angle()-0.3) > 1e-9 {
		t.Fatalf("Angle after finish: got %v, want base 0.3", r.Angle())
	}
	r.Advance(0.5)
	if r.Elapsed() != 0 {
		t.Fatal("Advance: finished rotation must hold its pose")
	}
	r.Reset()
	if r.Done() {
		t.Fatal("Reset: rotation should play again")
	}
}
