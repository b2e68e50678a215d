package node

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-globe/engine/animation"
	"github.com/Carmen-Shannon/oxy-globe/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode(WithName("globe"))
	if n.ID() != Nil || n.Name() != "globe" || !n.Enabled() {
		t.Fatalf("NewNode: id=%d name=%q enabled=%v", n.ID(), n.Name(), n.Enabled())
	}
	if !n.LocalMatrix().ApproxEqual(mgl32.Ident4()) {
		t.Fatalf("LocalMatrix: got %v, want identity", n.LocalMatrix())
	}
	if n.Geometry() != nil || n.Light() != nil || n.Camera() != nil {
		t.Fatal("NewNode: attachments should be empty")
	}
}

func TestLocalMatrixComposesTRS(t *testing.T) {
	q := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	n := NewNode(WithPosition(1, 2, 3), WithRotation(q), WithScale(2, 2, 2))
	p := n.LocalMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	// scale to (2,0,0), rotate +90° about Y to (0,0,-2), translate.
	want := mgl32.Vec4{1, 2, 1, 1}
	if !p.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("LocalMatrix * (1,0,0): got %v, want %v", p, want)
	}
}

func TestSetRotationNormalizes(t *testing.T) {
	n := NewNode()
	n.SetRotation(mgl32.Quat{W: 2})
	if math.Abs(float64(n.Rotation().Len()-1)) > 1e-6 {
		t.Fatalf("SetRotation: |q| = %v, want 1", n.Rotation().Len())
	}
	n.SetRotation(mgl32.Quat{})
	if n.Rotation() != mgl32.QuatIdent() {
		t.Fatalf("SetRotation(zero): got %v, want identity", n.Rotation())
	}
}

func TestAddAnimationReplacesByKey(t *testing.T) {
	n := NewNode()
	first, _ := animation.NewRotation([3]float32{0, 1, 0}, 10)
	second, _ := animation.NewRotation([3]float32{0, 1, 0}, 30)
	if prev := n.AddAnimation(first); prev != nil {
		t.Fatal("AddAnimation: empty slot should return nil")
	}
	if prev := n.AddAnimation(second); prev != first {
		t.Fatal("AddAnimation: should return the replaced rotation")
	}
	if got := len(n.Animations()); got != 1 {
		t.Fatalf("Animations: got %d, want 1", got)
	}
	r := n.Animation(animation.RotationKey).(animation.Rotation)
	if r.Period() != 30 {
		t.Fatalf("Animation: period = %v, want 30", r.Period())
	}
	if n.AddAnimation(nil) != nil || len(n.Animations()) != 1 {
		t.Fatal("AddAnimation(nil): should be ignored")
	}
}

func TestUpdateDrivesRotation(t *testing.T) {
	n := NewNode()
	r, _ := animation.NewRotation([3]float32{0, 1, 0}, 4)
	n.AddAnimation(r)
	n.Update(1)
	want := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	if math.Abs(math.Abs(float64(n.Rotation().Dot(want)))-1) > 1e-6 {
		t.Fatalf("Update: rotation = %v, want %v", n.Rotation(), want)
	}
}

func TestAnimationsOrderedAndCleared(t *testing.T) {
	n := NewNode()
	b, _ := animation.NewRotation([3]float32{1, 0, 0}, 1, animation.WithKey("b"))
	a, _ := animation.NewRotation([3]float32{1, 0, 0}, 1, animation.WithKey("a"))
	n.AddAnimation(b)
	n.AddAnimation(a)
	list := n.Animations()
	if len(list) != 2 || list[0].Key() != "a" || list[1].Key() != "b" {
		t.Fatalf("Animations: got %d in wrong order", len(list))
	}
	if !n.RemoveAnimation("a") || n.RemoveAnimation("a") {
		t.Fatal("RemoveAnimation: first call true, second false")
	}
	if n.ClearAnimations() != 1 || len(n.Animations()) != 0 {
		t.Fatal("ClearAnimations: should drop the remaining animation")
	}
}

func TestAttachments(t *testing.T) {
	l := light.NewLight(light.LightTypeAmbient)
	n := NewNode(WithLight(l), WithEnabled(false))
	if n.Light() != l || n.Enabled() {
		t.Fatal("options not applied")
	}
	n.SetLight(nil)
	n.SetEnabled(true)
	n.SetID(7)
	if n.Light() != nil || !n.Enabled() || n.ID() != 7 {
		t.Fatal("setters not applied")
	}
}
