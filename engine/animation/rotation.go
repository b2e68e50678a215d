package animation

import (
	"math"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationKey is the slot key used by rotations unless overridden.
const RotationKey = "rotation"

// RotationAngle returns the angle of a rotation with the given base angle and
// period after elapsed seconds, wrapped to [0, 2π). It is a pure function of
// its inputs, so N whole periods always land on the base angle.
//
// Parameters:
//   - base: the angle at elapsed = 0, in radians
//   - elapsed: seconds since the rotation started
//   - period: seconds per revolution, must be > 0
//
// Returns:
//   - float64: the wrapped angle in radians
func RotationAngle(base, elapsed, period float64) float64 {
	cycles := math.Mod(elapsed, period) / period
	return common.WrapAngle(base + cycles*common.TwoPi)
}

// rotation is the implementation of the Rotation interface.
type rotation struct {
	key     string
	axis    mgl32.Vec3
	period  float64
	base    float64
	repeat  Repeat
	origin  mgl32.Quat
	elapsed float64
	cycles  int
}

// Rotation spins a node about a fixed axis at a constant rate.
type Rotation interface {
	Animation

	// Axis returns the normalized rotation axis.
	//
	// Returns:
	//   - mgl32.Vec3: unit axis
	Axis() mgl32.Vec3

	// Period returns the seconds per full revolution.
	//
	// Returns:
	//   - float32: the period
	Period() float32

	// Repeat returns how many cycles the rotation plays.
	//
	// Returns:
	//   - Repeat: cycle count or RepeatForever
	Repeat() Repeat

	// Angle returns the current angle in [0, 2π).
	//
	// Returns:
	//   - float64: the angle in radians
	Angle() float64

	// Orientation returns the current orientation: the base orientation followed
	// by Angle() about Axis().
	//
	// Returns:
	//   - mgl32.Quat: the orientation
	Orientation() mgl32.Quat

	// Reset rewinds the clock to zero.
	Reset()
}

var _ Rotation = &rotation{}

// NewRotation creates a rotation about axis taking period seconds per revolution.
// It repeats forever unless WithRepeat says otherwise.
//
// Parameters:
//   - axis: rotation axis, need not be normalized
//   - period: seconds per revolution
//   - options: variadic list of RotationBuilderOption functions
//
// Returns:
//   - Rotation: the rotation
//   - error: *InvalidAnimationParameterError if period <= 0 or the axis is zero
func NewRotation(axis [3]float32, period float32, options ...RotationBuilderOption) (Rotation, error) {
	p := float64(period)
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return nil, &InvalidAnimationParameterError{Param: "period", Value: p, Reason: "must be a finite value greater than 0"}
	}
	a := mgl32.Vec3(axis)
	l := float64(a.Len())
	if math.IsNaN(l) || l < 1e-6 {
		return nil, &InvalidAnimationParameterError{Param: "axis", Value: l, Reason: "must be non-zero"}
	}
	r := &rotation{
		key:    RotationKey,
		axis:   a.Normalize(),
		period: p,
		repeat: RepeatForever,
		origin: mgl32.QuatIdent(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r, nil
}

func (r *rotation) Key() string {
	return r.key
}

func (r *rotation) Advance(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || r.Done() {
		return
	}
	t := r.elapsed + dt
	whole := int(t / r.period)
	if r.repeat != RepeatForever && r.cycles+whole >= int(r.repeat) {
		r.cycles = int(r.repeat)
		r.elapsed = 0
		return
	}
	r.cycles += whole
	r.elapsed = math.Mod(t, r.period)
}

func (r *rotation) Elapsed() float64 {
	return r.elapsed
}

func (r *rotation) Done() bool {
	return r.repeat != RepeatForever && r.cycles >= int(r.repeat)
}

func (r *rotation) Apply(target Rotatable) {
	if target != nil {
		target.SetRotation(r.Orientation())
	}
}

func (r *rotation) Axis() mgl32.Vec3 {
	return r.axis
}

func (r *rotation) Period() float32 {
	return float32(r.period)
}

func (r *rotation) Repeat() Repeat {
	return r.repeat
}

func (r *rotation) Angle() float64 {
	return RotationAngle(r.base, r.elapsed, r.period)
}

func (r *rotation) Orientation() mgl32.Quat {
	spin := mgl32.QuatRotate(float32(r.Angle()), r.axis)
	return r.origin.Mul(spin).Normalize()
}

func (r *rotation) Reset() {
	r.elapsed = 0
	r.cycles = 0
}
