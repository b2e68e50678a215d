package animation

import "github.com/go-gl/mathgl/mgl32"

// RotationBuilderOption is a functional option for configuring a Rotation.
type RotationBuilderOption func(*rotation)

// WithKey overrides the slot key, so a node can carry more than one rotation.
//
// Parameters:
//   - key: the slot key
//
// Returns:
//   - RotationBuilderOption: option function to apply
func WithKey(key string) RotationBuilderOption {
	return func(r *rotation) {
		if key != "" {
			r.key = key
		}
	}
}

// WithBaseAngle sets the angle at time zero.
//
// Parameters:
//   - radians: the starting angle
//
// Returns:
//   - RotationBuilderOption: option function to apply
func WithBaseAngle(radians float64) RotationBuilderOption {
	return func(r *rotation) {
		r.base = radians
	}
}

// WithBaseOrientation sets the orientation the spin is applied on top of, such as
// an axial tilt.
//
// Parameters:
//   - q: the base orientation
//
// Returns:
//   - RotationBuilderOption: option function to apply
func WithBaseOrientation(q mgl32.Quat) RotationBuilderOption {
	return func(r *rotation) {
		r.origin = q.Normalize()
	}
}

// WithRepeat sets how many cycles the rotation plays. Values below 1 other than
// RepeatForever are ignored.
//
// Parameters:
//   - repeat: cycle count or RepeatForever
//
// Returns:
//   - RotationBuilderOption: option function to apply
func WithRepeat(repeat Repeat) RotationBuilderOption {
	return func(r *rotation) {
		if repeat == RepeatForever || repeat >= 1 {
			r.repeat = repeat
		}
	}
}
