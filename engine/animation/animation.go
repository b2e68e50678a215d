// Package animation drives node transforms over time. Animations are keyed so a
// node holds at most one animation per key.
package animation

import "github.com/go-gl/mathgl/mgl32"

// Rotatable is anything whose orientation an animation can drive.
type Rotatable interface {
	SetRotation(q mgl32.Quat)
}

// Repeat is the number of full cycles an animation plays.
type Repeat int

const (
	// RepeatForever plays without end.
	RepeatForever Repeat = -1
	// RepeatOnce plays a single cycle and holds the final pose.
	RepeatOnce Repeat = 1
)

// Animation is a time-driven change to a node transform.
type Animation interface {
	// Key identifies the animation slot on its node. Installing an animation
	// replaces any other with the same key.
	//
	// Returns:
	//   - string: the slot key
	Key() string

	// Advance moves the animation clock forward by dt seconds. Negative dt is ignored.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous Advance
	Advance(dt float64)

	// Elapsed returns the animation clock. For infinite animations it stays in [0, period).
	//
	// Returns:
	//   - float64: clock in seconds
	Elapsed() float64

	// Done reports whether a finite animation has played all its cycles.
	//
	// Returns:
	//   - bool: true once finished, always false for RepeatForever
	Done() bool

	// Apply writes the current pose to target.
	//
	// Parameters:
	//   - target: the transform to drive
	Apply(target Rotatable)
}
