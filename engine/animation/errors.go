package animation

import "fmt"

// InvalidAnimationParameterError reports an animation parameter outside its valid range.
type InvalidAnimationParameterError struct {
	// Param is the offending parameter ("period" or "axis").
	Param string
	// Value is the rejected value; for an axis, its length.
	Value float64
	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidAnimationParameterError) Error() string {
	return fmt.Sprintf("invalid rotation %s %v: %s", e.Param, e.Value, e.Reason)
}
