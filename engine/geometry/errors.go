package geometry

import "fmt"

// InvalidGeometryParameterError reports a sphere parameter outside its valid range.
// No geometry is produced when it is returned.
type InvalidGeometryParameterError struct {
	// Param is the offending parameter ("radius", "segments" or "rings").
	Param string
	// Value is the rejected value.
	Value float64
	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidGeometryParameterError) Error() string {
	return fmt.Sprintf("invalid sphere %s %v: %s", e.Param, e.Value, e.Reason)
}
