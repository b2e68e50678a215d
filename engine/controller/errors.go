package controller

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-globe/engine/material"
)

// SurfaceUnavailableError reports a texture swap that arrived after the scene it
// targeted was torn down. The swap is dropped and the texture reference released.
type SurfaceUnavailableError struct {
	// Texture is the identifier of the texture that arrived late.
	Texture string
	// Channel is the material channel the swap targeted.
	Channel material.Channel
}

func (e *SurfaceUnavailableError) Error() string {
	return fmt.Sprintf("surface unavailable: %s swap of texture %q discarded", e.Channel, e.Texture)
}
