package controller

import "fmt"

// Stats is a snapshot of the controller's scene for the profiler log line.
type Stats struct {
	Nodes           int
	Lights          int
	Channels        int
	PendingTextures int
	MissingTextures int
	// MeshBytes is the packed vertex plus index buffer size of the globe.
	MeshBytes int
	Frames          uint64
	Angle           float64
	Paused          bool
}

func (s Stats) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("Nodes: %d | Lights: %d | Channels: %d | Textures pending: %d missing: %d | Mesh: %.1f KiB | Frames: %d | Angle: %.3f rad (%s)",
		s.Nodes, s.Lights, s.Channels, s.PendingTextures, s.MissingTextures, float64(s.MeshBytes)/1024, s.Frames, s.Angle, state)
}
