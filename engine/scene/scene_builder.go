package scene

import "github.com/Carmen-Shannon/oxy-globe/engine/node"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithNodes adds initial nodes as children of the root.
// Nodes that already belong to a scene are skipped.
//
// Parameters:
//   - nodes: the nodes to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithNodes(nodes ...node.Node) SceneBuilderOption {
	return func(s *scene) {
		for _, n := range nodes {
			if n != nil && n.ID() == node.Nil {
				s.insert(n, RootID)
			}
		}
	}
}
