// Package scene holds the scene tree: a single root node owning its children,
// with each child referring back to its parent by ID.
package scene

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

// RootID is the ID of every scene's root node.
const RootID node.ID = 1

// entry is a node plus its tree links.
type entry struct {
	n        node.Node
	parent   node.ID
	children []node.ID
}

type scene struct {
	mu *sync.RWMutex

	name         string
	entries      map[node.ID]*entry
	nextID       node.ID
	activeCamera node.ID
}

// Scene defines the interface for a tree of nodes with one root and at most one
// active camera. Parents own their children: removing a node removes its subtree.
type Scene interface {
	// Name retrieves the scene name.
	//
	// Returns:
	//   - string: the name of the scene
	Name() string

	// SetName sets the scene name.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Root returns the root node. It exists for the scene's whole lifetime.
	//
	// Returns:
	//   - node.Node: the root
	Root() node.Node

	// Add attaches a detached node as the last child of parent.
	//
	// Parameters:
	//   - n: the node to attach, must not already belong to a scene
	//   - parent: the parent ID, node.Nil for the root
	//
	// Returns:
	//   - node.ID: the ID assigned to n
	//   - error: ErrNodeAttached or ErrNodeNotFound
	Add(n node.Node, parent node.ID) (node.ID, error)

	// Get returns the node with the given ID, or nil.
	//
	// Parameters:
	//   - id: the node ID
	//
	// Returns:
	//   - node.Node: the node or nil
	Get(id node.ID) node.Node

	// Parent returns the ID of a node's parent.
	//
	// Parameters:
	//   - id: the node ID
	//
	// Returns:
	//   - node.ID: the parent, node.Nil for the root or an unknown ID
	Parent(id node.ID) node.ID

	// Children returns a node's children in insertion order.
	//
	// Parameters:
	//   - id: the node ID
	//
	// Returns:
	//   - []node.Node: the children, nil for an unknown ID
	Children(id node.ID) []node.Node

	// Remove detaches a node and its whole subtree. Removed nodes lose their
	// animations and their IDs are reset to node.Nil. If the active camera is
	// removed the scene has no active camera afterwards.
	//
	// Parameters:
	//   - id: the node ID
	//
	// Returns:
	//   - []node.Node: the removed nodes, subtree root first
	//   - error: ErrRootRemoval or ErrNodeNotFound
	Remove(id node.ID) ([]node.Node, error)

	// Reparent moves a node (with its subtree) under a new parent.
	//
	// Parameters:
	//   - id: the node to move
	//   - parent: the new parent
	//
	// Returns:
	//   - error: ErrRootRemoval, ErrNodeNotFound or ErrCycle
	Reparent(id, parent node.ID) error

	// WorldMatrix composes the local matrices from the root down to the node.
	//
	// Parameters:
	//   - id: the node ID
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix
	//   - error: ErrNodeNotFound
	WorldMatrix(id node.ID) (mgl32.Mat4, error)

	// SetActiveCamera makes the camera of node id the active one, deactivating any other.
	//
	// Parameters:
	//   - id: a node carrying a camera
	//
	// Returns:
	//   - error: ErrNodeNotFound or ErrNotCamera
	SetActiveCamera(id node.ID) error

	// ActiveCamera returns the node holding the active camera, or nil.
	//
	// Returns:
	//   - node.Node: the active camera node or nil
	ActiveCamera() node.Node

	// Count returns the number of nodes, including the root.
	//
	// Returns:
	//   - int: the node count
	Count() int

	// Nodes returns every node in depth-first pre-order starting at the root.
	//
	// Returns:
	//   - []node.Node: the nodes
	Nodes() []node.Node

	// Walk visits nodes depth-first from the root. Returning false from fn skips
	// the visited node's children. fn must not call back into the scene.
	//
	// Parameters:
	//   - fn: visitor receiving each node and its depth (root = 0)
	Walk(fn func(n node.Node, depth int) bool)

	// Lights returns the enabled nodes carrying an enabled light, in tree order.
	//
	// Returns:
	//   - []node.Node: the light nodes
	Lights() []node.Node

	// Update advances every enabled node's animations by dt seconds and refreshes
	// camera matrices. Disabled nodes and their subtrees are skipped.
	//
	// Parameters:
	//   - dt: elapsed seconds
	Update(dt float64)

	// Clear removes every node except the root, and clears the root's animations
	// and attachments. No camera is active afterwards.
	//
	// Returns:
	//   - []node.Node: the removed nodes, excluding the root
	Clear() []node.Node
}

var _ Scene = &scene{}

// NewScene creates a scene containing only its root node.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:      &sync.RWMutex{},
		name:    name,
		entries: make(map[node.ID]*entry),
		nextID:  RootID,
	}
	root := node.NewNode(node.WithName("root"))
	s.insert(root, node.Nil)

	for _, option := range options {
		option(s)
	}
	return s
}

// insert assigns the next ID to n and links it under parent. Caller must hold s.mu write lock.
func (s *scene) insert(n node.Node, parent node.ID) node.ID {
	id := s.nextID
	s.nextID++
	n.SetID(id)
	s.entries[id] = &entry{n: n, parent: parent}
	if p, ok := s.entries[parent]; ok {
		p.children = append(p.children, id)
	}
	return id
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Root() node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[RootID].n
}

func (s *scene) Add(n node.Node, parent node.ID) (node.ID, error) {
	if n == nil {
		return node.Nil, fmt.Errorf("add nil node: %w", ErrNodeNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID() != node.Nil {
		return node.Nil, fmt.Errorf("add node %d: %w", n.ID(), ErrNodeAttached)
	}
	if parent == node.Nil {
		parent = RootID
	}
	if _, ok := s.entries[parent]; !ok {
		return node.Nil, fmt.Errorf("add under parent %d: %w", parent, ErrNodeNotFound)
	}
	return s.insert(n, parent), nil
}

func (s *scene) Get(id node.ID) node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[id]; ok {
		return e.n
	}
	return nil
}

func (s *scene) Parent(id node.ID) node.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[id]; ok {
		return e.parent
	}
	return node.Nil
}

func (s *scene) Children(id node.ID) []node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return nil
	}
	out := make([]node.Node, 0, len(e.children))
	for _, c := range e.children {
		out = append(out, s.entries[c].n)
	}
	return out
}

func (s *scene) Remove(id node.ID) ([]node.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == RootID {
		return nil, ErrRootRemoval
	}
	e, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("remove node %d: %w", id, ErrNodeNotFound)
	}
	if p, ok := s.entries[e.parent]; ok {
		p.children = slices.DeleteFunc(p.children, func(c node.ID) bool { return c == id })
	}
	return s.drop(id), nil
}

// drop unlinks the subtree rooted at id from the entry map. The caller detaches
// id from its parent. Caller must hold s.mu write lock.
func (s *scene) drop(id node.ID) []node.Node {
	var removed []node.Node
	stack := []node.ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := s.entries[cur]
		delete(s.entries, cur)
		if cur == s.activeCamera {
			s.activeCamera = node.Nil
		}
		e.n.ClearAnimations()
		e.n.SetID(node.Nil)
		removed = append(removed, e.n)
		for i := len(e.children) - 1; i >= 0; i-- {
			stack = append(stack, e.children[i])
		}
	}
	return removed
}

func (s *scene) Reparent(id, parent node.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == RootID {
		return ErrRootRemoval
	}
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("reparent node %d: %w", id, ErrNodeNotFound)
	}
	if parent == node.Nil {
		parent = RootID
	}
	np, ok := s.entries[parent]
	if !ok {
		return fmt.Errorf("reparent under %d: %w", parent, ErrNodeNotFound)
	}
	for cur := parent; cur != node.Nil; cur = s.entries[cur].parent {
		if cur == id {
			return fmt.Errorf("reparent %d under %d: %w", id, parent, ErrCycle)
		}
	}
	if e.parent == parent {
		return nil
	}
	if op, ok := s.entries[e.parent]; ok {
		op.children = slices.DeleteFunc(op.children, func(c node.ID) bool { return c == id })
	}
	e.parent = parent
	np.children = append(np.children, id)
	return nil
}

func (s *scene) WorldMatrix(id node.ID) (mgl32.Mat4, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.entries[id]; !ok {
		return mgl32.Ident4(), fmt.Errorf("world matrix of %d: %w", id, ErrNodeNotFound)
	}
	m := mgl32.Ident4()
	for cur := id; cur != node.Nil; cur = s.entries[cur].parent {
		m = s.entries[cur].n.LocalMatrix().Mul4(m)
	}
	return m, nil
}

func (s *scene) SetActiveCamera(id node.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("activate camera %d: %w", id, ErrNodeNotFound)
	}
	if e.n.Camera() == nil {
		return fmt.Errorf("activate camera %d: %w", id, ErrNotCamera)
	}
	s.activeCamera = id
	return nil
}

func (s *scene) ActiveCamera() node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[s.activeCamera]; ok {
		return e.n
	}
	return nil
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *scene) Nodes() []node.Node {
	out := make([]node.Node, 0, s.Count())
	s.Walk(func(n node.Node, _ int) bool {
		out = append(out, n)
		return true
	})
	return out
}

func (s *scene) Walk(fn func(n node.Node, depth int) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.walk(RootID, 0, fn)
}

// walk is the recursive step of Walk. Caller must hold s.mu.
func (s *scene) walk(id node.ID, depth int, fn func(n node.Node, depth int) bool) {
	e := s.entries[id]
	if !fn(e.n, depth) {
		return
	}
	for _, c := range e.children {
		s.walk(c, depth+1, fn)
	}
}

func (s *scene) Lights() []node.Node {
	var out []node.Node
	s.Walk(func(n node.Node, _ int) bool {
		if !n.Enabled() {
			return false
		}
		if l := n.Light(); l != nil && l.Enabled() {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (s *scene) Update(dt float64) {
	s.Walk(func(n node.Node, _ int) bool {
		if !n.Enabled() {
			return false
		}
		n.Update(dt)
		if cam := n.Camera(); cam != nil {
			cam.Update()
		}
		return true
	})
}

func (s *scene) Clear() []node.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	root := s.entries[RootID]
	var removed []node.Node
	for _, c := range root.children {
		removed = append(removed, s.drop(c)...)
	}
	root.children = nil
	root.n.ClearAnimations()
	root.n.SetGeometry(nil)
	root.n.SetLight(nil)
	root.n.SetCamera(nil)
	s.activeCamera = node.Nil
	return removed
}
