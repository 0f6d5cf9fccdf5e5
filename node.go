package clicktrack

// Node is a read-only view of one node in the host's rendered UI tree.
//
// Nodes are borrowed for the duration of a single resolution and never
// retained; the host may mutate the tree between pointer events.
type Node interface {
	// IsPlaced reports whether the node currently occupies screen space.
	IsPlaced() bool

	// ZSortedChildren returns the children in rendering order. The last child
	// is drawn on top.
	ZSortedChildren() []Node

	// Modifiers returns the modifiers attached to the node.
	Modifiers() []Modifier

	// SemanticsID returns the node's stable semantics identifier.
	SemanticsID() int
}

// Modifier is one modifier attached to a node. Only modifiers that carry a
// semantics configuration matter for click detection.
type Modifier interface {
	Semantics() (Semantics, bool)
}

// View is a node in the host's view hierarchy. Views that host a UI tree
// return its root node; plain containers return nil and expose children.
type View interface {
	Root() Node
	Children() []View
}

// findRoot returns the root node of the first view, in depth-first order,
// that hosts a tree.
func findRoot(v View) Node {
	if v == nil {
		return nil
	}
	if root := v.Root(); root != nil {
		return root
	}
	for _, child := range v.Children() {
		if root := findRoot(child); root != nil {
			return root
		}
	}
	return nil
}
