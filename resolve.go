package clicktrack

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/grindlemire/clicktrack/pkg/geom"
)

// Target is the element a tap resolved to.
type Target struct {
	ID   int
	Name string
}

// errNodePanic wraps a panic raised by host code while a node was inspected.
var errNodePanic = errors.New("node accessor panicked")

// Resolver finds the element a window coordinate lands on.
//
// The zero value is not usable; Geometry must be set.
type Resolver struct {
	Geometry Geometry

	// MaxDepth bounds the walk. Nodes deeper than MaxDepth below the root are
	// skipped. Zero means unlimited.
	MaxDepth int

	// Logger receives debug diagnostics about skipped nodes. May be nil.
	Logger *slog.Logger
}

// Resolve returns the click target under pt in the tree rooted at root.
//
// Children are visited topmost first and depth first, so the deepest node
// drawn on top wins. A node resolves when it is placed, its hit rect contains
// pt and one of its modifiers declares a click action. Unplaced nodes prune
// their whole subtree.
//
// Containment includes every edge, but a hit rect with zero width or height
// contains nothing, not even points on its outline.
func (r *Resolver) Resolve(root Node, pt geom.Point) (Target, bool) {
	if root == nil || r.Geometry == nil || !pt.IsFinite() {
		return Target{}, false
	}
	return r.resolve(root, pt, 0)
}

func (r *Resolver) resolve(n Node, pt geom.Point, depth int) (Target, bool) {
	if r.MaxDepth > 0 && depth > r.MaxDepth {
		r.debug("node below depth limit skipped", n, nil)
		return Target{}, false
	}

	var placed bool
	if err := guard(func() error {
		placed = n.IsPlaced()
		return nil
	}); err != nil || !placed {
		return Target{}, false
	}

	var children []Node
	if err := guard(func() error {
		children = n.ZSortedChildren()
		return nil
	}); err != nil {
		r.debug("children unavailable", n, err)
	}

	// Last child renders on top.
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] == nil {
			continue
		}
		if t, ok := r.resolve(children[i], pt, depth+1); ok {
			return t, true
		}
	}

	return r.target(n, pt)
}

// target tests n itself. Geometry or semantics failures make n a miss.
func (r *Resolver) target(n Node, pt geom.Point) (t Target, ok bool) {
	err := guard(func() error {
		rect, err := hitRect(r.Geometry, n)
		if err != nil {
			return err
		}
		if !pt.In(rect) {
			return nil
		}
		s, clickable := clickSemantics(n)
		if !clickable {
			return nil
		}
		t = Target{ID: n.SemanticsID(), Name: s.DisplayName()}
		ok = true
		return nil
	})
	if err != nil {
		r.debug("node skipped", n, err)
		return Target{}, false
	}
	return t, ok
}

func (r *Resolver) debug(msg string, n Node, err error) {
	if r.Logger == nil {
		return
	}
	attrs := []any{slog.String("node", fmt.Sprintf("%T", n))}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	r.Logger.Debug(msg, attrs...)
}

// guard runs fn, converting a panic from host code into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", errNodePanic, p)
		}
	}()
	return fn()
}
