package clicktrack

import (
	"errors"

	"github.com/grindlemire/clicktrack/pkg/geom"
)

// ErrNoGeometry is returned by a Geometry that cannot place a node.
var ErrNoGeometry = errors.New("node geometry unavailable")

// Geometry answers placement queries for nodes. Both results must reflect the
// node's placement at call time, in the same coordinate space as pointer
// events.
type Geometry interface {
	// BoundsInWindow returns the node's bounding rectangle in window space.
	BoundsInWindow(n Node) (geom.Rect, error)

	// PositionInWindow returns the node's top-left position in window space.
	PositionInWindow(n Node) (geom.Point, error)
}

// hitRect returns the window-space area a node answers taps in: the size of
// its bounds anchored at its window position.
func hitRect(g Geometry, n Node) (geom.Rect, error) {
	bounds, err := g.BoundsInWindow(n)
	if err != nil {
		return geom.Rect{}, err
	}
	pos, err := g.PositionInWindow(n)
	if err != nil {
		return geom.Rect{}, err
	}
	return bounds.MoveTo(pos), nil
}
