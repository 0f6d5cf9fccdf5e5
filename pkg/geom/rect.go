package geom

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a Rect from its four edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectAt creates a Rect with its top-left corner at p and the given size.
func RectAt(p Point, width, height float64) Rect {
	return Rect{Left: p.X, Top: p.Y, Right: p.X + width, Bottom: p.Y + height}
}

// Width returns the horizontal extent. It is negative for inverted rects.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent. It is negative for inverted rects.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// All four edges are inside. A degenerate rect contains nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.IsEmpty() {
		return false
	}
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// MoveTo returns a Rect of the same size with its top-left corner at p.
func (r Rect) MoveTo(p Point) Rect {
	return RectAt(p, r.Width(), r.Height())
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}
