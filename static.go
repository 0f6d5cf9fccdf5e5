package clicktrack

import "github.com/grindlemire/clicktrack/pkg/geom"

// StaticNode is an in-memory Node that carries its own window placement.
// It backs scenario replays, the terminal host and tests.
type StaticNode struct {
	ID       int
	Unplaced bool
	Bounds   geom.Rect
	// Position overrides the window position. Nil means Bounds' top-left.
	Position *geom.Point
	Children []*StaticNode
	Mods     []Modifier
	// GeometryErr, when set, is returned by StaticGeometry for this node.
	GeometryErr error
}

var _ Node = (*StaticNode)(nil)

// IsPlaced implements Node.
func (n *StaticNode) IsPlaced() bool {
	return !n.Unplaced
}

// ZSortedChildren implements Node.
func (n *StaticNode) ZSortedChildren() []Node {
	out := make([]Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Modifiers implements Node.
func (n *StaticNode) Modifiers() []Modifier {
	return n.Mods
}

// SemanticsID implements Node.
func (n *StaticNode) SemanticsID() int {
	return n.ID
}

// Walk calls fn for n and every descendant in rendering order.
func (n *StaticNode) Walk(fn func(*StaticNode)) {
	fn(n)
	for _, c := range n.Children {
		if c != nil {
			c.Walk(fn)
		}
	}
}

// StaticGeometry places StaticNodes using their own Bounds and Position.
// Other node types have no geometry.
type StaticGeometry struct{}

var _ Geometry = StaticGeometry{}

// BoundsInWindow implements Geometry.
func (StaticGeometry) BoundsInWindow(n Node) (geom.Rect, error) {
	sn, ok := n.(*StaticNode)
	if !ok {
		return geom.Rect{}, ErrNoGeometry
	}
	if sn.GeometryErr != nil {
		return geom.Rect{}, sn.GeometryErr
	}
	return sn.Bounds, nil
}

// PositionInWindow implements Geometry.
func (StaticGeometry) PositionInWindow(n Node) (geom.Point, error) {
	sn, ok := n.(*StaticNode)
	if !ok {
		return geom.Point{}, ErrNoGeometry
	}
	if sn.GeometryErr != nil {
		return geom.Point{}, sn.GeometryErr
	}
	if sn.Position != nil {
		return *sn.Position, nil
	}
	return sn.Bounds.TopLeft(), nil
}

// StaticView is an in-memory View.
type StaticView struct {
	Tree  Node
	Views []View
}

// Root implements View.
func (v *StaticView) Root() Node {
	if v.Tree == nil {
		return nil
	}
	return v.Tree
}

// Children implements View.
func (v *StaticView) Children() []View {
	return v.Views
}

// BasicWindow is a Window holding a callback and a content view.
type BasicWindow struct {
	cb      InputCallback
	content View
}

var _ Window = (*BasicWindow)(nil)

// NewBasicWindow creates a window with the given callback and content.
func NewBasicWindow(cb InputCallback, content View) *BasicWindow {
	return &BasicWindow{cb: cb, content: content}
}

// Callback implements Window.
func (w *BasicWindow) Callback() InputCallback {
	return w.cb
}

// SetCallback implements Window.
func (w *BasicWindow) SetCallback(cb InputCallback) {
	w.cb = cb
}

// Content implements Window.
func (w *BasicWindow) Content() View {
	return w.content
}

// SetContent replaces the content view.
func (w *BasicWindow) SetContent(v View) {
	w.content = v
}

// DispatchTouchEvent delivers ev through the installed callback, as the host
// input system would.
func (w *BasicWindow) DispatchTouchEvent(ev MotionEvent) bool {
	if w.cb == nil {
		return false
	}
	return w.cb.DispatchTouchEvent(ev)
}

// RecordingCallback is an InputCallback that records what it receives.
type RecordingCallback struct {
	Touches    []MotionEvent
	Keys       []KeyEvent
	Focus      []bool
	ConsumeAll bool
}

var _ InputCallback = (*RecordingCallback)(nil)

// DispatchTouchEvent implements InputCallback.
func (c *RecordingCallback) DispatchTouchEvent(ev MotionEvent) bool {
	c.Touches = append(c.Touches, ev)
	return c.ConsumeAll
}

// DispatchKeyEvent implements InputCallback.
func (c *RecordingCallback) DispatchKeyEvent(ev KeyEvent) bool {
	c.Keys = append(c.Keys, ev)
	return c.ConsumeAll
}

// OnWindowFocusChanged implements InputCallback.
func (c *RecordingCallback) OnWindowFocusChanged(hasFocus bool) {
	c.Focus = append(c.Focus, hasFocus)
}
