package clicktrack

import (
	"time"

	"github.com/grindlemire/clicktrack/pkg/geom"
)

// Action is the kind of a pointer event.
type Action int

const (
	// ActionDown indicates the pointer was pressed.
	ActionDown Action = iota
	// ActionUp indicates the pointer was released. This is the tap signal.
	ActionUp
	// ActionMove indicates motion while the pointer is down.
	ActionMove
	// ActionCancel indicates the gesture was aborted by the host.
	ActionCancel
)

// String returns a human-readable representation of the action.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMove:
		return "move"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseAction converts a string produced by Action.String back to an Action.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "down":
		return ActionDown, true
	case "up":
		return ActionUp, true
	case "move":
		return ActionMove, true
	case "cancel":
		return ActionCancel, true
	default:
		return 0, false
	}
}

// MotionEvent is a single pointer event in window coordinates.
type MotionEvent struct {
	Action Action
	// X and Y are window coordinates with sub-pixel precision.
	X, Y float64
	// Time is when the host observed the event. Zero if unknown.
	Time time.Time
}

// Point returns the event coordinate.
func (e MotionEvent) Point() geom.Point {
	return geom.Pt(e.X, e.Y)
}

// IsPointerUp reports whether the event signals a tap.
func (e MotionEvent) IsPointerUp() bool {
	return e.Action == ActionUp
}

// KeyEvent is a keyboard event. The instrumentation never inspects it; it is
// forwarded untouched.
type KeyEvent struct {
	Key  string
	Down bool
}
