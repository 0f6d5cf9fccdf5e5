package clicktrack

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"time"

	"fortio.org/safecast"
	"github.com/google/uuid"

	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

// Event names and attribute keys of the emitted records.
const (
	ScreenClickEventName = "app.screen.click"
	ViewClickEventName   = "app.widget.click"

	AttrCoordinateX = "app.screen.coordinate.x"
	AttrCoordinateY = "app.screen.coordinate.y"
	AttrWidgetID    = "app.widget.id"
	AttrWidgetName  = "app.widget.name"
)

// ErrNilGeometry is returned by New when no Geometry is supplied.
var ErrNilGeometry = errors.New("clicktrack: geometry must not be nil")

// Generator turns pointer-ups on a tracked window into click telemetry.
//
// A Generator tracks at most one window. It is not safe for concurrent use;
// call it from the goroutine that dispatches the window's input.
type Generator struct {
	telemetry  telemetry.Logger
	resolver   Resolver
	log        *slog.Logger
	clock      func() time.Time
	newSession func() string

	window  Window
	hook    *inputHook
	session string
}

// New creates a Generator emitting into logger and placing nodes with
// geometry. A nil logger discards records.
func New(logger telemetry.Logger, geometry Geometry, opts ...Option) (*Generator, error) {
	if geometry == nil {
		return nil, ErrNilGeometry
	}
	if logger == nil {
		logger = telemetry.Nop
	}

	g := &Generator{
		telemetry:  logger,
		resolver:   Resolver{Geometry: geometry},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:      time.Now,
		newSession: uuid.NewString,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.resolver.Logger = g.log
	return g, nil
}

// Tracking reports whether a window is currently tracked.
func (g *Generator) Tracking() bool {
	return g.window != nil
}

// Session returns the identifier of the current tracking session, or "" when
// not tracking.
func (g *Generator) Session() string {
	return g.session
}

// StartTracking installs the click hook on w. A window tracked before is
// released first. If w exposes no input callback it is left untouched and
// nothing is tracked.
func (g *Generator) StartTracking(w Window) {
	g.StopTracking()
	if w == nil {
		return
	}

	original := w.Callback()
	// Unwrap a hook left behind by an earlier session so chains never nest.
	if h, ok := original.(*inputHook); ok && h.gen == g {
		original = h.next
	}
	if original == nil {
		g.log.Warn("window exposes no input callback; click tracking disabled")
		return
	}

	hook := newInputHook(original, g)
	w.SetCallback(hook)

	g.window = w
	g.hook = hook
	g.session = g.newSession()
	g.log.Debug("click tracking started", slog.String("session", g.session))
}

// StopTracking restores the tracked window's original callback. If another
// wrapper was installed over the hook, the hook is disarmed in place instead
// so the foreign wrapper keeps working. No-op when not tracking.
func (g *Generator) StopTracking() {
	if g.window == nil {
		return
	}

	if g.window.Callback() == InputCallback(g.hook) {
		g.window.SetCallback(g.hook.next)
	} else {
		g.hook.disarm()
		g.log.Debug("input callback rewrapped by host; hook disarmed in place")
	}

	g.log.Debug("click tracking stopped", slog.String("session", g.session))
	g.window = nil
	g.hook = nil
	g.session = ""
}

// GenerateClick emits the screen click for ev and, if an element resolves
// under it, the widget click. It never panics.
func (g *Generator) GenerateClick(ev MotionEvent) {
	defer func() {
		if p := recover(); p != nil {
			g.log.Warn("click generation failed", slog.Any("panic", p))
		}
	}()

	now := g.clock()

	g.emit(telemetry.Record{
		Time:    now,
		Session: g.session,
		Name:    ScreenClickEventName,
		Attrs: []telemetry.Attr{
			telemetry.Int(AttrCoordinateX, roundCoordinate(ev.X)),
			telemetry.Int(AttrCoordinateY, roundCoordinate(ev.Y)),
		},
	})

	root := g.currentRoot()
	if root == nil {
		return
	}

	target, ok := g.resolver.Resolve(root, ev.Point())
	if !ok {
		return
	}

	g.emit(telemetry.Record{
		Time:    now,
		Session: g.session,
		Name:    ViewClickEventName,
		Attrs: []telemetry.Attr{
			telemetry.Int(AttrWidgetID, int64(target.ID)),
			telemetry.String(AttrWidgetName, target.Name),
		},
	})
}

// currentRoot looks the root up on every call; the tree may have been
// replaced since tracking started.
func (g *Generator) currentRoot() Node {
	if g.window == nil {
		return nil
	}
	return findRoot(g.window.Content())
}

// emit hands rec to the telemetry channel. A failing sink only loses rec.
func (g *Generator) emit(rec telemetry.Record) {
	defer func() {
		if p := recover(); p != nil {
			g.log.Warn("telemetry emit failed", slog.String("event", rec.Name), slog.Any("panic", p))
		}
	}()
	g.telemetry.Emit(rec)
}

// roundCoordinate rounds half away from zero. NaN maps to 0 and values beyond
// the int64 range saturate.
func roundCoordinate(v float64) int64 {
	n, err := safecast.Round[int64](v)
	if err == nil {
		return n
	}
	switch {
	case math.IsNaN(v):
		return 0
	case v > 0:
		return math.MaxInt64
	default:
		return math.MinInt64
	}
}
