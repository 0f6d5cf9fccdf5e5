package clicktrack

import (
	"slices"
	"testing"
	"time"

	"github.com/grindlemire/clicktrack/pkg/geom"
	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

// layoutModifier is a modifier without semantics, like padding or size.
type layoutModifier struct{}

func (layoutModifier) Semantics() (Semantics, bool) { return Semantics{}, false }

var testTime = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

// treeSpec selects which of the five nodes of the reference tree are hit,
// clickable, and described.
type treeSpec struct {
	hit       []int
	clickable []int
	described []int
}

// buildTree builds the reference tree
//
//	0
//	├── 1
//	│   ├── 4
//	│   └── 3   (drawn above 4)
//	└── 2       (drawn above 1)
//
// Hit nodes get a 20x40 rect centred on (x, y); the others get an empty rect
// away from it.
func buildTree(x, y float64, spec treeSpec) *StaticNode {
	nodes := make([]*StaticNode, 5)
	for i := range nodes {
		n := &StaticNode{ID: i}
		if slices.Contains(spec.hit, i) {
			n.Bounds = geom.NewRect(x-10, y-20, x+10, y+20)
		} else {
			n.Bounds = geom.NewRect(x+10, y+20, x+10, y+20)
		}
		switch {
		case slices.Contains(spec.clickable, i) && slices.Contains(spec.described, i):
			n.Mods = []Modifier{ClickableWithDescription("clickMe")}
		case slices.Contains(spec.clickable, i):
			n.Mods = []Modifier{Clickable("click")}
		default:
			n.Mods = []Modifier{layoutModifier{}}
		}
		nodes[i] = n
	}

	nodes[0].Children = []*StaticNode{nodes[1], nodes[2]}
	nodes[1].Children = []*StaticNode{nodes[4], nodes[3]}
	return nodes[0]
}

type harness struct {
	gen      *Generator
	ring     *telemetry.RingLogger
	window   *BasicWindow
	original *RecordingCallback
	view     *StaticView
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	ring := telemetry.NewRingLogger(64)
	opts = append([]Option{
		WithClock(func() time.Time { return testTime }),
		WithSessionIDs(func() string { return "session-1" }),
	}, opts...)
	gen, err := New(ring, StaticGeometry{}, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	original := &RecordingCallback{}
	view := &StaticView{}
	return &harness{
		gen:      gen,
		ring:     ring,
		window:   NewBasicWindow(original, view),
		original: original,
		view:     view,
	}
}

func up(x, y float64) MotionEvent {
	return MotionEvent{Action: ActionUp, X: x, Y: y, Time: testTime}
}

func assertScreenClick(t *testing.T, rec telemetry.Record, x, y int64) {
	t.Helper()
	if rec.Name != ScreenClickEventName {
		t.Fatalf("record name = %q, want %q", rec.Name, ScreenClickEventName)
	}
	if len(rec.Attrs) != 2 {
		t.Fatalf("screen click has %d attrs, want exactly 2: %+v", len(rec.Attrs), rec.Attrs)
	}
	if got, _ := rec.IntAttr(AttrCoordinateX); got != x {
		t.Errorf("x = %d, want %d", got, x)
	}
	if got, _ := rec.IntAttr(AttrCoordinateY); got != y {
		t.Errorf("y = %d, want %d", got, y)
	}
}

func assertViewClick(t *testing.T, rec telemetry.Record, id int64, name string) {
	t.Helper()
	if rec.Name != ViewClickEventName {
		t.Fatalf("record name = %q, want %q", rec.Name, ViewClickEventName)
	}
	if got, _ := rec.IntAttr(AttrWidgetID); got != id {
		t.Errorf("widget id = %d, want %d", got, id)
	}
	if got, _ := rec.StringAttr(AttrWidgetName); got != name {
		t.Errorf("widget name = %q, want %q", got, name)
	}
}
