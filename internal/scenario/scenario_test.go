package scenario

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/clicktrack"
	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

var start = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	doc := `
name = "tiny"

[root]
id = 1
bounds = [0, 0, 100, 100]

[[root.children]]
id = 2
bounds = [10, 10, 20, 20]
position = [50, 50]
click = true
label = "ok"

[[root.children]]
id = 3
placed = false
bounds = [0, 0, 100, 100]
description = ["hidden"]
geometry_error = "detached"

[[events]]
action = "up"
x = 55.5
y = 55
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "tiny" {
		t.Fatalf("name = %q", s.Name)
	}

	root := s.Tree()
	if root.ID != 1 || len(root.Children) != 2 {
		t.Fatalf("unexpected root: %+v", root)
	}
	ok := root.Children[0]
	if ok.Position == nil || ok.Position.X != 50 || ok.Position.Y != 50 {
		t.Fatalf("position not decoded: %+v", ok.Position)
	}
	if len(ok.Mods) != 1 {
		t.Fatalf("clickable node has %d modifiers", len(ok.Mods))
	}
	sem, _ := ok.Mods[0].Semantics()
	if label, _ := sem.ClickLabel(); label != "ok" {
		t.Fatalf("label = %q", label)
	}

	hidden := root.Children[1]
	if hidden.IsPlaced() {
		t.Fatal("placed = false not honoured")
	}
	if hidden.GeometryErr == nil || hidden.GeometryErr.Error() != "detached" {
		t.Fatalf("geometry error = %v", hidden.GeometryErr)
	}
	if sem, _ := hidden.Mods[0].Semantics(); sem.HasClick() {
		t.Fatal("described node must not be clickable")
	}

	if len(s.Script) != 1 || s.Script[0].Action != "up" {
		t.Fatalf("script = %+v", s.Script)
	}
	evs := s.Events(start)
	if len(evs) != 1 || !evs[0].IsPointerUp() || evs[0].X != 55.5 || !evs[0].Time.Equal(start) {
		t.Fatalf("events = %+v", evs)
	}
}

func TestParseRejects(t *testing.T) {
	type tc struct {
		doc     string
		wantErr string
	}

	tests := map[string]tc{
		"missing root": {
			doc:     `name = "x"`,
			wantErr: "missing [root]",
		},
		"short bounds": {
			doc:     "[root]\nbounds = [0, 0, 1]\n",
			wantErr: "root.bounds needs 4 values",
		},
		"nested short position": {
			doc:     "[root]\nbounds = [0, 0, 1, 1]\n[[root.children]]\nbounds = [0, 0, 1, 1]\nposition = [1]\n",
			wantErr: "root.children[0].position",
		},
		"non-finite": {
			doc:     "[root]\nbounds = [0, 0, inf, 1]\n",
			wantErr: "non-finite",
		},
		"label without click": {
			doc:     "[root]\nbounds = [0, 0, 1, 1]\nlabel = \"x\"\n",
			wantErr: "requires click",
		},
		"unknown key": {
			doc:     "[root]\nbounds = [0, 0, 1, 1]\nclikc = true\n",
			wantErr: "unknown keys: root.clikc",
		},
		"unknown action": {
			doc:     "[root]\nbounds = [0, 0, 1, 1]\n[[events]]\naction = \"tap\"\n",
			wantErr: "events[0]: invalid scenario: unknown action",
		},
		"sgr and action": {
			doc:     "[root]\nbounds = [0, 0, 1, 1]\n[[events]]\naction = \"up\"\nsgr = \"\\u001b[<0;1;1m\"\n",
			wantErr: "mutually exclusive",
		},
		"empty sgr report": {
			doc:     "[root]\nbounds = [0, 0, 1, 1]\n[[events]]\nsgr = \"hello\"\n",
			wantErr: "holds no mouse report",
		},
		"bad toml": {
			doc:     "[root\n",
			wantErr: "failed to parse TOML",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse() error = %v, want substring %q", err, tt.wantErr)
			}
			if tt.wantErr != "failed to parse TOML" && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestTreeIsFreshPerCall(t *testing.T) {
	s, err := Parse([]byte("[root]\nid = 7\nbounds = [0, 0, 1, 1]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, b := s.Tree(), s.Tree()
	if a == b {
		t.Fatal("Tree returned a shared node")
	}
	a.ID = 99
	if b.ID != 7 {
		t.Fatal("trees share state")
	}
}

// replay runs every event of the scenario file through a tracked window and
// returns the emitted records and the original callback.
func replay(t *testing.T, file string) ([]telemetry.Record, *clicktrack.RecordingCallback) {
	t.Helper()

	s, err := Load(filepath.Join("..", "..", "examples", "scenarios", file))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ring := telemetry.NewRingLogger(64)
	gen, err := clicktrack.New(ring, clicktrack.StaticGeometry{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w, original := s.Window()
	gen.StartTracking(w)
	for _, ev := range s.Events(start) {
		w.DispatchTouchEvent(ev)
	}
	gen.StopTracking()
	return ring.Snapshot(), original
}

func TestReplayReferenceScenario(t *testing.T) {
	records, original := replay(t, "reference.toml")

	if len(original.Touches) != 2 {
		t.Fatalf("original callback saw %d events, want 2", len(original.Touches))
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if id, _ := records[1].IntAttr(clicktrack.AttrWidgetID); id != 3 {
		t.Errorf("widget id = %d, want 3", id)
	}
	if name, _ := records[1].StringAttr(clicktrack.AttrWidgetName); name != "clickMe" {
		t.Errorf("widget name = %q, want clickMe", name)
	}
}

func TestReplayToolbarScenario(t *testing.T) {
	records, original := replay(t, "toolbar.toml")

	// press, release, release, release; the wheel tick is dropped.
	if len(original.Touches) != 4 {
		t.Fatalf("original callback saw %d events, want 4", len(original.Touches))
	}

	var got []string
	for _, rec := range records {
		switch rec.Name {
		case clicktrack.ScreenClickEventName:
			x, _ := rec.IntAttr(clicktrack.AttrCoordinateX)
			y, _ := rec.IntAttr(clicktrack.AttrCoordinateY)
			got = append(got, "screen "+strconv.FormatInt(x, 10)+","+strconv.FormatInt(y, 10))
		case clicktrack.ViewClickEventName:
			name, _ := rec.StringAttr(clicktrack.AttrWidgetName)
			got = append(got, "view "+name)
		}
	}
	want := []string{
		"screen 5,1", "view Save",
		"screen 50,8",
		"screen 15,1", "view Open file",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("records = %v, want %v", got, want)
	}
}
