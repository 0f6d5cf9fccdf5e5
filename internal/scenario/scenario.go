// Package scenario loads window descriptions and pointer event scripts from
// TOML files so click tracking can be replayed without a real UI toolkit.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/clicktrack"
	"github.com/grindlemire/clicktrack/internal/sgr"
	"github.com/grindlemire/clicktrack/pkg/geom"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid scenario")

// Scenario is a decoded scenario file.
type Scenario struct {
	Name   string      `toml:"name"`
	Root   NodeSpec    `toml:"root"`
	Script []EventSpec `toml:"events"`

	// Path is the file the scenario was loaded from, empty for Parse.
	Path string `toml:"-"`
}

// NodeSpec describes one node of the window tree.
type NodeSpec struct {
	ID       int       `toml:"id"`
	Placed   *bool     `toml:"placed"`
	Bounds   []float64 `toml:"bounds"`
	Position []float64 `toml:"position"`
	// Click declares a click action. Label is its accessibility label.
	Click       bool       `toml:"click"`
	Label       string     `toml:"label"`
	Description []string   `toml:"description"`
	GeometryErr string     `toml:"geometry_error"`
	Children    []NodeSpec `toml:"children"`
}

// EventSpec is either an explicit pointer event or a raw SGR mouse report.
type EventSpec struct {
	Action string  `toml:"action"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	SGR    string  `toml:"sgr"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if !md.IsDefined("root") {
		return nil, fmt.Errorf("%w: missing [root]", ErrInvalid)
	}
	if err := s.Root.validate("root"); err != nil {
		return nil, err
	}
	for i, ev := range s.Script {
		if err := ev.validate(); err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	return &s, nil
}

func (n NodeSpec) validate(path string) error {
	if len(n.Bounds) != 4 {
		return fmt.Errorf("%w: %s.bounds needs 4 values [left, top, right, bottom], got %d", ErrInvalid, path, len(n.Bounds))
	}
	if n.Position != nil && len(n.Position) != 2 {
		return fmt.Errorf("%w: %s.position needs 2 values [x, y], got %d", ErrInvalid, path, len(n.Position))
	}
	for _, v := range append(append([]float64(nil), n.Bounds...), n.Position...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has a non-finite coordinate", ErrInvalid, path)
		}
	}
	if n.Label != "" && !n.Click {
		return fmt.Errorf("%w: %s.label requires click = true", ErrInvalid, path)
	}
	for i, c := range n.Children {
		if err := c.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (e EventSpec) validate() error {
	if e.SGR != "" {
		if e.Action != "" {
			return fmt.Errorf("%w: sgr and action are mutually exclusive", ErrInvalid)
		}
		if len(sgr.ParseAll([]byte(e.SGR))) == 0 {
			return fmt.Errorf("%w: sgr %q holds no mouse report", ErrInvalid, e.SGR)
		}
		return nil
	}
	if _, ok := clicktrack.ParseAction(e.Action); !ok {
		return fmt.Errorf("%w: unknown action %q (expected: down|up|move|cancel)", ErrInvalid, e.Action)
	}
	return nil
}

// Tree builds a fresh node tree from the scenario.
func (s *Scenario) Tree() *clicktrack.StaticNode {
	return s.Root.build()
}

func (n NodeSpec) build() *clicktrack.StaticNode {
	node := &clicktrack.StaticNode{
		ID:       n.ID,
		Unplaced: n.Placed != nil && !*n.Placed,
		Bounds:   geom.NewRect(n.Bounds[0], n.Bounds[1], n.Bounds[2], n.Bounds[3]),
	}
	if len(n.Position) == 2 {
		p := geom.Pt(n.Position[0], n.Position[1])
		node.Position = &p
	}
	if n.GeometryErr != "" {
		node.GeometryErr = errors.New(n.GeometryErr)
	}

	switch {
	case n.Click:
		node.Mods = append(node.Mods, clicktrack.SemanticsModifier{Config: clicktrack.Semantics{
			OnClick:            &clicktrack.ClickAction{Label: n.Label},
			ContentDescription: n.Description,
		}})
	case len(n.Description) > 0:
		node.Mods = append(node.Mods, clicktrack.Described(n.Description...))
	}

	for _, c := range n.Children {
		node.Children = append(node.Children, c.build())
	}
	return node
}

// Window builds a window whose content is the scenario tree and whose
// original callback records every delivered event.
func (s *Scenario) Window() (*clicktrack.BasicWindow, *clicktrack.RecordingCallback) {
	cb := &clicktrack.RecordingCallback{}
	view := &clicktrack.StaticView{Tree: s.Tree()}
	return clicktrack.NewBasicWindow(cb, view), cb
}

// Events expands the event script into pointer events stamped with start.
// SGR reports expand to one event each; wheel ticks are dropped.
func (s *Scenario) Events(start time.Time) []clicktrack.MotionEvent {
	var out []clicktrack.MotionEvent
	for _, e := range s.Script {
		if e.SGR != "" {
			for _, m := range sgr.ParseAll([]byte(e.SGR)) {
				if ev, ok := m.Motion(start); ok {
					out = append(out, ev)
				}
			}
			continue
		}
		action, _ := clicktrack.ParseAction(e.Action)
		out = append(out, clicktrack.MotionEvent{Action: action, X: e.X, Y: e.Y, Time: start})
	}
	return out
}
