// Package termhost hosts a static window in a terminal: placed nodes are drawn
// as boxes, mouse reports are fed through the window's input callback and the
// telemetry records produced by click tracking scroll in a log panel.
package termhost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/clicktrack"
	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

// canvasTop is the screen row the node canvas starts at, below the header.
const canvasTop = 1

const logHeight = 8

// Config wires a Model to the window it hosts.
type Config struct {
	Title     string
	Window    *clicktrack.BasicWindow
	Tree      *clicktrack.StaticNode
	Generator *clicktrack.Generator
	// Ring receives a copy of every emitted record for the log panel.
	Ring *telemetry.RingLogger
}

// Model is a Bubble Tea model driving one tracked window.
type Model struct {
	title     string
	window    *clicktrack.BasicWindow
	tree      *clicktrack.StaticNode
	gen       *clicktrack.Generator
	lifecycle *clicktrack.Lifecycle
	ring      *telemetry.RingLogger

	log     viewport.Model
	width   int
	height  int
	lastSeq uint64
	hotID   int
	hasHot  bool
	lines   []string
}

// New validates cfg and returns a model. Tracking starts in Init.
func New(cfg Config) (*Model, error) {
	switch {
	case cfg.Window == nil:
		return nil, errors.New("termhost: window is required")
	case cfg.Tree == nil:
		return nil, errors.New("termhost: tree is required")
	case cfg.Generator == nil:
		return nil, errors.New("termhost: generator is required")
	case cfg.Ring == nil:
		return nil, errors.New("termhost: ring is required")
	}
	return &Model{
		title:     cfg.Title,
		window:    cfg.Window,
		tree:      cfg.Tree,
		gen:       cfg.Generator,
		lifecycle: clicktrack.NewLifecycle(cfg.Generator),
		ring:      cfg.Ring,
		log:       viewport.New(80, logHeight),
		width:     80,
		height:    24,
	}, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	hotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	logBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Init puts the window in the foreground.
func (m *Model) Init() tea.Cmd {
	m.lifecycle.OnForeground(m.window)
	return nil
}

// Update handles terminal input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.lifecycle.OnBackground()
			return m, tea.Quit
		case "p":
			if m.gen.Tracking() {
				m.lifecycle.OnBackground()
			} else {
				m.lifecycle.OnForeground(m.window)
			}
			return m, nil
		}
		if cb := m.window.Callback(); cb != nil {
			cb.DispatchKeyEvent(clicktrack.KeyEvent{Key: msg.String(), Down: true})
		}
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		ev, ok := motion(tea.MouseEvent(msg))
		if !ok {
			return m, nil
		}
		m.window.DispatchTouchEvent(ev)
		m.collect()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.log.Width = max(msg.Width-2, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

// motion converts a terminal mouse report into a window pointer event.
func motion(me tea.MouseEvent) (clicktrack.MotionEvent, bool) {
	if me.IsWheel() {
		return clicktrack.MotionEvent{}, false
	}
	ev := clicktrack.MotionEvent{
		X: float64(me.X),
		Y: float64(me.Y - canvasTop),
	}
	switch me.Action {
	case tea.MouseActionPress:
		ev.Action = clicktrack.ActionDown
	case tea.MouseActionRelease:
		ev.Action = clicktrack.ActionUp
	case tea.MouseActionMotion:
		ev.Action = clicktrack.ActionMove
	default:
		return clicktrack.MotionEvent{}, false
	}
	return ev, true
}

// collect appends records newer than the last seen one to the log panel.
func (m *Model) collect() {
	for _, rec := range m.ring.Snapshot() {
		if rec.Seq <= m.lastSeq {
			continue
		}
		m.lastSeq = rec.Seq
		m.lines = append(m.lines, string(telemetry.FormatRecord(rec, telemetry.FormatText)))
		if rec.Name == clicktrack.ViewClickEventName {
			if id, ok := rec.IntAttr(clicktrack.AttrWidgetID); ok {
				m.hotID, m.hasHot = int(id), true
			}
		} else if rec.Name == clicktrack.ScreenClickEventName {
			m.hasHot = false
		}
	}
	m.log.SetContent(strings.TrimRight(strings.Join(m.lines, ""), "\n"))
	m.log.GotoBottom()
}

// View renders the header, the node canvas and the record log.
func (m *Model) View() string {
	status := offStyle.Render("paused")
	if m.gen.Tracking() {
		status = onStyle.Render("tracking " + m.gen.Session())
	}
	header := fmt.Sprintf("%s  %s", titleStyle.Render(m.title), status)

	canvasHeight := max(m.height-canvasTop-logHeight-3, 1)
	c := newCanvas(m.width, canvasHeight)
	m.draw(c, m.tree)

	help := helpStyle.Render("click a box · p pause/resume · q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		c.render(hotStyle),
		logBoxStyle.Render(m.log.View()),
		help,
	)
}

// draw paints n and its placed descendants in rendering order.
func (m *Model) draw(c *canvas, n *clicktrack.StaticNode) {
	if n == nil || !n.IsPlaced() {
		return
	}
	if n.GeometryErr == nil {
		r := n.Bounds
		if n.Position != nil {
			r = r.MoveTo(*n.Position)
		}
		c.box(r, nodeLabel(n), m.hasHot && n.ID == m.hotID)
	}
	for _, child := range n.Children {
		m.draw(c, child)
	}
}
