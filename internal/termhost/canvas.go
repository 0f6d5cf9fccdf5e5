package termhost

import (
	"math"
	"strings"

	"fortio.org/safecast"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/clicktrack"
	"github.com/grindlemire/clicktrack/pkg/geom"
)

// wideTail marks the cell covered by the right half of a wide rune.
const wideTail = rune(0)

// canvas is a fixed-size cell grid that node boxes are drawn onto.
type canvas struct {
	w, h  int
	cells [][]rune
	hot   [][]bool
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.cells = make([][]rune, h)
	c.hot = make([][]bool, h)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", w))
		c.hot[y] = make([]bool, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, hot bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
	c.hot[y][x] = hot
}

// cellSpan converts a float extent to the half-open cell range it covers.
func cellSpan(lo, hi float64) (int, int, bool) {
	a, err := safecast.Convert[int](math.Floor(lo))
	if err != nil {
		return 0, 0, false
	}
	b, err := safecast.Convert[int](math.Floor(hi))
	if err != nil {
		return 0, 0, false
	}
	return a, b, b > a
}

// box draws the outline of r with label written along its top edge.
func (c *canvas) box(r geom.Rect, label string, hot bool) {
	x0, x1, okX := cellSpan(r.Left, r.Right)
	y0, y1, okY := cellSpan(r.Top, r.Bottom)
	if !okX || !okY {
		return
	}
	right, bottom := x1-1, y1-1
	if right < 0 || bottom < 0 || x0 >= c.w || y0 >= c.h {
		return
	}
	// Edges off the grid are parked one cell outside it so loops stay bounded.
	x0, right = max(x0, -1), min(right, c.w)
	y0, bottom = max(y0, -1), min(bottom, c.h)

	for x := x0; x <= right; x++ {
		c.set(x, y0, '─', hot)
		c.set(x, bottom, '─', hot)
	}
	for y := y0; y <= bottom; y++ {
		c.set(x0, y, '│', hot)
		c.set(right, y, '│', hot)
	}
	if right > x0 && bottom > y0 {
		c.set(x0, y0, '┌', hot)
		c.set(right, y0, '┐', hot)
		c.set(x0, bottom, '└', hot)
		c.set(right, bottom, '┘', hot)
	}

	room := right - x0 - 1
	if label == "" || room <= 0 {
		return
	}
	x := x0 + 1
	for _, ch := range runewidth.Truncate(label, room, "…") {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		c.set(x, y0, ch, hot)
		if cw == 2 {
			c.set(x+1, y0, wideTail, hot)
		}
		x += cw
	}
}

// render returns the grid with hot cells styled.
func (c *canvas) render(hotStyle lipgloss.Style) string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runHot := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHot {
				b.WriteString(hotStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			r := c.cells[y][x]
			if r == wideTail {
				continue
			}
			if c.hot[y][x] != runHot {
				flush()
				runHot = c.hot[y][x]
			}
			run.WriteRune(r)
		}
		flush()
	}
	return b.String()
}

// nodeLabel is the text drawn on a node's box.
func nodeLabel(n *clicktrack.StaticNode) string {
	for _, m := range n.Mods {
		if m == nil {
			continue
		}
		if s, ok := m.Semantics(); ok {
			if name := s.DisplayName(); name != "" {
				return name
			}
		}
	}
	return ""
}
