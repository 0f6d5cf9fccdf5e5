// Package sgr decodes SGR-1006 terminal mouse reports into pointer events.
package sgr

import (
	"time"

	"github.com/grindlemire/clicktrack"
)

// Button identifies which mouse button a report refers to.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Mod is a bitmask of modifier keys held during the report.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Mouse is a decoded SGR mouse report. X and Y are 0-indexed cells.
type Mouse struct {
	Button Button
	Action clicktrack.Action
	X, Y   int
	Mod    Mod
}

// IsWheel reports whether the report is a scroll wheel tick.
func (m Mouse) IsWheel() bool {
	return m.Button == ButtonWheelUp || m.Button == ButtonWheelDown
}

// Motion converts the report to a pointer event stamped with t. Wheel ticks
// are not pointer events and return false.
func (m Mouse) Motion(t time.Time) (clicktrack.MotionEvent, bool) {
	if m.IsWheel() {
		return clicktrack.MotionEvent{}, false
	}
	return clicktrack.MotionEvent{
		Action: m.Action,
		X:      float64(m.X),
		Y:      float64(m.Y),
		Time:   t,
	}, true
}

// Parse decodes a single SGR-1006 mouse sequence at the start of data.
// Format: ESC [ < button ; x ; y M (press) or ESC [ < button ; x ; y m (release)
// The button field encodes: button number + modifier bits
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=release/none)
//	bit 2: shift
//	bit 3: meta/alt
//	bit 4: ctrl
//	bit 5: motion (drag)
//	bit 6: wheel (64=up, 65=down)
//
// Returns (Mouse, bytes consumed). Returns (Mouse{}, 0) on failure.
func Parse(data []byte) (Mouse, int) {
	// Minimum: ESC [ < b ; x ; y M
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return Mouse{}, 0
	}

	i := 3
	var params [3]int
	stage := 0

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			params[stage] = params[stage]*10 + int(b-'0')
			i++
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				return Mouse{}, 0
			}
			i++
			continue
		}

		if b == 'M' || b == 'm' {
			if stage != 2 {
				return Mouse{}, 0
			}
			return decode(params[0], params[1], params[2], b == 'm'), i + 1
		}

		return Mouse{}, 0
	}

	// Incomplete sequence
	return Mouse{}, 0
}

func decode(button, x, y int, release bool) Mouse {
	m := Mouse{
		X: x - 1, // 1-indexed on the wire
		Y: y - 1,
	}

	if button&4 != 0 {
		m.Mod |= ModShift
	}
	if button&8 != 0 {
		m.Mod |= ModAlt
	}
	if button&16 != 0 {
		m.Mod |= ModCtrl
	}

	if button&64 != 0 {
		if button&1 != 0 {
			m.Button = ButtonWheelDown
		} else {
			m.Button = ButtonWheelUp
		}
		m.Action = clicktrack.ActionDown
		return m
	}

	switch button & 3 {
	case 0:
		m.Button = ButtonLeft
	case 1:
		m.Button = ButtonMiddle
	case 2:
		m.Button = ButtonRight
	case 3:
		m.Button = ButtonNone
	}

	switch {
	case button&32 != 0:
		m.Action = clicktrack.ActionMove
	case release:
		m.Action = clicktrack.ActionUp
	default:
		m.Action = clicktrack.ActionDown
	}
	return m
}

// ParseAll decodes every mouse report in data, skipping bytes that do not
// start a valid sequence.
func ParseAll(data []byte) []Mouse {
	var out []Mouse
	for i := 0; i < len(data); {
		if data[i] == 0x1b {
			if m, n := Parse(data[i:]); n > 0 {
				out = append(out, m)
				i += n
				continue
			}
		}
		i++
	}
	return out
}
