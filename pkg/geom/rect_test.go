package geom

import (
	"math"
	"testing"
)

func TestRect_Size(t *testing.T) {
	type tc struct {
		rect   Rect
		width  float64
		height float64
		empty  bool
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 25, 25),
			width:  20,
			height: 15,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 5, 5),
			width:  10,
			height: 10,
		},
		"zero size": {
			rect:  NewRect(5, 5, 5, 5),
			empty: true,
		},
		"inverted": {
			rect:   NewRect(10, 10, 0, 0),
			width:  -10,
			height: -10,
			empty:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.width {
				t.Errorf("Width() = %v, want %v", got, tt.width)
			}
			if got := tt.rect.Height(); got != tt.height {
				t.Errorf("Height() = %v, want %v", got, tt.height)
			}
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		rect Rect
		x, y float64
		want bool
	}

	r := NewRect(240, 30, 260, 70)

	tests := map[string]tc{
		"center":           {rect: r, x: 250, y: 50, want: true},
		"top-left corner":  {rect: r, x: 240, y: 30, want: true},
		"bottom-right":     {rect: r, x: 260, y: 70, want: true},
		"left of rect":     {rect: r, x: 239.9, y: 50, want: false},
		"below rect":       {rect: r, x: 250, y: 70.1, want: false},
		"degenerate":       {rect: NewRect(260, 70, 260, 70), x: 260, y: 70, want: false},
		"nan coordinate":   {rect: r, x: math.NaN(), y: 50, want: false},
		"infinite x":       {rect: r, x: math.Inf(1), y: 50, want: false},
		"sub-pixel inside": {rect: r, x: 240.5, y: 69.5, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_MoveTo(t *testing.T) {
	r := NewRect(0, 0, 20, 40)
	moved := r.MoveTo(Pt(240, 30))

	want := NewRect(240, 30, 260, 70)
	if moved != want {
		t.Fatalf("MoveTo() = %+v, want %+v", moved, want)
	}
	if moved.TopLeft() != Pt(240, 30) {
		t.Errorf("TopLeft() = %+v, want (240, 30)", moved.TopLeft())
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(10, -2)
	want := NewRect(11, 0, 13, 2)
	if r != want {
		t.Errorf("Translate() = %+v, want %+v", r, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlap": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 15, 15),
			want: NewRect(5, 5, 10, 10),
		},
		"disjoint": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 20, 30, 30),
			want: Rect{},
		},
		"touching edges": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 20, 10),
			want: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPoint_Ops(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add() = %+v, want (4, 5)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub() = %+v, want (2, 3)", got)
	}
	if !p.In(NewRect(0, 0, 10, 10)) {
		t.Error("In() = false, want true")
	}
	if !p.IsFinite() {
		t.Error("IsFinite() = false, want true")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("IsFinite() with NaN = true, want false")
	}
}
