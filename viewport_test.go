package canvas

import (
	"math"
	"testing"
)

func almostEqual(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestViewportRoundTrip(t *testing.T) {
	viewports := []struct {
		name string
		v    Viewport
	}{
		{"identity fit", NewViewport(Size{Width: 800, Height: 600})},
		{"zoomed", Viewport{Zoom: 2, AutoScale: 1, Container: Size{Width: 1200, Height: 900}, Canvas: Size{Width: 800, Height: 600}}},
		{"auto scaled", Viewport{Zoom: 1, AutoScale: 0.5, Container: Size{Width: 500, Height: 400}, Canvas: Size{Width: 800, Height: 600}}},
		{"panned", Viewport{Zoom: 1.5, AutoScale: 0.8, Pan: Point{X: 40, Y: -25}, Container: Size{Width: 1024, Height: 768}, Canvas: Size{Width: 800, Height: 600}}},
	}
	points := []Point{
		{0, 0}, {400, 300}, {800, 600}, {12.5, 587.25},
	}

	for _, tc := range viewports {
		t.Run(tc.name, func(t *testing.T) {
			for _, p := range points {
				screen := tc.v.CanvasToScreen(p)
				back := tc.v.ScreenToCanvas(screen)
				if !almostEqual(p, back) {
					t.Errorf("round trip %v → %v → %v", p, screen, back)
				}
			}
		})
	}
}

func TestViewportCentering(t *testing.T) {
	// A 800×600 canvas at scale 0.5 inside a 800×600 container sits
	// centered: logical origin lands at (200, 150).
	v := Viewport{Zoom: 0.5, AutoScale: 1, Container: Size{Width: 800, Height: 600}, Canvas: Size{Width: 800, Height: 600}}
	got := v.CanvasToScreen(Point{})
	want := Point{X: 200, Y: 150}
	if !almostEqual(got, want) {
		t.Errorf("origin maps to %v, want %v", got, want)
	}
}

func TestViewportPanIsScaledByAutoScale(t *testing.T) {
	base := Viewport{Zoom: 1, AutoScale: 0.5, Container: Size{Width: 400, Height: 300}, Canvas: Size{Width: 800, Height: 600}}
	panned := base
	panned.Pan = Point{X: 100, Y: 0}

	d := panned.CanvasToScreen(Point{}).Sub(base.CanvasToScreen(Point{}))
	if math.Abs(d.X-50) > 1e-9 || math.Abs(d.Y) > 1e-9 {
		t.Errorf("pan of 100 logical at autoScale 0.5 moved screen by %v, want (50,0)", d)
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name               string
		w, h, panels, pad  float64
		want               float64
	}{
		{"exact fit", 800 + 200, 600 + 0, 200, 0, 1},
		{"width bound", 600, 2000, 0, 0, 0.75},
		{"height bound", 2000, 300, 0, 0, 0.5},
		{"never above one", 4000, 4000, 0, 0, 1},
		{"degenerate viewport", 100, 100, 200, 40, 1},
		{"floor", 40, 40, 0, 0, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitScale(tt.w, tt.h, tt.panels, tt.pad)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FitScale(%v,%v,%v,%v) = %v, want %v", tt.w, tt.h, tt.panels, tt.pad, got, tt.want)
			}
		})
	}
}
