package canvas

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Point{X: 3, Y: 4}, Point{X: 3, Y: 4}},
		{"translate", Translate(10, -5), Point{X: 1, Y: 1}, Point{X: 11, Y: -4}},
		{"scale", ScaleXY(2, 3), Point{X: 4, Y: 5}, Point{X: 8, Y: 15}},
		{"mirror x", ScaleXY(-1, 1), Point{X: 4, Y: 5}, Point{X: -4, Y: 5}},
		{"rotate 90", Rotate(math.Pi / 2), Point{X: 1, Y: 0}, Point{X: 0, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !almostEqual(got, tt.want) {
				t.Errorf("TransformPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	ts := ScaleXY(2, 2).Multiply(Translate(10, 0))
	st := Translate(10, 0).Multiply(ScaleXY(2, 2))

	p := Point{X: 1, Y: 0}
	if got := ts.TransformPoint(p); !almostEqual(got, Point{X: 22, Y: 0}) {
		t.Errorf("scale∘translate = %v, want (22,0)", got)
	}
	if got := st.TransformPoint(p); !almostEqual(got, Point{X: 12, Y: 0}) {
		t.Errorf("translate∘scale = %v, want (12,0)", got)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(400, 300).
		Multiply(Rotate(math.Pi / 6)).
		Multiply(ScaleXY(2, -1.5)).
		Multiply(Translate(-50, -25))
	inv := m.Invert()

	for _, p := range []Point{{0, 0}, {10, 20}, {-7, 3.5}} {
		back := inv.TransformPoint(m.TransformPoint(p))
		if !almostEqual(back, p) {
			t.Errorf("round trip %v → %v", p, back)
		}
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := ScaleXY(0, 0).Invert(); got != Identity() {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}
