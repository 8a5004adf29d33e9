package canvas

import "math"

// Viewport models the compound transform between canvas logical space
// and screen space:
//
//	screen = p·zoom·autoScale + pan·autoScale + center
//
// where center re-centers the scaled canvas inside the rendered
// container (the canvas element is centered via a fixed-origin scale
// transform, so the centering term is half the difference between the
// container size and the scaled canvas size).
//
// ScreenToCanvas is the exact algebraic inverse of CanvasToScreen,
// including the centering term; anything less and gesture handles drift
// away from the pointer.
type Viewport struct {
	// Zoom is the user zoom factor.
	Zoom float64

	// AutoScale is the responsive fit-to-viewport factor stacked on
	// top of Zoom. See FitScale.
	AutoScale float64

	// Pan is the pan offset in pre-autoScale screen units.
	Pan Point

	// Container is the rendered size of the canvas container in
	// screen pixels.
	Container Size

	// Canvas is the logical surface size, normally 800×600.
	Canvas Size
}

// NewViewport creates a viewport over the standard 800×600 canvas at
// zoom 1 with no pan, fit to the given container.
func NewViewport(container Size) Viewport {
	return Viewport{
		Zoom:      1,
		AutoScale: 1,
		Container: container,
		Canvas:    Size{Width: CanvasWidth, Height: CanvasHeight},
	}
}

// Scale returns the effective canvas→screen scale factor.
func (v Viewport) Scale() float64 {
	return v.Zoom * v.AutoScale
}

// center returns the fixed-origin centering offset.
func (v Viewport) center() Point {
	return Point{
		X: (v.Container.Width - v.Canvas.Width*v.Scale()) / 2,
		Y: (v.Container.Height - v.Canvas.Height*v.Scale()) / 2,
	}
}

// CanvasToScreen converts a canvas logical point to screen pixels.
func (v Viewport) CanvasToScreen(p Point) Point {
	return p.Mul(v.Scale()).Add(v.Pan.Mul(v.AutoScale)).Add(v.center())
}

// ScreenToCanvas converts a screen pixel point to canvas logical units.
func (v Viewport) ScreenToCanvas(p Point) Point {
	return p.Sub(v.center()).Sub(v.Pan.Mul(v.AutoScale)).Div(v.Scale())
}

// FitScale computes the autoScale factor that keeps the whole logical
// canvas visible inside the available viewport area after subtracting
// the fixed side-panel widths and padding. The result never exceeds 1:
// the canvas is shrunk to fit but not blown up past its logical size.
func FitScale(viewportWidth, viewportHeight, sidePanels, padding float64) float64 {
	availW := viewportWidth - sidePanels - padding
	availH := viewportHeight - padding
	if availW <= 0 || availH <= 0 {
		return 1
	}
	scale := math.Min(availW/CanvasWidth, availH/CanvasHeight)
	return math.Min(1, math.Max(scale, 0.1))
}
