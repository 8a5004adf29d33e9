package canvas

// Handle identifies one of the eight resize affordances around an
// element: four corners and four edge midpoints.
type Handle int

// Resize handles, clockwise from the top-left corner.
const (
	HandleNW Handle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

// handleEffect records which geometry fields a handle moves and in which
// sign: dragging the west edge right shrinks the width and advances x,
// dragging the south-east corner right/down grows both dimensions.
type handleEffect struct {
	x, y, w, h float64
}

var handleEffects = map[Handle]handleEffect{
	HandleNW: {x: 1, y: 1, w: -1, h: -1},
	HandleN:  {y: 1, h: -1},
	HandleNE: {y: 1, w: 1, h: -1},
	HandleE:  {w: 1},
	HandleSE: {w: 1, h: 1},
	HandleS:  {h: 1},
	HandleSW: {x: 1, w: -1, h: 1},
	HandleW:  {x: 1, w: -1},
}

// ApplyResize computes the element rectangle produced by dragging handle
// by the given raw screen delta, applied to the rectangle captured at
// gesture start.
//
// Screen deltas are scaled by 1/zoom only — not by autoScale — because
// raw pointer deltas are already independent of the viewport centering
// term. Width and height clamp at MinElementSize; the clamp adjusts the
// moving edge's anchor so the opposite edge never jumps.
func ApplyResize(start Rect, h Handle, screenDelta Point, zoom float64) Rect {
	if zoom <= 0 {
		zoom = 1
	}
	d := screenDelta.Div(zoom)
	eff, ok := handleEffects[h]
	if !ok {
		return start
	}

	r := Rect{
		X:      start.X + eff.x*d.X,
		Y:      start.Y + eff.y*d.Y,
		Width:  start.Width + eff.w*d.X,
		Height: start.Height + eff.h*d.Y,
	}

	// Clamp to the minimum size, re-anchoring the edge that moved.
	if r.Width < MinElementSize {
		if eff.x != 0 {
			r.X = start.X + start.Width - MinElementSize
		}
		r.Width = MinElementSize
	}
	if r.Height < MinElementSize {
		if eff.y != 0 {
			r.Y = start.Y + start.Height - MinElementSize
		}
		r.Height = MinElementSize
	}

	// Positions never go negative. A west/north drag past the canvas
	// edge pins the position and gives the overshoot back to the size
	// so the anchored edge stays put.
	if r.X < 0 {
		if eff.x != 0 && eff.w != 0 {
			r.Width = start.X + start.Width
		}
		r.X = 0
	}
	if r.Y < 0 {
		if eff.y != 0 && eff.h != 0 {
			r.Height = start.Y + start.Height
		}
		r.Y = 0
	}
	return r
}
