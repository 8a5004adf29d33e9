// Package text renders element text for export composition. It loads
// TTF/OTF fonts into a family registry, shapes text with either a
// simple builtin shaper or a HarfBuzz-backed one, and lays out wrapped,
// aligned lines into an image.
//
// When a requested family is not registered, rendering falls back to a
// builtin bitmap face so composition never fails on a missing font.
package text

import "image/color"

// Alignment selects horizontal line placement within the layout box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style carries everything needed to shape and draw a run of text.
type Style struct {
	Family string
	Weight string // "normal" or "bold"
	Italic bool
	Size   float64 // in pixels at the target raster scale
	Align  Alignment
	Color  color.Color
}
