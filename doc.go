// Package canvas implements the core of an interactive composition editor:
// a fixed 800×600 logical surface on which asset and text elements are
// placed, transformed, layered, and exported.
//
// # Overview
//
// The root package holds the element model and the pure geometry that every
// gesture computation runs through:
//
//   - Element: the tagged asset/text variant with position, size, rotation,
//     z-index, opacity, and flip state
//   - Store: the ordered element collection plus selection state
//   - Viewport: the screen↔canvas coordinate transform
//     (zoom × autoScale + pan + centering)
//   - resize-handle and rotation math
//
// Subsystems live in subpackages:
//
//   - history: reversible actions and the undo/redo engine
//   - gesture: the pointer/touch/keyboard interaction controller
//   - project: local persistence, autosave scheduling, conflict detection
//   - export: z-ordered raster composition to PNG/JPEG
//   - text: font loading, shaping, and glyph rasterization for text elements
//
// # Coordinate System
//
// All element geometry is stored in canvas logical space: origin at the
// top-left, X increasing right, Y increasing down, a fixed 800×600 extent
// independent of on-screen scale. Screen coordinates only ever appear at
// the Viewport boundary.
//
// # Quick Start
//
//	st := canvas.NewStore()
//	eng := history.NewEngine(st)
//	el := canvas.NewAssetElement("asset-1", st.NextZIndex())
//	st.Add(el)
//	eng.Record(&history.Create{Element: el})
package canvas

// CanvasWidth and CanvasHeight define the fixed logical surface.
// Every element's geometry is expressed in these units.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0
)

// MinElementSize is the smallest width or height a resize may produce,
// in logical units.
const MinElementSize = 20.0
