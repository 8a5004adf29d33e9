package canvas

import (
	"math"

	"github.com/google/uuid"
)

// Kind discriminates the element variant.
type Kind string

// Element kinds.
const (
	// KindAsset is an element backed by a library asset bitmap.
	KindAsset Kind = "asset"

	// KindText is an editable text block.
	KindText Kind = "text"
)

// TextAlign controls horizontal alignment of a text element's lines
// within its box.
type TextAlign string

// Text alignments.
const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Element is a single item placed on the canvas. It is a closed tagged
// variant: Kind selects which of the variant fields are meaningful
// (AssetID for KindAsset; Text and the font/color fields for KindText).
//
// Geometry is stored in canvas logical units (the fixed 800×600 surface).
// Rotation is degrees in [0,360). ZIndex is a strict total order across
// all elements of a project: backgrounds occupy a reserved negative band,
// everything else is numbered from 0 upward.
type Element struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"zIndex"`
	Opacity  float64 `json:"opacity"`

	FlipHorizontal bool `json:"flipHorizontal"`
	FlipVertical   bool `json:"flipVertical"`

	// IsBackground pins the element to fill the whole canvas at the
	// bottom of the z-order. Its geometry is immutable except the flips.
	IsBackground bool `json:"isBackground"`
	Locked       bool `json:"locked"`

	// Asset variant.
	AssetID string `json:"assetId,omitempty"`

	// Text variant.
	Text            string    `json:"text,omitempty"`
	FontSize        float64   `json:"fontSize,omitempty"`
	FontFamily      string    `json:"fontFamily,omitempty"`
	FontWeight      string    `json:"fontWeight,omitempty"`
	FontStyle       string    `json:"fontStyle,omitempty"`
	TextAlign       TextAlign `json:"textAlign,omitempty"`
	Color           string    `json:"color,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
}

// NewAssetElement creates an asset element with default placement and the
// given z-index. The caller picks the z-index via Store.NextZIndex so the
// total order stays strict.
func NewAssetElement(assetID string, zIndex int) Element {
	return Element{
		ID:      uuid.NewString(),
		Kind:    KindAsset,
		X:       100,
		Y:       100,
		Width:   150,
		Height:  150,
		ZIndex:  zIndex,
		Opacity: 1,
		AssetID: assetID,
	}
}

// NewTextElement creates a text element with editor defaults.
func NewTextElement(text string, zIndex int) Element {
	return Element{
		ID:         uuid.NewString(),
		Kind:       KindText,
		X:          100,
		Y:          100,
		Width:      200,
		Height:     50,
		ZIndex:     zIndex,
		Opacity:    1,
		Text:       text,
		FontSize:   24,
		FontFamily: "Arial",
		FontWeight: "normal",
		FontStyle:  "normal",
		TextAlign:  AlignLeft,
		Color:      "#000000",
	}
}

// NewBackgroundElement creates a background asset element covering the
// whole canvas. Backgrounds are generated at the origin, full-surface,
// locked against move/resize/rotate, and live in the negative z band.
func NewBackgroundElement(assetID string, zIndex int) Element {
	return Element{
		ID:           uuid.NewString(),
		Kind:         KindAsset,
		X:            0,
		Y:            0,
		Width:        CanvasWidth,
		Height:       CanvasHeight,
		ZIndex:       zIndex,
		Opacity:      1,
		IsBackground: true,
		AssetID:      assetID,
	}
}

// Rect returns the element's unrotated bounding rectangle.
func (e Element) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Center returns the element's center point in canvas space.
func (e Element) Center() Point {
	return e.Rect().Center()
}

// Clone returns a deep copy. Element currently holds no reference fields,
// but snapshots taken for history and clipboard go through Clone so the
// copy semantics live in one place.
func (e Element) Clone() Element {
	return e
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Patch is a partial update to an element. Nil fields are left untouched.
// Patches are the unit of the generic history Update action: recording a
// change stores the before and after patch over the same field set.
type Patch struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	ZIndex   *int
	Opacity  *float64

	FlipHorizontal *bool
	FlipVertical   *bool
	Locked         *bool

	Text            *string
	FontSize        *float64
	FontFamily      *string
	FontWeight      *string
	FontStyle       *string
	TextAlign       *TextAlign
	Color           *string
	BackgroundColor *string
}

// F returns a *float64 for building patches inline.
func F(v float64) *float64 { return &v }

// I returns an *int for building patches inline.
func I(v int) *int { return &v }

// B returns a *bool for building patches inline.
func B(v bool) *bool { return &v }

// S returns a *string for building patches inline.
func S(v string) *string { return &v }

// apply writes the patch onto el, enforcing the element invariants:
// positions clamp at zero, sizes at MinElementSize, rotation normalizes
// to [0,360), opacity clamps to [0,1]. A background element accepts only
// flip, z-index, opacity, and lock changes; its geometry and rotation
// are pinned.
func (p Patch) apply(el *Element) {
	if !el.IsBackground {
		if p.X != nil {
			el.X = math.Max(0, *p.X)
		}
		if p.Y != nil {
			el.Y = math.Max(0, *p.Y)
		}
		if p.Width != nil {
			el.Width = math.Max(MinElementSize, *p.Width)
		}
		if p.Height != nil {
			el.Height = math.Max(MinElementSize, *p.Height)
		}
		if p.Rotation != nil {
			el.Rotation = NormalizeAngle(*p.Rotation)
		}
	}
	if p.ZIndex != nil {
		el.ZIndex = *p.ZIndex
	}
	if p.Opacity != nil {
		el.Opacity = math.Min(1, math.Max(0, *p.Opacity))
	}
	if p.FlipHorizontal != nil {
		el.FlipHorizontal = *p.FlipHorizontal
	}
	if p.FlipVertical != nil {
		el.FlipVertical = *p.FlipVertical
	}
	if p.Locked != nil {
		el.Locked = *p.Locked
	}
	if el.Kind == KindText {
		if p.Text != nil {
			el.Text = *p.Text
		}
		if p.FontSize != nil {
			el.FontSize = *p.FontSize
		}
		if p.FontFamily != nil {
			el.FontFamily = *p.FontFamily
		}
		if p.FontWeight != nil {
			el.FontWeight = *p.FontWeight
		}
		if p.FontStyle != nil {
			el.FontStyle = *p.FontStyle
		}
		if p.TextAlign != nil {
			el.TextAlign = *p.TextAlign
		}
		if p.Color != nil {
			el.Color = *p.Color
		}
		if p.BackgroundColor != nil {
			el.BackgroundColor = *p.BackgroundColor
		}
	}
}

// PositionPatch builds a patch moving an element to (x, y).
func PositionPatch(p Point) Patch {
	return Patch{X: F(p.X), Y: F(p.Y)}
}

// RectPatch builds a patch applying a full geometry rectangle.
func RectPatch(r Rect) Patch {
	return Patch{X: F(r.X), Y: F(r.Y), Width: F(r.Width), Height: F(r.Height)}
}
