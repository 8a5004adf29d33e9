package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw lays out content inside bounds and rasterizes it into dst.
// Lines wrap at the box width, align per style, and clip at the box
// bottom. Right-to-left paragraphs default to right alignment when the
// style asks for the plain left default.
func Draw(dst draw.Image, bounds image.Rectangle, content string, style Style) error {
	if content == "" || bounds.Empty() {
		return nil
	}

	face, cleanup, err := resolveFace(style)
	if err != nil {
		return err
	}
	defer cleanup()

	col := style.Color
	if col == nil {
		col = color.Black
	}

	align := style.Align
	if align == AlignLeft && DetectBase(content) == DirectionRTL {
		align = AlignRight
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = int(style.Size * 1.2)
	}
	ascent := metrics.Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}

	lines := Layout(content, float64(bounds.Dx()), style)
	y := bounds.Min.Y + ascent
	for _, line := range lines {
		if y-ascent+lineHeight > bounds.Max.Y && y != bounds.Min.Y+ascent {
			break
		}
		if line.Text != "" {
			x := float64(bounds.Min.X)
			switch align {
			case AlignCenter:
				x += (float64(bounds.Dx()) - line.Width) / 2
			case AlignRight:
				x += float64(bounds.Dx()) - line.Width
			}
			drawer.Dot = fixed.Point26_6{X: floatToFixed(x), Y: fixed.I(y)}
			drawer.DrawString(line.Text)
		}
		y += lineHeight
	}
	return nil
}

// resolveFace picks the registered face for the style or the bitmap
// fallback, plus a cleanup to release rasterizer resources.
func resolveFace(style Style) (font.Face, func(), error) {
	src, ok := Lookup(style.Family, style.Weight, style.Italic)
	if !ok {
		return fallbackFace, func() {}, nil
	}
	face, err := src.Face(style.Size)
	if err != nil {
		return nil, nil, err
	}
	return face, func() { _ = face.Close() }, nil
}
