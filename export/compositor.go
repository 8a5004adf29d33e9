package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/creatorkit/canvas"
)

// Compositor places one source image onto the destination raster
// according to an element's geometry. The software implementation is
// the default; the seam exists so a GPU-backed implementation can slot
// in without touching the pipeline.
type Compositor interface {
	Composite(dst draw.Image, src image.Image, el canvas.Element, scale float64)
}

// SoftwareCompositor transforms sources with bilinear filtering on the
// CPU. It is stateless and safe for concurrent use.
type SoftwareCompositor struct{}

// Composite draws src into the element's rectangle at the given raster
// scale, applying rotation about the element center, flips and opacity.
func (SoftwareCompositor) Composite(dst draw.Image, src image.Image, el canvas.Element, scale float64) {
	bounds := src.Bounds()
	sw := float64(bounds.Dx())
	sh := float64(bounds.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	w := el.Width * scale
	h := el.Height * scale
	cx := (el.X + el.Width/2) * scale
	cy := (el.Y + el.Height/2) * scale

	fx := w / sw
	fy := h / sh
	if el.FlipHorizontal {
		fx = -fx
	}
	if el.FlipVertical {
		fy = -fy
	}

	// Source pixel -> destination pixel: center the source, scale and
	// flip, rotate about the center, then move to the element center.
	m := canvas.Translate(cx, cy).
		Multiply(canvas.Rotate(el.Rotation * math.Pi / 180)).
		Multiply(canvas.ScaleXY(fx, fy)).
		Multiply(canvas.Translate(-sw/2, -sh/2))

	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}

	var opts *xdraw.Options
	if el.Opacity < 1 {
		alpha := uint8(math.Round(el.Opacity * 255))
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: alpha}),
		}
	}
	xdraw.BiLinear.Transform(dst, s2d, src, bounds, xdraw.Over, opts)
}
