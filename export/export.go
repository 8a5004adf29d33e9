// Package export composes a project's elements into a raster image and
// encodes it. Elements draw in ascending z order onto a fixed 800×600
// logical surface multiplied by the requested scale, so backgrounds in
// the negative band land underneath every foreground element.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/creatorkit/canvas"
	"github.com/creatorkit/canvas/text"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ErrNoElements indicates there was nothing to compose.
var ErrNoElements = errors.New("export: no elements to render")

// Progress reports composition progress after each element is placed.
// done counts placed elements, total is the number of elements in the
// composition.
type Progress func(done, total int)

// Options configures one export run. The zero value produces a PNG at
// 1× scale.
type Options struct {
	Format  Format
	Scale   float64 // raster scale factor, 1 or 2 typically
	Quality int     // JPEG quality, 1..100

	// Background fills the surface before any element draws. When nil,
	// PNG output stays transparent and JPEG output gets white (JPEG has
	// no alpha channel).
	Background color.Color

	Progress   Progress
	Compositor Compositor // nil selects the software compositor
}

func (o *Options) fillDefaults() {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 90
	}
	if o.Background == nil && o.Format == FormatJPEG {
		o.Background = color.White
	}
	if o.Compositor == nil {
		o.Compositor = SoftwareCompositor{}
	}
}

// Render composes elements in ascending z order and encodes the result.
// Asset elements resolve their pixels through the assets map; an
// element whose asset is missing is logged and skipped rather than
// failing the whole export. Text elements rasterize through the text
// package.
func Render(ctx context.Context, elements []canvas.Element, assets map[string]image.Image, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, ErrNoElements
	}
	opts.fillDefaults()

	ordered := make([]canvas.Element, len(elements))
	copy(ordered, elements)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ZIndex < ordered[j].ZIndex })

	width := int(canvas.CanvasWidth * opts.Scale)
	height := int(canvas.CanvasHeight * opts.Scale)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	total := len(ordered)
	for i, el := range ordered {
		// Cancellation lands between elements, never mid-composite.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := renderElement(dst, el, assets, opts); err != nil {
			return nil, fmt.Errorf("export: element %s: %w", el.ID, err)
		}
		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}

	return encode(dst, opts)
}

func renderElement(dst draw.Image, el canvas.Element, assets map[string]image.Image, opts Options) error {
	switch el.Kind {
	case canvas.KindAsset:
		src, ok := assets[el.AssetID]
		if !ok || src == nil {
			canvas.Logger().Warn("asset missing, element skipped",
				"element", el.ID, "asset", el.AssetID)
			return nil
		}
		opts.Compositor.Composite(dst, src, el, opts.Scale)
		return nil

	case canvas.KindText:
		src, err := renderText(el, opts.Scale)
		if err != nil {
			return err
		}
		if src == nil {
			return nil
		}
		opts.Compositor.Composite(dst, src, el, opts.Scale)
		return nil

	default:
		canvas.Logger().Warn("unknown element kind, skipped",
			"element", el.ID, "kind", string(el.Kind))
		return nil
	}
}

// renderText rasterizes a text element into an offscreen image at the
// target scale. The compositor then places it like any other source,
// which keeps rotation and flips on one code path.
func renderText(el canvas.Element, scale float64) (image.Image, error) {
	w := int(el.Width * scale)
	h := int(el.Height * scale)
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if el.BackgroundColor != "" {
		draw.Draw(img, img.Bounds(), image.NewUniform(canvas.Hex(el.BackgroundColor)), image.Point{}, draw.Src)
	}
	if el.Text == "" {
		return img, nil
	}

	style := text.Style{
		Family: el.FontFamily,
		Weight: el.FontWeight,
		Italic: el.FontStyle == "italic",
		Size:   el.FontSize * scale,
		Align:  mapAlign(el.TextAlign),
		Color:  canvas.Hex(el.Color),
	}
	if err := text.Draw(img, img.Bounds(), el.Text, style); err != nil {
		return nil, err
	}
	return img, nil
}

func mapAlign(a canvas.TextAlign) text.Alignment {
	switch a {
	case canvas.AlignCenter:
		return text.AlignCenter
	case canvas.AlignRight:
		return text.AlignRight
	default:
		return text.AlignLeft
	}
}
