package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one positioned glyph in a shaped run. Positions and
// advances are in pixels at the shaped size.
type ShapedGlyph struct {
	GID      uint16
	Cluster  int
	X        float64
	Y        float64
	XAdvance float64
}

// Shaper converts a run of text into positioned glyphs at a given size.
// The builtin shaper does plain left-to-right advance placement with
// kerning; a HarfBuzz-backed shaper adds ligatures, contextual forms
// and right-to-left reordering.
type Shaper interface {
	Shape(src *Source, run string, size float64) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper installs the shaper used by layout and drawing. Pass nil to
// reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// ActiveShaper returns the currently installed shaper.
func ActiveShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// BuiltinShaper positions glyphs left to right using the font's advance
// and kerning tables. It is stateless and safe for concurrent use.
type BuiltinShaper struct{}

func (BuiltinShaper) Shape(src *Source, run string, size float64) []ShapedGlyph {
	if src == nil || run == "" {
		return nil
	}

	ppem := floatToFixed(size)
	runes := []rune(run)
	out := make([]ShapedGlyph, 0, len(runes))

	src.mu.Lock()
	defer src.mu.Unlock()

	var x float64
	var prev sfnt.GlyphIndex
	for cluster, r := range runes {
		gid, err := src.parsed.GlyphIndex(&src.buf, r)
		if err != nil {
			continue
		}
		adv, err := src.parsed.GlyphAdvance(&src.buf, gid, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		if cluster > 0 {
			if kern, err := src.parsed.Kern(&src.buf, prev, gid, ppem, font.HintingNone); err == nil {
				x += fixedToFloat(kern)
			}
		}
		out = append(out, ShapedGlyph{
			GID:      uint16(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: fixedToFloat(adv),
		})
		x += fixedToFloat(adv)
		prev = gid
	}
	return out
}

// Advance returns the total advance width of a shaped run.
func Advance(glyphs []ShapedGlyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
