package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// HarfBuzzShaper shapes text through go-text/typesetting's HarfBuzz
// implementation: kerning pairs, ligatures, contextual alternates and
// right-to-left scripts come out correct where the builtin shaper only
// does plain advance placement.
//
// Safe for concurrent use. Parsed font.Font objects are cached per
// Source (font.Font is read-only); font.Face and HarfbuzzShaper are
// not concurrent-safe, so faces are created per call and shapers are
// pooled.
type HarfBuzzShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Source]*font.Font
}

// NewHarfBuzzShaper creates a HarfBuzz-backed shaper. Install it with
// SetShaper.
func NewHarfBuzzShaper() *HarfBuzzShaper {
	return &HarfBuzzShaper{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fontCache: make(map[*Source]*font.Font),
	}
}

func (s *HarfBuzzShaper) Shape(src *Source, run string, size float64) []ShapedGlyph {
	if src == nil || run == "" {
		return nil
	}

	parsed, err := s.getOrParse(src)
	if err != nil {
		// Unparseable by go-text; the caller's builtin path still works.
		return BuiltinShaper{}.Shape(src, run, size)
	}

	runes := []rune(run)
	dir := di.DirectionLTR
	if DetectBase(run) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(parsed),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := make([]ShapedGlyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		glyphs[i] = ShapedGlyph{
			GID:     uint16(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
		}
		adv := fixedToFloat(g.Advance)
		glyphs[i].XAdvance = adv
		x += adv
	}
	return glyphs
}

func (s *HarfBuzzShaper) getOrParse(src *Source) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[src]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[src] = face.Font
	return face.Font, nil
}

// ClearCache drops every cached parsed font.
func (s *HarfBuzzShaper) ClearCache() {
	s.mu.Lock()
	s.fontCache = make(map[*Source]*font.Font)
	s.mu.Unlock()
}

// detectScript picks the script of the first non-space rune. Mixed
// script runs should be segmented by the caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
