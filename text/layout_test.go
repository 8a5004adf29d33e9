package text

import (
	"image"
	"strings"
	"testing"
)

// The fallback bitmap face advances 7px per glyph, which makes widths
// exact and keeps these tests free of font files.
const glyphW = 7

func TestMeasureFallback(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"a", glyphW},
		{"abcd", 4 * glyphW},
		{"a b", 3 * glyphW},
	}
	for _, tt := range tests {
		if got := Measure(tt.s, Style{Family: "NoSuchFamily"}); got != tt.want {
			t.Errorf("Measure(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestLayoutWordWrap(t *testing.T) {
	style := Style{Family: "NoSuchFamily"}

	tests := []struct {
		name     string
		content  string
		maxWidth float64
		want     []string
	}{
		{
			name:     "fits on one line",
			content:  "aa bb",
			maxWidth: 10 * glyphW,
			want:     []string{"aa bb"},
		},
		{
			name:     "wraps at word boundary",
			content:  "aa bb cc",
			maxWidth: 5 * glyphW,
			want:     []string{"aa bb", "cc"},
		},
		{
			name:     "each word on its own line",
			content:  "aa bb cc",
			maxWidth: 4 * glyphW,
			want:     []string{"aa", "bb", "cc"},
		},
		{
			name:     "explicit newline is a hard break",
			content:  "aa\nbb",
			maxWidth: 10 * glyphW,
			want:     []string{"aa", "bb"},
		},
		{
			name:     "overwide word breaks per rune",
			content:  "abcdefgh",
			maxWidth: 3 * glyphW,
			want:     []string{"abc", "def", "gh"},
		},
		{
			name:     "box narrower than one glyph still terminates",
			content:  "ab",
			maxWidth: 1,
			want:     []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Layout(tt.content, tt.maxWidth, style)
			got := make([]string, len(lines))
			for i, l := range lines {
				got[i] = l.Text
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("lines = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutEmpty(t *testing.T) {
	if lines := Layout("", 100, Style{}); lines != nil {
		t.Errorf("Layout(\"\") = %v, want nil", lines)
	}
}

func TestDetectBase(t *testing.T) {
	tests := []struct {
		s    string
		want Direction
	}{
		{"hello", DirectionLTR},
		{"", DirectionLTR},
		{"123 !?", DirectionLTR},
		{"שלום", DirectionRTL},
		{"مرحبا hello", DirectionRTL},
		{"!? שלום", DirectionRTL},
		{"(hello) שלום", DirectionLTR},
	}
	for _, tt := range tests {
		if got := DetectBase(tt.s); got != tt.want {
			t.Errorf("DetectBase(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func paintedSpan(img *image.NRGBA) (minX, maxX int, any bool) {
	b := img.Bounds()
	minX, maxX = b.Max.X, b.Min.X
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				any = true
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	return minX, maxX, any
}

func TestDrawPaintsFallbackGlyphs(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 40))
	err := Draw(img, img.Bounds(), "Hi", Style{Family: "NoSuchFamily", Size: 13})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if _, _, any := paintedSpan(img); !any {
		t.Error("nothing was painted")
	}
}

func TestDrawAlignment(t *testing.T) {
	style := Style{Family: "NoSuchFamily", Size: 13}

	left := image.NewNRGBA(image.Rect(0, 0, 70, 20))
	if err := Draw(left, left.Bounds(), "a", style); err != nil {
		t.Fatal(err)
	}
	lMin, _, ok := paintedSpan(left)
	if !ok {
		t.Fatal("left-aligned draw painted nothing")
	}

	style.Align = AlignRight
	right := image.NewNRGBA(image.Rect(0, 0, 70, 20))
	if err := Draw(right, right.Bounds(), "a", style); err != nil {
		t.Fatal(err)
	}
	rMin, rMax, ok := paintedSpan(right)
	if !ok {
		t.Fatal("right-aligned draw painted nothing")
	}

	if rMin <= lMin {
		t.Errorf("right-aligned glyph at x=%d, not right of left-aligned x=%d", rMin, lMin)
	}
	if rMax >= 70 {
		t.Errorf("right-aligned glyph overflows the box (max x = %d)", rMax)
	}
}

func TestDrawEmptyIsNoOp(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if err := Draw(img, img.Bounds(), "", Style{}); err != nil {
		t.Fatal(err)
	}
	if _, _, any := paintedSpan(img); any {
		t.Error("empty draw painted pixels")
	}
}
