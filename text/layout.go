package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fallbackFace renders text for unregistered families. A bitmap face
// keeps composition working without any font files on disk.
var fallbackFace font.Face = basicfont.Face7x13

// Line is one laid-out line of text.
type Line struct {
	Text  string
	Width float64
}

// Measure returns the advance width of a single-line string in the
// given style, using the installed shaper when the family is
// registered and the bitmap fallback otherwise.
func Measure(s string, style Style) float64 {
	if s == "" {
		return 0
	}
	if src, ok := Lookup(style.Family, style.Weight, style.Italic); ok {
		return Advance(ActiveShaper().Shape(src, s, style.Size))
	}
	return fixedToFloat(font.MeasureString(fallbackFace, s))
}

// Layout breaks content into lines that fit maxWidth: explicit
// newlines are hard breaks, then greedy word wrapping, then per-rune
// breaking for single words wider than the box. A line always carries
// at least one rune so layout terminates on any input.
func Layout(content string, maxWidth float64, style Style) []Line {
	if content == "" {
		return nil
	}

	var lines []Line
	for _, para := range strings.Split(content, "\n") {
		if para == "" {
			lines = append(lines, Line{})
			continue
		}
		lines = append(lines, wrapParagraph(para, maxWidth, style)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth float64, style Style) []Line {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []Line{{}}
	}

	var lines []Line
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if w := Measure(candidate, style); w <= maxWidth || current == "" {
			if current == "" && Measure(word, style) > maxWidth {
				// Single word wider than the box: hard-break it.
				broken, rest := breakWord(word, maxWidth, style)
				for _, b := range broken {
					lines = append(lines, Line{Text: b, Width: Measure(b, style)})
				}
				current = rest
				continue
			}
			current = candidate
			continue
		}
		lines = append(lines, Line{Text: current, Width: Measure(current, style)})
		if Measure(word, style) > maxWidth {
			broken, rest := breakWord(word, maxWidth, style)
			for _, b := range broken {
				lines = append(lines, Line{Text: b, Width: Measure(b, style)})
			}
			current = rest
			continue
		}
		current = word
	}
	if current != "" {
		lines = append(lines, Line{Text: current, Width: Measure(current, style)})
	}
	return lines
}

// breakWord splits an overwide word into full lines plus a remainder
// that fits. Every produced line keeps at least one rune.
func breakWord(word string, maxWidth float64, style Style) (full []string, rest string) {
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && Measure(string(runes[start:end+1]), style) <= maxWidth {
			end++
		}
		if end == len(runes) {
			return full, string(runes[start:])
		}
		full = append(full, string(runes[start:end]))
		start = end
	}
	return full, ""
}
