package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base paragraph direction of a run of text.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// DetectBase resolves the base direction of a paragraph by the first
// strong rule (Unicode bidi P2/P3): the first strongly directional
// character wins, neutral-only text is left to right.
func DetectBase(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}
