package text

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData indicates Register was handed a zero-length byte slice.
var ErrEmptyFontData = errors.New("text: empty font data")

// Source is a loaded font file. One Source serves faces at any size and
// is shared across the registry; it is safe for concurrent use.
type Source struct {
	data   []byte
	parsed *sfnt.Font

	// mu guards buf. sfnt.Buffer is a scratch area and not safe for
	// concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer
}

func newSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return &Source{data: dataCopy, parsed: parsed}, nil
}

// Face creates a rasterizing face at the given pixel size.
func (s *Source) Face(size float64) (font.Face, error) {
	return opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

type faceKey struct {
	family string
	weight string
	italic bool
}

func normalizeWeight(w string) string {
	if strings.EqualFold(w, "bold") {
		return "bold"
	}
	return "normal"
}

var (
	registryMu sync.RWMutex
	registry   = map[faceKey]*Source{}
)

// Register adds a font variant to the family registry, replacing any
// previous registration for the same variant.
func Register(family, weight string, italic bool, data []byte) (*Source, error) {
	src, err := newSource(data)
	if err != nil {
		return nil, err
	}
	key := faceKey{family: family, weight: normalizeWeight(weight), italic: italic}
	registryMu.Lock()
	registry[key] = src
	registryMu.Unlock()
	return src, nil
}

// RegisterFile loads a font file and registers it under the family.
func RegisterFile(family, weight string, italic bool, path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return Register(family, weight, italic, data)
}

// Lookup resolves a family variant. A missing bold or italic variant
// falls back to the family's regular face; a missing family reports
// false and callers use the builtin bitmap fallback.
func Lookup(family, weight string, italic bool) (*Source, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if src, ok := registry[faceKey{family: family, weight: normalizeWeight(weight), italic: italic}]; ok {
		return src, true
	}
	src, ok := registry[faceKey{family: family, weight: "normal", italic: false}]
	return src, ok
}

// ClearRegistry drops every registered font.
func ClearRegistry() {
	registryMu.Lock()
	registry = map[faceKey]*Source{}
	registryMu.Unlock()
}
