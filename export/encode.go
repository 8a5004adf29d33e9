package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

func encode(img image.Image, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch opts.Format {
	case FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("export: encode png: %w", err)
		}
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.Quality}); err != nil {
			return nil, fmt.Errorf("export: encode jpeg: %w", err)
		}
	default:
		return nil, fmt.Errorf("export: unsupported format %q", opts.Format)
	}
	return buf.Bytes(), nil
}
