package resources

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SheetSize reads only the header of an atlas image and returns its pixel
// size. PNG, JPEG, GIF, BMP, TIFF and WebP are recognised.
func SheetSize(r io.Reader) (width, height float64, err error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read atlas image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("atlas image (%s) has no pixels", format)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
