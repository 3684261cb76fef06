package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	// Register decoders for the accepted single-image input formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a standalone image input (PNG, JPEG, TIFF, or WebP) into
// a surface for page index 1. Single-image jobs bypass the rasterization
// engine entirely.
func LoadImage(data []byte) (*Surface, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Surface{PageIndex: 1, Img: rgba}, nil
}
