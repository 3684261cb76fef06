package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Complexity classifies expected page content density. Denser pages get a
// higher scale so small glyphs and niqqud survive binarization.
type Complexity int

const (
	ComplexityLow Complexity = iota
	ComplexityMedium
	ComplexityHigh
)

func (c Complexity) factor() float64 {
	switch c {
	case ComplexityLow:
		return 0.8
	case ComplexityHigh:
		return 1.2
	default:
		return 1.0
	}
}

// MaxScale caps the render scale regardless of page size or complexity.
const MaxScale = 2.5

// OptimalScale chooses a render scale from the page viewport. Large pages are
// downscaled to bound memory and OCR latency; small pages are upscaled for
// recognition accuracy.
func OptimalScale(v Viewport, c Complexity) float64 {
	var base float64
	switch area := v.Area(); {
	case area > 2_000_000:
		base = 1.2
	case area > 1_000_000:
		base = 1.5
	default:
		base = 2.0
	}
	scale := base * c.factor()
	if scale > MaxScale {
		scale = MaxScale
	}
	return scale
}

// Resample scales a surface by the given factor using bilinear interpolation.
// The input surface is left untouched.
func Resample(s *Surface, factor float64) *Surface {
	if s == nil || s.Img == nil || factor == 1.0 {
		return s
	}
	src := s.Img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(src.Dx())*factor),
		int(float64(src.Dy())*factor)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.Img, src, xdraw.Src, nil)
	return &Surface{PageIndex: s.PageIndex, Img: dst}
}
