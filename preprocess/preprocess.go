// Package preprocess prepares a rendered page for recognition. Raw scans
// carry enough midtone noise to materially degrade Hebrew glyph recognition,
// especially niqqud, so pages are binarized and contrast-boosted before they
// reach the OCR engine.
package preprocess

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/wudi/hebscan/raster"
)

const (
	// binarizeThreshold splits luminance into pure black and white.
	binarizeThreshold = 128
	contrastGain      = 1.3
	brightnessBias    = 10
	// jpegQuality is the encoding quality for engine transport.
	jpegQuality = 85
)

// Enhance binarizes and contrast-adjusts the surface in place. Each pixel is
// reduced to luminance, thresholded to black or white, passed through a
// linear contrast/brightness ramp, and written back to all three color
// channels. Alpha is untouched.
func Enhance(s *raster.Surface) {
	if s == nil || s.Img == nil {
		return
	}
	pix := s.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		luma := 0.299*float64(pix[i]) + 0.587*float64(pix[i+1]) + 0.114*float64(pix[i+2])
		var binary float64
		if luma >= binarizeThreshold {
			binary = 255
		}
		enhanced := binary*contrastGain + brightnessBias
		if enhanced > 255 {
			enhanced = 255
		} else if enhanced < 0 {
			enhanced = 0
		}
		v := uint8(enhanced)
		pix[i] = v
		pix[i+1] = v
		pix[i+2] = v
	}
}

// Encode compresses the surface for transport to the OCR engine.
func Encode(s *raster.Surface) ([]byte, error) {
	if s == nil || s.Img == nil {
		return nil, fmt.Errorf("encode: surface released")
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, s.Img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode surface: %w", err)
	}
	return buf.Bytes(), nil
}

// ForOCR runs the full preprocessing step: enhance in place, then encode.
func ForOCR(s *raster.Surface) ([]byte, error) {
	Enhance(s)
	return Encode(s)
}
