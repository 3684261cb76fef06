package preprocess

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/wudi/hebscan/raster"
)

func graySurface(value uint8, alpha uint8) *raster.Surface {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = value
		img.Pix[i+1] = value
		img.Pix[i+2] = value
		img.Pix[i+3] = alpha
	}
	return &raster.Surface{PageIndex: 1, Img: img}
}

func TestEnhanceBinarizes(t *testing.T) {
	// Dark midtone goes to the black side of the ramp: 0*1.3+10 = 10.
	dark := graySurface(100, 255)
	Enhance(dark)
	if got := dark.Img.Pix[0]; got != 10 {
		t.Fatalf("dark pixel = %d, want 10", got)
	}
	// Light midtone saturates white: clamp(255*1.3+10) = 255.
	light := graySurface(180, 255)
	Enhance(light)
	if got := light.Img.Pix[0]; got != 255 {
		t.Fatalf("light pixel = %d, want 255", got)
	}
}

func TestEnhanceWritesAllChannelsLeavesAlpha(t *testing.T) {
	s := graySurface(200, 137)
	Enhance(s)
	pix := s.Img.Pix
	if pix[0] != pix[1] || pix[1] != pix[2] {
		t.Fatalf("channels diverge: %d %d %d", pix[0], pix[1], pix[2])
	}
	if pix[3] != 137 {
		t.Fatalf("alpha = %d, want untouched 137", pix[3])
	}
}

func TestEnhanceThresholdBoundary(t *testing.T) {
	above := graySurface(130, 255)
	Enhance(above)
	if above.Img.Pix[0] != 255 {
		t.Fatalf("pixel above threshold = %d, want 255", above.Img.Pix[0])
	}
	below := graySurface(125, 255)
	Enhance(below)
	if below.Img.Pix[0] != 10 {
		t.Fatalf("pixel below threshold = %d, want 10", below.Img.Pix[0])
	}
}

func TestEncodeProducesJPEG(t *testing.T) {
	s := graySurface(255, 255)
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not decodable JPEG: %v", err)
	}
}

func TestEncodeReleasedSurface(t *testing.T) {
	s := graySurface(0, 255)
	s.Release()
	if _, err := Encode(s); err == nil {
		t.Fatalf("expected error for released surface")
	}
}

func TestForOCR(t *testing.T) {
	s := graySurface(90, 255)
	data, err := ForOCR(s)
	if err != nil {
		t.Fatalf("ForOCR() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected encoded payload")
	}
	// The in-place enhancement must have run before encoding.
	if s.Img.Pix[0] != 10 {
		t.Fatalf("surface not enhanced: %d", s.Img.Pix[0])
	}
}
