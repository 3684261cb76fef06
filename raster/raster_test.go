package raster

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"
)

func TestOptimalScale(t *testing.T) {
	tests := []struct {
		name       string
		viewport   Viewport
		complexity Complexity
		want       float64
	}{
		{"small page medium", Viewport{Width: 800, Height: 1000}, ComplexityMedium, 2.0},
		{"medium page medium", Viewport{Width: 1000, Height: 1200}, ComplexityMedium, 1.5},
		{"large page medium", Viewport{Width: 1500, Height: 2000}, ComplexityMedium, 1.2},
		{"small page low", Viewport{Width: 800, Height: 1000}, ComplexityLow, 1.6},
		{"small page high capped", Viewport{Width: 800, Height: 1000}, ComplexityHigh, 2.4},
		{"medium page high", Viewport{Width: 1000, Height: 1200}, ComplexityHigh, 1.8},
	}
	for _, tt := range tests {
		if got := OptimalScale(tt.viewport, tt.complexity); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: OptimalScale = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOptimalScaleNeverExceedsCap(t *testing.T) {
	for _, c := range []Complexity{ComplexityLow, ComplexityMedium, ComplexityHigh} {
		if got := OptimalScale(Viewport{Width: 10, Height: 10}, c); got > MaxScale {
			t.Fatalf("scale %v exceeds cap", got)
		}
	}
}

func TestSurfaceEstimatedMB(t *testing.T) {
	s := &Surface{PageIndex: 1, Img: image.NewRGBA(image.Rect(0, 0, 512, 512))}
	want := 512.0 * 512.0 * 4 / (1024 * 1024)
	if got := s.EstimatedMB(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("EstimatedMB = %v, want %v", got, want)
	}
	s.Release()
	if got := s.EstimatedMB(); got != 0 {
		t.Fatalf("released surface EstimatedMB = %v, want 0", got)
	}
}

func TestLoadImagePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	s, err := LoadImage(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if s.PageIndex != 1 {
		t.Fatalf("page index = %d, want 1", s.PageIndex)
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("dimensions = %dx%d, want 20x10", s.Width(), s.Height())
	}
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	if _, err := LoadImage([]byte("not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestResample(t *testing.T) {
	s := &Surface{PageIndex: 3, Img: image.NewRGBA(image.Rect(0, 0, 100, 40))}
	out := Resample(s, 1.5)
	if out.Width() != 150 || out.Height() != 60 {
		t.Fatalf("resampled to %dx%d, want 150x60", out.Width(), out.Height())
	}
	if out.PageIndex != 3 {
		t.Fatalf("page index not carried over")
	}
	if same := Resample(s, 1.0); same != s {
		t.Fatalf("factor 1.0 should return the input surface")
	}
}
