// Package columns locates the vertical gap that splits a two-column sefer
// page into its reading columns. Detection is a pure projection-profile scan
// over the raster, so it is fully testable offline from synthetic buffers.
package columns

import (
	"image"

	"github.com/wudi/hebscan/raster"
)

// Sensitivity selects a detection preset trading recall against precision.
type Sensitivity int

const (
	SensitivityHigh Sensitivity = iota
	SensitivityMedium
	SensitivityLow
)

// Preset holds the tunable thresholds behind a sensitivity level. All values
// are fractions of the page dimension they apply to.
type Preset struct {
	// BandStart and BandEnd bound the horizontal region searched for a gap.
	BandStart float64
	BandEnd   float64
	// NoiseFrac is the maximum dark-pixel count per pixel column, as a
	// fraction of page height, for the column to count as blank.
	NoiseFrac float64
	// MinGapFrac is the minimum gap width, as a fraction of page width.
	MinGapFrac float64
}

// PresetFor returns the thresholds for a sensitivity level. High widens the
// search band and tolerates more noise for recall; low does the opposite.
func PresetFor(s Sensitivity) Preset {
	switch s {
	case SensitivityHigh:
		return Preset{BandStart: 0.25, BandEnd: 0.75, NoiseFrac: 0.02, MinGapFrac: 0.01}
	case SensitivityLow:
		return Preset{BandStart: 0.35, BandEnd: 0.65, NoiseFrac: 0.01, MinGapFrac: 0.02}
	default:
		return Preset{BandStart: 0.30, BandEnd: 0.70, NoiseFrac: 0.015, MinGapFrac: 0.015}
	}
}

// darkThreshold is the luminance below which a pixel counts as text ink.
const darkThreshold = 128

// Bounds is a half-open pixel range [X0, X1) along the x axis.
type Bounds struct {
	X0 int
	X1 int
}

// Width returns the bounds width in pixels.
func (b Bounds) Width() int { return b.X1 - b.X0 }

// Detection reports the outcome of a column scan. Right precedes left because
// sefer layout reads right-to-left, right column first.
type Detection struct {
	HasColumns bool
	// Separator is the x coordinate of the gap midpoint.
	Separator int
	// Right and Left are the pixel bounds of the two reading columns.
	Right Bounds
	Left  Bounds
	// Confidence grows with gap width and saturates at 1.0 for gaps at
	// least five times the minimum width.
	Confidence float64
}

// Detect scans the surface for a text-free vertical gap in the central band.
// It is deterministic and makes a single O(width×height) pass.
func Detect(s *raster.Surface, sensitivity Sensitivity) Detection {
	if s == nil || s.Img == nil {
		return Detection{}
	}
	p := PresetFor(sensitivity)
	width, height := s.Width(), s.Height()

	proj := projection(s.Img)

	noiseLimit := p.NoiseFrac * float64(height)
	minGap := p.MinGapFrac * float64(width)
	if minGap < 1 {
		minGap = 1
	}
	bandStart := int(p.BandStart * float64(width))
	bandEnd := int(p.BandEnd * float64(width))

	// Widest blank run inside the search band.
	bestStart, bestWidth := -1, 0
	runStart := -1
	for x := bandStart; x <= bandEnd; x++ {
		blank := x < bandEnd && x < width && float64(proj[x]) <= noiseLimit
		if blank {
			if runStart < 0 {
				runStart = x
			}
			continue
		}
		if runStart >= 0 {
			if w := x - runStart; w > bestWidth {
				bestStart, bestWidth = runStart, w
			}
			runStart = -1
		}
	}

	if bestStart < 0 || float64(bestWidth) < minGap {
		return Detection{}
	}

	sep := bestStart + bestWidth/2
	conf := float64(bestWidth) / minGap
	if conf > 5 {
		conf = 5
	}
	return Detection{
		HasColumns: true,
		Separator:  sep,
		Right:      Bounds{X0: sep, X1: width},
		Left:       Bounds{X0: 0, X1: sep},
		Confidence: conf / 5,
	}
}

// projection counts, per pixel column, how many pixels fall below the
// luminance threshold across the full height.
func projection(img *image.RGBA) []int {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	proj := make([]int, width)
	for y := 0; y < height; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y) : img.PixOffset(b.Min.X, b.Min.Y+y)+width*4]
		for x := 0; x < width; x++ {
			r := row[x*4]
			g := row[x*4+1]
			bb := row[x*4+2]
			luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bb)
			if luma < darkThreshold {
				proj[x]++
			}
		}
	}
	return proj
}
