package columns

import (
	"image"
	"testing"

	"github.com/wudi/hebscan/raster"
)

// pageWithGap builds a synthetic page: solid text ink everywhere except a
// blank vertical band of gapWidth pixels starting at gapStart.
func pageWithGap(width, height, gapStart, gapWidth int) *raster.Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			v := uint8(0) // ink
			if x >= gapStart && x < gapStart+gapWidth {
				v = 255 // blank gutter
			}
			img.Pix[i] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return &raster.Surface{PageIndex: 1, Img: img}
}

func TestDetectGapAtCenter(t *testing.T) {
	// 5%-wide blank band at 45%..50% of a 1000px page.
	s := pageWithGap(1000, 200, 450, 50)
	det := Detect(s, SensitivityHigh)
	if !det.HasColumns {
		t.Fatalf("expected columns to be detected")
	}
	if det.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", det.Confidence)
	}
	if det.Separator < 470 || det.Separator > 480 {
		t.Fatalf("separator = %d, want ~475", det.Separator)
	}
	if det.Right.X0 != det.Separator || det.Right.X1 != 1000 {
		t.Fatalf("unexpected right bounds: %+v", det.Right)
	}
	if det.Left.X0 != 0 || det.Left.X1 != det.Separator {
		t.Fatalf("unexpected left bounds: %+v", det.Left)
	}
}

func TestDetectNoGap(t *testing.T) {
	s := pageWithGap(1000, 200, 0, 0)
	if det := Detect(s, SensitivityMedium); det.HasColumns {
		t.Fatalf("expected no columns, got %+v", det)
	}
}

func TestDetectGapTooNarrow(t *testing.T) {
	// Medium requires 1.5% of width; 5px on a 1000px page is below that.
	s := pageWithGap(1000, 200, 480, 5)
	if det := Detect(s, SensitivityMedium); det.HasColumns {
		t.Fatalf("expected narrow gap to be rejected, got %+v", det)
	}
}

func TestConfidenceMonotonicInGapWidth(t *testing.T) {
	widths := []int{12, 20, 30, 40, 50}
	prev := 0.0
	for _, w := range widths {
		det := Detect(pageWithGap(1000, 200, 500-w/2, w), SensitivityHigh)
		if !det.HasColumns {
			t.Fatalf("gap width %d not detected", w)
		}
		if det.Confidence <= prev {
			t.Fatalf("confidence %v for width %d not greater than %v", det.Confidence, w, prev)
		}
		prev = det.Confidence
	}
	// Saturation: widening past 5x the minimum stays pinned at 1.0.
	det := Detect(pageWithGap(1000, 200, 460, 80), SensitivityHigh)
	if det.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want saturation at 1.0", det.Confidence)
	}
}

func TestDetectReleasedSurface(t *testing.T) {
	s := pageWithGap(100, 50, 45, 10)
	s.Release()
	if det := Detect(s, SensitivityHigh); det.HasColumns {
		t.Fatalf("released surface should not detect columns")
	}
}

func TestResolveAutoFallsBackOnLowConfidence(t *testing.T) {
	det := Detection{HasColumns: true, Separator: 500, Confidence: 0.2}
	layout := Resolve(det, ModeAuto, 1000)
	if layout.Columns {
		t.Fatalf("auto mode should fall back to single below confidence 0.3")
	}
}

func TestResolveAutoKeepsConfidentSplit(t *testing.T) {
	det := Detection{
		HasColumns: true,
		Separator:  480,
		Right:      Bounds{X0: 480, X1: 1000},
		Left:       Bounds{X0: 0, X1: 480},
		Confidence: 0.8,
	}
	layout := Resolve(det, ModeAuto, 1000)
	if !layout.Columns || layout.Separator != 480 {
		t.Fatalf("unexpected layout: %+v", layout)
	}
	if layout.Script != ScriptSquare {
		t.Fatalf("unexpected script: %v", layout.Script)
	}
}

func TestResolveForceSplitsEvenWithoutGap(t *testing.T) {
	layout := Resolve(Detection{}, ModeForce, 1000)
	if !layout.Columns {
		t.Fatalf("force mode must always split")
	}
	if layout.Separator != 500 {
		t.Fatalf("separator = %d, want 500", layout.Separator)
	}
	if layout.Confidence != 0.3 {
		t.Fatalf("confidence = %v, want fixed 0.3", layout.Confidence)
	}
}

func TestResolveSingleSkipsDetection(t *testing.T) {
	det := Detection{HasColumns: true, Separator: 500, Confidence: 1.0}
	if layout := Resolve(det, ModeSingle, 1000); layout.Columns {
		t.Fatalf("single mode must never split")
	}
}
