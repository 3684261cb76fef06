// Package ocr defines abstraction layers for plugging third-party OCR engines
// (for example, Tesseract or cloud services) into the scan processing
// pipeline. The interfaces are intentionally small and transport-agnostic so
// engines can be backed by native libraries, local binaries, or remote APIs
// without leaking provider-specific concerns into callers.
package ocr

import "context"

// LanguageHebrew is the trained-data code this system always recognizes with.
const LanguageHebrew = "heb"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
)

// Region describes a rectangular area in pixel coordinates with the origin in
// the upper-left corner of the image.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsEmpty reports whether the region has non-positive dimensions.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// ProgressFunc receives recognition progress as a fraction in [0, 1].
// Engines that cannot report incremental progress call it with 0 before and
// 1 after recognition.
type ProgressFunc func(fraction float64)

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in
	// the corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/jpeg).
	Format ImageFormat
	// PageIndex links the input back to the 1-based page it originated from.
	PageIndex int
	// Languages is a list of trained-data hints (e.g., "heb") that providers
	// use to select models.
	Languages []string
	// Region restricts recognition to a subsection of the image. Nil means
	// the full image should be processed.
	Region *Region
	// Progress, when non-nil, receives per-image recognition progress.
	Progress ProgressFunc
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "tessedit_pageseg_mode") without hard-coding them into the API surface.
	Metadata map[string]string
}

// Result captures OCR output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// Text contains the linearized text extracted from the image.
	Text string
	// Confidence is the engine's mean word confidence normalized to [0, 1].
	Confidence float64
	// Language indicates the dominant language requested, if known.
	Language string
}

// Engine is the simplest OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// BatchEngine handles multiple images in a single call, enabling providers
// that amortize setup costs or remote round-trips.
type BatchEngine interface {
	Engine
	RecognizeBatch(ctx context.Context, inputs []Input) ([]Result, error)
}
