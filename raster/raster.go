// Package raster defines the surface type produced by page rendering and the
// abstraction layer for plugging external rasterization engines (for example,
// MuPDF) into the scan processing pipeline. The interfaces are intentionally
// small so engines can be backed by native libraries or remote services
// without leaking provider-specific concerns into callers.
package raster

import (
	"context"
	"fmt"
	"image"
)

// Surface is a decoded RGBA raster for one page. A surface is exclusively
// owned by the processing unit that rendered it and must be released once
// recognition for that page has finished.
type Surface struct {
	// PageIndex is the 1-based page number the surface was rendered from.
	PageIndex int
	// Img holds the pixel data. Nil after Release.
	Img *image.RGBA
}

// Width returns the surface width in pixels, zero if released.
func (s *Surface) Width() int {
	if s == nil || s.Img == nil {
		return 0
	}
	return s.Img.Bounds().Dx()
}

// Height returns the surface height in pixels, zero if released.
func (s *Surface) Height() int {
	if s == nil || s.Img == nil {
		return 0
	}
	return s.Img.Bounds().Dy()
}

// EstimatedMB approximates the resident size of the surface assuming four
// bytes per pixel.
func (s *Surface) EstimatedMB() float64 {
	return float64(s.Width()) * float64(s.Height()) * 4 / (1024 * 1024)
}

// Release drops the pixel data so it can be reclaimed. Safe to call twice.
func (s *Surface) Release() {
	if s != nil {
		s.Img = nil
	}
}

// Viewport describes the natural page dimensions reported by the engine
// before any scaling is applied.
type Viewport struct {
	Width  float64
	Height float64
}

// Area returns the viewport area in square pixels.
func (v Viewport) Area() float64 { return v.Width * v.Height }

// Page is a handle to a single document page held by the engine.
type Page interface {
	// Viewport reports the page dimensions at scale 1.0.
	Viewport() (Viewport, error)
	// Render rasterizes the page at the given scale factor.
	Render(ctx context.Context, scale float64) (*Surface, error)
	// Close releases engine-side resources for the page.
	Close() error
}

// Document is an open multi-page document held by the engine.
type Document interface {
	PageCount() int
	// Page returns a handle for the 1-based page index.
	Page(index int) (Page, error)
	Close() error
}

// Rasterizer is the external rendering engine contract: it decodes a document
// from bytes and hands out per-page render handles.
type Rasterizer interface {
	Name() string
	OpenDocument(ctx context.Context, data []byte) (Document, error)
}

// RenderError wraps an engine render failure with the page it occurred on.
// The scheduler catches it per page and substitutes a placeholder instead of
// aborting the whole job.
type RenderError struct {
	PageIndex int
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render page %d: %v", e.PageIndex, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
