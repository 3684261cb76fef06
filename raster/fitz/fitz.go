// Package fitz provides a MuPDF-backed rasterizer using the go-fitz binding
// as the default PDF rendering provider.
package fitz

import (
	"context"
	"fmt"

	gofitz "github.com/gen2brain/go-fitz"

	"github.com/wudi/hebscan/raster"
)

// baseDPI is the MuPDF resolution corresponding to render scale 1.0.
const baseDPI = 72.0

// Rasterizer implements raster.Rasterizer on top of MuPDF.
type Rasterizer struct{}

// New constructs a MuPDF-backed rasterizer.
func New() *Rasterizer { return &Rasterizer{} }

func (r *Rasterizer) Name() string { return "mupdf" }

// OpenDocument decodes a PDF from memory.
func (r *Rasterizer) OpenDocument(ctx context.Context, data []byte) (raster.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	doc, err := gofitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return &document{doc: doc}, nil
}

type document struct {
	doc *gofitz.Document
}

func (d *document) PageCount() int { return d.doc.NumPage() }

func (d *document) Page(index int) (raster.Page, error) {
	if index < 1 || index > d.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range 1..%d", index, d.doc.NumPage())
	}
	return &page{doc: d.doc, index: index}, nil
}

func (d *document) Close() error { return d.doc.Close() }

type page struct {
	doc   *gofitz.Document
	index int
}

func (p *page) Viewport() (raster.Viewport, error) {
	bounds, err := p.doc.Bound(p.index - 1)
	if err != nil {
		return raster.Viewport{}, fmt.Errorf("page bounds: %w", err)
	}
	return raster.Viewport{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}, nil
}

func (p *page) Render(ctx context.Context, scale float64) (*raster.Surface, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	img, err := p.doc.ImageDPI(p.index-1, baseDPI*scale)
	if err != nil {
		return nil, &raster.RenderError{PageIndex: p.index, Err: err}
	}
	return &raster.Surface{PageIndex: p.index, Img: img}, nil
}

// Close is a no-op: go-fitz manages page resources at the document level.
func (p *page) Close() error { return nil }
