package ocr

import (
	"context"
	"fmt"

	"github.com/wudi/hebscan/hebrew"
)

// Invoker wraps an Engine with the fixed Hebrew recognition policy: the
// language hint is always Hebrew and engine output passes through text
// validation before it reaches the caller.
type Invoker struct {
	engine Engine
	opts   []InputOption
}

// NewInvoker constructs an invoker around the given engine. Extra options are
// applied to every input, after the defaults.
func NewInvoker(engine Engine, opts ...InputOption) *Invoker {
	return &Invoker{engine: engine, opts: opts}
}

// EngineName reports the underlying provider name.
func (iv *Invoker) EngineName() string { return iv.engine.Name() }

// Recognize runs the engine on an encoded page image and returns validated
// Hebrew text with the engine's confidence. A nil region recognizes the full
// image.
func (iv *Invoker) Recognize(ctx context.Context, pageIndex int, image []byte, region *Region, progress ProgressFunc) (string, float64, error) {
	in := Input{
		ID:        fmt.Sprintf("page-%d", pageIndex),
		Image:     image,
		Format:    ImageFormatJPEG,
		PageIndex: pageIndex,
		Languages: []string{LanguageHebrew},
		Region:    region,
		Progress:  progress,
	}
	for _, opt := range iv.opts {
		opt(&in)
	}
	res, err := iv.engine.Recognize(ctx, in)
	if err != nil {
		return "", 0, fmt.Errorf("recognize page %d: %w", pageIndex, err)
	}
	return hebrew.Validate(res.Text), res.Confidence, nil
}

// MapProgress rescales a [0, 1] progress fraction into the [lo, hi] range of
// the overall job, so per-image engine progress lands inside the page's
// weighted slice of the total.
func MapProgress(fn ProgressFunc, lo, hi float64) ProgressFunc {
	if fn == nil {
		return nil
	}
	return func(fraction float64) {
		if fraction < 0 {
			fraction = 0
		} else if fraction > 1 {
			fraction = 1
		}
		fn(lo + (hi-lo)*fraction)
	}
}
