// Package pipeline orchestrates page processing for scanned Hebrew
// documents: it picks a concurrency strategy from input characteristics, runs
// pages through render, column detection, preprocessing and recognition with
// bounded parallelism, and aggregates per-page results deterministically
// regardless of completion order.
package pipeline

// Strategy selects the concurrency shape used to process a document.
type Strategy string

const (
	// StrategyAuto defers the choice to page count and file size.
	StrategyAuto Strategy = "auto"
	// StrategyParallel runs all pages with a generous concurrency bound.
	StrategyParallel Strategy = "parallel"
	// StrategyBatch is the parallel executor with a tighter bound.
	StrategyBatch Strategy = "batch"
	// StrategyChunked processes sequential chunks of pages.
	StrategyChunked Strategy = "chunked"
	// StrategyProgressive is the chunked executor with smaller chunks.
	StrategyProgressive Strategy = "progressive"
)

// Strategy thresholds and executor parameters.
const (
	parallelMaxPages = 5
	batchMaxPages    = 15
	chunkedMaxPages  = 50

	parallelConcurrency = 3
	batchConcurrency    = 2
	chunkedChunkSize    = 5
	progressiveChunk    = 3
)

// Select maps input characteristics to a strategy. Any mode other than auto
// is a manual override and passes through verbatim. Select is pure; boundary
// behavior is exact (5 pages is still parallel, 6 is batch, and so on).
func Select(mode Strategy, pageCount int, fileSizeMB float64) Strategy {
	if mode != StrategyAuto {
		return mode
	}
	switch {
	case pageCount <= parallelMaxPages:
		return StrategyParallel
	case pageCount <= batchMaxPages:
		return StrategyBatch
	case pageCount <= chunkedMaxPages:
		return StrategyChunked
	default:
		return StrategyProgressive
	}
}

// Plan carries the executor parameters for a resolved strategy.
type Plan struct {
	Strategy Strategy
	// MaxConcurrency bounds in-flight pages for parallel and batch.
	MaxConcurrency int
	// ChunkSize bounds chunk width for chunked and progressive.
	ChunkSize int
}

// PlanFor resolves executor parameters for a strategy tag.
func PlanFor(s Strategy) Plan {
	switch s {
	case StrategyBatch:
		return Plan{Strategy: s, MaxConcurrency: batchConcurrency}
	case StrategyChunked:
		return Plan{Strategy: s, ChunkSize: chunkedChunkSize}
	case StrategyProgressive:
		return Plan{Strategy: s, ChunkSize: progressiveChunk}
	default:
		return Plan{Strategy: StrategyParallel, MaxConcurrency: parallelConcurrency}
	}
}
