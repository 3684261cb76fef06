package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wudi/hebscan/columns"
	"github.com/wudi/hebscan/memory"
	"github.com/wudi/hebscan/observability"
	"github.com/wudi/hebscan/ocr"
	"github.com/wudi/hebscan/preprocess"
	"github.com/wudi/hebscan/raster"
)

// JobState models the lifecycle of one document job. Per-page recognition
// failures never move the job to StateError; they resolve to placeholder
// text and the job continues.
type JobState string

const (
	StateIdle         JobState = "idle"
	StateInitializing JobState = "initializing"
	StateProcessing   JobState = "processing"
	StateAggregating  JobState = "aggregating"
	StateComplete     JobState = "complete"
	StateError        JobState = "error"
)

// Outcome is the final report for one processed document.
type Outcome struct {
	JobID    string
	Kind     FileKind
	Strategy Strategy
	Text     string
	Results  ResultMap
	Stats    Stats
	State    JobState
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. Defaults to a no-op.
func WithLogger(log observability.Logger) Option {
	return func(p *Processor) { p.log = log }
}

// WithTracer sets the tracer. Defaults to a no-op.
func WithTracer(tracer observability.Tracer) Option {
	return func(p *Processor) { p.tracer = tracer }
}

// WithObserver sets the progress observer. Defaults to NopContext.
func WithObserver(obs Context) Option {
	return func(p *Processor) { p.obs = obs }
}

// WithStrategy requests a strategy, overriding automatic selection.
func WithStrategy(s Strategy) Option {
	return func(p *Processor) { p.mode = s }
}

// WithColumnMode sets the column split policy.
func WithColumnMode(mode columns.Mode) Option {
	return func(p *Processor) { p.columnMode = mode }
}

// WithSensitivity sets the column detection sensitivity.
func WithSensitivity(s columns.Sensitivity) Option {
	return func(p *Processor) { p.sensitivity = s }
}

// WithComplexity sets the page complexity class used for scale selection.
func WithComplexity(c raster.Complexity) Option {
	return func(p *Processor) { p.complexity = c }
}

// WithEngineOptions appends options applied to every recognition input.
func WithEngineOptions(opts ...ocr.InputOption) Option {
	return func(p *Processor) { p.engineOpts = append(p.engineOpts, opts...) }
}

// Processor runs whole documents through the adaptive OCR pipeline. It is
// stateless between jobs: all per-document state is created inside
// ProcessFile and dropped when it returns.
type Processor struct {
	rasterizer  raster.Rasterizer
	engine      ocr.Engine
	engineOpts  []ocr.InputOption
	log         observability.Logger
	tracer      observability.Tracer
	obs         Context
	mode        Strategy
	columnMode  columns.Mode
	sensitivity columns.Sensitivity
	complexity  raster.Complexity
}

// New constructs a processor around the injected rasterization and OCR
// engines.
func New(rasterizer raster.Rasterizer, engine ocr.Engine, opts ...Option) *Processor {
	p := &Processor{
		rasterizer:  rasterizer,
		engine:      engine,
		log:         observability.NopLogger{},
		tracer:      observability.NopTracer(),
		obs:         NopContext{},
		mode:        StrategyAuto,
		columnMode:  columns.ModeAuto,
		sensitivity: columns.SensitivityHigh,
		complexity:  raster.ComplexityMedium,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// job carries the per-document mutable state. A fresh job is created for
// every ProcessFile call so nothing leaks across documents.
type job struct {
	id      string
	state   JobState
	store   *resultStore
	stats   *statsTracker
	tracker *memory.Tracker
	invoker *ocr.Invoker
	log     observability.Logger
}

func (j *job) transition(s JobState) {
	j.state = s
	j.log.Debug("job state", observability.String("state", string(s)))
}

// ProcessFile runs the full pipeline on one document. Page-level failures
// appear inline in the output as error placeholders; only setup failures
// (unreadable file, engine unavailable) return an error.
func (p *Processor) ProcessFile(ctx context.Context, data []byte) (*Outcome, error) {
	kind, err := DetectKind(data)
	if err != nil {
		return nil, err
	}

	j := &job{
		id:      uuid.NewString(),
		state:   StateIdle,
		store:   newResultStore(),
		invoker: ocr.NewInvoker(p.engine, p.engineOpts...),
	}
	j.log = p.log.With(observability.String("job", j.id))
	j.tracker = memory.NewTracker(j.log)

	ctx, span := p.tracer.StartSpan(ctx, "pipeline.process_file")
	defer span.Finish()
	span.SetTag("kind", string(kind))

	j.transition(StateInitializing)

	var strategy Strategy
	switch kind {
	case KindImage:
		strategy = StrategyParallel
		j.stats = newStatsTracker(1)
		err = p.processImage(ctx, j, data)
	default:
		strategy, err = p.processPDF(ctx, j, data)
	}
	if err != nil {
		j.transition(StateError)
		span.SetError(err)
		return nil, err
	}

	j.transition(StateAggregating)
	results := j.store.snapshot()
	text := Finalize(results, kind)
	j.transition(StateComplete)
	p.obs.ReportProgress(100)

	j.log.Info("document processed",
		observability.String("strategy", string(strategy)),
		observability.Int(observability.MetricPageCount, len(results)))

	return &Outcome{
		JobID:    j.id,
		Kind:     kind,
		Strategy: strategy,
		Text:     text,
		Results:  results,
		Stats:    j.stats.snapshot(),
		State:    j.state,
	}, nil
}

// processImage handles the standalone image path: no rasterization engine,
// page count fixed at one, no strategy selection.
func (p *Processor) processImage(ctx context.Context, j *job, data []byte) error {
	surface, err := raster.LoadImage(data)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	viewport := raster.Viewport{Width: float64(surface.Width()), Height: float64(surface.Height())}
	if scale := raster.OptimalScale(viewport, p.complexity); scale > 1 {
		surface = raster.Resample(surface, scale)
	}
	j.transition(StateProcessing)
	start := time.Now()
	res := p.processSurface(ctx, j, surface, 1, 1)
	surface.Release()
	j.store.put(1, res)
	p.finishPage(j, 1, 1, start)
	p.obs.StoreIntermediate(j.store.snapshot())
	return ctx.Err()
}

// processPDF opens the document, selects a strategy and dispatches to the
// matching executor.
func (p *Processor) processPDF(ctx context.Context, j *job, data []byte) (Strategy, error) {
	doc, err := p.rasterizer.OpenDocument(ctx, data)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	pageCount := doc.PageCount()
	fileSizeMB := float64(len(data)) / (1024 * 1024)
	strategy := Select(p.mode, pageCount, fileSizeMB)
	plan := PlanFor(strategy)
	j.stats = newStatsTracker(pageCount)

	j.log.Info("processing document",
		observability.String("strategy", string(strategy)),
		observability.Int("pages", pageCount),
		observability.Float64("size_mb", fileSizeMB))

	j.transition(StateProcessing)
	unit := func(ctx context.Context, index int) PageResult {
		return p.processPage(ctx, j, doc, index, pageCount)
	}

	switch strategy {
	case StrategyChunked, StrategyProgressive:
		err = runChunked(ctx, pageCount, plan.ChunkSize, unit, j.store, p.obs, j.tracker)
	default:
		err = runParallel(ctx, pageCount, plan.MaxConcurrency, unit, j.store, p.obs)
	}
	return strategy, err
}

// processPage renders one page and runs it through the rest of the pipeline.
// Failures at any step resolve to a placeholder result.
func (p *Processor) processPage(ctx context.Context, j *job, doc raster.Document, index, total int) PageResult {
	start := time.Now()
	page, err := doc.Page(index)
	if err != nil {
		return p.failPage(j, index, total, start, err)
	}
	defer page.Close()

	viewport, err := page.Viewport()
	if err != nil {
		return p.failPage(j, index, total, start, err)
	}
	scale := raster.OptimalScale(viewport, p.complexity)

	surface, err := page.Render(ctx, scale)
	if err != nil {
		return p.failPage(j, index, total, start, &raster.RenderError{PageIndex: index, Err: err})
	}
	mb := surface.EstimatedMB()
	p.obs.ReportMemory(j.tracker.Add(mb))
	defer func() {
		surface.Release()
		p.obs.ReportMemory(j.tracker.Release(mb))
	}()

	res := p.processSurface(ctx, j, surface, index, total)
	p.finishPage(j, index, total, start)
	return res
}

// processSurface runs column detection, preprocessing and recognition on an
// already-rendered surface.
func (p *Processor) processSurface(ctx context.Context, j *job, surface *raster.Surface, index, total int) PageResult {
	var layout columns.Layout
	if p.columnMode == columns.ModeSingle {
		layout = columns.Resolve(columns.Detection{}, columns.ModeSingle, surface.Width())
	} else {
		det := columns.Detect(surface, p.sensitivity)
		layout = columns.Resolve(det, p.columnMode, surface.Width())
	}

	encoded, err := preprocess.ForOCR(surface)
	if err != nil {
		return p.failSurface(j, index, total, err)
	}

	lo := float64(index-1) / float64(total) * 100
	hi := float64(index) / float64(total) * 100

	height := float64(surface.Height())
	var text string
	var confidence float64
	if layout.Columns {
		// Sefer reading order: right column first.
		rightText, rightConf, rErr := j.invoker.Recognize(ctx, index, encoded,
			regionFor(layout.Right, height), ocr.MapProgress(p.obs.ReportProgress, lo, (lo+hi)/2))
		if rErr != nil {
			return p.failSurface(j, index, total, rErr)
		}
		leftText, leftConf, lErr := j.invoker.Recognize(ctx, index, encoded,
			regionFor(layout.Left, height), ocr.MapProgress(p.obs.ReportProgress, (lo+hi)/2, hi))
		if lErr != nil {
			return p.failSurface(j, index, total, lErr)
		}
		text = rightText + "\n" + leftText
		confidence = (rightConf + leftConf) / 2
	} else {
		text, confidence, err = j.invoker.Recognize(ctx, index, encoded, nil,
			ocr.MapProgress(p.obs.ReportProgress, lo, hi))
		if err != nil {
			return p.failSurface(j, index, total, err)
		}
	}

	return PageResult{Text: text, Confidence: confidence, Layout: layout}
}

func regionFor(b columns.Bounds, height float64) *ocr.Region {
	return &ocr.Region{X: float64(b.X0), Y: 0, Width: float64(b.Width()), Height: height}
}

// failPage records a page failure that happened before or during rendering.
func (p *Processor) failPage(j *job, index, total int, start time.Time, err error) PageResult {
	p.finishPage(j, index, total, start)
	return placeholder(j, index, err)
}

// failSurface records a failure after rendering; timing is handled by the
// caller for the render path, so only the placeholder is produced here.
func (p *Processor) failSurface(j *job, index, total int, err error) PageResult {
	return placeholder(j, index, err)
}

func placeholder(j *job, index int, err error) PageResult {
	j.log.Warn("page failed",
		observability.Int("page", index),
		observability.Error("cause", err))
	return PageResult{
		Text:       fmt.Sprintf("[Error processing page %d: %s]", index, err.Error()),
		Confidence: 0,
		Failed:     true,
	}
}

// finishPage updates stats and overall progress after a unit settles.
func (p *Processor) finishPage(j *job, index, total int, start time.Time) {
	stats := j.stats.complete(time.Since(start))
	p.obs.ReportStats(stats)
	p.obs.ReportProgress(float64(stats.CompletedPages) / float64(total) * 100)
}
