package pipeline

// Context receives fire-and-forget notifications as the job advances. The
// pipeline never depends on observer return values; implementations must not
// block. Progress percent may regress briefly since pages complete out of
// order.
type Context interface {
	ReportProgress(percent float64)
	ReportStats(stats Stats)
	ReportMemory(estimateMB float64)
	StoreIntermediate(results ResultMap)
}

// NopContext discards all notifications.
type NopContext struct{}

func (NopContext) ReportProgress(float64)      {}
func (NopContext) ReportStats(Stats)           {}
func (NopContext) ReportMemory(float64)        {}
func (NopContext) StoreIntermediate(ResultMap) {}

// ContextFuncs adapts plain callbacks to the Context interface. Nil fields
// are skipped.
type ContextFuncs struct {
	OnProgress     func(percent float64)
	OnStats        func(stats Stats)
	OnMemory       func(estimateMB float64)
	OnIntermediate func(results ResultMap)
}

func (c ContextFuncs) ReportProgress(percent float64) {
	if c.OnProgress != nil {
		c.OnProgress(percent)
	}
}

func (c ContextFuncs) ReportStats(stats Stats) {
	if c.OnStats != nil {
		c.OnStats(stats)
	}
}

func (c ContextFuncs) ReportMemory(estimateMB float64) {
	if c.OnMemory != nil {
		c.OnMemory(estimateMB)
	}
}

func (c ContextFuncs) StoreIntermediate(results ResultMap) {
	if c.OnIntermediate != nil {
		c.OnIntermediate(results)
	}
}
