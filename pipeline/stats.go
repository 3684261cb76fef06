package pipeline

import (
	"sync"
	"time"
)

// Stats is the progress snapshot published to observers after each completed
// unit.
type Stats struct {
	TotalPages         int
	CompletedPages     int
	AverageTimePerPage time.Duration
	EstimatedRemaining time.Duration
}

// statsTracker serializes stats updates from concurrent unit completions.
type statsTracker struct {
	mu        sync.Mutex
	total     int
	completed int
	elapsed   time.Duration
}

func newStatsTracker(total int) *statsTracker {
	return &statsTracker{total: total}
}

// complete records one finished unit and returns the updated snapshot.
func (t *statsTracker) complete(pageTime time.Duration) Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed++
	t.elapsed += pageTime
	avg := t.elapsed / time.Duration(t.completed)
	remaining := time.Duration(t.total-t.completed) * avg
	return Stats{
		TotalPages:         t.total,
		CompletedPages:     t.completed,
		AverageTimePerPage: avg,
		EstimatedRemaining: remaining,
	}
}

func (t *statsTracker) snapshot() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	var avg, remaining time.Duration
	if t.completed > 0 {
		avg = t.elapsed / time.Duration(t.completed)
		remaining = time.Duration(t.total-t.completed) * avg
	}
	return Stats{
		TotalPages:         t.total,
		CompletedPages:     t.completed,
		AverageTimePerPage: avg,
		EstimatedRemaining: remaining,
	}
}
