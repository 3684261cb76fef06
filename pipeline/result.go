package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/wudi/hebscan/columns"
)

// FileKind distinguishes the two accepted input shapes.
type FileKind string

const (
	KindPDF   FileKind = "pdf"
	KindImage FileKind = "image"
)

// PageResult is the recognized output for one page.
type PageResult struct {
	Text       string
	Confidence float64
	Layout     columns.Layout
	// Failed marks pages whose text is an error placeholder.
	Failed bool
}

// ResultMap maps 1-based page index to result. Keys are unique but not
// guaranteed dense; ordering is always re-derived by sorting keys.
type ResultMap map[int]PageResult

// sortedKeys returns the page indices in ascending numeric order.
func (m ResultMap) sortedKeys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Clone returns a shallow copy, used for intermediate snapshots so observers
// never see the map mid-write.
func (m ResultMap) Clone() ResultMap {
	out := make(ResultMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Finalize merges per-page results into the final ordered text. A
// single-image job with exactly one entry returns that entry's text with no
// page banner; otherwise pages are emitted as banner blocks in ascending
// index order. Finalize is pure and idempotent.
func Finalize(m ResultMap, kind FileKind) string {
	keys := m.sortedKeys()
	if kind == KindImage && len(keys) == 1 {
		return m[keys[0]].Text
	}
	blocks := make([]string, 0, len(keys))
	for _, k := range keys {
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s\n", k, m[k].Text))
	}
	return strings.Join(blocks, "\n")
}

// resultStore is the shared mutable result state written by unit-completion
// handlers and read by the intermediate observer.
type resultStore struct {
	mu      sync.Mutex
	results ResultMap
}

func newResultStore() *resultStore {
	return &resultStore{results: make(ResultMap)}
}

func (s *resultStore) put(index int, r PageResult) {
	s.mu.Lock()
	s.results[index] = r
	s.mu.Unlock()
}

func (s *resultStore) snapshot() ResultMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results.Clone()
}
