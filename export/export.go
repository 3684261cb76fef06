// Package export renders an aggregated recognition result as a reviewable
// document. Markdown is the canonical report shape; HTML is derived from it
// for in-browser review.
package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/wudi/hebscan/pipeline"
)

// Markdown renders the result map as a markdown report with one section per
// page in ascending index order. A single-image result is emitted without a
// page heading.
func Markdown(results pipeline.ResultMap, kind pipeline.FileKind) string {
	keys := make([]int, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if kind == pipeline.KindImage && len(keys) == 1 {
		return results[keys[0]].Text + "\n"
	}

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		res := results[k]
		fmt.Fprintf(&b, "## Page %d\n\n", k)
		if res.Failed {
			fmt.Fprintf(&b, "> %s\n", res.Text)
			continue
		}
		b.WriteString(res.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// HTML converts the markdown report to an HTML fragment wrapped in a
// right-to-left container, since Hebrew text renders right to left.
func HTML(results pipeline.ResultMap, kind pipeline.FileKind) (string, error) {
	md := goldmark.New()
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(results, kind)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return `<div dir="rtl">` + "\n" + buf.String() + "</div>\n", nil
}
