package main

import (
	"fmt"
	"sort"
	"strings"
)

// Default column widths for the report table.
const (
	defaultPathWidth  = 60
	defaultCountWidth = 10
)

// tableWriter renders scan results as a fixed-width text table. Column
// widths are fixed per writer, not mutable process state.
type tableWriter struct {
	pathWidth  int
	countWidth int
	withTokens bool
}

// newTableWriter builds a writer, substituting defaults for non-positive widths.
func newTableWriter(pathWidth, countWidth int, withTokens bool) tableWriter {
	if pathWidth <= 0 {
		pathWidth = defaultPathWidth
	}
	if countWidth <= 0 {
		countWidth = defaultCountWidth
	}
	return tableWriter{pathWidth: pathWidth, countWidth: countWidth, withTokens: withTokens}
}

// render produces the report table: rows sorted by SLOC descending (stable,
// so ties keep traversal order), a '=' rule after the header and after the
// last data row, and a Total row summing every count exactly.
func (w tableWriter) render(results []FileCount) string {
	sorted := make([]FileCount, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SLOC > sorted[j].SLOC
	})

	var builder strings.Builder

	header := fmt.Sprintf("%-*s %*s", w.pathWidth, "Filename", w.countWidth, "SLOC")
	if w.withTokens {
		header += fmt.Sprintf(" %*s", w.countWidth, "Tokens")
	}
	rule := strings.Repeat("=", len(header))

	builder.WriteString(header)
	builder.WriteString("\n")
	builder.WriteString(rule)
	builder.WriteString("\n")

	summary := summarize(sorted)

	for _, r := range sorted {
		builder.WriteString(fmt.Sprintf("%-*s %*d", w.pathWidth, r.Path, w.countWidth, r.SLOC))
		if w.withTokens {
			builder.WriteString(fmt.Sprintf(" %*d", w.countWidth, r.Tokens))
		}
		builder.WriteString("\n")
	}

	builder.WriteString(rule)
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("%-*s %*d", w.pathWidth, "Total", w.countWidth, summary.TotalSLOC))
	if w.withTokens {
		builder.WriteString(fmt.Sprintf(" %*d", w.countWidth, summary.TotalTokens))
	}
	builder.WriteString("\n")

	return builder.String()
}
