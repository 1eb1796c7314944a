package main

// FileCount holds the analysis result for a single source file.
type FileCount struct {
	Path   string
	SLOC   int
	Tokens int   // Populated only when token counting is enabled
	Size   int64 // On-disk size in bytes
}

// Summary holds aggregated information about a completed scan.
type Summary struct {
	TotalFiles  int
	TotalSLOC   int
	TotalTokens int
	TotalSize   int64
}

// summarize derives the scan totals from the per-file results.
func summarize(results []FileCount) Summary {
	var s Summary
	for _, r := range results {
		s.TotalFiles++
		s.TotalSLOC += r.SLOC
		s.TotalTokens += r.Tokens
		s.TotalSize += r.Size
	}
	return s
}
