package renderer

import "github.com/dshills/shim/internal/engine/highlight"

// Run is a maximal span of consecutive render bytes sharing one
// highlight class. Drawing per run keeps style switches to the minimum.
type Run struct {
	Start int // inclusive render index
	End   int // exclusive
	Class highlight.Class
}

// StyledRuns coalesces a per-byte class slice into runs.
func StyledRuns(classes []highlight.Class) []Run {
	if len(classes) == 0 {
		return nil
	}

	runs := make([]Run, 0, 4)
	start := 0
	for i := 1; i <= len(classes); i++ {
		if i == len(classes) || classes[i] != classes[start] {
			runs = append(runs, Run{Start: start, End: i, Class: classes[start]})
			start = i
		}
	}
	return runs
}
