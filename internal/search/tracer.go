package search

import (
	"fmt"
	"io"
)

// Position describes the search after one iterative-deepening pass.
type Position struct {
	Phase string
	Bound int   // depth bound of the pass just finished
	Nodes int64 // nodes expanded so far in this search
	Found bool  // whether the pass found a solution
}

// Tracer observes a search as it deepens.
type Tracer interface {
	Trace(p Position)
}

// DefaultTracer ignores every position.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Position) {
}

// LoggingTracer writes one line per position.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p Position) {
	status := "exhausted"
	if p.Found {
		status = "found"
	}
	fmt.Fprintf(t.Writer, "%s: bound %d %s after %d nodes\n", p.Phase, p.Bound, status, p.Nodes)
}
