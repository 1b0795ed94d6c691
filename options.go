package gocube

import (
	"log/slog"
	"time"

	"github.com/SeamusWaldron/gocube_solver/internal/search"
	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
)

// Tracer observes each iterative-deepening pass of a search.
type Tracer = search.Tracer

// Position is what a Tracer receives after each pass.
type Position = search.Position

// LoggingTracer writes one line per pass to its Writer.
type LoggingTracer = search.LoggingTracer

// Option configures a Solver.
type Option func(*config)

type config struct {
	tables         *coord.Tables
	logger         *slog.Logger
	tracer         Tracer
	phase0MaxDepth int
	phase1MaxDepth int
	timeout        time.Duration
}

func defaultConfig() *config {
	return &config{
		logger: slog.New(slog.DiscardHandler),
		tracer: search.DefaultTracer{},
	}
}

// WithTables sets the tables the solver searches with.
// By default the process-wide coord.Default tables are used.
func WithTables(t *coord.Tables) Option {
	return func(c *config) {
		c.tables = t
	}
}

// WithLogger sets the logger for solve summaries.
// Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets a tracer that sees every pass of both phases.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithPhase0MaxDepth caps the phase-0 search. When no reduction exists
// within n moves, Solve fails with ErrDepthExceeded.
// Zero (the default) means no cap.
func WithPhase0MaxDepth(n int) Option {
	return func(c *config) {
		c.phase0MaxDepth = n
	}
}

// WithPhase1MaxDepth caps the phase-1 search the same way.
func WithPhase1MaxDepth(n int) Option {
	return func(c *config) {
		c.phase1MaxDepth = n
	}
}

// WithTimeout bounds the wall-clock time of each Solve, Phase0 and Phase1
// call. Exceeding it fails with ErrTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}
