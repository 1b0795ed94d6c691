package coord

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Tables holds every transition and pruning table. It is immutable once
// built.
type Tables struct {
	transition [NumKinds]*TransitionTable
	pruning    [NumKinds]*PruningTable
	cross      [NumPairs]*PruningTable
}

// Event reports progress while tables are built. Observers may be called
// from several goroutines at once.
type Event struct {
	Table   string
	Done    bool
	Entries int
	Elapsed time.Duration
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	observer    func(Event)
	logger      *slog.Logger
	concurrency int
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		observer:    func(Event) {},
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithObserver registers a callback for table build progress.
func WithObserver(fn func(Event)) BuildOption {
	return func(c *buildConfig) {
		if fn != nil {
			c.observer = fn
		}
	}
}

// WithLogger sets the logger for build timings.
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConcurrency bounds the number of tables built at once.
// Values below 1 mean one at a time.
func WithConcurrency(n int) BuildOption {
	return func(c *buildConfig) {
		c.concurrency = max(n, 1)
	}
}

// TableNames lists every table Build produces, in build order.
func TableNames() []string {
	names := make([]string, 0, 2*NumKinds+NumPairs)
	for _, k := range Kinds {
		names = append(names, transitionName(k))
	}
	for _, k := range Kinds {
		names = append(names, pruningName(k.String()))
	}
	for _, p := range Pairs {
		names = append(names, pruningName(p.String()))
	}
	return names
}

func transitionName(k Kind) string { return k.String() + " transition" }
func pruningName(s string) string  { return s + " pruning" }

// Build derives every table from the face generators. Transition tables
// are built first, then the pruning tables that walk them; tables within
// each stage are independent and built concurrently.
func Build(ctx context.Context, opts ...BuildOption) (*Tables, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	t := &Tables{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for _, k := range Kinds {
		g.Go(func() error {
			return cfg.track(gctx, transitionName(k), func() int {
				t.transition[k] = newTransitionTable(k)
				return t.transition[k].Size()
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("coord: building transition tables: %w", err)
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for _, k := range Kinds {
		g.Go(func() error {
			return cfg.track(gctx, pruningName(k.String()), func() int {
				t.pruning[k] = NewPruningTable(t.transition[k])
				return t.pruning[k].Size()
			})
		})
	}
	for _, p := range Pairs {
		g.Go(func() error {
			return cfg.track(gctx, pruningName(p.String()), func() int {
				a, b := p.Kinds()
				t.cross[p] = NewCrossPruningTable(t.transition[a], t.transition[b])
				return t.cross[p].Size()
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("coord: building pruning tables: %w", err)
	}

	cfg.logger.Info("tables built", "elapsed", time.Since(start))
	return t, nil
}

func (c *buildConfig) track(ctx context.Context, name string, build func() int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.observer(Event{Table: name})
	start := time.Now()
	n := build()
	elapsed := time.Since(start)
	c.logger.Debug("table built", "table", name, "entries", n, "elapsed", elapsed)
	c.observer(Event{Table: name, Done: true, Entries: n, Elapsed: elapsed})
	return nil
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide tables, building them on first use.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Build(context.Background())
		if err != nil {
			panic(err)
		}
		defaultTables = t
	})
	return defaultTables
}

// Transition returns the transition table of family k.
func (t *Tables) Transition(k Kind) *TransitionTable { return t.transition[k] }

// Pruning returns the single-coordinate pruning table of family k.
func (t *Tables) Pruning(k Kind) *PruningTable { return t.pruning[k] }

// Cross returns the crossed pruning table p.
func (t *Tables) Cross(p Pair) *PruningTable { return t.cross[p] }

// TableStats summarizes one table.
type TableStats struct {
	Name      string
	Phase     Phase
	Entries   int
	Bytes     int
	Depth     int // -1 for transition tables
	Histogram []int
}

// Stats describes every table in build order.
func (t *Tables) Stats() []TableStats {
	stats := make([]TableStats, 0, 2*NumKinds+NumPairs)
	for _, k := range Kinds {
		tt := t.transition[k]
		stats = append(stats, TableStats{
			Name:    transitionName(k),
			Phase:   tt.Phase(),
			Entries: tt.Size(),
			Bytes:   tt.Bytes(),
			Depth:   -1,
		})
	}
	add := func(p *PruningTable) {
		stats = append(stats, TableStats{
			Name:      pruningName(p.Name()),
			Phase:     p.Phase(),
			Entries:   p.Size(),
			Bytes:     p.Bytes(),
			Depth:     p.Depth(),
			Histogram: p.Histogram(),
		})
	}
	for _, k := range Kinds {
		add(t.pruning[k])
	}
	for _, p := range Pairs {
		add(t.cross[p])
	}
	return stats
}
