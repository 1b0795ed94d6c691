package gocube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_solver/internal/search"
	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// Solver runs the two-phase search. It holds no per-solve state, so one
// Solver may be used from many goroutines.
type Solver struct {
	cfg *config
}

// NewSolver creates a solver. Tables are built on first use unless
// WithTables supplies them.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tables == nil {
		cfg.tables = coord.Default()
	}
	return &Solver{cfg: cfg}
}

// Solve returns a move sequence taking s to the solved state: the first
// phase-0 reduction into G1 followed by the phase-1 solution of the
// resulting state.
func (sv *Solver) Solve(ctx context.Context, s cube.State) (*Solution, error) {
	if err := s.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	ctx, cancel := sv.withTimeout(ctx)
	defer cancel()

	id := uuid.New()
	log := sv.cfg.logger.With("solve_id", id.String())
	start := time.Now()

	p0, err := sv.phase0(ctx, s)
	if err != nil {
		log.Debug("phase0 failed", "error", err)
		return nil, err
	}
	g1 := s.ApplyAll(p0.Moves...)
	log.Debug("phase0 done", "moves", len(p0.Moves), "nodes", p0.Nodes)

	p1, err := sv.phase1(ctx, g1)
	if err != nil {
		log.Debug("phase1 failed", "error", err)
		return nil, err
	}
	log.Debug("phase1 done", "moves", len(p1.Moves), "nodes", p1.Nodes)

	sol := &Solution{
		ID:      id,
		Phase0:  p0.Moves,
		Phase1:  p1.Moves,
		Nodes:   p0.Nodes + p1.Nodes,
		Elapsed: time.Since(start),
	}
	log.Info("solved", "moves", sol.Len(), "nodes", sol.Nodes, "elapsed", sol.Elapsed)
	return sol, nil
}

// Phase0 returns the shortest sequence taking s into G1, and the G1 state
// it reaches.
func (sv *Solver) Phase0(ctx context.Context, s cube.State) ([]cube.Move, cube.State, error) {
	if err := s.Verify(); err != nil {
		return nil, cube.State{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	ctx, cancel := sv.withTimeout(ctx)
	defer cancel()

	res, err := sv.phase0(ctx, s)
	if err != nil {
		return nil, cube.State{}, err
	}
	return res.Moves, s.ApplyAll(res.Moves...), nil
}

// Phase1 returns the shortest sequence of G1 moves solving s, which must
// already be in G1.
func (sv *Solver) Phase1(ctx context.Context, s cube.State) ([]cube.Move, error) {
	if err := s.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if !coord.InG1(&s) {
		return nil, ErrNotInG1
	}
	ctx, cancel := sv.withTimeout(ctx)
	defer cancel()

	res, err := sv.phase1(ctx, s)
	if err != nil {
		return nil, err
	}
	return res.Moves, nil
}

func (sv *Solver) phase0(ctx context.Context, s cube.State) (search.Result, error) {
	t := sv.cfg.tables
	searcher := &search.Searcher{
		Name:  coord.Phase0.String(),
		Phase: coord.Phase0,
		Tables: [search.NumCoords]*coord.TransitionTable{
			t.Transition(coord.CO),
			t.Transition(coord.EO),
			t.Transition(coord.Slice),
		},
		Heuristics: []search.Heuristic{
			{Table: t.Cross(coord.COSlice), A: 0, B: 2},
			{Table: t.Cross(coord.EOSlice), A: 1, B: 2},
		},
		MaxDepth: sv.cfg.phase0MaxDepth,
		Tracer:   sv.cfg.tracer,
	}
	res, err := searcher.Search(ctx, coord.Phase0Coords(&s))
	return res, wrapSearchErr(err)
}

func (sv *Solver) phase1(ctx context.Context, s cube.State) (search.Result, error) {
	t := sv.cfg.tables
	searcher := &search.Searcher{
		Name:  coord.Phase1.String(),
		Phase: coord.Phase1,
		Tables: [search.NumCoords]*coord.TransitionTable{
			t.Transition(coord.CP),
			t.Transition(coord.EP),
			t.Transition(coord.SlicePerm),
		},
		Heuristics: []search.Heuristic{
			{Table: t.Cross(coord.CPSlicePerm), A: 0, B: 2},
			{Table: t.Cross(coord.EPSlicePerm), A: 1, B: 2},
		},
		MaxDepth: sv.cfg.phase1MaxDepth,
		Tracer:   sv.cfg.tracer,
	}
	res, err := searcher.Search(ctx, coord.Phase1Coords(&s))
	return res, wrapSearchErr(err)
}

func (sv *Solver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if sv.cfg.timeout > 0 {
		return context.WithTimeout(ctx, sv.cfg.timeout)
	}
	return context.WithCancel(ctx)
}

func wrapSearchErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}
