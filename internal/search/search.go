// Package search implements the iterative-deepening A* search shared by
// both solver phases.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// ErrDepthExceeded is returned when no solution exists within MaxDepth.
var ErrDepthExceeded = errors.New("search: depth bound exhausted")

// NumCoords is the number of coordinates a search node tracks.
const NumCoords = 3

// Node is the coordinate vector of a search state.
type Node [NumCoords]int

// Heuristic reads a pruning table at the node's coordinates A and B.
// For a single-coordinate table B is negative.
type Heuristic struct {
	Table *coord.PruningTable
	A, B  int
}

func (h Heuristic) distance(n *Node) int {
	if h.B < 0 {
		return h.Table.Distance(n[h.A], 0)
	}
	return h.Table.Distance(n[h.A], n[h.B])
}

// Searcher finds a shortest move sequence, within one phase's move set,
// that drives every coordinate to 0.
type Searcher struct {
	Name       string
	Phase      coord.Phase
	Tables     [NumCoords]*coord.TransitionTable
	Heuristics []Heuristic
	MaxDepth   int // 0 means no limit
	Tracer     Tracer
}

// Result is the outcome of a search.
type Result struct {
	Moves []cube.Move
	Nodes int64
}

// pollInterval is how many nodes are expanded between context checks.
const pollInterval = 1 << 12

type run struct {
	s     *Searcher
	ctx   context.Context
	path  []cube.Move
	nodes int64
	err   error
}

// Search runs IDA* from start. The bound starts at the heuristic value of
// start and grows by one after each failed pass.
func (s *Searcher) Search(ctx context.Context, start Node) (Result, error) {
	for i, t := range s.Tables {
		if t == nil || t.Phase() != s.Phase {
			panic(fmt.Sprintf("search: %s coordinate %d has no %v table", s.Name, i, s.Phase))
		}
	}
	tracer := s.Tracer
	if tracer == nil {
		tracer = DefaultTracer{}
	}

	r := &run{s: s, ctx: ctx}
	for bound := s.estimate(&start); ; bound++ {
		if s.MaxDepth > 0 && bound > s.MaxDepth {
			return Result{Nodes: r.nodes}, fmt.Errorf("%w: %s beyond %d moves", ErrDepthExceeded, s.Name, s.MaxDepth)
		}
		if err := ctx.Err(); err != nil {
			return Result{Nodes: r.nodes}, err
		}
		r.path = r.path[:0]
		found := r.dfs(start, 0, bound, -1)
		if r.err != nil {
			return Result{Nodes: r.nodes}, r.err
		}
		tracer.Trace(Position{Phase: s.Name, Bound: bound, Nodes: r.nodes, Found: found})
		if found {
			moves := make([]cube.Move, len(r.path))
			copy(moves, r.path)
			return Result{Moves: moves, Nodes: r.nodes}, nil
		}
	}
}

// estimate is the max, never the sum, of the pruning distances: one move
// changes every coordinate at once.
func (s *Searcher) estimate(n *Node) int {
	h := 0
	for _, p := range s.Heuristics {
		h = max(h, p.distance(n))
	}
	return h
}

func (r *run) dfs(n Node, depth, bound int, last cube.Face) bool {
	if n == (Node{}) {
		return true
	}
	if depth+r.s.estimate(&n) > bound {
		return false
	}

	r.nodes++
	if r.nodes%pollInterval == 0 {
		if err := r.ctx.Err(); err != nil {
			r.err = err
			return false
		}
	}

	phase := r.s.Phase
	for _, f := range cube.Faces {
		if !Allowed(last, f) {
			continue
		}
		step := phase.Step(f)
		next := n
		for turn := step; turn <= 3; turn += step {
			for i, t := range r.s.Tables {
				next[i] = t.Next(next[i], f)
			}
			r.path = append(r.path, cube.Move{Face: f, Turn: cube.Turn(turn)})
			if r.dfs(next, depth+1, bound, f) {
				return true
			}
			r.path = r.path[:len(r.path)-1]
			if r.err != nil {
				return false
			}
		}
	}
	return false
}

// Allowed reports whether face f may follow a move of face last. The same
// face never repeats, and commuting opposite faces are only tried in
// ascending face order. A negative last allows every face.
func Allowed(last, f cube.Face) bool {
	if last < 0 {
		return true
	}
	if f == last {
		return false
	}
	return !(f.IsOpposite(last) && f < last)
}
