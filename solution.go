package gocube

import (
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// Solution is the result of a Solve call.
type Solution struct {
	ID      uuid.UUID     // identifies the solve in log output
	Phase0  []cube.Move   // reduction into G1
	Phase1  []cube.Move   // solution of the G1 state
	Nodes   int64         // search nodes expanded across both phases
	Elapsed time.Duration // wall-clock time of the search
}

// Moves returns the phase-0 moves followed by the phase-1 moves.
func (s *Solution) Moves() []cube.Move {
	moves := make([]cube.Move, 0, len(s.Phase0)+len(s.Phase1))
	moves = append(moves, s.Phase0...)
	return append(moves, s.Phase1...)
}

// Len returns the number of moves in the solution.
func (s *Solution) Len() int {
	return len(s.Phase0) + len(s.Phase1)
}

// Simplified returns Moves with same-face moves across the phase boundary
// merged, e.g. a phase-0 R followed by a phase-1 R2 becomes R'.
func (s *Solution) Simplified() []cube.Move {
	return cube.Simplify(s.Moves())
}

func (s *Solution) String() string {
	return cube.FormatMoves(s.Moves())
}
