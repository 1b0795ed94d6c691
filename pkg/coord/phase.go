package coord

import "github.com/SeamusWaldron/gocube_solver/pkg/cube"

// Phase is a search phase and the move set legal in it.
//
// Phase0 allows every face turn. Phase1 keeps a state inside G1 (all pieces
// oriented, middle-layer edges in the middle layer): U and D turn freely,
// the other four faces only by half turns.
type Phase int

const (
	Phase0 Phase = iota
	Phase1
)

func (p Phase) String() string {
	if p == Phase1 {
		return "phase1"
	}
	return "phase0"
}

// Step returns the number of quarter turns one table step of face f
// represents in this phase.
func (p Phase) Step(f cube.Face) int {
	if p == Phase1 && f != cube.U && f != cube.D {
		return 2
	}
	return 1
}

// Allows reports whether m is legal in this phase.
func (p Phase) Allows(m cube.Move) bool {
	return m.Valid() && int(m.Turn)%p.Step(m.Face) == 0
}

// Moves returns the legal moves grouped by face, in face order.
func (p Phase) Moves() []cube.Move {
	if p == Phase1 {
		return phase1Moves
	}
	return phase0Moves
}

var (
	phase0Moves = Phase0.filter()
	phase1Moves = Phase1.filter()
)

func (p Phase) filter() []cube.Move {
	var moves []cube.Move
	for _, m := range cube.AllMoves {
		if p.Allows(m) {
			moves = append(moves, m)
		}
	}
	return moves
}
