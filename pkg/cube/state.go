package cube

import (
	"fmt"
	"strings"
)

// State is a cube position: which piece sits in each slot and how it is
// twisted. It is a comparable value; Apply returns a new State.
type State struct {
	CP [NumCorners]Corner // corner occupying each corner slot
	CO [NumCorners]uint8  // corner twist, 0 to 2
	EP [NumEdges]Edge     // edge occupying each edge slot
	EO [NumEdges]uint8    // edge flip, 0 or 1
}

var solved = State{
	CP: [NumCorners]Corner{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB},
	EP: [NumEdges]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
}

// Solved returns the identity state.
func Solved() State {
	return solved
}

// New builds a State and verifies it is reachable from solved.
func New(cp [NumCorners]Corner, co [NumCorners]uint8, ep [NumEdges]Edge, eo [NumEdges]uint8) (State, error) {
	s := NewUnchecked(cp, co, ep, eo)
	if err := s.Verify(); err != nil {
		return State{}, err
	}
	return s, nil
}

// MustNew is like New but panics if the state is invalid.
func MustNew(cp [NumCorners]Corner, co [NumCorners]uint8, ep [NumEdges]Edge, eo [NumEdges]uint8) State {
	s, err := New(cp, co, ep, eo)
	if err != nil {
		panic(err)
	}
	return s
}

// NewUnchecked builds a State without validation.
func NewUnchecked(cp [NumCorners]Corner, co [NumCorners]uint8, ep [NumEdges]Edge, eo [NumEdges]uint8) State {
	return State{CP: cp, CO: co, EP: ep, EO: eo}
}

// Apply returns the state after turning m.Face clockwise m.Turn times.
// It panics if m.Turn is not 1, 2 or 3.
func (s State) Apply(m Move) State {
	if !m.Valid() {
		panic(fmt.Sprintf("cube: invalid move %d/%d", m.Face, m.Turn))
	}
	g := &generators[m.Face]
	for i := Turn(0); i < m.Turn; i++ {
		s = s.turn(g)
	}
	return s
}

// ApplyAll applies moves in order.
func (s State) ApplyAll(moves ...Move) State {
	for _, m := range moves {
		s = s.Apply(m)
	}
	return s
}

func (s State) turn(g *generator) State {
	var n State
	for i, j := range g.cp {
		n.CP[i] = s.CP[j]
		n.CO[i] = (s.CO[j] + g.co[i]) % 3
	}
	for i, j := range g.ep {
		n.EP[i] = s.EP[j]
		n.EO[i] = s.EO[j] ^ g.eo[i]
	}
	return n
}

// IsSolved returns true if s is the identity state.
func (s State) IsSolved() bool {
	return s == solved
}

// Verify checks the invariants of a legal cube and returns the first one
// violated, in the order EP, EO, CP, CO, parity.
func (s State) Verify() error {
	var edges uint16
	for _, e := range s.EP {
		if int(e) >= NumEdges {
			return ErrEP
		}
		edges |= 1 << e
	}
	if edges != 1<<NumEdges-1 {
		return ErrEP
	}

	eo := 0
	for _, o := range s.EO {
		if o > 1 {
			return ErrEO
		}
		eo += int(o)
	}
	if eo%2 != 0 {
		return ErrEO
	}

	var corners uint16
	for _, c := range s.CP {
		if int(c) >= NumCorners {
			return ErrCP
		}
		corners |= 1 << c
	}
	if corners != 1<<NumCorners-1 {
		return ErrCP
	}

	co := 0
	for _, o := range s.CO {
		if o > 2 {
			return ErrCO
		}
		co += int(o)
	}
	if co%3 != 0 {
		return ErrCO
	}

	if !s.HasValidParity() {
		return ErrParity
	}
	return nil
}

// HasValidParity reports whether the corner and edge permutations are both
// even or both odd.
func (s State) HasValidParity() bool {
	return inversions(s.CP[:])%2 == inversions(s.EP[:])%2
}

// CornerParity returns 1 if the corner permutation is odd.
func (s State) CornerParity() int {
	return inversions(s.CP[:]) % 2
}

// EdgeParity returns 1 if the edge permutation is odd.
func (s State) EdgeParity() int {
	return inversions(s.EP[:]) % 2
}

func inversions[P Corner | Edge](perm []P) int {
	n := 0
	for i := 0; i < len(perm)-1; i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				n++
			}
		}
	}
	return n
}

// String returns a one-line debug rendering of the four vectors.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("cp=[")
	for i, c := range s.CP {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "] co=%v ep=[", s.CO)
	for i, e := range s.EP {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	fmt.Fprintf(&b, "] eo=%v", s.EO)
	return b.String()
}
