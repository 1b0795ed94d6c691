package coord

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// TransitionTable maps (value, face) to the value after one phase step of
// that face. Phase-0 steps are quarter turns; phase-1 steps are quarter
// turns of U and D and half turns of the other faces.
type TransitionTable struct {
	kind Kind
	size int
	next []uint16 // size rows of cube.NumFaces entries
}

// NewTransitionTable builds the table for c by turning the probe of every
// value once per face.
func NewTransitionTable[C Coord](c C) *TransitionTable {
	kind, size := c.Kind(), c.Size()
	phase := kind.Phase()
	t := &TransitionTable{
		kind: kind,
		size: size,
		next: make([]uint16, size*cube.NumFaces),
	}

	for v := 0; v < size; v++ {
		probe := cube.Solved()
		c.Set(&probe, v)
		if debugProbes {
			if err := probe.Verify(); err != nil {
				panic(fmt.Sprintf("coord: %s probe %d: %v", kind, v, err))
			}
		}
		for _, f := range cube.Faces {
			n := probe.Apply(cube.Move{Face: f, Turn: cube.Turn(phase.Step(f))})
			got := c.Get(&n)
			if got < 0 || got >= size {
				panic(fmt.Sprintf("coord: %s transition %d/%v gave %d", kind, v, f, got))
			}
			t.next[v*cube.NumFaces+int(f)] = uint16(got)
		}
	}
	return t
}

func newTransitionTable(k Kind) *TransitionTable {
	switch k {
	case CO:
		return NewTransitionTable(CornerOrientation{})
	case EO:
		return NewTransitionTable(EdgeOrientation{})
	case Slice:
		return NewTransitionTable(SliceLocation{})
	case CP:
		return NewTransitionTable(CornerPermutation{})
	case EP:
		return NewTransitionTable(EdgePermutation{})
	case SlicePerm:
		return NewTransitionTable(SlicePermutation{})
	default:
		panic(fmt.Sprintf("coord: unknown kind %d", int(k)))
	}
}

// Kind returns the family the table belongs to.
func (t *TransitionTable) Kind() Kind { return t.kind }

// Phase returns the phase whose steps the table records.
func (t *TransitionTable) Phase() Phase { return t.kind.Phase() }

// Size returns the number of coordinate values.
func (t *TransitionTable) Size() int { return t.size }

// Next returns the value after one phase step of face f.
func (t *TransitionTable) Next(v int, f cube.Face) int {
	return int(t.next[v*cube.NumFaces+int(f)])
}

// Apply returns the value after move m, stepping the table as many times
// as m needs. It panics if m is not legal in the table's phase.
func (t *TransitionTable) Apply(v int, m cube.Move) int {
	phase := t.Phase()
	if !phase.Allows(m) {
		panic(fmt.Sprintf("coord: move %v not allowed in %v", m, phase))
	}
	step := phase.Step(m.Face)
	for i := step; i <= int(m.Turn); i += step {
		v = t.Next(v, m.Face)
	}
	return v
}

// Bytes returns the memory held by the table.
func (t *TransitionTable) Bytes() int {
	return len(t.next) * 2
}
