package coord

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// Unreached marks a table entry the breadth-first search never visited.
const Unreached = 0xff

// PruningTable stores, for every value (or value pair), the exact number
// of phase moves needed to bring it to 0. Entries are an admissible
// heuristic for the whole state.
type PruningTable struct {
	name    string
	phase   Phase
	inner   int // size of the second coordinate, 1 for single tables
	dist    []uint8
	depth   int
	reached int
}

// NewPruningTable runs a breadth-first search from 0 over t.
func NewPruningTable(t *TransitionTable) *PruningTable {
	return buildPruning(t.kind.String(), t, nil)
}

// NewCrossPruningTable runs a breadth-first search from (0, 0) over the
// product of a and b, which must belong to the same phase. Entries are
// indexed a*b.Size()+b.
func NewCrossPruningTable(a, b *TransitionTable) *PruningTable {
	if a.Phase() != b.Phase() {
		panic(fmt.Sprintf("coord: cannot cross %s (%v) with %s (%v)", a.kind, a.Phase(), b.kind, b.Phase()))
	}
	return buildPruning(a.kind.String()+"x"+b.kind.String(), a, b)
}

func buildPruning(name string, a, b *TransitionTable) *PruningTable {
	inner := 1
	if b != nil {
		inner = b.size
	}
	p := &PruningTable{
		name:  name,
		phase: a.Phase(),
		inner: inner,
		dist:  make([]uint8, a.size*inner),
	}
	for i := range p.dist {
		p.dist[i] = Unreached
	}

	queue := make([]int32, 1, len(p.dist))
	p.dist[0] = 0
	for head := 0; head < len(queue); head++ {
		idx := int(queue[head])
		d := p.dist[idx] + 1
		va, vb := idx/inner, idx%inner
		for _, f := range cube.Faces {
			step := p.phase.Step(f)
			na, nb := va, vb
			for k := step; k <= 3; k += step {
				na = a.Next(na, f)
				if b != nil {
					nb = b.Next(nb, f)
				}
				j := na*inner + nb
				if p.dist[j] == Unreached {
					p.dist[j] = d
					queue = append(queue, int32(j))
				}
			}
		}
	}

	p.reached = len(queue)
	p.depth = int(p.dist[queue[len(queue)-1]])
	return p
}

// Name identifies the table, e.g. "cp" or "coxslice".
func (p *PruningTable) Name() string { return p.name }

// Phase returns the phase whose moves the distances count.
func (p *PruningTable) Phase() Phase { return p.phase }

// Size returns the number of entries.
func (p *PruningTable) Size() int { return len(p.dist) }

// Depth returns the largest distance in the table.
func (p *PruningTable) Depth() int { return p.depth }

// Reached returns the number of entries the search visited.
func (p *PruningTable) Reached() int { return p.reached }

// Bytes returns the memory held by the table.
func (p *PruningTable) Bytes() int { return len(p.dist) }

// Distance returns the entry for (a, b). Single tables take b = 0.
func (p *PruningTable) Distance(a, b int) int {
	return int(p.dist[a*p.inner+b])
}

// Histogram returns the number of entries at each distance.
func (p *PruningTable) Histogram() []int {
	h := make([]int, p.depth+1)
	for _, d := range p.dist {
		if d != Unreached {
			h[d]++
		}
	}
	return h
}
