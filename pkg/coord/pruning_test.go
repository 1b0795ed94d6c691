package coord

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// stateBFS computes coordinate distances by turning probe states with the
// state engine directly, without transition tables.
func stateBFS(c Coord) []int {
	phase := c.Kind().Phase()
	dist := make([]int, c.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0
	queue := []int{0}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		probe := cube.Solved()
		c.Set(&probe, v)
		for _, m := range phase.Moves() {
			n := probe.Apply(m)
			w := c.Get(&n)
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist
}

func TestPruningMatchesStateBFS(t *testing.T) {
	tables := Default()
	for _, k := range []Kind{CO, EO, Slice, SlicePerm} {
		t.Run(k.String(), func(t *testing.T) {
			want := stateBFS(k.Coord())
			p := tables.Pruning(k)
			for v, d := range want {
				require.Equal(t, d, p.Distance(v, 0), "value %d", v)
			}
		})
	}
}

func TestPruningFullyReached(t *testing.T) {
	tables := Default()
	check := func(t *testing.T, p *PruningTable) {
		assert.Equal(t, p.Size(), p.Reached(), p.Name())
		assert.Equal(t, 0, p.Distance(0, 0), p.Name())

		total := 0
		for d, n := range p.Histogram() {
			assert.Positive(t, n, "%s depth %d", p.Name(), d)
			total += n
		}
		assert.Equal(t, p.Size(), total, p.Name())
		assert.Equal(t, 1, p.Histogram()[0], p.Name())
	}
	for _, k := range Kinds {
		check(t, tables.Pruning(k))
	}
	for _, pr := range Pairs {
		check(t, tables.Cross(pr))
	}
}

func TestPruningNeighboursDifferByOne(t *testing.T) {
	tables := Default()
	for _, pr := range Pairs {
		t.Run(pr.String(), func(t *testing.T) {
			ka, kb := pr.Kinds()
			a, b := tables.Transition(ka), tables.Transition(kb)
			p := tables.Cross(pr)
			moves := p.Phase().Moves()
			for va := 0; va < a.Size(); va++ {
				for vb := 0; vb < b.Size(); vb++ {
					d := p.Distance(va, vb)
					for _, m := range moves {
						n := p.Distance(a.Apply(va, m), b.Apply(vb, m))
						if n < d-1 || n > d+1 {
							t.Fatalf("%s (%d,%d)=%d but %v gives %d", pr, va, vb, d, m, n)
						}
					}
				}
			}
		})
	}
}

func TestCrossDominatesSingle(t *testing.T) {
	tables := Default()
	for _, pr := range Pairs {
		ka, kb := pr.Kinds()
		pa, pb, p := tables.Pruning(ka), tables.Pruning(kb), tables.Cross(pr)
		for va := 0; va < pa.Size(); va++ {
			for vb := 0; vb < pb.Size(); vb++ {
				d := p.Distance(va, vb)
				if d < pa.Distance(va, 0) || d < pb.Distance(vb, 0) {
					t.Fatalf("%s (%d,%d)=%d below single distances", pr, va, vb, d)
				}
			}
		}
	}
}

func TestPruningAdmissible(t *testing.T) {
	tables := Default()
	rng := rand.New(rand.NewPCG(23, 29))

	for n := 0; n <= 20; n++ {
		for i := 0; i < 20; i++ {
			s := scramble(rng, Phase0, n)
			c0 := Phase0Coords(&s)
			require.LessOrEqual(t, tables.Cross(COSlice).Distance(c0[0], c0[2]), n)
			require.LessOrEqual(t, tables.Cross(EOSlice).Distance(c0[1], c0[2]), n)

			g1 := scramble(rng, Phase1, n)
			c1 := Phase1Coords(&g1)
			require.LessOrEqual(t, tables.Cross(CPSlicePerm).Distance(c1[0], c1[2]), n)
			require.LessOrEqual(t, tables.Cross(EPSlicePerm).Distance(c1[1], c1[2]), n)
			for _, k := range []Kind{CP, EP, SlicePerm} {
				c := k.Coord()
				require.LessOrEqual(t, tables.Pruning(k).Distance(c.Get(&g1), 0), n)
			}
		}
	}
}

func TestCrossPanicsAcrossPhases(t *testing.T) {
	tables := Default()
	assert.Panics(t, func() {
		NewCrossPruningTable(tables.Transition(CO), tables.Transition(CP))
	})
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Len(t, Default().Stats(), len(TableNames()))
}

func TestBuildReportsProgress(t *testing.T) {
	var (
		mu      sync.Mutex
		started = map[string]bool{}
		done    = map[string]bool{}
	)
	tables, err := Build(context.Background(),
		WithConcurrency(2),
		WithObserver(func(e Event) {
			mu.Lock()
			defer mu.Unlock()
			if e.Done {
				done[e.Table] = true
			} else {
				started[e.Table] = true
			}
		}))
	require.NoError(t, err)

	for _, name := range TableNames() {
		assert.True(t, started[name], name)
		assert.True(t, done[name], name)
	}
	for i, st := range tables.Stats() {
		assert.Equal(t, TableNames()[i], st.Name)
		assert.Equal(t, Default().Stats()[i].Histogram, st.Histogram, st.Name)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
