package coord

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// scramble applies n random moves legal in phase p to the solved cube.
func scramble(rng *rand.Rand, p Phase, n int) cube.State {
	moves := p.Moves()
	s := cube.Solved()
	for i := 0; i < n; i++ {
		s = s.Apply(moves[rng.IntN(len(moves))])
	}
	return s
}

func TestRoundTrip_Exhaustive(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			c := k.Coord()
			for v := 0; v < c.Size(); v++ {
				probe := cube.Solved()
				c.Set(&probe, v)
				require.Equal(t, v, c.Get(&probe))
				require.NoError(t, probe.Verify(), "probe %d", v)
			}
		})
	}
}

func TestSolvedIsZero(t *testing.T) {
	s := cube.Solved()
	for _, k := range Kinds {
		assert.Equal(t, 0, k.Coord().Get(&s), k.String())
	}
	assert.True(t, InG1(&s))
}

func TestSizes(t *testing.T) {
	want := map[Kind]int{CO: 2187, EO: 2048, Slice: 495, CP: 40320, EP: 40320, SlicePerm: 24}
	for k, n := range want {
		assert.Equal(t, n, k.Coord().Size(), k.String())
		assert.Equal(t, k, k.Coord().Kind())
	}
}

func TestEdgeOrientation(t *testing.T) {
	s := cube.Solved()
	for turn := cube.CW; turn <= cube.CCW; turn++ {
		n := s.Apply(cube.Move{Face: cube.U, Turn: turn})
		assert.Equal(t, 0, EdgeOrientation{}.Get(&n))
	}

	var eo [cube.NumEdges]uint8
	for i := range eo {
		eo[i] = 1
	}
	flipped := cube.MustNew(s.CP, s.CO, s.EP, eo)
	assert.Equal(t, numEO-1, EdgeOrientation{}.Get(&flipped))
}

func TestCornerOrientation(t *testing.T) {
	s := cube.Solved()
	for turn := cube.CW; turn <= cube.CCW; turn++ {
		n := s.Apply(cube.Move{Face: cube.U, Turn: turn})
		assert.Equal(t, 0, CornerOrientation{}.Get(&n))
	}

	twisted := cube.MustNew(s.CP, [cube.NumCorners]uint8{2, 2, 2, 2, 2, 2, 2, 1}, s.EP, s.EO)
	assert.Equal(t, numCO-1, CornerOrientation{}.Get(&twisted))
}

func TestSliceLocation(t *testing.T) {
	s := cube.Solved()
	for _, m := range Phase1.Moves() {
		n := s.Apply(m)
		assert.Equal(t, 0, SliceLocation{}.Get(&n), m.String())
	}

	// Slice edges in the four U-layer slots: the last rank.
	top := cube.NewUnchecked(s.CP, s.CO,
		[cube.NumEdges]cube.Edge{cube.FR, cube.FL, cube.BL, cube.BR, cube.DR, cube.DF, cube.DL, cube.DB, cube.UR, cube.UF, cube.UL, cube.UB},
		s.EO)
	assert.Equal(t, numSlice-1, SliceLocation{}.Get(&top))

	n := s.Apply(cube.RMove)
	assert.NotZero(t, SliceLocation{}.Get(&n))
}

func TestPermutationOfTPerm(t *testing.T) {
	s := cube.Solved().ApplyAll(cube.TPerm...)
	assert.NotZero(t, CornerPermutation{}.Get(&s))
	assert.NotZero(t, EdgePermutation{}.Get(&s))
	assert.Zero(t, SlicePermutation{}.Get(&s))
	assert.True(t, InG1(&s))
}

func TestSetPanicsOutOfRange(t *testing.T) {
	for _, k := range Kinds {
		c := k.Coord()
		s := cube.Solved()
		assert.Panics(t, func() { c.Set(&s, -1) }, k.String())
		assert.Panics(t, func() { c.Set(&s, c.Size()) }, k.String())
	}
}

func TestPermRank(t *testing.T) {
	var out [5]int
	seen := map[[5]int]bool{}
	for v := 0; v < 120; v++ {
		permUnrank(v, out[:])
		assert.False(t, seen[out], "duplicate permutation %v", out)
		seen[out] = true

		p := make([]uint8, len(out))
		for i, x := range out {
			p[i] = uint8(x)
		}
		assert.Equal(t, v, permRank(p))
	}
	assert.Equal(t, 0, permRank([]uint8{3, 5, 9}))
	assert.Equal(t, 5, permRank([]uint8{9, 5, 3}))
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 495, binomial[11][4]+binomial[11][3])
	assert.Equal(t, 330, binomial[11][4])
	assert.Equal(t, 0, binomial[3][4])
	assert.Equal(t, 1, binomial[0][0])
}

func TestPhaseMoves(t *testing.T) {
	assert.Len(t, Phase0.Moves(), 18)
	assert.Len(t, Phase1.Moves(), 10)

	for _, m := range Phase1.Moves() {
		if m.Face != cube.U && m.Face != cube.D {
			assert.Equal(t, cube.Double, m.Turn, m.String())
		}
	}

	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 50; i++ {
		s := scramble(rng, Phase1, 30)
		require.NoError(t, s.Verify())
		require.True(t, InG1(&s), s.String())
	}
}
