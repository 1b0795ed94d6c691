package coord

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// Coord maps part of a cube.State to an integer in [0, Size()).
//
// Set writes value v into a state that starts out solved, producing a
// canonical probe: the represented attribute equals v and the rest is
// filled deterministically, with a swap in an unrepresented part where
// needed so the probe stays a legal cube. Get(Set(solved, v)) == v, and
// Get(solved) == 0.
type Coord interface {
	Kind() Kind
	Size() int
	Set(s *cube.State, v int)
	Get(s *cube.State) int
}

const (
	numCO        = 2187  // 3^7
	numEO        = 2048  // 2^11
	numSlice     = 495   // 12 choose 4
	numCP        = 40320 // 8!
	numEP        = 40320 // 8!
	numSlicePerm = 24    // 4!
)

func checkRange(c Coord, v int) {
	if v < 0 || v >= c.Size() {
		panic(fmt.Sprintf("coord: %s value %d out of range [0, %d)", c.Kind(), v, c.Size()))
	}
}

// CornerOrientation is a base-3 number over the first seven corner twists.
// The eighth is forced by the twist sum.
type CornerOrientation struct{}

func (CornerOrientation) Kind() Kind { return CO }
func (CornerOrientation) Size() int  { return numCO }

func (c CornerOrientation) Set(s *cube.State, v int) {
	checkRange(c, v)
	sum := 0
	for i := cube.NumCorners - 2; i >= 0; i-- {
		s.CO[i] = uint8(v % 3)
		sum += v % 3
		v /= 3
	}
	s.CO[cube.NumCorners-1] = uint8((3 - sum%3) % 3)
}

func (CornerOrientation) Get(s *cube.State) int {
	v := 0
	for _, o := range s.CO[:cube.NumCorners-1] {
		v = v*3 + int(o)
	}
	return v
}

// EdgeOrientation is a binary number over the first eleven edge flips,
// most significant first. The twelfth is forced by the flip parity.
type EdgeOrientation struct{}

func (EdgeOrientation) Kind() Kind { return EO }
func (EdgeOrientation) Size() int  { return numEO }

func (c EdgeOrientation) Set(s *cube.State, v int) {
	checkRange(c, v)
	var parity uint8
	for i := cube.NumEdges - 2; i >= 0; i-- {
		s.EO[i] = uint8(v & 1)
		parity ^= uint8(v & 1)
		v >>= 1
	}
	s.EO[cube.NumEdges-1] = parity
}

func (EdgeOrientation) Get(s *cube.State) int {
	v := 0
	for _, o := range s.EO[:cube.NumEdges-1] {
		v = v<<1 | int(o)
	}
	return v
}

// SliceLocation ranks the set of slots holding FR, FL, BL and BR, ignoring
// their order. Slots are scanned from BR downwards so the solved layout
// ranks 0.
type SliceLocation struct{}

func (SliceLocation) Kind() Kind { return Slice }
func (SliceLocation) Size() int  { return numSlice }

func (c SliceLocation) Set(s *cube.State, v int) {
	checkRange(c, v)
	left := 4
	slice, other := cube.FR, cube.UR
	for j := 0; j < cube.NumEdges; j++ {
		if n := binomial[cube.NumEdges-1-j][left]; left > 0 && n <= v {
			s.EP[j] = slice
			slice++
			v -= n
			left--
		} else {
			s.EP[j] = other
			other++
		}
	}
	// Corners are not represented; an odd edge layout is balanced there.
	if !s.HasValidParity() {
		s.CP[6], s.CP[7] = s.CP[7], s.CP[6]
	}
}

func (SliceLocation) Get(s *cube.State) int {
	v, seen := 0, 0
	for j := cube.NumEdges - 1; j >= 0; j-- {
		if s.EP[j].InSlice() {
			seen++
			v += binomial[cube.NumEdges-1-j][seen]
		}
	}
	return v
}

// CornerPermutation is the Lehmer rank of the corner permutation.
type CornerPermutation struct{}

func (CornerPermutation) Kind() Kind { return CP }
func (CornerPermutation) Size() int  { return numCP }

func (c CornerPermutation) Set(s *cube.State, v int) {
	checkRange(c, v)
	var p [cube.NumCorners]int
	permUnrank(v, p[:])
	for i, x := range p {
		s.CP[i] = cube.Corner(x)
	}
	if !s.HasValidParity() {
		s.EP[10], s.EP[11] = s.EP[11], s.EP[10]
	}
}

func (CornerPermutation) Get(s *cube.State) int {
	return permRank(s.CP[:])
}

// EdgePermutation is the Lehmer rank of the edges in the eight U and D
// layer slots. It is only meaningful inside G1, where those slots hold
// U/D-layer edges.
type EdgePermutation struct{}

func (EdgePermutation) Kind() Kind { return EP }
func (EdgePermutation) Size() int  { return numEP }

func (c EdgePermutation) Set(s *cube.State, v int) {
	checkRange(c, v)
	var p [8]int
	permUnrank(v, p[:])
	for i, x := range p {
		s.EP[i] = cube.Edge(x)
	}
	if !s.HasValidParity() {
		s.EP[10], s.EP[11] = s.EP[11], s.EP[10]
	}
}

func (EdgePermutation) Get(s *cube.State) int {
	return permRank(s.EP[:cube.FR])
}

// SlicePermutation is the Lehmer rank of the edges in the four
// middle-layer slots.
type SlicePermutation struct{}

func (SlicePermutation) Kind() Kind { return SlicePerm }
func (SlicePermutation) Size() int  { return numSlicePerm }

func (c SlicePermutation) Set(s *cube.State, v int) {
	checkRange(c, v)
	var p [4]int
	permUnrank(v, p[:])
	for i, x := range p {
		s.EP[int(cube.FR)+i] = cube.FR + cube.Edge(x)
	}
	if !s.HasValidParity() {
		s.EP[6], s.EP[7] = s.EP[7], s.EP[6]
	}
}

func (SlicePermutation) Get(s *cube.State) int {
	return permRank(s.EP[cube.FR:])
}

// Phase0Coords returns the phase-0 coordinates of s: CO, EO, Slice.
func Phase0Coords(s *cube.State) [3]int {
	return [3]int{CornerOrientation{}.Get(s), EdgeOrientation{}.Get(s), SliceLocation{}.Get(s)}
}

// Phase1Coords returns the phase-1 coordinates of s: CP, EP, SlicePerm.
func Phase1Coords(s *cube.State) [3]int {
	return [3]int{CornerPermutation{}.Get(s), EdgePermutation{}.Get(s), SlicePermutation{}.Get(s)}
}

// InG1 reports whether every piece is oriented and the middle-layer edges
// sit in the middle layer.
func InG1(s *cube.State) bool {
	return Phase0Coords(s) == [3]int{}
}
