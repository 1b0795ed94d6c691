// Package coord compresses projections of a cube.State into small integers
// and precomputes, for each coordinate, the move transition table and the
// exact distance-to-solved pruning table used by the two-phase search.
//
// Tables are derived from the fixed face generators, built once per process
// by Default (or explicitly by Build) and never modified afterwards, so any
// number of solvers may read them concurrently.
package coord

import "fmt"

// Kind names one of the six coordinate families.
type Kind int

const (
	CO        Kind = iota // corner orientation, phase 0
	EO                    // edge orientation, phase 0
	Slice                 // location of the middle-layer edges, phase 0
	CP                    // corner permutation, phase 1
	EP                    // permutation of the eight U/D-layer edges, phase 1
	SlicePerm             // permutation of the four middle-layer edges, phase 1
)

// NumKinds is the number of coordinate families.
const NumKinds = 6

// Kinds lists every family.
var Kinds = [NumKinds]Kind{CO, EO, Slice, CP, EP, SlicePerm}

func (k Kind) String() string {
	switch k {
	case CO:
		return "co"
	case EO:
		return "eo"
	case Slice:
		return "slice"
	case CP:
		return "cp"
	case EP:
		return "ep"
	case SlicePerm:
		return "slice-perm"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Phase returns the search phase whose move set the family's tables use.
func (k Kind) Phase() Phase {
	if k <= Slice {
		return Phase0
	}
	return Phase1
}

// Coord returns the mapping for k.
func (k Kind) Coord() Coord {
	switch k {
	case CO:
		return CornerOrientation{}
	case EO:
		return EdgeOrientation{}
	case Slice:
		return SliceLocation{}
	case CP:
		return CornerPermutation{}
	case EP:
		return EdgePermutation{}
	case SlicePerm:
		return SlicePermutation{}
	default:
		panic(fmt.Sprintf("coord: unknown kind %d", int(k)))
	}
}

// Pair names a crossed pruning table over two families of the same phase.
type Pair int

const (
	COSlice       Pair = iota // CO x Slice, phase 0
	EOSlice                   // EO x Slice, phase 0
	CPSlicePerm               // CP x SlicePerm, phase 1
	EPSlicePerm               // EP x SlicePerm, phase 1
)

// NumPairs is the number of crossed pruning tables.
const NumPairs = 4

// Pairs lists every crossed table.
var Pairs = [NumPairs]Pair{COSlice, EOSlice, CPSlicePerm, EPSlicePerm}

// Kinds returns the two families the pair is indexed by, outer first.
func (p Pair) Kinds() (Kind, Kind) {
	switch p {
	case COSlice:
		return CO, Slice
	case EOSlice:
		return EO, Slice
	case CPSlicePerm:
		return CP, SlicePerm
	case EPSlicePerm:
		return EP, SlicePerm
	default:
		panic(fmt.Sprintf("coord: unknown pair %d", int(p)))
	}
}

func (p Pair) String() string {
	a, b := p.Kinds()
	return a.String() + "x" + b.String()
}
