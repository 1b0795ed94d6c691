// Package cube models a 3x3x3 cube as corner and edge permutations plus
// orientation vectors, and applies face turns to it.
package cube

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up
	R Face = 1 // Right
	F Face = 2 // Front
	D Face = 3 // Down
	B Face = 4 // Back
	L Face = 5 // Left
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// Faces lists every face in index order.
var Faces = [NumFaces]Face{U, R, F, D, B, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case B:
		return "B"
	case L:
		return "L"
	default:
		return "?"
	}
}

var opposites = [NumFaces]Face{U: D, R: L, F: B, D: U, B: F, L: R}

// Opposite returns the face sharing this face's rotation axis.
func (f Face) Opposite() Face {
	return opposites[f]
}

// IsOpposite reports whether other turns about the same axis as f.
// A face is opposite to itself in this sense.
func (f Face) IsOpposite(other Face) bool {
	return f == other || f.Opposite() == other
}
