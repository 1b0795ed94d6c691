package cube

// Corner identifies a corner cubie by its home position.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corners on the cube.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) < NumCorners {
		return cornerNames[c]
	}
	return "?"
}

// Edge identifies an edge cubie by its home position.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edges on the cube.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) < NumEdges {
		return edgeNames[e]
	}
	return "?"
}

// InSlice reports whether e belongs to the middle layer between U and D.
func (e Edge) InSlice() bool {
	return e >= FR && e <= BR
}
