package cube

// generator is the permutation and orientation change of one clockwise
// quarter turn. Indices are destinations: position i receives the piece
// from position cp[i] (ep[i]) and adds co[i] (eo[i]) to its orientation.
type generator struct {
	cp [NumCorners]Corner
	co [NumCorners]uint8
	ep [NumEdges]Edge
	eo [NumEdges]uint8
}

// generators is indexed by Face.
var generators = [NumFaces]generator{
	U: {
		cp: [NumCorners]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		ep: [NumEdges]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	},
	R: {
		cp: [NumCorners]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		co: [NumCorners]uint8{1, 0, 0, 2, 2, 0, 0, 1},
		ep: [NumEdges]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	},
	F: {
		cp: [NumCorners]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		co: [NumCorners]uint8{2, 1, 0, 0, 1, 2, 0, 0},
		ep: [NumEdges]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		eo: [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	D: {
		cp: [NumCorners]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		ep: [NumEdges]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	},
	B: {
		cp: [NumCorners]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		co: [NumCorners]uint8{0, 0, 2, 1, 0, 0, 1, 2},
		ep: [NumEdges]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		eo: [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
	L: {
		cp: [NumCorners]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		co: [NumCorners]uint8{0, 2, 1, 0, 0, 1, 2, 0},
		ep: [NumEdges]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	},
}
