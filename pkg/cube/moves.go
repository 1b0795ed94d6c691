package cube

// Predefined moves for convenience.
//
// Example:
//
//	s := cube.Solved().ApplyAll(cube.RMove, cube.UMove, cube.RPrime, cube.UPrime)
var (
	// Up face moves
	UMove  = Move{Face: U, Turn: CW}     // Up clockwise
	UPrime = Move{Face: U, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: U, Turn: Double} // Up 180

	// Right face moves
	RMove  = Move{Face: R, Turn: CW}
	RPrime = Move{Face: R, Turn: CCW}
	R2     = Move{Face: R, Turn: Double}

	// Front face moves
	FMove  = Move{Face: F, Turn: CW}
	FPrime = Move{Face: F, Turn: CCW}
	F2     = Move{Face: F, Turn: Double}

	// Down face moves
	DMove  = Move{Face: D, Turn: CW}
	DPrime = Move{Face: D, Turn: CCW}
	D2     = Move{Face: D, Turn: Double}

	// Back face moves
	BMove  = Move{Face: B, Turn: CW}
	BPrime = Move{Face: B, Turn: CCW}
	B2     = Move{Face: B, Turn: Double}

	// Left face moves
	LMove  = Move{Face: L, Turn: CW}
	LPrime = Move{Face: L, Turn: CCW}
	L2     = Move{Face: L, Turn: Double}
)

// SexyMove is R U R' U'.
var SexyMove = []Move{RMove, UMove, RPrime, UPrime}

// TPerm swaps UL/UR and URF/UBR.
var TPerm = []Move{RMove, UMove, RPrime, UPrime, RPrime, FMove, R2, UPrime, RPrime, UPrime, RMove, UMove, RPrime, FPrime}
