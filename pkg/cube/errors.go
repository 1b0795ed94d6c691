package cube

import "errors"

// Invariant violations reported by Verify. A state failing any of these is
// not reachable from solved.
var (
	ErrEO     = errors.New("cube: invalid edge orientation")
	ErrCO     = errors.New("cube: invalid corner orientation")
	ErrEP     = errors.New("cube: invalid edge permutation")
	ErrCP     = errors.New("cube: invalid corner permutation")
	ErrParity = errors.New("cube: corner and edge parity differ")
)
