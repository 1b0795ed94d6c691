// Package gocube solves 3x3x3 cube states with a two-phase search.
//
// # Features
//
//   - Cube state engine with invariant checking (package cube)
//   - Coordinate, transition and pruning tables built once per process
//     and shared by every solver (package coord)
//   - Phase 0: reduce any state into G1, the subgroup where every piece is
//     oriented and the middle-layer edges sit in the middle layer
//   - Phase 1: solve a G1 state using only moves that stay in G1
//   - Depth caps, timeouts and search tracing
//
// # Quick Start
//
//	s := cube.Solved().ApplyAll(cube.RMove, cube.UMove, cube.RPrime, cube.UPrime)
//
//	solver := gocube.NewSolver(gocube.WithTimeout(10 * time.Second))
//	sol, err := solver.Solve(context.Background(), s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cube.FormatMoves(sol.Moves()))
//
// # Phases
//
// Each phase is an iterative-deepening A* search whose heuristic is the
// maximum of two pruning tables. Each phase's sequence is the shortest for
// its own goal; the concatenation is usually short but not guaranteed
// optimal. The solver accepts the first phase-0 solution it finds.
//
// Phase0 and Phase1 can also be called on their own.
package gocube
