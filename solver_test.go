package gocube

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

func scrambleState(rng *rand.Rand, n int) (cube.State, []cube.Move) {
	moves := make([]cube.Move, n)
	for i := range moves {
		moves[i] = cube.AllMoves[rng.IntN(len(cube.AllMoves))]
	}
	return cube.Solved().ApplyAll(moves...), moves
}

type recordingTracer struct {
	mu        sync.Mutex
	positions []Position
}

func (r *recordingTracer) Trace(p Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = append(r.positions, p)
}

var _ = Describe("Solver", func() {
	var (
		ctx    context.Context
		solver *Solver
	)

	BeforeEach(func() {
		ctx = context.Background()
		solver = NewSolver()
	})

	Context("with the solved cube", func() {
		It("returns an empty solution", func() {
			sol, err := solver.Solve(ctx, cube.Solved())
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.Moves()).To(BeEmpty())
			Expect(sol.Len()).To(Equal(0))
			Expect(sol.String()).To(Equal(""))
		})
	})

	Context("with known sequences", func() {
		DescribeTable("solves the state",
			func(moves []cube.Move) {
				s := cube.Solved().ApplyAll(moves...)
				sol, err := solver.Solve(ctx, s)
				Expect(err).NotTo(HaveOccurred())
				Expect(s.ApplyAll(sol.Moves()...).IsSolved()).To(BeTrue())
				Logf("%v -> %s", cube.FormatMoves(moves), sol)
			},
			Entry("single R", []cube.Move{cube.RMove}),
			Entry("sexy move", cube.SexyMove),
			Entry("T permutation", cube.TPerm),
			Entry("U2 R2 pairs", []cube.Move{cube.U2, cube.R2, cube.U2, cube.R2}),
			Entry("F B' L R'", []cube.Move{cube.FMove, cube.BPrime, cube.LMove, cube.RPrime}),
		)

		It("solves a quarter turn with its inverse", func() {
			for _, m := range cube.AllMoves {
				sol, err := solver.Solve(ctx, cube.Solved().Apply(m))
				Expect(err).NotTo(HaveOccurred())
				Expect(sol.Simplified()).To(Equal([]cube.Move{m.Inverse()}), "move %v", m)
			}
		})
	})

	Context("with random scrambles", func() {
		It("solves every scramble", func() {
			rng := rand.New(rand.NewPCG(7, 11))
			for i := 0; i < 3; i++ {
				s, moves := scrambleState(rng, 25)
				sol, err := solver.Solve(ctx, s)
				Expect(err).NotTo(HaveOccurred())
				Expect(s.ApplyAll(sol.Moves()...).IsSolved()).To(BeTrue(), "scramble %s", cube.FormatMoves(moves))
				Expect(s.ApplyAll(sol.Simplified()...).IsSolved()).To(BeTrue())
				Logf("scramble %d: %d moves, %d nodes, %s", i, sol.Len(), sol.Nodes, sol.Elapsed)
			}
		})

		It("uses only G1 moves in phase 1", func() {
			rng := rand.New(rand.NewPCG(3, 5))
			s, _ := scrambleState(rng, 20)
			sol, err := solver.Solve(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			for _, m := range sol.Phase1 {
				Expect(coord.Phase1.Allows(m)).To(BeTrue(), "move %v", m)
			}
		})

		It("is safe for concurrent use", func() {
			rng := rand.New(rand.NewPCG(1, 2))
			states := make([]cube.State, 4)
			for i := range states {
				states[i], _ = scrambleState(rng, 12)
			}

			var wg sync.WaitGroup
			errs := make([]error, len(states))
			sols := make([]*Solution, len(states))
			for i, s := range states {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					sols[i], errs[i] = solver.Solve(ctx, s)
				}()
			}
			wg.Wait()

			for i, s := range states {
				Expect(errs[i]).NotTo(HaveOccurred())
				Expect(s.ApplyAll(sols[i].Moves()...).IsSolved()).To(BeTrue())
			}
		})
	})

	Context("with an invalid state", func() {
		It("rejects a single twisted corner", func() {
			s := cube.Solved()
			s.CO[0] = 1
			_, err := solver.Solve(ctx, s)
			Expect(err).To(MatchError(ErrInvalidState))
			Expect(err).To(MatchError(cube.ErrCO))
		})

		It("rejects a single flipped edge", func() {
			s := cube.Solved()
			s.EO[5] = 1
			_, err := solver.Solve(ctx, s)
			Expect(err).To(MatchError(ErrInvalidState))
			Expect(err).To(MatchError(cube.ErrEO))
		})

		It("rejects two swapped corners", func() {
			s := cube.Solved()
			s.CP[0], s.CP[1] = s.CP[1], s.CP[0]
			_, err := solver.Solve(ctx, s)
			Expect(err).To(MatchError(ErrInvalidState))
			Expect(err).To(MatchError(cube.ErrParity))
		})
	})

	Describe("Phase0", func() {
		It("reaches G1", func() {
			rng := rand.New(rand.NewPCG(9, 9))
			s, _ := scrambleState(rng, 25)
			moves, g1, err := solver.Phase0(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(coord.InG1(&g1)).To(BeTrue())
			Expect(s.ApplyAll(moves...)).To(Equal(g1))
		})

		It("searches faces on different axes in either order", func() {
			s := cube.Solved().ApplyAll(cube.BPrime, cube.UMove, cube.RMove, cube.BMove)
			moves, g1, err := solver.Phase0(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(coord.InG1(&g1)).To(BeTrue())
			Expect(len(moves)).To(BeNumerically("<=", 4))
		})

		It("returns no moves for a G1 state", func() {
			s := cube.Solved().ApplyAll(cube.UMove, cube.R2, cube.DPrime, cube.F2)
			moves, g1, err := solver.Phase0(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(moves).To(BeEmpty())
			Expect(g1).To(Equal(s))
		})
	})

	Describe("Phase1", func() {
		It("solves a G1 state", func() {
			s := cube.Solved().ApplyAll(cube.UMove, cube.R2, cube.DPrime, cube.F2, cube.L2, cube.U2)
			moves, err := solver.Phase1(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.ApplyAll(moves...).IsSolved()).To(BeTrue())
			Expect(len(moves)).To(BeNumerically("<=", 6))
		})

		It("rejects a state outside G1", func() {
			_, err := solver.Phase1(ctx, cube.Solved().Apply(cube.RMove))
			Expect(err).To(MatchError(ErrNotInG1))
		})
	})

	Context("with limits", func() {
		superflip := func() cube.State {
			s := cube.Solved()
			for i := range s.EO {
				s.EO[i] = 1
			}
			return s
		}

		It("fails when phase 0 needs more moves than allowed", func() {
			solver = NewSolver(WithPhase0MaxDepth(1))
			_, err := solver.Solve(ctx, superflip())
			Expect(err).To(MatchError(ErrDepthExceeded))
		})

		It("fails when phase 1 needs more moves than allowed", func() {
			solver = NewSolver(WithPhase1MaxDepth(1))
			_, err := solver.Solve(ctx, cube.Solved().ApplyAll(cube.UMove, cube.R2, cube.DPrime))
			Expect(err).To(MatchError(ErrDepthExceeded))
		})

		It("reports an expired deadline as a timeout", func() {
			dctx, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
			defer cancel()
			_, err := solver.Solve(dctx, superflip())
			Expect(err).To(MatchError(ErrTimeout))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})

		It("reports cancellation without a timeout", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := solver.Solve(cctx, superflip())
			Expect(err).To(MatchError(context.Canceled))
			Expect(err).NotTo(MatchError(ErrTimeout))
		})
	})

	Context("with a tracer", func() {
		It("sees the passes of both phases in order", func() {
			tracer := &recordingTracer{}
			solver = NewSolver(WithTracer(tracer))
			s := cube.Solved().ApplyAll(cube.SexyMove...)
			_, err := solver.Solve(ctx, s)
			Expect(err).NotTo(HaveOccurred())

			Expect(tracer.positions).NotTo(BeEmpty())
			last := tracer.positions[len(tracer.positions)-1]
			Expect(last.Phase).To(Equal("phase1"))
			Expect(last.Found).To(BeTrue())

			seenPhase1 := false
			for _, p := range tracer.positions {
				if p.Phase == "phase1" {
					seenPhase1 = true
				} else {
					Expect(seenPhase1).To(BeFalse(), "phase0 pass after phase1")
				}
			}
		})
	})
})
