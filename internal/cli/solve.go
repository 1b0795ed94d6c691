package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

var (
	solveState     stateFlags
	phase0MaxDepth int
	phase1MaxDepth int
	solveTimeout   time.Duration
	solveTrace     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a cube state",
	Long: `Solve the cube described by --cp, --co, --ep and --eo with the two-phase
search, and print the phase-0 reduction, the phase-1 solution and the total.

Positions are numbered U R F D B L face order; see the cube package for the
corner and edge numbering. Omitted vectors take their solved values.`,
	Example: `  # the state after R
  gocube-solver solve --cp 4,1,2,0,7,5,6,3 --co 1,0,0,2,2,0,0,1 --ep 8,1,2,3,11,5,6,7,4,9,10,0`,
	Args:    cobra.NoArgs,
	RunE:    runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveState.register(solveCmd)
	solveCmd.Flags().IntVar(&phase0MaxDepth, "phase0-max-depth", 0, "Give up when phase 0 needs more moves (0: no limit)")
	solveCmd.Flags().IntVar(&phase1MaxDepth, "phase1-max-depth", 0, "Give up when phase 1 needs more moves (0: no limit)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Give up after this long (0: no limit)")
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "Print every search pass to stderr")
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := solveState.state()
	if err != nil {
		return err
	}

	opts := []gocube.Option{
		gocube.WithLogger(logger),
		gocube.WithPhase0MaxDepth(phase0MaxDepth),
		gocube.WithPhase1MaxDepth(phase1MaxDepth),
		gocube.WithTimeout(solveTimeout),
	}
	if solveTrace {
		opts = append(opts, gocube.WithTracer(gocube.LoggingTracer{Writer: cmd.ErrOrStderr()}))
	}

	logger.Debug("loading tables")
	sol, err := gocube.NewSolver(opts...).Solve(cmd.Context(), s)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	writeSolution(cmd.OutOrStdout(), sol)
	return nil
}

func writeSolution(w io.Writer, sol *gocube.Solution) {
	line := func(label string, moves []cube.Move) {
		fmt.Fprintf(w, "%s %s (%d)\n", phaseStyle.Render(fmt.Sprintf("%-9s", label+":")), moveStyle.Render(cube.FormatMoves(moves)), len(moves))
	}
	line("phase0", sol.Phase0)
	line("phase1", sol.Phase1)
	line("solution", sol.Simplified())
	fmt.Fprintln(w, statusStyle.Render(fmt.Sprintf("%d moves, %s nodes, %s, solve %s",
		sol.Len(), humanize.Comma(sol.Nodes), sol.Elapsed.Round(time.Microsecond), sol.ID)))
}
