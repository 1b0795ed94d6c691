package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

var verifyState stateFlags

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a cube state is reachable",
	Long: `Check the cube described by --cp, --co, --ep and --eo against the cube
invariants, in this order: edge permutation, edge orientation, corner
permutation, corner orientation, permutation parity.

A valid state is printed with its six coordinates. An invalid one fails with
the first invariant it violates.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyState.register(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	s, err := verifyState.state()
	if err != nil {
		return err
	}
	if err := s.Verify(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("invalid"))
		return fmt.Errorf("invalid state: %w", err)
	}
	writeCoordinates(cmd.OutOrStdout(), &s)
	return nil
}

func writeCoordinates(w io.Writer, s *cube.State) {
	fmt.Fprintln(w, moveStyle.Render("valid"))
	for _, k := range coord.Kinds {
		fmt.Fprintf(w, "  %-10s %-7s %6d / %d\n", k, k.Phase(), k.Coord().Get(s), k.Coord().Size())
	}
	inG1 := "no"
	if coord.InG1(s) {
		inG1 = "yes"
	}
	fmt.Fprintf(w, "  %-10s %s\n", "in G1", inG1)
}
