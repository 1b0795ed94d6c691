package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/pkg/cube"
)

// stateFlags are the cubie vectors describing a cube. An empty vector
// means the solved value.
type stateFlags struct {
	cp, co, ep, eo []int
}

func (f *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.cp, "cp", nil, "Corner permutation, 8 values in 0..7 (default: solved)")
	cmd.Flags().IntSliceVar(&f.co, "co", nil, "Corner orientation, 8 values in 0..2 (default: solved)")
	cmd.Flags().IntSliceVar(&f.ep, "ep", nil, "Edge permutation, 12 values in 0..11 (default: solved)")
	cmd.Flags().IntSliceVar(&f.eo, "eo", nil, "Edge orientation, 12 values in 0..1 (default: solved)")
}

// state builds the cube described by the flags without checking that it
// is reachable. Only vector lengths and byte ranges are checked here.
func (f *stateFlags) state() (cube.State, error) {
	s := cube.Solved()

	cp, err := fill("cp", cube.NumCorners, f.cp)
	if err != nil {
		return s, err
	}
	co, err := fill("co", cube.NumCorners, f.co)
	if err != nil {
		return s, err
	}
	ep, err := fill("ep", cube.NumEdges, f.ep)
	if err != nil {
		return s, err
	}
	eo, err := fill("eo", cube.NumEdges, f.eo)
	if err != nil {
		return s, err
	}

	if cp != nil {
		for i, v := range cp {
			s.CP[i] = cube.Corner(v)
		}
	}
	if co != nil {
		s.CO = [cube.NumCorners]uint8(co)
	}
	if ep != nil {
		for i, v := range ep {
			s.EP[i] = cube.Edge(v)
		}
	}
	if eo != nil {
		s.EO = [cube.NumEdges]uint8(eo)
	}
	return s, nil
}

// fill converts a flag vector to bytes. It returns nil for an empty vector.
func fill(name string, n int, values []int) ([]uint8, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) != n {
		return nil, fmt.Errorf("--%s needs %d values, got %d", name, n, len(values))
	}
	out := make([]uint8, n)
	for i, v := range values {
		if v < 0 || v > 0xff {
			return nil, fmt.Errorf("--%s value %d out of range", name, v)
		}
		out[i] = uint8(v)
	}
	return out, nil
}
