// gocube-solver - CLI for building the two-phase tables and solving cube states.
package main

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cli"
)

func main() {
	cli.Execute()
}
