package gocube

import (
	"errors"

	"github.com/SeamusWaldron/gocube_solver/internal/search"
)

// Sentinel errors for the gocube package.
var (
	// Search errors
	ErrDepthExceeded = search.ErrDepthExceeded
	ErrTimeout       = errors.New("gocube: operation timed out")

	// State errors
	ErrInvalidState = errors.New("gocube: invalid cube state")
	ErrNotInG1      = errors.New("gocube: state is not in G1")
)
