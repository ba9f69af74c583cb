// Package solver implements the solving engine: candidate propagation
// (elimination, naked twins, only-choice) iterated to a fixed point, with
// depth-first backtracking search resolving whatever propagation cannot.
package solver

import (
	"errors"

	"svw.info/dsudoku/internal/topology"
)

var (
	// ErrContradiction marks a branch whose partial assignment emptied some
	// cell's candidate set. Recoverable: the search tries the next digit.
	ErrContradiction = errors.New("contradiction: cell has no candidates")

	// ErrNoSolution is the top-level failure: no assignment satisfies the
	// active constraints.
	ErrNoSolution = errors.New("puzzle has no solution")

	// ErrBudgetExceeded reports that the search hit its node budget.
	ErrBudgetExceeded = errors.New("search node budget exceeded")
)

// ConstraintSolver combines candidate propagation with backtracking search
// over the units of a fixed topology.
type ConstraintSolver struct {
	topo *topology.Topology

	// MaxNodes caps the number of search nodes; 0 means unlimited.
	MaxNodes int
}

func NewConstraintSolver(topo *topology.Topology) *ConstraintSolver {
	return &ConstraintSolver{topo: topo}
}
