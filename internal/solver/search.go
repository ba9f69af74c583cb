package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/ports"
)

// Solve reduces the board to a fixed point and backtracks over the
// remaining ambiguity. It returns the solved board and the assignment
// trace, or ErrNoSolution. The input board is not mutated.
func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, *domain.Trace, ports.Stats, error) {
	start := time.Now()
	tr := &domain.Trace{}
	nodes := 0
	out, err := s.search(ctx, b.Clone(), tr, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		// A contradiction surviving to the top level means the givens
		// themselves are inconsistent; report it as no solution.
		if errors.Is(err, ErrContradiction) {
			err = ErrNoSolution
		}
		return nil, nil, st, err
	}
	return out, tr, st, nil
}

func (s *ConstraintSolver) search(ctx context.Context, b *domain.Board, tr *domain.Trace, nodes *int) (*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	*nodes++
	if s.MaxNodes > 0 && *nodes > s.MaxNodes {
		return nil, ErrBudgetExceeded
	}
	if err := s.Reduce(b, tr); err != nil {
		return nil, err
	}
	if b.Solved() {
		return b, nil
	}

	// Minimum-remaining-value cell; ties go to the lowest index so runs
	// are reproducible.
	var pick domain.Cell
	best := 10
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		if n := b.Get(c).Count(); n > 1 && n < best {
			pick, best = c, n
		}
	}

	for _, d := range b.Get(pick).Digits() {
		branch := b.Clone()
		branch.Assign(pick, domain.CandidateOf(d), tr)
		out, err := s.search(ctx, branch, tr, nodes)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrContradiction) && !errors.Is(err, ErrNoSolution) {
			return nil, err // cancellation or budget, not a dead end
		}
	}
	return nil, ErrNoSolution
}
