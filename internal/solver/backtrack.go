package solver

import (
	"context"
	"time"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/ports"
	"svw.info/dsudoku/internal/topology"
)

// BacktrackingSolver is a plain recursive solver without candidate
// propagation, kept as a cross-check implementation. It honors whatever
// units the topology carries, diagonals included, and records no trace.
type BacktrackingSolver struct {
	topo *topology.Topology
}

func NewBacktrackingSolver(topo *topology.Topology) *BacktrackingSolver {
	return &BacktrackingSolver{topo: topo}
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, *domain.Trace, ports.Stats, error) {
	start := time.Now()
	var grid [domain.NumCells]uint8
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		if d, ok := b.Get(c).Single(); ok {
			grid[c] = d
		}
	}
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		if grid[c] != 0 && !s.allowed(&grid, c, grid[c]) {
			return nil, nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
		}
	}

	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if s.allowed(&grid, c, v) {
				grid[c] = v
				if dfs() {
					return true
				}
				grid[c] = 0
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, nil, st, err
		}
		return nil, nil, st, ErrNoSolution
	}

	out := domain.NewBoard()
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		out.Assign(c, domain.CandidateOf(grid[c]), nil)
	}
	return out, &domain.Trace{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// allowed checks v against the solved values of c's peers, treating the
// cell itself as empty.
func (s *BacktrackingSolver) allowed(grid *[domain.NumCells]uint8, c domain.Cell, v uint8) bool {
	for _, p := range s.topo.Peers(c) {
		if grid[p] == v {
			return false
		}
	}
	return true
}

func findEmpty(grid *[domain.NumCells]uint8) (domain.Cell, bool) {
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		if grid[c] == 0 {
			return c, true
		}
	}
	return 0, false
}
