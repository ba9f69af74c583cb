package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/ports"
)

// CarveGenerator builds a full solution with the provided solver, then
// carves givens out down to a difficulty target. Generated puzzles are not
// checked for solution uniqueness.
type CarveGenerator struct {
	Solver   ports.Solver
	Diagonal bool
}

func New(s ports.Solver, diagonal bool) *CarveGenerator {
	return &CarveGenerator{Solver: s, Diagonal: diagonal}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle from seed at the target difficulty.
func (g *CarveGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// Seed the first row with a random permutation and let the solver fill
	// in the rest; the permutation alone is never contradictory.
	b := domain.NewBoard()
	perm := rng.Perm(9)
	for c := 0; c < 9; c++ {
		b.Assign(domain.CellAt(0, c), domain.CandidateOf(uint8(perm[c]+1)), nil)
	}
	full, _, st, err := g.Solver.Solve(ctx, b)
	if err != nil {
		return nil, st, fmt.Errorf("filling solution grid: %w", err)
	}

	grid := []byte(full.Grid())
	givens := domain.NumCells
	target := targetGivens(diff)
	for _, pos := range rng.Perm(domain.NumCells) {
		if givens <= target {
			break
		}
		grid[pos] = '.'
		givens--
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Grid:       string(grid),
		Diagonal:   g.Diagonal,
		Checked:    false,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}
