package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/topology"
	"svw.info/dsudoku/internal/validator"
)

const (
	classicGrid     = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	diagonalGrid    = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"
)

func solveGrid(t *testing.T, grid string, diagonal bool) (*domain.Board, *domain.Trace) {
	t.Helper()
	b, err := domain.ParseGrid(grid)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s := NewConstraintSolver(topology.New(diagonal))
	out, tr, st, err := s.Solve(ctx, b)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	return out, tr
}

func assertValidSolution(t *testing.T, out *domain.Board, grid string, diagonal bool) {
	t.Helper()
	require.True(t, out.Solved())

	topo := topology.New(diagonal)
	ok, conflicts, err := validator.New(topo).ValidateSolved(context.Background(), out)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conflicts)

	// Givens survive.
	sol := out.Grid()
	for i := 0; i < len(grid); i++ {
		if grid[i] != '.' {
			assert.Equal(t, grid[i], sol[i], "given at position %d changed", i)
		}
	}
}

func TestSolveClassic(t *testing.T) {
	out, tr := solveGrid(t, classicGrid, false)
	assert.Equal(t, classicSolution, out.Grid())
	assert.Greater(t, tr.Len(), 0)
}

func TestSolveDiagonalGrid(t *testing.T) {
	out, _ := solveGrid(t, diagonalGrid, true)
	assertValidSolution(t, out, diagonalGrid, true)
}

func TestSolveDiagonalGridWithoutDiagonals(t *testing.T) {
	out, _ := solveGrid(t, diagonalGrid, false)
	assertValidSolution(t, out, diagonalGrid, false)
}

func TestSolveUnsolvable(t *testing.T) {
	b, err := domain.ParseGrid("22" + strings.Repeat(".", 79))
	require.NoError(t, err)

	s := NewConstraintSolver(topology.New(false))
	out, tr, _, err := s.Solve(context.Background(), b)
	require.ErrorIs(t, err, ErrNoSolution)
	assert.Nil(t, out)
	assert.Nil(t, tr)
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	b, err := domain.ParseGrid(classicGrid)
	require.NoError(t, err)

	s := NewConstraintSolver(topology.New(false))
	_, _, _, err = s.Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, classicGrid, b.Grid())
	assert.Equal(t, domain.AllCandidates, b.Get(domain.CellAt(0, 2)))
}

func TestSolveNodeBudget(t *testing.T) {
	// An empty grid stalls propagation immediately and must branch, so the
	// second node trips a budget of one.
	b, err := domain.ParseGrid(strings.Repeat(".", 81))
	require.NoError(t, err)

	s := NewConstraintSolver(topology.New(false))
	s.MaxNodes = 1
	_, _, st, err := s.Solve(context.Background(), b)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 2, st.Nodes)
}

func TestSolveCanceled(t *testing.T) {
	b, err := domain.ParseGrid(strings.Repeat(".", 81))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewConstraintSolver(topology.New(false))
	_, _, _, err = s.Solve(ctx, b)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTraceSnapshotsComplete(t *testing.T) {
	_, tr := solveGrid(t, classicGrid, false)
	for i, frame := range tr.Frames() {
		assert.Len(t, frame, domain.NumCells, "frame %d", i)
	}
	// The last definitive assignment completes the board.
	last := tr.Snapshots()[tr.Len()-1]
	assert.True(t, last.Solved())
}
