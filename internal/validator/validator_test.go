package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/topology"
)

const solvedClassic = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func mustParse(t *testing.T, grid string) *domain.Board {
	t.Helper()
	b, err := domain.ParseGrid(grid)
	require.NoError(t, err)
	return b
}

func TestValidateSolvedGrid(t *testing.T) {
	v := New(topology.New(false))
	ok, conf, err := v.Validate(context.Background(), mustParse(t, solvedClassic))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateDuplicateInRow(t *testing.T) {
	v := New(topology.New(false))
	ok, conf, err := v.Validate(context.Background(), mustParse(t, "22"+strings.Repeat(".", 79)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellAt(0, 1))
}

func TestValidateDiagonalViolation(t *testing.T) {
	// Valid as a standard solution, but its main diagonal repeats 7.
	b := mustParse(t, solvedClassic)

	ok, _, err := New(topology.New(false)).Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, conf, err := New(topology.New(true)).Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidatePartialBoardOK(t *testing.T) {
	v := New(topology.New(false))
	ok, _, err := v.Validate(context.Background(), mustParse(t, "12"+strings.Repeat(".", 79)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateSolvedRequiresCompletion(t *testing.T) {
	v := New(topology.New(false))
	ok, unsolved, err := v.ValidateSolved(context.Background(), mustParse(t, "12"+strings.Repeat(".", 79)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, unsolved)

	ok, _, err = v.ValidateSolved(context.Background(), mustParse(t, solvedClassic))
	require.NoError(t, err)
	assert.True(t, ok)
}
