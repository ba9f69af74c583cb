package hint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/topology"
)

func TestHintEliminationSingle(t *testing.T) {
	// Row A holds 1..8; only 9 fits in A9.
	b, err := domain.ParseGrid("12345678" + strings.Repeat(".", 73))
	require.NoError(t, err)

	h := New(topology.New(false))
	hint, found, err := h.Hint(context.Background(), b, domain.NakedTwins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Elimination, hint.Technique)
	assert.Equal(t, []string{"A9"}, hint.Cells)
	assert.Equal(t, []int{9}, hint.Digits)
}

func TestHintOnlyChoice(t *testing.T) {
	// No solved cells, but 5 has a single place left in row A.
	b := domain.NewBoard()
	for c := 1; c < 9; c++ {
		b.Assign(domain.CellAt(0, c), domain.AllCandidates.Without(5), nil)
	}

	h := New(topology.New(false))
	hint, found, err := h.Hint(context.Background(), b, domain.NakedTwins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.OnlyChoice, hint.Technique)
	assert.Equal(t, []string{"A1"}, hint.Cells)
	assert.Equal(t, []int{5}, hint.Digits)
}

func TestHintNakedTwins(t *testing.T) {
	b := domain.NewBoard()
	pair := domain.CandidateOf(4) | domain.CandidateOf(7)
	b.Assign(domain.CellAt(0, 0), pair, nil)
	b.Assign(domain.CellAt(0, 1), pair, nil)

	h := New(topology.New(false))
	hint, found, err := h.Hint(context.Background(), b, domain.NakedTwins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.NakedTwins, hint.Technique)
	assert.ElementsMatch(t, []string{"A1", "A2"}, hint.Cells)
	assert.Equal(t, []int{4, 7}, hint.Digits)

	// Gated out when the cap is below naked twins.
	_, found, err = h.Hint(context.Background(), b, domain.OnlyChoice)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintNothingToDeduct(t *testing.T) {
	h := New(topology.New(false))
	_, found, err := h.Hint(context.Background(), domain.NewBoard(), domain.NakedTwins)
	require.NoError(t, err)
	assert.False(t, found)
}
