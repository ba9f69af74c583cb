package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dsudoku/internal/domain"
)

func sampleRecord(diagonal bool) *domain.SolveRecord {
	return &domain.SolveRecord{
		Grid:      "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
		Diagonal:  diagonal,
		Solution:  "534678912672195348198342567859761423426853791713924856961537284287419635345286179",
		Nodes:     1,
		Trace:     [][]string{{"5"}},
		CreatedAt: time.Now().UnixNano(),
	}
}

func TestSaveAssignsID(t *testing.T) {
	s := NewFS(t.TempDir())
	rec := sampleRecord(false)
	require.NoError(t, s.Save(context.Background(), rec))
	assert.NotEmpty(t, rec.ID)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := NewFS(t.TempDir())
	for _, diagonal := range []bool{false, true} {
		rec := sampleRecord(diagonal)
		require.NoError(t, s.Save(context.Background(), rec))

		got, err := s.Load(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.Grid, got.Grid)
		assert.Equal(t, rec.Solution, got.Solution)
		assert.Equal(t, diagonal, got.Diagonal)
		assert.Equal(t, rec.Trace, got.Trace)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListBothVariants(t *testing.T) {
	s := NewFS(t.TempDir())
	std := sampleRecord(false)
	diag := sampleRecord(true)
	require.NoError(t, s.Save(context.Background(), std))
	require.NoError(t, s.Save(context.Background(), diag))

	metas, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 2)

	ids := []string{metas[0].ID, metas[1].ID}
	assert.ElementsMatch(t, []string{std.ID, diag.ID}, ids)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestSaveNil(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), nil))
}
