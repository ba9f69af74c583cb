package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesOps(t *testing.T) {
	c := AllCandidates
	assert.Equal(t, 9, c.Count())
	assert.Equal(t, "123456789", c.String())

	c = c.Without(4).Without(7)
	assert.Equal(t, 7, c.Count())
	assert.False(t, c.Has(4))
	assert.True(t, c.Has(5))
	assert.Equal(t, "1235689", c.String())

	_, ok := c.Single()
	assert.False(t, ok)

	s := CandidateOf(8)
	d, ok := s.Single()
	require.True(t, ok)
	assert.Equal(t, uint8(8), d)

	var empty Candidates
	assert.Equal(t, 0, empty.Count())
	_, ok = empty.Single()
	assert.False(t, ok)
}

func TestCandidatesDigits(t *testing.T) {
	c := CandidateOf(2) | CandidateOf(9) | CandidateOf(5)
	assert.Equal(t, []uint8{2, 5, 9}, c.Digits())
}

func TestParseCandidates(t *testing.T) {
	c, err := ParseCandidates("47")
	require.NoError(t, err)
	assert.Equal(t, CandidateOf(4)|CandidateOf(7), c)
	assert.Equal(t, "47", c.String())

	_, err = ParseCandidates("4x")
	assert.Error(t, err)
}
