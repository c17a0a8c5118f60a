package atoms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaraqc/yaraqc/internal/domain/atoms"
)

func newScorer() *atoms.Scorer {
	return atoms.NewScorer(atoms.DefaultConfig())
}

func TestBest_TooShort(t *testing.T) {
	s := newScorer()
	for _, data := range [][]byte{nil, {}, {0x41}, {0x41, 0x42}, {0x41, 0x42, 0x43}} {
		_, ok := s.Best(data, nil)
		assert.False(t, ok, "length %d must not yield an atom", len(data))
	}
}

func TestBest_IdenticalBytesScoreLow(t *testing.T) {
	atom, ok := newScorer().Best([]byte{0x41, 0x41, 0x41, 0x41}, nil)
	require.True(t, ok)
	// 100 - 80 identical - 10 printable
	assert.LessOrEqual(t, atom.Score, 20)
}

func TestBest_AllNullsScoreZero(t *testing.T) {
	atom, ok := newScorer().Best([]byte{0x00, 0x00, 0x00, 0x00}, nil)
	require.True(t, ok)
	assert.Equal(t, 0, atom.Score)
}

func TestBest_DistinctiveBytesScoreFull(t *testing.T) {
	atom, ok := newScorer().Best([]byte{0x01, 0xE2, 0x33, 0x9A}, nil)
	require.True(t, ok)
	assert.Equal(t, 100, atom.Score)
}

func TestBest_NullPenaltyPerByte(t *testing.T) {
	// One null among otherwise distinctive non-printable bytes.
	atom, ok := newScorer().Best([]byte{0x01, 0x00, 0xE2, 0x9A}, nil)
	require.True(t, ok)
	assert.Equal(t, 85, atom.Score)
}

func TestBest_TwoDistinctValues(t *testing.T) {
	atom, ok := newScorer().Best([]byte{0x01, 0xE2, 0x01, 0xE2}, nil)
	require.True(t, ok)
	// 100 - 40 for exactly two distinct values
	assert.Equal(t, 60, atom.Score)
}

func TestBest_CommonSequencePenalty(t *testing.T) {
	atom, ok := newScorer().Best([]byte("http"), nil)
	require.True(t, ok)
	// 100 - 30 common marker - 10 printable
	assert.Equal(t, 60, atom.Score)
}

func TestBest_WildcardWindowsSkipped(t *testing.T) {
	// Wildcard at offset 2 invalidates every window except none; the
	// sequence has length 5, so windows start at 0 and 1, both touch it.
	data := []byte{0x01, 0xE2, 0x00, 0x33, 0x9A}
	_, ok := newScorer().Best(data, map[int]bool{2: true})
	assert.False(t, ok)
}

func TestBest_PicksHighestScoringWindow(t *testing.T) {
	// Windows touching the filler or the null score below the
	// distinctive tail.
	data := []byte{0x41, 0x41, 0x41, 0x41, 0x00, 0x01, 0xE2, 0x33, 0x9A}
	atom, ok := newScorer().Best(data, nil)
	require.True(t, ok)
	assert.Equal(t, 100, atom.Score)
	assert.Equal(t, [4]byte{0x01, 0xE2, 0x33, 0x9A}, atom.Bytes)
}

func TestBest_TieBreaksEarliest(t *testing.T) {
	// Two equally distinctive windows separated by a wildcard: the first
	// must win.
	data := []byte{0x01, 0xE2, 0x33, 0x9A, 0x00, 0x02, 0xE3, 0x34, 0x9B}
	atom, ok := newScorer().Best(data, map[int]bool{4: true})
	require.True(t, ok)
	assert.Equal(t, [4]byte{0x01, 0xE2, 0x33, 0x9A}, atom.Bytes)
	assert.Equal(t, 100, atom.Score)
}

func TestBest_Deterministic(t *testing.T) {
	data := []byte("some scanner input with MZ\x90 markers and text")
	first, ok1 := newScorer().Best(data, nil)
	second, ok2 := newScorer().Best(data, nil)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestBest_CustomConfig(t *testing.T) {
	cfg := atoms.Config{
		BadPatterns:     [][]byte{{0x41, 0x42, 0x43, 0x44}},
		CommonSequences: nil,
	}
	atom, ok := atoms.NewScorer(cfg).Best([]byte{0x41, 0x42, 0x43, 0x44}, nil)
	require.True(t, ok)
	// 100 - 60 bad pattern - 10 printable
	assert.Equal(t, 30, atom.Score)
}
