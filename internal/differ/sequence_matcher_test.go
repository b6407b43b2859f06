package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMatcher_FindLongestMatch(t *testing.T) {
	m := NewStringMatcher(" abcd", "abcd abcd")

	match := m.FindLongestMatch(0, 5, 0, 9)
	assert.Equal(t, Match{A: 0, B: 4, Size: 5}, match)
}

func TestSequenceMatcher_FindLongestMatchPrefersEarliest(t *testing.T) {
	m := NewSequenceMatcher([]string{"x", "y", "x"}, []string{"x", "x"})

	match := m.FindLongestMatch(0, 3, 0, 2)
	assert.Equal(t, Match{A: 0, B: 0, Size: 1}, match)
}

func TestSequenceMatcher_MatchingBlocks(t *testing.T) {
	m := NewStringMatcher("abxcd", "abcd")

	blocks := m.MatchingBlocks()
	assert.Equal(t, []Match{{0, 0, 2}, {3, 2, 2}, {5, 4, 0}}, blocks)
}

func TestSequenceMatcher_OpCodes(t *testing.T) {
	m := NewStringMatcher("qabxcd", "abycdf")

	expected := []OpCode{
		{Tag: OpDelete, I1: 0, I2: 1, J1: 0, J2: 0},
		{Tag: OpEqual, I1: 1, I2: 3, J1: 0, J2: 2},
		{Tag: OpReplace, I1: 3, I2: 4, J1: 2, J2: 3},
		{Tag: OpEqual, I1: 4, I2: 6, J1: 3, J2: 5},
		{Tag: OpInsert, I1: 6, I2: 6, J1: 5, J2: 6},
	}
	assert.Equal(t, expected, m.OpCodes())
}

func TestSequenceMatcher_OpCodesCoverBothSequences(t *testing.T) {
	a := []string{"", "a", "", "b", "", "c", ""}
	b := []string{"a", "", "", "d", "c", "", "", ""}

	codes := NewSequenceMatcher(a, b).OpCodes()
	require.NotEmpty(t, codes)

	i, j := 0, 0
	for _, c := range codes {
		assert.Equal(t, i, c.I1)
		assert.Equal(t, j, c.J1)
		i, j = c.I2, c.J2
	}
	assert.Equal(t, len(a), i)
	assert.Equal(t, len(b), j)
}

func TestSequenceMatcher_NoJunkHeuristic(t *testing.T) {
	// With 200+ elements a popular element would be discarded by an
	// autojunk heuristic; here it must still match.
	a := make([]string, 0, 300)
	b := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		a = append(a, "same")
		b = append(b, "same")
	}

	m := NewSequenceMatcher(a, b)
	assert.Equal(t, 1.0, m.Ratio())
	assert.Equal(t, []OpCode{{Tag: OpEqual, I1: 0, I2: 300, J1: 0, J2: 300}}, m.OpCodes())
}

func TestSequenceMatcher_Ratio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"both empty", "", "", 1.0},
		{"one empty", "abc", "", 0.0},
		{"identical", "abc", "abc", 1.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"half", "abcd", "bcde", 0.75},
		{"unicode runes", "héllo", "hello", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "The quick brown fox"
	b := "The quick red fox"
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-9)
}
