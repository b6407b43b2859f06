package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIntoParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			input:    " \n\n \t ",
			expected: []string{},
		},
		{
			name:     "single line",
			input:    "Hello world",
			expected: []string{"Hello world"},
		},
		{
			name:     "lines in block are joined",
			input:    "first line\n  second line  \nthird",
			expected: []string{"first line second line third"},
		},
		{
			name:     "blank lines split paragraphs",
			input:    "para one\n\npara two\n \t \n\npara three",
			expected: []string{"para one", "para two", "para three"},
		},
		{
			name:     "carriage returns",
			input:    "a\r\nb\r\rc",
			expected: []string{"a b", "c"},
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  lead\n\ntrail  \n\n",
			expected: []string{"lead", "trail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitIntoParagraphs(tt.input))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, SplitLines("one\r\n\n  two \rthree\n"))
	assert.Empty(t, SplitLines("\n \n"))
}

func TestBuildParagraphs(t *testing.T) {
	pages := []string{
		"Intro\n\nBody  text",
		"",
		"Closing",
	}

	paras := BuildParagraphs(pages, SplitIntoParagraphs)
	require.Len(t, paras, 3)

	assert.Equal(t, 1, paras[0].Page)
	assert.Equal(t, 1, paras[0].IndexInPage)
	assert.Equal(t, 1, paras[0].GlobalIndex)
	assert.Equal(t, "Intro", paras[0].Text)

	assert.Equal(t, 1, paras[1].Page)
	assert.Equal(t, 2, paras[1].IndexInPage)
	assert.Equal(t, 2, paras[1].GlobalIndex)
	assert.Equal(t, "Body  text", paras[1].Text)
	assert.Equal(t, "Body text", paras[1].NormText)

	assert.Equal(t, 3, paras[2].Page)
	assert.Equal(t, 1, paras[2].IndexInPage)
	assert.Equal(t, 3, paras[2].GlobalIndex)
}

func TestBuildParagraphs_NoPages(t *testing.T) {
	paras := BuildParagraphs(nil, SplitIntoParagraphs)
	assert.NotNil(t, paras)
	assert.Empty(t, paras)
}
