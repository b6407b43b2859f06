package loader

import (
	"regexp"
	"strings"

	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/aleister1102/pdfdiff/internal/normalizer"
)

// blankLineRun matches a paragraph break: a newline, optional whitespace, and at least one more newline.
var blankLineRun = regexp.MustCompile(`\n[\s\p{Zs}]*\n+`)

// SplitIntoParagraphs splits a page's text into paragraphs on blank-line runs.
// Lines inside a block are trimmed, empty lines dropped, and the rest joined
// with a single space. Empty blocks yield no paragraph.
func SplitIntoParagraphs(pageText string) []string {
	text := strings.TrimSpace(normalizeNewlines(pageText))
	if text == "" {
		return []string{}
	}

	blocks := blankLineRun.Split(text, -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		lines := SplitLines(block)
		if len(lines) == 0 {
			continue
		}
		paragraphs = append(paragraphs, strings.Join(lines, " "))
	}
	return paragraphs
}

// SplitLines returns the trimmed, non-empty lines of text. Used for formats
// where each line is already a paragraph.
func SplitLines(text string) []string {
	raw := strings.Split(normalizeNewlines(text), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// BuildParagraphs turns per-page text into positioned paragraphs using split
// to segment each page. Page, IndexInPage and GlobalIndex are 1-based.
func BuildParagraphs(pagesText []string, split func(string) []string) []models.Paragraph {
	paragraphs := make([]models.Paragraph, 0)
	global := 0
	for pageIdx, pageText := range pagesText {
		for i, text := range split(pageText) {
			global++
			paragraphs = append(paragraphs, models.Paragraph{
				Page:        pageIdx + 1,
				IndexInPage: i + 1,
				GlobalIndex: global,
				Text:        text,
				NormText:    normalizer.NormalizeText(text),
			})
		}
	}
	return paragraphs
}
