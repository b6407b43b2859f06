package reporter

import (
	"testing"
	"time"

	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/stretchr/testify/assert"
)

func fixtureResult() *models.ComparisonResult {
	betaA := models.Paragraph{Page: 1, IndexInPage: 2, GlobalIndex: 2, Text: "Beta paragraph", NormText: "Beta paragraph"}
	betaB := models.Paragraph{Page: 1, IndexInPage: 2, GlobalIndex: 2, Text: "Beta changed paragraph", NormText: "Beta changed paragraph"}
	delta := models.Paragraph{Page: 1, IndexInPage: 3, GlobalIndex: 3, Text: "Delta <paragraph>", NormText: "Delta <paragraph>"}

	imageDiffs := []models.ImageDiff{{Page: 2, ImagesA: 0, ImagesB: 1}}
	textDiffs := []models.TextDiff{
		{Kind: models.TextDiffReplace, A: &betaA, B: &betaB, Similarity: 0.7777, Description: "partial difference"},
		{Kind: models.TextDiffInsert, B: &delta, Similarity: 0, Description: "paragraph present in B but absent in A"},
	}
	docA := &models.Document{PagesText: []string{"", "", ""}, Paragraphs: make([]models.Paragraph, 3), ImagesPerPage: []int{2, 0, 1}}
	docB := &models.Document{PagesText: []string{"", "", ""}, Paragraphs: make([]models.Paragraph, 4), ImagesPerPage: []int{2, 1, 1}}

	return &models.ComparisonResult{
		RunID:      "run-1",
		FileA:      "a.pdf",
		FileB:      "b.pdf",
		DocumentA:  docA,
		DocumentB:  docB,
		ImageDiffs: imageDiffs,
		TextDiffs:  textDiffs,
		Summary:    models.NewComparisonSummary(docA, docB, imageDiffs, textDiffs),
	}
}

func fixtureReport() *ComparisonReport {
	return NewComparisonReport(fixtureResult(), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func emptyReport() *ComparisonReport {
	return NewComparisonReport(&models.ComparisonResult{FileA: "a.pdf", FileB: "a.pdf"}, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestNewComparisonReport_EmptyListsNotNil(t *testing.T) {
	report := emptyReport()
	assert.NotNil(t, report.ImageDiffs)
	assert.NotNil(t, report.TextDiffs)
	assert.False(t, report.HasDifferences())
	assert.True(t, fixtureReport().HasDifferences())
}

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "-", formatPosition(nil))
	assert.Equal(t, "p.2 §3 (#7)", formatPosition(&models.Paragraph{Page: 2, IndexInPage: 3, GlobalIndex: 7}))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 0))
	assert.Equal(t, "héllo", truncateRunes("héllo", 5))
	assert.Equal(t, "hél…", truncateRunes("héllo", 4))
	assert.Equal(t, "…", truncateRunes("héllo", 1))
}
