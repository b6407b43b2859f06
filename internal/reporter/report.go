package reporter

import (
	"fmt"
	"time"

	"github.com/aleister1102/pdfdiff/internal/models"
)

// ComparisonReport is the report-ready view of a comparison result. It
// marshals to the JSON report layout.
type ComparisonReport struct {
	RunID       string                   `json:"run_id,omitempty"`
	FileA       string                   `json:"file_a"`
	FileB       string                   `json:"file_b"`
	GeneratedAt time.Time                `json:"generated_at"`
	Summary     models.ComparisonSummary `json:"summary"`
	ImageDiffs  []models.ImageDiff       `json:"image_diffs"`
	TextDiffs   []models.TextDiff        `json:"text_diffs"`
}

// NewComparisonReport builds a report from a comparison result
func NewComparisonReport(result *models.ComparisonResult, generatedAt time.Time) *ComparisonReport {
	report := &ComparisonReport{
		RunID:       result.RunID,
		FileA:       result.FileA,
		FileB:       result.FileB,
		GeneratedAt: generatedAt,
		Summary:     result.Summary,
		ImageDiffs:  result.ImageDiffs,
		TextDiffs:   result.TextDiffs,
	}
	// Empty lists serialize as [] rather than null.
	if report.ImageDiffs == nil {
		report.ImageDiffs = []models.ImageDiff{}
	}
	if report.TextDiffs == nil {
		report.TextDiffs = []models.TextDiff{}
	}
	return report
}

// HasDifferences reports whether the comparison found anything
func (r *ComparisonReport) HasDifferences() bool {
	return len(r.ImageDiffs) > 0 || len(r.TextDiffs) > 0
}

// formatPosition renders a paragraph position as "p.P §I (#G)", or "-" for nil
func formatPosition(p *models.Paragraph) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("p.%d §%d (#%d)", p.Page, p.IndexInPage, p.GlobalIndex)
}

// formatSimilarity renders a similarity with two decimals
func formatSimilarity(sim float64) string {
	return fmt.Sprintf("%.2f", sim)
}

// truncateRunes shortens s to at most max runes, marking the cut with an
// ellipsis. max <= 0 disables truncation.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

func paragraphText(p *models.Paragraph) string {
	if p == nil {
		return ""
	}
	return p.Text
}
