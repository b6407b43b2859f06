package models

import "time"

// ComparisonSummary holds the headline numbers of a comparison run.
type ComparisonSummary struct {
	PagesA      int  `json:"pages_a"`
	PagesB      int  `json:"pages_b"`
	ParagraphsA int  `json:"paragraphs_a"`
	ParagraphsB int  `json:"paragraphs_b"`
	ImageDiffs  int  `json:"image_diffs"`
	Replaced    int  `json:"replaced"`
	Inserted    int  `json:"inserted"`
	Deleted     int  `json:"deleted"`
	Identical   bool `json:"identical"`
}

// TextDiffCount returns the number of paragraph-level differences.
func (s ComparisonSummary) TextDiffCount() int {
	return s.Replaced + s.Inserted + s.Deleted
}

// ComparisonResult is everything produced by one comparison run.
type ComparisonResult struct {
	RunID      string            `json:"run_id"`
	FileA      string            `json:"file_a"`
	FileB      string            `json:"file_b"`
	DocumentA  *Document         `json:"-"`
	DocumentB  *Document         `json:"-"`
	ImageDiffs []ImageDiff       `json:"image_diffs"`
	TextDiffs  []TextDiff        `json:"text_diffs"`
	Summary    ComparisonSummary `json:"summary"`
	StartedAt  time.Time         `json:"started_at"`
	Duration   time.Duration     `json:"duration"`
}

// NewComparisonSummary derives the summary from two documents and their diffs.
func NewComparisonSummary(docA, docB *Document, imageDiffs []ImageDiff, textDiffs []TextDiff) ComparisonSummary {
	summary := ComparisonSummary{
		PagesA:      docA.PageCount(),
		PagesB:      docB.PageCount(),
		ParagraphsA: docA.ParagraphCount(),
		ParagraphsB: docB.ParagraphCount(),
		ImageDiffs:  len(imageDiffs),
	}
	for _, d := range textDiffs {
		switch d.Kind {
		case TextDiffReplace:
			summary.Replaced++
		case TextDiffInsert:
			summary.Inserted++
		case TextDiffDelete:
			summary.Deleted++
		}
	}
	summary.Identical = summary.ImageDiffs == 0 && summary.TextDiffCount() == 0
	return summary
}
