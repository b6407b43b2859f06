package models

import "html/template"

// TextDiffDisplay is a TextDiff prepared for the HTML report template.
type TextDiffDisplay struct {
	Ordinal     int
	Kind        string
	PositionA   string
	PositionB   string
	TextA       string
	TextB       string
	Similarity  string
	Description string
	InlineHTML  template.HTML
	EditSummary string // e.g. "2 insertions, 1 deletion" for REPLACE rows
}

// DiffReportPageData holds everything the HTML report template renders.
type DiffReportPageData struct {
	ReportTitle string
	GeneratedAt string
	FileA       string
	FileB       string
	Summary     ComparisonSummary
	ImageDiffs  []ImageDiff
	TextDiffs   []TextDiffDisplay
}
