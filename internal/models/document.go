package models

// DocumentFormat identifies the kind of source file a Document was loaded from.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatODT  DocumentFormat = "odt"
)

// Document is the in-memory model of one side of a comparison.
// Paragraphs are ordered by (Page, IndexInPage), consistent with ascending GlobalIndex.
type Document struct {
	Path          string         `json:"path"`
	Format        DocumentFormat `json:"format"`
	PagesText     []string       `json:"-"`
	Paragraphs    []Paragraph    `json:"-"`
	ImagesPerPage []int          `json:"images_per_page"`
}

// PageCount returns the number of pages the document was extracted with.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.PagesText)
}

// ParagraphCount returns the number of paragraphs across all pages.
func (d *Document) ParagraphCount() int {
	if d == nil {
		return 0
	}
	return len(d.Paragraphs)
}

// TotalImages sums the per-page image counts.
func (d *Document) TotalImages() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, n := range d.ImagesPerPage {
		total += n
	}
	return total
}
