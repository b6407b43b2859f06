package models

// Paragraph is a positioned unit of text extracted from a document.
// Its identity is GlobalIndex within the source document, not its content.
type Paragraph struct {
	Page        int    `json:"page"`          // 1-based
	IndexInPage int    `json:"index_in_page"` // 1-based
	GlobalIndex int    `json:"global_index"`  // 1-based, across all pages
	Text        string `json:"text"`
	NormText    string `json:"-"`
}
