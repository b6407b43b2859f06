package models

// TextDiffKind classifies a paragraph-level difference.
type TextDiffKind string

const (
	TextDiffReplace TextDiffKind = "REPLACE"
	TextDiffInsert  TextDiffKind = "INSERT"
	TextDiffDelete  TextDiffKind = "DELETE"
)

// String returns the kind as it appears in reports.
func (k TextDiffKind) String() string {
	return string(k)
}

// TextDiff is one paragraph-level difference.
// REPLACE carries both A and B, DELETE only A, INSERT only B.
type TextDiff struct {
	Kind        TextDiffKind `json:"kind"`
	A           *Paragraph   `json:"a"`
	B           *Paragraph   `json:"b"`
	Similarity  float64      `json:"similarity"`
	Description string       `json:"description"`
}

// HasValidReferences reports whether the paragraph references match the kind.
func (d TextDiff) HasValidReferences() bool {
	switch d.Kind {
	case TextDiffReplace:
		return d.A != nil && d.B != nil
	case TextDiffDelete:
		return d.A != nil && d.B == nil
	case TextDiffInsert:
		return d.A == nil && d.B != nil
	default:
		return false
	}
}
